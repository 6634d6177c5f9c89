// Copyright (c) 2024 Neomantra Corp

// Package trace provides an optional structured step-tracer for the
// long-running brute-force searches in market.FindCredences and
// ensemble.Combine. The core library stays silent (it is a pure
// computation library); wiring a *Tracer through it lets a caller observe
// candidate credence tuples and rejected worlds without threading return
// values through every call, the same way a long-running client logs
// events through an injected *slog.Logger rather than returning a log.
package trace

import (
	"log/slog"
	"math/big"
)

// Tracer emits slog.Debug records for the inductor's search loops. A nil
// *Tracer is valid and every method on it is a no-op, so callers that don't
// care about tracing never pay for it.
type Tracer struct {
	logger *slog.Logger
}

// New wraps logger as a Tracer. If logger is nil, slog.Default() is used.
func New(logger *slog.Logger) *Tracer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracer{logger: logger}
}

// Candidate logs one candidate credence tuple considered by FindCredences.
func (t *Tracer) Candidate(index int, domainSize int, accepted bool) {
	if t == nil {
		return
	}
	t.logger.Debug("find_credences candidate",
		"index", index, "domain_size", domainSize, "accepted", accepted)
}

// WorldRejected logs a world whose value-of-holdings exceeded tolerance.
func (t *Tracer) WorldRejected(value, tolerance *big.Rat) {
	if t == nil {
		return
	}
	t.logger.Debug("find_credences world rejected",
		"value", value.RatString(), "tolerance", tolerance.RatString())
}

// AlgorithmAdmitted logs the admission of a new trading algorithm into the
// ensemble combinator, along with its computed net value bound.
func (t *Tracer) AlgorithmAdmitted(index int, netValueBound int) {
	if t == nil {
		return
	}
	t.logger.Debug("combine_trading_algorithms admitted",
		"algorithm_index", index, "net_value_bound", netValueBound)
}

// BudgetRound logs one iteration of the ensemble combinator's budget loop.
func (t *Tracer) BudgetRound(algorithmIndex, budget int) {
	if t == nil {
		return
	}
	t.logger.Debug("combine_trading_algorithms budget round",
		"algorithm_index", algorithmIndex, "budget", budget)
}
