// Copyright (c) 2024 Neomantra Corp
//
// logind-go implements logical induction: an online algorithm that
// ingests a growing sequence of observed sentences and an open-ended
// pool of trading algorithms, and on each step produces a belief state
// (a credence for every sentence the step's combined trading policy
// trades on or prices) that no admitted trader can exploit by more than
// a shrinking tolerance.
//
// The core algebra lives in sentence (propositional sentences),
// history (credence snapshots over time), formula (trading-formula
// expressions), market (the market maker: Evaluate and FindCredences),
// worlds (truth-assignment enumeration), budget (per-algorithm loss
// budgeting), ensemble (the double-geometric trader combinator), and
// inductor (the Inductor type gluing C1-C8 into one Update step).
//
// lang and everything under internal/ and cmd/ is front-door plumbing around
// that core: a textual notation (lang), a belief-state snapshot format
// (internal/snapshot), an optional step tracer (internal/trace), a
// live dashboard (internal/tui), and CLI/MCP entry points. None of it
// changes what logical induction computes.
//

package logind
