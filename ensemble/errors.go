// Copyright (c) 2024 Neomantra Corp

package ensemble

import "errors"

// ErrLengthMismatch signals that observationHistory, credenceHistory, or
// one of the rows of tradingHistories did not have the expected length.
var ErrLengthMismatch = errors.New("ensemble: mismatched history lengths")
