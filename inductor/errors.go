// Copyright (c) 2024 Neomantra Corp

package inductor

import "errors"

// ErrExhausted signals that a TradingAlgorithm terminated before yielding
// enough policies for the current update count.
var ErrExhausted = errors.New("inductor: trading algorithm exhausted")
