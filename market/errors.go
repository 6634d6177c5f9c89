// Copyright (c) 2024 Neomantra Corp

package market

import "errors"

// ErrSearchExhausted is returned by FindCredences when a custom, finite
// search order runs out of candidates without finding one that satisfies
// the tolerance. The default search order never exhausts.
var ErrSearchExhausted = errors.New("credence search order exhausted without finding a satisfying candidate")
