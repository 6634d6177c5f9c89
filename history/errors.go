// Copyright (c) 2024 Neomantra Corp

package history

import "errors"

// ErrOutOfRange is returned by Lookup when the requested day falls outside
// the History's populated range [1, Len()].
var ErrOutOfRange = errors.New("day index out of range")
