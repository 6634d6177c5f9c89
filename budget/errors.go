// Copyright (c) 2024 Neomantra Corp

package budget

import "errors"

// ErrInvariant signals a logic bug: either a non-positive budget was
// requested, or the remaining budget computed partway through the builder
// was non-positive after the bankruptcy prefix check already passed.
var ErrInvariant = errors.New("budget factor invariant violated")
