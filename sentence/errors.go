// Copyright (c) 2024 Neomantra Corp

package sentence

import "errors"

// ErrMissingBaseFact is returned by Evaluate when an Atom's label is absent
// from the supplied BaseFacts.
var ErrMissingBaseFact = errors.New("missing base fact")
