// Copyright (c) 2024 Neomantra Corp

package lang

import "errors"

// ErrSyntax signals malformed sentence or formula text.
var ErrSyntax = errors.New("lang: syntax error")
