package assembler

import "errors"

// ErrBindVariables is returned when the snapshot cannot be bound to [Variables].
var ErrBindVariables = errors.New("error binding environment variables")
