package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrMissingResource  = errors.New("missing resource")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
