package app

import "errors"

var (
	ErrNilConfig        = errors.New("config is nil")
	ErrNilStdout        = errors.New("stdout is nil")
	ErrNilValidator     = errors.New("validator is nil")
	ErrNilLogger        = errors.New("logger is nil")
	ErrStrictValidation = errors.New("validation failed")
)
