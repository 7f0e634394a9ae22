package config

import "errors"

var (
	// ErrInvalidAppConfigs indicates invalid command settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrUnexpectedArguments indicates positional arguments after the flags.
	ErrUnexpectedArguments = errors.New("unexpected arguments")
)
