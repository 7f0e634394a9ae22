package environment

import "errors"

var (
	// ErrReadEnvFile indicates that the dotenv file exists but could not be read or parsed.
	ErrReadEnvFile = errors.New("error reading env file")
	// ErrParseEnv indicates malformed dotenv text.
	ErrParseEnv = errors.New("error parsing env text")
)
