package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSolidityVersion = errors.New("invalid solidity version")
	ErrNoNetworks             = errors.New("no networks configured")
	ErrEmptyRPCURL            = errors.New("RPC URL is not set")
	ErrInvalidRPCURL          = errors.New("invalid RPC URL")
	ErrNoAccounts             = errors.New("no signing accounts configured")
	ErrEmptySigningKey        = errors.New("signing key is not set")
	ErrInvalidSigningKey      = errors.New("invalid signing key")
	ErrEmptyExplorerAPIKey    = errors.New("explorer API key is not set")
)
