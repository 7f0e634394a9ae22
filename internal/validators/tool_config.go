// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/MKhiriev/go-toolconfig/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldSolidityVersion targets the compiler version identifier.
	FieldSolidityVersion = "solidity_version"

	// FieldRPCURL targets the RPC endpoint of every network.
	FieldRPCURL = "rpc_url"

	// FieldAccounts targets the signing keys of every network.
	FieldAccounts = "accounts"

	// FieldExplorerAPIKey targets the explorer API key.
	FieldExplorerAPIKey = "explorer_api_key"
)

// signingKeyHexLen is the length of a secp256k1 private key in hex.
const signingKeyHexLen = 64

var (
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

	allowedRPCSchemes = []string{"http", "https", "ws", "wss"}
)

// ToolConfigValidator checks a [models.ToolConfig]. Unlike most validators it
// does not stop at the first problem: every failing field is reported,
// combined with errors.Join.
type ToolConfigValidator struct {
}

// NewToolConfigValidator returns a Validator for [models.ToolConfig] values.
func NewToolConfigValidator() Validator {
	return &ToolConfigValidator{}
}

func (v *ToolConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ToolConfig:
		return v.validateToolConfig(ctx, value, fields...)
	case *models.ToolConfig:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateToolConfig(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ToolConfigValidator) validateToolConfig(_ context.Context, cfg models.ToolConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSolidityVersion, FieldRPCURL, FieldAccounts, FieldExplorerAPIKey}
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldSolidityVersion:
			if !semverPattern.MatchString(cfg.SolidityVersion) {
				errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidSolidityVersion, cfg.SolidityVersion))
			}
		case FieldRPCURL:
			if len(cfg.Networks) == 0 {
				errs = append(errs, ErrNoNetworks)
				continue
			}
			for _, name := range sortedNetworks(cfg) {
				if err := validateRPCURL(cfg.Networks[name].URL); err != nil {
					errs = append(errs, fmt.Errorf("network %s: %w", name, err))
				}
			}
		case FieldAccounts:
			if len(cfg.Networks) == 0 {
				errs = append(errs, ErrNoNetworks)
				continue
			}
			for _, name := range sortedNetworks(cfg) {
				accounts := cfg.Networks[name].Accounts
				if len(accounts) == 0 {
					errs = append(errs, fmt.Errorf("network %s: %w", name, ErrNoAccounts))
				}
				for i, acc := range accounts {
					if _, err := SignerAddress(acc); err != nil {
						errs = append(errs, fmt.Errorf("network %s, account %d: %w", name, i, err))
					}
				}
			}
		case FieldExplorerAPIKey:
			if strings.TrimSpace(cfg.EtherscanAPIKey) == "" {
				errs = append(errs, ErrEmptyExplorerAPIKey)
			}
		default:
			return ErrUnknownField
		}
	}

	return errors.Join(errs...)
}

func validateRPCURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyRPCURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRPCURL, err)
	}
	if !slices.Contains(allowedRPCSchemes, strings.ToLower(u.Scheme)) || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidRPCURL, raw)
	}

	return nil
}

// SignerAddress derives the account address of a 0x-prefixed hex signing key.
func SignerAddress(account string) (common.Address, error) {
	key := strings.TrimPrefix(account, models.AccountPrefix)
	if key == "" {
		return common.Address{}, ErrEmptySigningKey
	}
	if len(key) != signingKeyHexLen {
		return common.Address{}, fmt.Errorf("%w: expected %d hex characters, got %d", ErrInvalidSigningKey, signingKeyHexLen, len(key))
	}

	privateKey, err := crypto.HexToECDSA(key)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %w", ErrInvalidSigningKey, err)
	}

	return crypto.PubkeyToAddress(privateKey.PublicKey), nil
}

// SignerAddresses returns the derived address of every valid signing key,
// keyed by network name. Invalid keys are skipped.
func SignerAddresses(cfg models.ToolConfig) map[string][]common.Address {
	out := make(map[string][]common.Address, len(cfg.Networks))
	for name, n := range cfg.Networks {
		for _, acc := range n.Accounts {
			addr, err := SignerAddress(acc)
			if err != nil {
				continue
			}
			out[name] = append(out[name], addr)
		}
	}
	return out
}

func sortedNetworks(cfg models.ToolConfig) []string {
	names := make([]string, 0, len(cfg.Networks))
	for name := range cfg.Networks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
