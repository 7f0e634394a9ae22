// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package assembler builds the toolchain settings record from an environment
// snapshot.
//
// Assembly is split in two steps:
//  1. [LoadVariables] binds the three consumed variables from a snapshot
//     using caarlos0/env struct tags;
//  2. [BuildConfig] turns them into a [models.ToolConfig]. It has no inputs
//     besides its argument, performs no I/O and never fails.
//
// No value is validated here. Missing variables become empty strings and
// flow into the result unchanged; see the validators package for opt-in
// checks.
package assembler

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-toolconfig/internal/environment"
	"github.com/MKhiriev/go-toolconfig/models"
)

// Names of the consumed environment variables.
const (
	EnvRPCURL     = "ALCHEMY_URL"
	EnvPrivateKey = "PRIVATE_KEY"
	EnvExplorer   = "ETHERSCAN_KEY"
)

// Variables holds the raw values of the consumed environment variables.
// None of them is required.
type Variables struct {
	// RPCURL is the RPC endpoint of the target network.
	RPCURL string `env:"ALCHEMY_URL"`

	// PrivateKey is the raw hex signing key, without the 0x prefix.
	PrivateKey string `env:"PRIVATE_KEY"`

	// EtherscanKey is the explorer API key.
	EtherscanKey string `env:"ETHERSCAN_KEY"`
}

// LoadVariables binds [Variables] from snapshot. The process environment is
// not consulted.
func LoadVariables(snapshot environment.Snapshot) (Variables, error) {
	vars, err := env.ParseAsWithOptions[Variables](env.Options{
		Environment: snapshot,
	})
	if err != nil {
		return Variables{}, fmt.Errorf("%w: %w", ErrBindVariables, err)
	}

	return vars, nil
}

// BuildConfig assembles a fresh [models.ToolConfig] from vars.
//
// The signing key is always prefixed with "0x", so an unset PRIVATE_KEY
// produces the account "0x".
func BuildConfig(vars Variables) models.ToolConfig {
	return models.ToolConfig{
		SolidityVersion: models.SolidityVersion,
		Networks: map[string]models.NetworkSettings{
			models.NetworkSepolia: {
				URL:      vars.RPCURL,
				Accounts: []string{models.AccountPrefix + vars.PrivateKey},
			},
		},
		EtherscanAPIKey: vars.EtherscanKey,
	}
}

// FromSnapshot is LoadVariables followed by BuildConfig.
func FromSnapshot(snapshot environment.Snapshot) (models.ToolConfig, error) {
	vars, err := LoadVariables(snapshot)
	if err != nil {
		return models.ToolConfig{}, err
	}

	return BuildConfig(vars), nil
}
