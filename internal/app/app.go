// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the toolconfig pipeline: environment snapshot, assembly,
// optional validation and export.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-toolconfig/internal/assembler"
	"github.com/MKhiriev/go-toolconfig/internal/config"
	"github.com/MKhiriev/go-toolconfig/internal/environment"
	"github.com/MKhiriev/go-toolconfig/internal/export"
	"github.com/MKhiriev/go-toolconfig/internal/logger"
	"github.com/MKhiriev/go-toolconfig/internal/validators"
	"github.com/MKhiriev/go-toolconfig/models"
)

// App runs one assembly of the tool settings.
type App struct {
	cfg       *config.StructuredConfig
	environ   []string
	stdout    io.Writer
	validator validators.Validator
	log       *logger.Logger
}

// NewApp constructs an App. environ is the process environment in
// os.Environ form; stdout receives the settings when the output is "-";
// validator checks the assembled settings.
func NewApp(cfg *config.StructuredConfig, environ []string, stdout io.Writer, validator validators.Validator, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if stdout == nil {
		return nil, ErrNilStdout
	}
	if validator == nil {
		return nil, ErrNilValidator
	}
	if log == nil {
		return nil, ErrNilLogger
	}

	return &App{
		cfg:       cfg,
		environ:   environ,
		stdout:    stdout,
		validator: validator,
		log:       log,
	}, nil
}

// Run loads the environment, assembles the settings, validates them and
// writes them out. Validation problems are only logged unless the strict
// setting is on, in which case they are returned wrapped in
// [ErrStrictValidation] and nothing is written.
func (a *App) Run(ctx context.Context) (models.ToolConfig, error) {
	snapshot, err := environment.Load(a.cfg.App.EnvFile, a.environ)
	if err != nil {
		return models.ToolConfig{}, fmt.Errorf("load environment: %w", err)
	}
	a.log.Debug().
		Str("env_file", a.cfg.App.EnvFile).
		Int("variables", len(snapshot)).
		Msg(MsgEnvironmentLoaded)

	toolCfg, err := assembler.FromSnapshot(snapshot)
	if err != nil {
		return models.ToolConfig{}, fmt.Errorf("assemble tool config: %w", err)
	}
	a.log.Info().Interface("config", toolCfg.Redacted()).Msg(MsgConfigAssembled)

	for network, addrs := range validators.SignerAddresses(toolCfg) {
		for _, addr := range addrs {
			a.log.Info().Str("network", network).Str("address", addr.Hex()).Msg(MsgSignerResolved)
		}
	}

	if err = a.validator.Validate(ctx, toolCfg); err != nil {
		if a.cfg.App.Strict {
			a.log.Error().Err(err).Msg(MsgValidationFailed)
			return models.ToolConfig{}, fmt.Errorf("%w: %w", ErrStrictValidation, err)
		}
		a.log.Warn().Err(err).Msg(MsgValidationWarning)
	}

	if err = export.WriteFile(a.cfg.App.Output, a.stdout, toolCfg); err != nil {
		return models.ToolConfig{}, fmt.Errorf("export tool config: %w", err)
	}
	a.log.Info().Str("output", a.cfg.App.Output).Msg(MsgConfigExported)

	return toolCfg, nil
}
