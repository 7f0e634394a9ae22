// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. Defaults must already be applied.
//
// Returns nil if the configuration is valid, or an error wrapping
// [ErrInvalidAppConfigs] otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.Output) == "" {
		return fmt.Errorf("%w: empty output", ErrInvalidAppConfigs)
	}

	lvl, err := zerolog.ParseLevel(cfg.App.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
	}

	return nil
}
