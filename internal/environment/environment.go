// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package environment produces an immutable snapshot of the variables the
// assembler reads. A snapshot combines an optional dotenv file with the
// process environment; the process environment is never modified.
package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// Snapshot is a point-in-time copy of environment variables.
type Snapshot map[string]string

// Load reads envFile (when non-empty) and overlays environ on top of it.
//
// Variables already present in environ win over values from the file, the
// same way a dotenv loader leaves already exported variables untouched.
// A missing file yields a snapshot of environ alone; a malformed file is
// reported as [ErrReadEnvFile].
//
// References like $VAR or ${VAR} inside unquoted or double-quoted values are
// expanded from earlier lines of the file and then from the process
// environment; unknown names expand to "". Single-quoted values are taken
// literally, so a key containing '$' must be single-quoted.
func Load(envFile string, environ []string) (Snapshot, error) {
	snap := make(Snapshot)

	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("%w %q: %w", ErrReadEnvFile, envFile, err)
		default:
			for k, v := range fileVars {
				snap[k] = v
			}
		}
	}

	for k, v := range FromEnviron(environ) {
		snap[k] = v
	}

	return snap, nil
}

// Parse builds a snapshot from dotenv-formatted text.
func Parse(text string) (Snapshot, error) {
	vars, err := godotenv.Unmarshal(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseEnv, err)
	}
	return Snapshot(vars), nil
}

// FromEnviron converts "KEY=value" pairs, as returned by os.Environ, into a
// snapshot. Entries without '=' are skipped.
func FromEnviron(environ []string) Snapshot {
	snap := make(Snapshot, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		snap[k] = v
	}
	return snap
}

// Lookup returns the value of key and whether it was set.
func (s Snapshot) Lookup(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// With returns a copy of s with key set to value.
func (s Snapshot) With(key, value string) Snapshot {
	out := make(Snapshot, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	out[key] = value
	return out
}

// Without returns a copy of s with key removed.
func (s Snapshot) Without(key string) Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		if k != key {
			out[k] = v
		}
	}
	return out
}
