// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export writes assembled tool settings as JSON for the consuming
// build/deploy tool.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-toolconfig/models"
)

// Stdout is the destination name that selects the supplied standard writer.
const Stdout = "-"

// Write encodes cfg as indented JSON followed by a newline.
func Write(w io.Writer, cfg models.ToolConfig) error {
	payload, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tool config: %w", err)
	}

	if _, err = w.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("write tool config: %w", err)
	}

	return nil
}

// WriteFile writes cfg to path, or to stdout when path is [Stdout].
//
// The file is written to a temporary sibling first and renamed into place,
// so readers never observe a partial file. It is created with mode 0600
// since it holds a signing key.
func WriteFile(path string, stdout io.Writer, cfg models.ToolConfig) error {
	if path == Stdout {
		return Write(stdout, cfg)
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp output file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp output file: %w", err)
	}
	if err = Write(tmp, cfg); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp output file: %w", err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	return nil
}
