// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Log messages emitted by [App.Run]. Keeping them in one place ensures
// consistent wording in log entries.
const (
	// MsgEnvironmentLoaded is logged once the environment snapshot is built.
	MsgEnvironmentLoaded = "environment loaded"

	// MsgConfigAssembled is logged with the redacted settings after assembly.
	MsgConfigAssembled = "tool config assembled"

	// MsgSignerResolved is logged for every signing key that maps to an address.
	MsgSignerResolved = "signer resolved"

	// MsgValidationWarning is logged when validation fails in permissive mode.
	MsgValidationWarning = "tool config has problems, passing it through unchanged"

	// MsgValidationFailed is logged when validation fails in strict mode.
	MsgValidationFailed = "tool config rejected in strict mode"

	// MsgConfigExported is logged after the settings were written.
	MsgConfigExported = "tool config exported"
)
