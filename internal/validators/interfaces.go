// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides opt-in checks for assembled tool settings.
//
// Assembly itself never validates: missing or malformed values are passed
// through to the consuming tool. A Validator lets the CLI report such values
// up front, either as warnings or, in strict mode, as a failure.
//
// Validation can be scoped to a subset of fields by passing field names
// (see the Field* constants).
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
