// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks chat inputs before they reach the mutator or
// the message store.
//
// Validators are injected into services so that handlers only decode
// requests and services decide what is acceptable.
package validators

import "context"

// Validator checks a request value. Optional field names restrict the check
// to those fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
