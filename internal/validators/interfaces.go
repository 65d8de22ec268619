// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request payloads.
//
// Core concepts:
//   - RuleSet: ordered list of field rules ("required", "isEmail",
//     "isStrongPassword") declared by the caller.
//   - Validator: evaluates a RuleSet against a decoded JSON object and
//     returns the cleaned data together with every violation message.
//   - Decode: converts cleaned data into a typed model.
//
// Validation never stops at the first problem: every message is collected
// so the client can fix all fields at once.
package validators

import "context"

// Validator evaluates a rule set against arbitrary input.
type Validator interface {

	// Validate checks input against rules. The returned Result holds only
	// declared fields, normalized, and the ordered list of messages.
	Validate(ctx context.Context, rules RuleSet, input map[string]any) Result
}
