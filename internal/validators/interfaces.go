// SPDX-License-Identifier: Apache-2.0

// Package validators enforces the ciphertext-only contract at the server
// boundary. The server cannot decrypt anything, so the only defense it has
// against plaintext leaking into storage is shape validation: every
// confidential field must look like base64-encoded ciphertext, and fields
// that decode to mostly printable ASCII are rejected as suspected plaintext.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary request models.
//     Supports optional field-level scoping for targeted validation.
//   - CiphertextGuard: the stateless per-field checks (shape + heuristic)
//     the request validators are built from.
//
// The plaintext heuristic is best-effort, not a cryptographic guarantee:
// random ciphertext occasionally decodes to printable bytes and short
// plaintexts can slip through. Callers must not treat a pass as proof of
// genuine encryption.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
