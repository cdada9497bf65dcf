// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"encoding/base64"
	"regexp"
)

// Field length limits enforced at the server boundary. They bound abuse,
// not semantics: a ciphertext field of any shorter length is acceptable.
const (
	MaxTitleLen        = 5000
	MaxContentLen      = 100000
	MaxTagLen          = 5000
	MaxEncryptedKeyLen = 5000
	MaxKeyMaterialLen  = 10000
	MaxCategoryNameLen = 1000
	MaxCategoryDescLen = 5000
)

// Plaintext heuristic tuning. A decoded blob longer than
// plaintextMinLength whose printable-ASCII byte ratio exceeds
// plaintextRatioThreshold is rejected as suspected plaintext.
const (
	plaintextRatioThreshold = 0.9
	plaintextMinLength      = 10
)

// base64Shape matches the strict wire alphabet: base64 characters with at
// most two '=' of trailing padding and nothing after them.
var base64Shape = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)

// IsBase64Shape reports whether value is validly shaped base64: length a
// multiple of 4, characters from the base64 alphabet, '=' only as trailing
// padding of length 0–2.
func IsBase64Shape(value string) bool {
	return len(value)%4 == 0 && base64Shape.MatchString(value)
}

// LooksLikePlaintext is the heuristic leak detector. It base64-decodes
// value and reports true when the decoded bytes are predominantly
// printable ASCII (ratio > 0.9) and long enough (> 10 bytes) for the
// ratio to mean anything.
//
// This is a classifier, not a proof: genuine ciphertext occasionally
// decodes to a high printable ratio by chance, and short or padded
// plaintext can evade it. A decode failure means the heuristic cannot
// run and reports false (fail-open); the strict shape check is the
// fail-closed half of the guard.
func LooksLikePlaintext(value string) bool {
	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return false
	}
	if len(decoded) <= plaintextMinLength {
		return false
	}

	printable := 0
	for _, b := range decoded {
		if b >= 0x20 && b <= 0x7E {
			printable++
		}
	}

	return float64(printable)/float64(len(decoded)) > plaintextRatioThreshold
}

// checkCiphertextField runs the full guard on one confidential field:
// length bounds (fail-closed), base64 shape (fail-closed), then the
// plaintext heuristic. Returns the first violated rule or nil.
func checkCiphertextField(value string, maxLength int) error {
	if value == "" {
		return ErrEmptyField
	}
	if len(value) > maxLength {
		return ErrTooLong
	}
	if !IsBase64Shape(value) {
		return ErrNotBase64
	}
	if LooksLikePlaintext(value) {
		return ErrPlaintextDetected
	}
	return nil
}

// checkKeyField validates wrapped-key material: length and base64 shape
// only. Wrapped keys are expected to look random regardless, so the
// plaintext heuristic is not applied.
func checkKeyField(value string, maxLength int) error {
	if value == "" {
		return ErrEmptyField
	}
	if len(value) > maxLength {
		return ErrTooLong
	}
	if !IsBase64Shape(value) {
		return ErrNotBase64
	}
	return nil
}
