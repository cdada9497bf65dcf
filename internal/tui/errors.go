// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"
	"strings"

	"github.com/e2ee-notes/notevault/internal/crypto"
)

// humanizeError rewrites low-level failures into something a user can
// act on. Everything else passes through verbatim.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, crypto.ErrWrongPassword) {
		return "wrong encryption password or corrupted data"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "no network or the server is unavailable"
	}

	return err.Error()
}
