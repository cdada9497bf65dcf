// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"strings"

	"github.com/e2ee-notes/notevault/internal/adapter"
	"github.com/e2ee-notes/notevault/internal/app"
	"github.com/e2ee-notes/notevault/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The response body carried in the wrapped message is
// matched against the shared app.Msg* constants, so both sides of the wire
// stay in sync.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided, app.MsgValidationFailed, app.MsgNoFieldsToUpdate:
			return ErrInvalidDataProvided
		case app.MsgVersionIsNotSpecified:
			return ErrVersionIsNotSpecified
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidUsernamePassword {
			return ErrWrongPassword
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrUnauthorizedAccess

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgCategoryNotFound:
			return store.ErrCategoryNotFound
		case app.MsgEncryptionKeysNotSet:
			return store.ErrKeysNotSet
		case app.MsgNoteNotFound:
			return store.ErrNoteNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgUsernameAlreadyExists:
			return store.ErrUsernameAlreadyExists
		case app.MsgEncryptionKeysAlreadySet:
			return store.ErrKeysAlreadySet
		}
	}

	return err
}

// isServerUnreachable reports whether err describes a transport failure
// rather than a server verdict. Only unreachable-server errors allow a
// fallback to the local cache; a deliberate 4xx/5xx answer must surface.
func isServerUnreachable(err error) bool {
	if err == nil {
		return false
	}
	for _, sentinel := range []error{
		adapter.ErrBadRequest,
		adapter.ErrUnauthorized,
		adapter.ErrForbidden,
		adapter.ErrNotFound,
		adapter.ErrConflict,
		adapter.ErrBadGateway,
		adapter.ErrInternalServerError,
	} {
		if errors.Is(err, sentinel) {
			return false
		}
	}
	return !strings.Contains(err.Error(), "http ")
}

// extractBody extracts the body from a message of the form
// "bad request: <body>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
