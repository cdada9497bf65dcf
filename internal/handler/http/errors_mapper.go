package http

import (
	"errors"
	"net/http"

	"github.com/e2ee-notes/notevault/internal/app"
	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/service"
	"github.com/e2ee-notes/notevault/internal/store"
	"github.com/e2ee-notes/notevault/internal/utils"
	"github.com/e2ee-notes/notevault/internal/validators"
	"github.com/e2ee-notes/notevault/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUnauthorizedAccess:      http.StatusForbidden,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusUnauthorized,
	store.ErrKeysAlreadySet:        http.StatusConflict,
	store.ErrKeysNotSet:            http.StatusNotFound,
	store.ErrNoteNotFound:          http.StatusNotFound,
	store.ErrCategoryNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorMessageMap pairs each business error with the response body the
// client-side mapper matches on. Bodies come from the shared app.Msg*
// constants so both sides of the wire stay in sync.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:     app.MsgInvalidDataProvided,
	service.ErrWrongPassword:           app.MsgInvalidUsernamePassword,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrUnauthorizedAccess:      app.MsgAccessDenied,
	service.ErrVersionIsNotSpecified:   app.MsgVersionIsNotSpecified,

	store.ErrUsernameAlreadyExists: app.MsgUsernameAlreadyExists,
	store.ErrNoUserWasFound:        app.MsgInvalidUsernamePassword,
	store.ErrKeysAlreadySet:        app.MsgEncryptionKeysAlreadySet,
	store.ErrKeysNotSet:            app.MsgEncryptionKeysNotSet,
	store.ErrNoteNotFound:          app.MsgNoteNotFound,
	store.ErrCategoryNotFound:      app.MsgCategoryNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// handleServiceError writes the transport representation of a service-layer
// failure. Field-level validation failures become a structured JSON envelope;
// everything else is a plain-text body carrying the shared message constant.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		log.Err(err).Msg("payload validation failed")
		utils.WriteJSON(w, models.APIResponse{
			Success: false,
			Msg:     app.MsgValidationFailed,
			Errors:  verr.Fields,
		}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
	} else {
		log.Err(err).Send()
	}
	http.Error(w, messageFromError(err), status)
}
