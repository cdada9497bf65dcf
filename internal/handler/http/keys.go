package http

import (
	"encoding/json"
	"net/http"

	"github.com/e2ee-notes/notevault/internal/app"
	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/utils"
	"github.com/e2ee-notes/notevault/models"
)

// setupKeys stores the user's encryption identity: the public key in the
// clear and the password-wrapped private key blob. The server never sees
// the plaintext private key; it only ever holds the wrapped form.
func (h *Handler) setupKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var keys models.KeySetup
	if err := json.NewDecoder(r.Body).Decode(&keys); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.KeyService.SetupKeys(ctx, userID, keys); err != nil {
		handleServiceError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", userID).Msg("encryption keys set")
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) getKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	keys, err := h.services.KeyService.GetKeys(ctx, userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, keys, http.StatusOK)
}

// updateKeys replaces the stored wrapped private key, e.g. after an
// encryption password change. The public key is carried along unchanged.
func (h *Handler) updateKeys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var keys models.KeySetup
	if err := json.NewDecoder(r.Body).Decode(&keys); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.KeyService.UpdateKeys(ctx, userID, keys); err != nil {
		handleServiceError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", userID).Msg("encryption keys updated")
	w.WriteHeader(http.StatusOK)
}
