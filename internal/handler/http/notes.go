package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/e2ee-notes/notevault/internal/app"
	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/store"
	"github.com/e2ee-notes/notevault/internal/utils"
	"github.com/e2ee-notes/notevault/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	// Ownership comes from the token, never from the payload.
	note.UserID = userID

	created, err := h.services.NoteService.CreateNote(ctx, note)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	log.Debug().Str("note_id", created.ID).Msg("note created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

// listNotes returns every note of the authenticated user, optionally
// narrowed by the plaintext query parameters category_id and pinned.
// Ciphertext fields cannot be filtered server-side.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var filter store.NoteFilter
	if categoryID := r.URL.Query().Get("category_id"); categoryID != "" {
		filter.CategoryID = &categoryID
	}
	if pinnedParam := r.URL.Query().Get("pinned"); pinnedParam != "" {
		pinned, err := strconv.ParseBool(pinnedParam)
		if err != nil {
			log.Err(err).Str("pinned", pinnedParam).Msg("invalid pinned filter")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		filter.Pinned = &pinned
	}

	notes, err := h.services.NoteService.ListNotes(ctx, userID, filter)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var update models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	// Route and token win over whatever the payload claims.
	update.ID = chi.URLParam(r, "id")
	update.UserID = userID

	updated, err := h.services.NoteService.UpdateNote(ctx, update)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	log.Debug().Str("note_id", updated.ID).Msg("note updated")
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	noteID := chi.URLParam(r, "id")
	if err := h.services.NoteService.DeleteNote(ctx, userID, noteID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	log.Debug().Str("note_id", noteID).Msg("note deleted")
	w.WriteHeader(http.StatusNoContent)
}
