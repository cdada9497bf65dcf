package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/e2ee-notes/notevault/internal/app"
	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/utils"
	"github.com/e2ee-notes/notevault/models"
)

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	category.UserID = userID

	created, err := h.services.CategoryService.CreateCategory(ctx, category)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	log.Debug().Str("category_id", created.ID).Msg("category created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	category, err := h.services.CategoryService.GetCategory(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	categories, err := h.services.CategoryService.ListCategories(ctx, userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var update models.CategoryUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	update.ID = chi.URLParam(r, "id")
	update.UserID = userID

	updated, err := h.services.CategoryService.UpdateCategory(ctx, update)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	log.Debug().Str("category_id", updated.ID).Msg("category updated")
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	categoryID := chi.URLParam(r, "id")
	if err := h.services.CategoryService.DeleteCategory(ctx, userID, categoryID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	log.Debug().Str("category_id", categoryID).Msg("category deleted")
	w.WriteHeader(http.StatusNoContent)
}
