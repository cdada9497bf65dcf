package http

import (
	"net/http"

	"github.com/e2ee-notes/notevault/internal/app"
	"github.com/e2ee-notes/notevault/internal/utils"
)

// getAppVersion reports the running server build version.
func (h *Handler) getAppVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())
	if version == "" {
		http.Error(w, app.MsgVersionIsNotSpecified, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, map[string]string{"version": version}, http.StatusOK)
}
