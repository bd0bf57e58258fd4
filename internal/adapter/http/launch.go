package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"soundcamps/internal/core/domain"
)

type launchResponse struct {
	Success  bool                    `json:"success"`
	Campaign domain.LaunchedCampaign `json:"campaign"`
}

// handleSubmit launches the session's campaign. On success the session is
// gone and the body carries the confirmation.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	lc, err := h.svc.Submit(r.Context(), sessionID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/campaigns/"+lc.ID)
	h.writeJSON(w, http.StatusCreated, launchResponse{Success: true, Campaign: lc})
}

func (h *Handler) handleGetLaunch(w http.ResponseWriter, r *http.Request) {
	lc, err := h.svc.GetLaunch(r.Context(), chi.URLParam(r, "campaignID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, lc)
}
