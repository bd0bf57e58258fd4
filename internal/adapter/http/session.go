package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"soundcamps/internal/core/domain"
	"soundcamps/internal/core/wizard"
)

func sessionID(r *http.Request) string {
	return chi.URLParam(r, "sessionID")
}

// respondView writes the session view or translates err.
func (h *Handler) respondView(w http.ResponseWriter, r *http.Request, v wizard.View, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, v)
}

func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.StartSession(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/sessions/"+v.ID)
	h.writeJSON(w, http.StatusCreated, v)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetSession(r.Context(), sessionID(r))
	h.respondView(w, r, v, err)
}

func (h *Handler) handleEndSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.EndSession(r.Context(), sessionID(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleUpdateCampaign merges a partial campaign. Absent keys are left
// alone; null clears a field.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var p domain.CampaignPatch
	if err := h.decode(w, r, &p); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	if err := checkPatch(p); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	v, err := h.svc.UpdateCampaign(r.Context(), sessionID(r), p)
	h.respondView(w, r, v, err)
}

func (h *Handler) handleSelectTrack(w http.ResponseWriter, r *http.Request) {
	var req selectTrackRequest
	if err := h.decode(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	if req.Track.ID == "" {
		h.badRequest(w, "track.id is required")
		return
	}
	v, err := h.svc.SelectTrack(r.Context(), sessionID(r), req.Track, req.PrimaryArtistID)
	h.respondView(w, r, v, err)
}

func (h *Handler) handleClearTrack(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.ClearTrack(r.Context(), sessionID(r))
	h.respondView(w, r, v, err)
}

// handleToggleArtist accepts either a bare artist id string or an
// {id, name, imageUrl} object.
func (h *Handler) handleToggleArtist(w http.ResponseWriter, r *http.Request) {
	var a domain.SimilarArtist
	if err := h.decode(w, r, &a); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	if a.ID == "" {
		h.badRequest(w, "artist id is required")
		return
	}
	v, err := h.svc.ToggleSimilarArtist(r.Context(), sessionID(r), a)
	h.respondView(w, r, v, err)
}

func (h *Handler) handleToggleGenre(w http.ResponseWriter, r *http.Request) {
	var req toggleGenreRequest
	if err := h.decode(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	v, err := h.svc.ToggleGenre(r.Context(), sessionID(r), req.Genre)
	h.respondView(w, r, v, err)
}

func (h *Handler) handleToggleCountry(w http.ResponseWriter, r *http.Request) {
	var req toggleCountryRequest
	if err := h.decode(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	v, err := h.svc.ToggleCountry(r.Context(), sessionID(r), req.Code)
	h.respondView(w, r, v, err)
}

func (h *Handler) handleToggleAllCountries(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.ToggleAllCountries(r.Context(), sessionID(r))
	h.respondView(w, r, v, err)
}

func (h *Handler) handleToggleRegion(w http.ResponseWriter, r *http.Request) {
	var req toggleRegionRequest
	if err := h.decode(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	v, err := h.svc.ToggleRegion(r.Context(), sessionID(r), req.Region)
	h.respondView(w, r, v, err)
}

func (h *Handler) handleRegisterPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req paymentMethodRequest
	if err := h.decode(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	v, err := h.svc.RegisterPaymentMethod(r.Context(), sessionID(r), domain.PaymentMethodRequest{
		PaymentMethodID: req.PaymentMethodID,
		Email:           req.Email,
		Name:            req.Name,
	})
	h.respondView(w, r, v, err)
}

func (h *Handler) handleClearPaymentMethod(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.ClearPaymentMethod(r.Context(), sessionID(r))
	h.respondView(w, r, v, err)
}

func (h *Handler) handleSetReviewed(w http.ResponseWriter, r *http.Request) {
	var req reviewedRequest
	if err := h.decode(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	v, err := h.svc.SetReviewed(r.Context(), sessionID(r), *req.Reviewed)
	h.respondView(w, r, v, err)
}

func (h *Handler) handleNext(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Next(r.Context(), sessionID(r))
	h.respondView(w, r, v, err)
}

func (h *Handler) handlePrevious(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Previous(r.Context(), sessionID(r))
	h.respondView(w, r, v, err)
}

func (h *Handler) handleSetStep(w http.ResponseWriter, r *http.Request) {
	var req stepRequest
	if err := h.decode(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	step, err := domain.ParseStep(req.Step)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	v, err := h.svc.SetStep(r.Context(), sessionID(r), step)
	h.respondView(w, r, v, err)
}

func (h *Handler) handleShowPlans(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.ShowPlans(r.Context(), sessionID(r))
	h.respondView(w, r, v, err)
}

func (h *Handler) handleSelectPlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := h.decode(w, r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	v, err := h.svc.SelectPlan(r.Context(), sessionID(r), req.PlanID, req.Annual)
	h.respondView(w, r, v, err)
}
