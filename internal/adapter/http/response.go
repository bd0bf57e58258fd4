package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"soundcamps/internal/core/domain"
	"soundcamps/internal/core/port"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Step    string `json:"step,omitempty"`
	Status  string `json:"status,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// writeError translates use case errors into {success: false, error}
// responses. Unexpected errors are logged and never echoed.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *domain.ValidationError
		cerr *domain.ChargeError
		nerr *port.NotConfiguredError
	)
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Message, Step: string(verr.Step)})
	case errors.As(err, &cerr):
		h.writeJSON(w, http.StatusPaymentRequired, errorResponse{Error: cerr.Message, Status: cerr.Status})
	case errors.As(err, &nerr):
		h.logger.Error("collaborator not configured", slog.String("service", nerr.Service))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: nerr.Error()})
	case errors.Is(err, port.ErrSessionNotFound), errors.Is(err, port.ErrLaunchNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSubmissionInProgress), errors.Is(err, domain.ErrStepNotReached):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrPaymentMethodRequired),
		errors.Is(err, domain.ErrCustomerRequired),
		errors.Is(err, domain.ErrPrimaryArtistRequired),
		errors.Is(err, domain.ErrPrimaryArtistUnknown),
		errors.Is(err, domain.ErrUnknownRegion),
		errors.Is(err, domain.ErrUnknownCountry),
		errors.Is(err, domain.ErrUnknownPlan),
		errors.Is(err, domain.ErrUnknownStep):
		h.badRequest(w, err.Error())
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
