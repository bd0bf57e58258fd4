package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"soundcamps/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: every route translates a request into one port.WizardUseCase call
// and its result or error into JSON.
type Handler struct {
	svc      port.WizardUseCase
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.WizardUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger, validate: validator.New(validator.WithRequiredStructEnabled())}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/estimates", h.handleEstimates)
		r.Get("/catalog/countries", h.handleCountries)
		r.Get("/catalog/genres", h.handleGenres)
		r.Get("/catalog/plans", h.handlePlans)
		r.Get("/search", h.handleSearch)
		r.Get("/artists/{artistID}/image", h.handleArtistImage)
		r.Get("/campaigns/{campaignID}", h.handleGetLaunch)

		r.Post("/sessions", h.handleStartSession)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", h.handleGetSession)
			r.Delete("/", h.handleEndSession)
			r.Patch("/campaign", h.handleUpdateCampaign)

			r.Put("/track", h.handleSelectTrack)
			r.Delete("/track", h.handleClearTrack)
			r.Post("/artists/toggle", h.handleToggleArtist)
			r.Post("/genres/toggle", h.handleToggleGenre)
			r.Post("/countries/toggle", h.handleToggleCountry)
			r.Post("/countries/toggle-all", h.handleToggleAllCountries)
			r.Post("/regions/toggle", h.handleToggleRegion)

			r.Put("/payment-method", h.handleRegisterPaymentMethod)
			r.Delete("/payment-method", h.handleClearPaymentMethod)
			r.Put("/reviewed", h.handleSetReviewed)

			r.Post("/next", h.handleNext)
			r.Post("/previous", h.handlePrevious)
			r.Put("/step", h.handleSetStep)
			r.Post("/plans", h.handleShowPlans)
			r.Put("/plan", h.handleSelectPlan)

			r.Post("/submit", h.handleSubmit)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
