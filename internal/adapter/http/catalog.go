package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"soundcamps/internal/core/domain"
)

type searchResponse struct {
	Results []domain.SearchResult `json:"results"`
}

type artistImageResponse struct {
	ImageURL *string `json:"imageUrl"`
}

// handleEstimates returns reach and follower ranges for ?budget=, which
// defaults to the default daily budget and must lie within the budget
// domain.
func (h *Handler) handleEstimates(w http.ResponseWriter, r *http.Request) {
	budget := float64(domain.DefaultBudget)
	if s := r.URL.Query().Get("budget"); s != "" {
		b, err := strconv.ParseFloat(s, 64)
		if err != nil || !domain.ValidBudget(b) {
			h.badRequest(w, budgetRangeMessage)
			return
		}
		budget = b
	}
	h.writeJSON(w, http.StatusOK, domain.Estimate(budget))
}

func (h *Handler) handleCountries(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, domain.Regions)
}

func (h *Handler) handleGenres(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, domain.GenreCategories)
}

func (h *Handler) handlePlans(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, domain.Plans)
}

// handleSearch proxies ?q= and ?type=track|artist to the music catalog.
func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := searchQuery{Query: r.URL.Query().Get("q"), Kind: r.URL.Query().Get("type")}
	if err := h.check(q); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	res, err := h.svc.Search(r.Context(), q.Query, domain.SearchKind(q.Kind))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, searchResponse{Results: res})
}

func (h *Handler) handleArtistImage(w http.ResponseWriter, r *http.Request) {
	img, err := h.svc.ArtistImage(r.Context(), chi.URLParam(r, "artistID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var resp artistImageResponse
	if img != "" {
		resp.ImageURL = &img
	}
	h.writeJSON(w, http.StatusOK, resp)
}
