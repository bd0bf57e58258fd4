package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"soundcamps/internal/core/domain"
)

const maxBodyBytes = 1 << 20

var budgetRangeMessage = fmt.Sprintf("budget must be between %d and %d", domain.MinBudget, domain.MaxBudget)

type selectTrackRequest struct {
	Track           domain.SearchResult `json:"track"`
	PrimaryArtistID string              `json:"primaryArtistId"`
}

type toggleGenreRequest struct {
	Genre string `json:"genre" validate:"required"`
}

type toggleCountryRequest struct {
	Code string `json:"code" validate:"required,len=2,alpha"`
}

type toggleRegionRequest struct {
	Region string `json:"region" validate:"required"`
}

type paymentMethodRequest struct {
	PaymentMethodID string `json:"paymentMethodId" validate:"required"`
	Email           string `json:"email" validate:"omitempty,email"`
	Name            string `json:"name" validate:"omitempty,max=200"`
}

type reviewedRequest struct {
	Reviewed *bool `json:"reviewed" validate:"required"`
}

type stepRequest struct {
	Step string `json:"step" validate:"required"`
}

type planRequest struct {
	PlanID string `json:"planId" validate:"required"`
	Annual bool   `json:"annual"`
}

type searchQuery struct {
	Query string `validate:"required"`
	Kind  string `validate:"omitempty,oneof=track artist"`
}

// decode reads a JSON body into dst and runs its validate tags.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return errors.New("invalid JSON")
	}
	return h.check(dst)
}

func (h *Handler) check(v any) error {
	err := h.validate.Struct(v)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag()))
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return err
}

// checkPatch enforces the field domains the store itself does not.
func checkPatch(p domain.CampaignPatch) error {
	if p.Budget.Set && !domain.ValidBudget(p.Budget.Value) {
		return errors.New(budgetRangeMessage)
	}
	if p.Track.Set && p.Track.Value != nil && p.Track.Value.ID == "" {
		return errors.New("track id is required")
	}
	if p.StrategyType.Set && p.StrategyType.Value != "" && !p.StrategyType.Value.Valid() {
		return fmt.Errorf("unknown strategy type %q", p.StrategyType.Value)
	}
	if p.AdStyle.Set && p.AdStyle.Value != "" && !p.AdStyle.Value.Valid() {
		return fmt.Errorf("unknown ad style %q", p.AdStyle.Value)
	}
	if p.Genres.Set && len(p.Genres.Value) > domain.MaxGenres {
		return fmt.Errorf("at most %d genres", domain.MaxGenres)
	}
	return nil
}
