package spotify

import (
	"context"

	"soundcamps/internal/core/domain"
	"soundcamps/internal/core/port"
)

var errDisabled = &port.NotConfiguredError{Service: "Spotify"}

// Disabled stands in for the client when no credentials are configured.
type Disabled struct{}

func (Disabled) Search(context.Context, string, domain.SearchKind) ([]domain.SearchResult, error) {
	return nil, errDisabled
}

func (Disabled) ArtistImage(context.Context, string) (string, error) {
	return "", errDisabled
}
