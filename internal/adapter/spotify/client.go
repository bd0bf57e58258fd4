// Package spotify is the catalog adapter: track and artist search and
// artist pictures from the Spotify Web API, authorized with the client
// credentials grant.
package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"soundcamps/internal/config/configs"
	"soundcamps/internal/core/domain"
)

const searchLimit = 10

// APIError is a non-2xx answer from the Web API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("spotify api: status %d: %s", e.StatusCode, e.Body)
}

// Client implements port.CatalogSearcher. Outbound calls share one rate
// limiter.
type Client struct {
	http    *http.Client
	apiURL  string
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient builds a client from cfg. The access token is fetched lazily
// and refreshed by the oauth2 transport.
func NewClient(cfg configs.Spotify, logger *slog.Logger) *Client {
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	base := &http.Client{Timeout: cfg.Timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	hc := cc.Client(ctx)
	hc.Timeout = cfg.Timeout

	return &Client{
		http:    hc,
		apiURL:  strings.TrimRight(cfg.APIURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		logger:  logger,
	}
}

func (c *Client) Search(ctx context.Context, query string, kind domain.SearchKind) ([]domain.SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("type", string(kind))
	q.Set("limit", fmt.Sprint(searchLimit))

	var resp searchResponse
	if err := c.get(ctx, "/search?"+q.Encode(), &resp); err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, searchLimit)
	switch kind {
	case domain.SearchArtist:
		for _, a := range resp.Artists.Items {
			results = append(results, domain.SearchResult{
				ID:          a.ID,
				Name:        a.Name,
				ImageURL:    bestImage(a.Images),
				ExternalURL: a.ExternalURLs.Spotify,
			})
		}
	default:
		for _, t := range resp.Tracks.Items {
			results = append(results, t.result())
		}
	}
	c.logger.Debug("spotify search",
		slog.String("kind", string(kind)),
		slog.String("query", query),
		slog.Int("results", len(results)))
	return results, nil
}

// ArtistImage returns "" for unknown artists and artists without pictures.
func (c *Client) ArtistImage(ctx context.Context, artistID string) (string, error) {
	var a artist
	err := c.get(ctx, "/artists/"+url.PathEscape(artistID), &a)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return bestImage(a.Images), nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+path, nil)
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return &APIError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return json.NewDecoder(res.Body).Decode(out)
}
