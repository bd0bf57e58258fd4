package spotify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundcamps/internal/config/configs"
	"soundcamps/internal/core/domain"
	"soundcamps/internal/core/port"
)

func newTestServer(t *testing.T, tokenCalls *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		user, pass, ok := r.BasicAuth()
		if !ok || user != "id" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"tok","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("GET /v1/search", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		q := r.URL.Query()
		assert.Equal(t, "10", q.Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		switch q.Get("type") {
		case "artist":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"artists": map[string]any{"items": []any{
					map[string]any{
						"id": "art_1", "name": "Nova Lane",
						"images":        []any{map[string]any{"url": "small", "width": 64}, map[string]any{"url": "large", "width": 640}},
						"external_urls": map[string]any{"spotify": "https://open.spotify.com/artist/art_1"},
					},
				}},
			})
		default:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"tracks": map[string]any{"items": []any{
					map[string]any{
						"id": "trk_1", "name": q.Get("q"), "duration_ms": 215000,
						"album": map[string]any{
							"name": "Night Roads", "release_date": "2023-09-01",
							"images": []any{map[string]any{"url": "cover", "width": 300}},
						},
						"artists": []any{
							map[string]any{"id": "art_1", "name": "Nova Lane"},
							map[string]any{"id": "art_2", "name": "Kilo June"},
						},
						"external_urls": map[string]any{"spotify": "https://open.spotify.com/track/trk_1"},
					},
				}},
			})
		}
	})
	mux.HandleFunc("GET /v1/artists/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("id") {
		case "art_1":
			_, _ = io.WriteString(w, `{"id":"art_1","name":"Nova Lane","images":[{"url":"pic","width":320}]}`)
		case "art_bare":
			_, _ = io.WriteString(w, `{"id":"art_bare","name":"Bare","images":[]}`)
		default:
			http.Error(w, `{"error":{"status":404}}`, http.StatusNotFound)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(configs.Spotify{
		ClientID:     "id",
		ClientSecret: "secret",
		TokenURL:     srv.URL + "/token",
		APIURL:       srv.URL + "/v1/",
		RateLimit:    100,
		RateBurst:    10,
		Timeout:      5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSearchTracks(t *testing.T) {
	var tokenCalls atomic.Int32
	c := newTestClient(newTestServer(t, &tokenCalls))

	res, err := c.Search(context.Background(), "Midnight Drive", domain.SearchTrack)
	require.NoError(t, err)
	require.Len(t, res, 1)

	got := res[0]
	assert.Equal(t, "trk_1", got.ID)
	assert.Equal(t, "Midnight Drive", got.Name)
	assert.Equal(t, "cover", got.ImageURL)
	assert.Equal(t, 215000, got.DurationMs)
	assert.Equal(t, "3:35", got.Duration)
	assert.Equal(t, "Night Roads", got.AlbumName)
	assert.Equal(t, "2023-09-01", got.ReleaseDate)
	assert.True(t, got.NeedsArtistChoice())

	_, err = c.Search(context.Background(), "again", domain.SearchTrack)
	require.NoError(t, err)
	assert.Equal(t, int32(1), tokenCalls.Load(), "token is cached between calls")
}

func TestSearchArtists(t *testing.T) {
	var tokenCalls atomic.Int32
	c := newTestClient(newTestServer(t, &tokenCalls))

	res, err := c.Search(context.Background(), "nova", domain.SearchArtist)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "large", res[0].ImageURL)
	assert.Empty(t, res[0].Artists)
}

func TestArtistImage(t *testing.T) {
	var tokenCalls atomic.Int32
	c := newTestClient(newTestServer(t, &tokenCalls))
	ctx := context.Background()

	img, err := c.ArtistImage(ctx, "art_1")
	require.NoError(t, err)
	assert.Equal(t, "pic", img)

	img, err = c.ArtistImage(ctx, "art_bare")
	require.NoError(t, err)
	assert.Empty(t, img)

	img, err = c.ArtistImage(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, img)
}

func TestBadCredentials(t *testing.T) {
	var tokenCalls atomic.Int32
	srv := newTestServer(t, &tokenCalls)
	c := NewClient(configs.Spotify{
		ClientID:     "id",
		ClientSecret: "wrong",
		TokenURL:     srv.URL + "/token",
		APIURL:       srv.URL + "/v1",
		RateLimit:    100,
		RateBurst:    10,
		Timeout:      5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.Search(context.Background(), "anything", domain.SearchTrack)
	require.Error(t, err)
}

func TestBestImage(t *testing.T) {
	assert.Empty(t, bestImage(nil))
	assert.Equal(t, "a", bestImage([]image{{URL: "a"}, {URL: "b"}}))
	assert.Equal(t, "b", bestImage([]image{{URL: "a", Width: 64}, {URL: "b", Width: 640}, {URL: "c", Width: 300}}))
}

func TestDisabled(t *testing.T) {
	_, err := Disabled{}.Search(context.Background(), "abc", domain.SearchTrack)
	require.ErrorIs(t, err, port.ErrNotConfigured)
	_, err = Disabled{}.ArtistImage(context.Background(), "x")
	require.ErrorIs(t, err, port.ErrNotConfigured)
}
