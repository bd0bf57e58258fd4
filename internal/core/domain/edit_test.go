package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleGenre(t *testing.T) {
	g := ToggleGenre([]string{}, "pop")
	g = ToggleGenre(g, "rock")
	g = ToggleGenre(g, "jazz")
	require.Equal(t, []string{"pop", "rock", "jazz"}, g)

	assert.Equal(t, []string{"pop", "rock", "jazz"}, ToggleGenre(g, "edm"), "fourth genre is ignored")
	assert.Equal(t, []string{"pop", "jazz"}, ToggleGenre(g, "rock"))
	assert.Equal(t, []string{"pop", "rock", "jazz"}, g, "input untouched")
}

func TestToggleCountryTwiceRestores(t *testing.T) {
	orig := []string{"US", "GB"}
	for _, c := range []string{"US", "DE"} {
		once := ToggleCountry(orig, c)
		assert.NotEqual(t, orig, once)
		assert.ElementsMatch(t, orig, ToggleCountry(once, c))
	}
	assert.Equal(t, []string{"US", "GB"}, orig)
}

func TestToggleRegion(t *testing.T) {
	oceania, ok := FindRegion("Oceania")
	require.True(t, ok)
	codes := oceania.Codes()
	require.NotEmpty(t, codes)

	partial := []string{"US", codes[0]}
	full := ToggleRegion(partial, oceania)
	assert.Subset(t, full, codes)
	assert.Contains(t, full, "US")
	assert.Len(t, full, len(codes)+1)

	assert.Equal(t, []string{"US"}, ToggleRegion(full, oceania))

	_, ok = FindRegion("Atlantis")
	assert.False(t, ok)
}

func TestToggleAllCountries(t *testing.T) {
	all := ToggleAllCountries([]string{"US"})
	assert.Equal(t, AllCountryCodes(), all)
	assert.Empty(t, ToggleAllCountries(all))
}

func TestToggleSimilarArtist(t *testing.T) {
	list := ToggleSimilarArtist(nil, BareArtist("a1"))
	list = ToggleSimilarArtist(list, EnrichedArtist("a2", "Mara Vel", ""))
	require.Len(t, list, 2)

	// removal matches by id whatever the variant
	list = ToggleSimilarArtist(list, EnrichedArtist("a1", "Someone", "img"))
	require.Len(t, list, 1)
	assert.Equal(t, "a2", list[0].ID)
}

func TestNormalizeCountry(t *testing.T) {
	code, ok := NormalizeCountry(" US ")
	assert.True(t, ok)
	assert.Equal(t, "us", code)

	_, ok = NormalizeCountry("zz")
	assert.False(t, ok)
	_, ok = NormalizeCountry("")
	assert.False(t, ok)
}
