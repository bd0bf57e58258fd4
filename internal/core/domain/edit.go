package domain

import "slices"

// The helpers below compute the next value of a CampaignData field. They
// never modify their input, so a snapshot stays untouched.

// ToggleGenre removes g when present and appends it while fewer than
// MaxGenres are selected. A fourth genre is ignored.
func ToggleGenre(genres []string, g string) []string {
	if i := slices.Index(genres, g); i >= 0 {
		return slices.Delete(slices.Clone(genres), i, i+1)
	}
	if len(genres) >= MaxGenres {
		return genres
	}
	return append(slices.Clip(genres), g)
}

// ToggleCountry adds or removes a single country.
func ToggleCountry(countries []string, code string) []string {
	if i := slices.Index(countries, code); i >= 0 {
		return slices.Delete(slices.Clone(countries), i, i+1)
	}
	return append(slices.Clip(countries), code)
}

// ToggleRegion deselects the whole region when every country in it is
// already selected, otherwise selects the missing ones.
func ToggleRegion(countries []string, region Region) []string {
	codes := region.Codes()
	if containsAll(countries, codes) {
		return slices.DeleteFunc(slices.Clone(countries), func(c string) bool {
			return slices.Contains(codes, c)
		})
	}
	out := slices.Clone(countries)
	for _, c := range codes {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

// ToggleAllCountries clears the selection when the full catalog is
// selected and selects the full catalog otherwise.
func ToggleAllCountries(countries []string) []string {
	all := AllCountryCodes()
	if containsAll(countries, all) {
		return []string{}
	}
	return all
}

// ToggleSimilarArtist removes the entry with a's id, or appends a.
func ToggleSimilarArtist(artists []SimilarArtist, a SimilarArtist) []SimilarArtist {
	byID := func(x SimilarArtist) bool { return x.ID == a.ID }
	if slices.ContainsFunc(artists, byID) {
		return slices.DeleteFunc(slices.Clone(artists), byID)
	}
	return append(slices.Clip(artists), a)
}

func containsAll(set, sub []string) bool {
	for _, s := range sub {
		if !slices.Contains(set, s) {
			return false
		}
	}
	return true
}
