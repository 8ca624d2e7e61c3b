// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package tmdb

// countryToRegion maps country names to ISO 3166-1 region codes.
var countryToRegion = map[string]string{
	"India":          "IN",
	"United States":  "US",
	"United Kingdom": "GB",
	"Canada":         "CA",
	"Australia":      "AU",
	"Germany":        "DE",
	"France":         "FR",
	"Japan":          "JP",
	"Brazil":         "BR",
	"Mexico":         "MX",
	"Spain":          "ES",
	"Italy":          "IT",
	"South Korea":    "KR",
	"China":          "CN",
}

// countryToLanguages maps country names to their primary original-language
// codes, in priority order. Language is a better predictor of locally
// relevant content than geography for a global multi-language catalog, so
// browse calls prefer these over the region code.
var countryToLanguages = map[string][]string{
	"India":          {"hi", "ta", "te", "ml", "kn"}, // Hindi, Tamil, Telugu, Malayalam, Kannada
	"United States":  {"en"},
	"United Kingdom": {"en"},
	"Canada":         {"en", "fr"},
	"Australia":      {"en"},
	"Germany":        {"de"},
	"France":         {"fr"},
	"Japan":          {"ja"},
	"Brazil":         {"pt"},
	"Mexico":         {"es"},
	"Spain":          {"es"},
	"Italy":          {"it"},
	"South Korea":    {"ko"},
	"China":          {"zh"},
}

// RegionCode converts a country name to its ISO region code.
// The second return value is false when the country has no regional
// mapping; callers fall back to global content in that case.
func RegionCode(countryName string) (string, bool) {
	code, ok := countryToRegion[countryName]
	return code, ok
}

// LanguageCodes returns the primary language codes for a country, in
// priority order. The second return value is false when the country has
// no language mapping.
func LanguageCodes(countryName string) ([]string, bool) {
	langs, ok := countryToLanguages[countryName]
	return langs, ok
}
