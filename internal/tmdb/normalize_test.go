// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package tmdb

import (
	"testing"
)

var testNorm = Normalizer{
	PosterBase:   "https://img.example/w500",
	BackdropBase: "https://img.example/original",
}

func TestNormalizeMoviePrefersMovieFields(t *testing.T) {
	item := Item{
		ID:           42,
		Title:        "Movie Title",
		Name:         "TV Name",
		ReleaseDate:  "2020-01-15",
		FirstAirDate: "2019-06-01",
	}
	rec := testNorm.Normalize(item, MediaMovie)
	if rec.Title != "Movie Title" {
		t.Errorf("Expected movie title, got %q", rec.Title)
	}
	if rec.ReleaseDate != "2020-01-15" {
		t.Errorf("Expected release_date, got %q", rec.ReleaseDate)
	}
}

func TestNormalizeMovieFallsBackToTVFields(t *testing.T) {
	item := Item{ID: 42, Name: "TV Name", FirstAirDate: "2019-06-01"}
	rec := testNorm.Normalize(item, MediaMovie)
	if rec.Title != "TV Name" {
		t.Errorf("Expected fallback to name, got %q", rec.Title)
	}
	if rec.ReleaseDate != "2019-06-01" {
		t.Errorf("Expected fallback to first_air_date, got %q", rec.ReleaseDate)
	}
}

func TestNormalizeTVPrefersTVFields(t *testing.T) {
	item := Item{
		ID:           7,
		Title:        "Movie Title",
		Name:         "TV Name",
		ReleaseDate:  "2020-01-15",
		FirstAirDate: "2019-06-01",
	}
	rec := testNorm.Normalize(item, MediaTV)
	if rec.Title != "TV Name" {
		t.Errorf("Expected TV name, got %q", rec.Title)
	}
	if rec.ReleaseDate != "2019-06-01" {
		t.Errorf("Expected first_air_date, got %q", rec.ReleaseDate)
	}
}

func TestNormalizeImageURLs(t *testing.T) {
	item := Item{ID: 1, PosterPath: "/poster.jpg", BackdropPath: "/backdrop.jpg"}
	rec := testNorm.Normalize(item, MediaMovie)
	if rec.PosterURL != "https://img.example/w500/poster.jpg" {
		t.Errorf("Unexpected poster URL %q", rec.PosterURL)
	}
	if rec.BackdropURL != "https://img.example/original/backdrop.jpg" {
		t.Errorf("Unexpected backdrop URL %q", rec.BackdropURL)
	}
}

func TestNormalizeAbsentImagePathsYieldEmptyURLs(t *testing.T) {
	rec := testNorm.Normalize(Item{ID: 1}, MediaMovie)
	if rec.PosterURL != "" {
		t.Errorf("Expected empty poster URL, got %q", rec.PosterURL)
	}
	if rec.BackdropURL != "" {
		t.Errorf("Expected empty backdrop URL, got %q", rec.BackdropURL)
	}
}

func TestNormalizeGenreIDsResolvedThroughTable(t *testing.T) {
	item := Item{ID: 1, GenreIDs: []int{28, 35, 99999}}
	rec := testNorm.Normalize(item, MediaMovie)

	want := []string{"Action", "Comedy"}
	if len(rec.Genres) != len(want) {
		t.Fatalf("Expected %d genres (unknown id dropped), got %v", len(want), rec.Genres)
	}
	for i := range want {
		if rec.Genres[i] != want[i] {
			t.Errorf("Genre %d: expected %q, got %q", i, want[i], rec.Genres[i])
		}
	}
	if len(rec.GenreIDs) != 3 {
		t.Errorf("Expected raw genre ids preserved, got %v", rec.GenreIDs)
	}
}

func TestNormalizePrefersEmbeddedGenreObjects(t *testing.T) {
	item := Item{
		ID:       1,
		GenreIDs: []int{28},
		Genres:   []GenreRef{{ID: 18, Name: "Drama"}, {ID: 10749, Name: "Romance"}},
	}
	rec := testNorm.Normalize(item, MediaMovie)
	if len(rec.Genres) != 2 || rec.Genres[0] != "Drama" {
		t.Errorf("Expected embedded genre objects to win, got %v", rec.Genres)
	}
	if len(rec.GenreIDs) != 2 || rec.GenreIDs[0] != 18 {
		t.Errorf("Expected genre ids from embedded objects, got %v", rec.GenreIDs)
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	item := Item{ID: 9, Title: "Same", GenreIDs: []int{27}, PosterPath: "/p.jpg", VoteAverage: 7.2}
	a := testNorm.Normalize(item, MediaMovie)
	b := testNorm.Normalize(item, MediaMovie)
	if a.Title != b.Title || a.PosterURL != b.PosterURL || a.VoteAverage != b.VoteAverage {
		t.Error("Expected identical output for identical input")
	}
}

func TestGenreNameUnknown(t *testing.T) {
	if _, ok := GenreName(424242); ok {
		t.Error("Expected unknown genre id to report !ok")
	}
}

func TestRegionAndLanguageTablesAgree(t *testing.T) {
	for country := range countryToRegion {
		if _, ok := countryToLanguages[country]; !ok {
			t.Errorf("Country %q has a region but no languages", country)
		}
	}
	for country := range countryToLanguages {
		if _, ok := countryToRegion[country]; !ok {
			t.Errorf("Country %q has languages but no region", country)
		}
	}
}

func TestLanguageCodesIndia(t *testing.T) {
	langs, ok := LanguageCodes("India")
	if !ok {
		t.Fatal("Expected India to have language codes")
	}
	want := []string{"hi", "ta", "te", "ml", "kn"}
	if len(langs) != len(want) {
		t.Fatalf("Expected %d languages, got %v", len(want), langs)
	}
	for i := range want {
		if langs[i] != want[i] {
			t.Errorf("Language %d: expected %q, got %q", i, want[i], langs[i])
		}
	}
}

func TestUnknownCountryHasNoMappings(t *testing.T) {
	if _, ok := RegionCode("Atlantis"); ok {
		t.Error("Expected unknown country to have no region")
	}
	if _, ok := LanguageCodes("Atlantis"); ok {
		t.Error("Expected unknown country to have no languages")
	}
}
