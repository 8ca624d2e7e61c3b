// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package tmdb

import (
	"github.com/cineverse-app/cineverse/internal/models"
)

// MediaType selects the movie/TV interpretation of an upstream payload.
// Movie payloads use title/release_date as primary fields with the TV
// names as fallback; TV payloads reverse the preference.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

// Item is the raw upstream shape of one movie or TV payload. List results
// carry genre_ids; single-item detail responses carry genres objects and
// the extended fields. Person credit entries additionally carry character
// or job.
type Item struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`

	GenreIDs []int      `json:"genre_ids"`
	Genres   []GenreRef `json:"genres"`

	Budget           int64  `json:"budget"`
	Revenue          int64  `json:"revenue"`
	Status           string `json:"status"`
	Runtime          int    `json:"runtime"`
	OriginalLanguage string `json:"original_language"`

	Character string `json:"character"`
	Job       string `json:"job"`
}

// GenreRef is an embedded genre object on a detail response.
type GenreRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Normalizer converts raw upstream items into ContentRecords, resolving
// relative image paths against the configured image CDN bases. It is a
// pure value type: two normalizers with the same bases produce identical
// output for identical input.
type Normalizer struct {
	// PosterBase is prepended to poster paths (a sized variant, e.g. w500).
	PosterBase string
	// BackdropBase is prepended to backdrop paths (the original size).
	BackdropBase string
}

// Normalize converts one raw item into a ContentRecord.
//
// Field resolution depends on the media type: movies prefer title and
// release_date and fall back to the TV names, TV payloads prefer name and
// first_air_date. Genres come from the embedded genre objects when present
// (detail responses), otherwise each genre id is resolved through the
// static genre table and unknown ids are dropped. Absent image paths
// produce empty URLs, never a base-URL-only string.
func (n Normalizer) Normalize(item Item, media MediaType) models.ContentRecord {
	rec := models.ContentRecord{
		ID:               item.ID,
		Overview:         item.Overview,
		VoteAverage:      item.VoteAverage,
		Budget:           item.Budget,
		Revenue:          item.Revenue,
		Status:           item.Status,
		Runtime:          item.Runtime,
		OriginalLanguage: item.OriginalLanguage,
	}

	if media == MediaTV {
		rec.Title = firstNonEmpty(item.Name, item.Title)
		rec.ReleaseDate = firstNonEmpty(item.FirstAirDate, item.ReleaseDate)
	} else {
		rec.Title = firstNonEmpty(item.Title, item.Name)
		rec.ReleaseDate = firstNonEmpty(item.ReleaseDate, item.FirstAirDate)
	}

	if item.PosterPath != "" {
		rec.PosterURL = n.PosterBase + item.PosterPath
	}
	if item.BackdropPath != "" {
		rec.BackdropURL = n.BackdropBase + item.BackdropPath
	}

	if len(item.Genres) > 0 {
		rec.Genres = make([]string, 0, len(item.Genres))
		rec.GenreIDs = make([]int, 0, len(item.Genres))
		for _, g := range item.Genres {
			rec.Genres = append(rec.Genres, g.Name)
			rec.GenreIDs = append(rec.GenreIDs, g.ID)
		}
	} else {
		rec.Genres = make([]string, 0, len(item.GenreIDs))
		rec.GenreIDs = item.GenreIDs
		for _, id := range item.GenreIDs {
			if name, ok := GenreName(id); ok {
				rec.Genres = append(rec.Genres, name)
			}
		}
	}

	return rec
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
