// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

// Package models defines the canonical data structures exchanged between
// the TMDB client, the recommender, and the API layer.
package models

// ContentRecord is the normalized representation of one movie or TV item.
//
// Records come in two flavors depending on where they were produced:
//   - "thin" records from list endpoints carry only the core fields
//   - "rich" records from a single-item detail fetch additionally carry the
//     extended fields (budget, revenue, status, runtime) and may carry the
//     Credits, Providers, and Videos sub-documents populated by parallel
//     sub-fetches
//
// ID is the upstream-assigned identifier and is never zero for a valid
// record; every other field may be empty.
type ContentRecord struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	ReleaseDate string   `json:"release_date,omitempty"`
	VoteAverage float64  `json:"vote_average"`
	PosterURL   string   `json:"poster_url,omitempty"`
	BackdropURL string   `json:"backdrop_url,omitempty"`
	Genres      []string `json:"genres"`
	GenreIDs    []int    `json:"genre_ids"`

	// Extended fields, present only on rich records.
	Budget           int64  `json:"budget,omitempty"`
	Revenue          int64  `json:"revenue,omitempty"`
	Status           string `json:"status,omitempty"`
	Runtime          int    `json:"runtime,omitempty"`
	OriginalLanguage string `json:"original_language,omitempty"`

	// Sub-documents from parallel sub-fetches, present only on rich records.
	// A nil sub-document means the corresponding sub-fetch failed or was
	// never issued; it is omitted from the JSON encoding.
	Credits   *Credits       `json:"credits,omitempty"`
	Providers *ProviderGroup `json:"providers,omitempty"`
	Videos    []Video        `json:"videos,omitempty"`

	// Role fields for person filmography entries.
	Role      string `json:"role,omitempty"`
	Character string `json:"character,omitempty"`
}

// Credits holds the trimmed cast and crew of a movie: at most the first
// 10 cast members and the first 5 crew members as returned upstream.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// CastMember is one credited actor.
type CastMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Character  string `json:"character,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
	Order      int    `json:"order"`
}

// CrewMember is one credited crew member.
type CrewMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job,omitempty"`
	Department string `json:"department,omitempty"`
}

// ProviderGroup holds the watch-provider links for one region.
type ProviderGroup struct {
	Link     string     `json:"link,omitempty"`
	Flatrate []Provider `json:"flatrate"`
	Rent     []Provider `json:"rent"`
	Buy      []Provider `json:"buy"`
}

// Provider is one streaming/rental service offering a title.
type Provider struct {
	ID      int    `json:"provider_id"`
	Name    string `json:"provider_name"`
	LogoURL string `json:"logo_url,omitempty"`
}

// Video is one preview video (typically a trailer) attached to a title.
type Video struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// Person is one cast/crew search result with a profile image.
type Person struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	ProfileURL         string `json:"profile_url"`
	KnownForDepartment string `json:"known_for_department,omitempty"`
}

// HomeSection is one titled row of the home page aggregation.
type HomeSection struct {
	Title string          `json:"title"`
	Data  []ContentRecord `json:"data"`
}

// HomePage is the full home page aggregation response.
type HomePage struct {
	Region   string        `json:"region"`
	Sections []HomeSection `json:"sections"`
}

// MovieDetail pairs a rich record with its similarity-based recommendations.
type MovieDetail struct {
	Details         *ContentRecord  `json:"details"`
	Recommendations []ContentRecord `json:"recommendations"`
}
