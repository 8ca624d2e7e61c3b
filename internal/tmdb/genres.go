// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package tmdb

// genreNames maps TMDB movie genre ids to display names. List endpoints
// return bare genre ids; the normalizer resolves them through this table so
// thin records carry readable genre names without an extra lookup call.
var genreNames = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// GenreName resolves a TMDB genre id to its display name. Unknown ids
// return false; the normalizer drops them rather than inventing a label.
func GenreName(id int) (string, bool) {
	name, ok := genreNames[id]
	return name, ok
}
