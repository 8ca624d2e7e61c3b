// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package tmdb

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/cineverse-app/cineverse/internal/models"
)

// languageFilter joins a country's language codes with "|" for the
// with_original_language discover parameter (OR semantics upstream).
func languageFilter(langs []string) string {
	return strings.Join(langs, "|")
}

// Trending returns trending movies for a country.
//
// Countries with a language mapping get a language-filtered discover query
// ordered by popularity; countries with only a region mapping get the same
// query filtered by region; unknown countries fall back to the global
// weekly trending list.
func (c *Client) Trending(ctx context.Context, country string) []models.ContentRecord {
	if langs, ok := LanguageCodes(country); ok {
		params := url.Values{}
		params.Set("sort_by", "popularity.desc")
		params.Set("with_original_language", languageFilter(langs))
		params.Set("page", "1")
		return c.decodeList(c.getCached(ctx, "/discover/movie", params), MediaMovie, false)
	}
	if region, ok := RegionCode(country); ok {
		params := url.Values{}
		params.Set("sort_by", "popularity.desc")
		params.Set("region", region)
		params.Set("page", "1")
		return c.decodeList(c.getCached(ctx, "/discover/movie", params), MediaMovie, false)
	}
	return c.decodeList(c.getCached(ctx, "/trending/movie/week", nil), MediaMovie, false)
}

// Popular returns popular movies for a country, preferring the country's
// original languages over its region code.
func (c *Client) Popular(ctx context.Context, country string) []models.ContentRecord {
	if langs, ok := LanguageCodes(country); ok {
		params := url.Values{}
		params.Set("sort_by", "popularity.desc")
		params.Set("with_original_language", languageFilter(langs))
		params.Set("page", "1")
		return c.decodeList(c.getCached(ctx, "/discover/movie", params), MediaMovie, false)
	}
	params := url.Values{}
	if region, ok := RegionCode(country); ok {
		params.Set("region", region)
	}
	return c.decodeList(c.getCached(ctx, "/movie/popular", params), MediaMovie, false)
}

// TopRated returns top-rated movies for a country. The language-filtered
// variant requires a minimum vote count so a handful of votes on an obscure
// title cannot outrank widely rated films.
func (c *Client) TopRated(ctx context.Context, country string) []models.ContentRecord {
	if langs, ok := LanguageCodes(country); ok {
		params := url.Values{}
		params.Set("sort_by", "vote_average.desc")
		params.Set("vote_count.gte", "100")
		params.Set("with_original_language", languageFilter(langs))
		params.Set("page", "1")
		return c.decodeList(c.getCached(ctx, "/discover/movie", params), MediaMovie, false)
	}
	params := url.Values{}
	if region, ok := RegionCode(country); ok {
		params.Set("region", region)
	}
	return c.decodeList(c.getCached(ctx, "/movie/top_rated", params), MediaMovie, false)
}

// Upcoming returns upcoming movies for a country. The language-filtered
// variant discovers by future release date since /movie/upcoming cannot be
// combined with an original-language filter.
func (c *Client) Upcoming(ctx context.Context, country string) []models.ContentRecord {
	if langs, ok := LanguageCodes(country); ok {
		params := url.Values{}
		params.Set("sort_by", "popularity.desc")
		params.Set("primary_release_date.gte", time.Now().Format("2006-01-02"))
		params.Set("with_original_language", languageFilter(langs))
		params.Set("page", "1")
		return c.decodeList(c.getCached(ctx, "/discover/movie", params), MediaMovie, false)
	}
	params := url.Values{}
	if region, ok := RegionCode(country); ok {
		params.Set("region", region)
	}
	return c.decodeList(c.getCached(ctx, "/movie/upcoming", params), MediaMovie, false)
}

// ByGenre returns movies of one genre for a country, filtered by the
// country's original languages when mapped, by region otherwise.
func (c *Client) ByGenre(ctx context.Context, genreID int, country string) []models.ContentRecord {
	params := url.Values{}
	params.Set("with_genres", strconv.Itoa(genreID))
	params.Set("sort_by", "popularity.desc")
	params.Set("page", "1")
	if langs, ok := LanguageCodes(country); ok {
		params.Set("with_original_language", languageFilter(langs))
	} else if region, ok := RegionCode(country); ok {
		params.Set("region", region)
	}
	return c.decodeList(c.getCached(ctx, "/discover/movie", params), MediaMovie, false)
}

// DiscoverMovies runs a discover query with arbitrary caller-supplied
// filter parameters (genre, year, language, sort order).
func (c *Client) DiscoverMovies(ctx context.Context, filters url.Values) []models.ContentRecord {
	params := url.Values{}
	params.Set("sort_by", "popularity.desc")
	params.Set("page", "1")
	for k, vs := range filters {
		for _, v := range vs {
			params.Set(k, v)
		}
	}
	return c.decodeList(c.getCached(ctx, "/discover/movie", params), MediaMovie, false)
}

// DiscoverTV runs a TV discover query. Results without a poster are
// dropped since the clients render nothing useful for them.
func (c *Client) DiscoverTV(ctx context.Context, filters url.Values) []models.ContentRecord {
	params := url.Values{}
	params.Set("sort_by", "popularity.desc")
	params.Set("page", "1")
	for k, vs := range filters {
		for _, v := range vs {
			params.Set(k, v)
		}
	}
	return c.decodeList(c.getCached(ctx, "/discover/tv", params), MediaTV, true)
}

// SearchMovies performs a free-text movie title search. Search bypasses the
// cache entirely and drops posterless results.
func (c *Client) SearchMovies(ctx context.Context, query string) []models.ContentRecord {
	if strings.TrimSpace(query) == "" {
		return []models.ContentRecord{}
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	return c.decodeList(c.getUncached(ctx, "/search/movie", params), MediaMovie, true)
}

// personEnvelope is the shape of /search/person results.
type personEnvelope struct {
	Results []struct {
		ID                 int    `json:"id"`
		Name               string `json:"name"`
		ProfilePath        string `json:"profile_path"`
		KnownForDepartment string `json:"known_for_department"`
	} `json:"results"`
}

// SearchPeople performs a free-text person search. Like movie search it
// bypasses the cache; people without a profile image are dropped.
func (c *Client) SearchPeople(ctx context.Context, query string) []models.Person {
	if strings.TrimSpace(query) == "" {
		return []models.Person{}
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")

	body := c.getUncached(ctx, "/search/person", params)
	if body == nil {
		return []models.Person{}
	}

	var envelope personEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return []models.Person{}
	}

	people := make([]models.Person, 0, len(envelope.Results))
	for _, p := range envelope.Results {
		if p.ProfilePath == "" {
			continue
		}
		people = append(people, models.Person{
			ID:                 p.ID,
			Name:               p.Name,
			ProfileURL:         c.norm.PosterBase + p.ProfilePath,
			KnownForDepartment: p.KnownForDepartment,
		})
	}
	return people
}
