// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package tmdb

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/cineverse-app/cineverse/internal/models"
)

const (
	maxCastMembers = 10
	maxCrewMembers = 5
	maxFilmography = 20
)

// MovieDetails fetches everything the detail page needs for one movie:
// the primary record plus credits, watch providers, and videos, issued as
// four parallel upstream calls.
//
// The primary detail fetch is mandatory: if it fails the whole result is
// nil. The three sub-fetches are best-effort: each failure omits only its
// own sub-document and never affects its siblings, so a credits outage
// still yields a record with providers and videos. All four goroutines run
// to completion regardless of sibling outcomes.
func (c *Client) MovieDetails(ctx context.Context, movieID int) *models.ContentRecord {
	var (
		detail    *models.ContentRecord
		credits   *models.Credits
		providers *models.ProviderGroup
		videos    []models.Video
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		detail = c.movieDetail(ctx, movieID)
	}()
	go func() {
		defer wg.Done()
		credits = c.MovieCredits(ctx, movieID)
	}()
	go func() {
		defer wg.Done()
		providers = c.WatchProviders(ctx, movieID)
	}()
	go func() {
		defer wg.Done()
		videos = c.Videos(ctx, movieID)
	}()
	wg.Wait()

	if detail == nil {
		return nil
	}

	record := *detail
	record.Credits = credits
	record.Providers = providers
	if len(videos) > 0 {
		record.Videos = videos
	}
	return &record
}

// movieDetail fetches and normalizes the primary /movie/{id} record.
func (c *Client) movieDetail(ctx context.Context, movieID int) *models.ContentRecord {
	body := c.getCached(ctx, fmt.Sprintf("/movie/%d", movieID), nil)
	if body == nil {
		return nil
	}
	var item Item
	if err := json.Unmarshal(body, &item); err != nil {
		return nil
	}
	record := c.norm.Normalize(item, MediaMovie)
	return &record
}

// creditsEnvelope is the shape of /movie/{id}/credits.
type creditsEnvelope struct {
	Cast []struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Character   string `json:"character"`
		ProfilePath string `json:"profile_path"`
		Order       int    `json:"order"`
	} `json:"cast"`
	Crew []struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Job         string `json:"job"`
		Department  string `json:"department"`
		ProfilePath string `json:"profile_path"`
	} `json:"crew"`
}

// MovieCredits fetches the cast and crew for a movie, trimmed to the first
// 10 cast and 5 crew members as ordered upstream. Returns nil on failure;
// a successful response with no credits yields empty slices.
func (c *Client) MovieCredits(ctx context.Context, movieID int) *models.Credits {
	body := c.getCached(ctx, fmt.Sprintf("/movie/%d/credits", movieID), nil)
	if body == nil {
		return nil
	}
	var envelope creditsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}

	credits := &models.Credits{
		Cast: make([]models.CastMember, 0, maxCastMembers),
		Crew: make([]models.CrewMember, 0, maxCrewMembers),
	}
	for i, member := range envelope.Cast {
		if i >= maxCastMembers {
			break
		}
		cast := models.CastMember{
			ID:        member.ID,
			Name:      member.Name,
			Character: member.Character,
			Order:     member.Order,
		}
		if member.ProfilePath != "" {
			cast.ProfileURL = c.norm.PosterBase + member.ProfilePath
		}
		credits.Cast = append(credits.Cast, cast)
	}
	for i, member := range envelope.Crew {
		if i >= maxCrewMembers {
			break
		}
		credits.Crew = append(credits.Crew, models.CrewMember{
			ID:         member.ID,
			Name:       member.Name,
			Job:        member.Job,
			Department: member.Department,
		})
	}
	return credits
}

// providersEnvelope is the shape of /movie/{id}/watch/providers, keyed by
// region code.
type providersEnvelope struct {
	Results map[string]struct {
		Link     string        `json:"link"`
		Flatrate []providerRef `json:"flatrate"`
		Rent     []providerRef `json:"rent"`
		Buy      []providerRef `json:"buy"`
	} `json:"results"`
}

type providerRef struct {
	ProviderID   int    `json:"provider_id"`
	ProviderName string `json:"provider_name"`
	LogoPath     string `json:"logo_path"`
}

// WatchProviders fetches the US watch-provider offerings for a movie.
// Returns nil on failure or when the movie has no US offerings.
func (c *Client) WatchProviders(ctx context.Context, movieID int) *models.ProviderGroup {
	body := c.getCached(ctx, fmt.Sprintf("/movie/%d/watch/providers", movieID), nil)
	if body == nil {
		return nil
	}
	var envelope providersEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}

	us, ok := envelope.Results["US"]
	if !ok {
		return nil
	}

	group := &models.ProviderGroup{
		Link:     us.Link,
		Flatrate: c.providerList(us.Flatrate),
		Rent:     c.providerList(us.Rent),
		Buy:      c.providerList(us.Buy),
	}
	return group
}

func (c *Client) providerList(refs []providerRef) []models.Provider {
	providers := make([]models.Provider, 0, len(refs))
	for _, ref := range refs {
		p := models.Provider{
			ID:   ref.ProviderID,
			Name: ref.ProviderName,
		}
		if ref.LogoPath != "" {
			p.LogoURL = c.norm.PosterBase + ref.LogoPath
		}
		providers = append(providers, p)
	}
	return providers
}

// videosEnvelope is the shape of /movie/{id}/videos.
type videosEnvelope struct {
	Results []models.Video `json:"results"`
}

// Videos fetches the preview videos for a movie. YouTube trailers are
// preferred; when none exist the first video of any kind is returned so
// the detail page always has something to embed if upstream has anything.
func (c *Client) Videos(ctx context.Context, movieID int) []models.Video {
	body := c.getCached(ctx, fmt.Sprintf("/movie/%d/videos", movieID), nil)
	if body == nil {
		return nil
	}
	var envelope videosEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}

	trailers := make([]models.Video, 0, len(envelope.Results))
	for _, v := range envelope.Results {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			trailers = append(trailers, v)
		}
	}
	if len(trailers) > 0 {
		return trailers
	}
	if len(envelope.Results) > 0 {
		return envelope.Results[:1]
	}
	return nil
}

// personCreditsEnvelope is the shape of /person/{id}/movie_credits.
type personCreditsEnvelope struct {
	Cast []Item `json:"cast"`
	Crew []Item `json:"crew"`
}

// PersonMovieCredits returns a person's notable filmography: their acting
// credits merged with movies they directed, deduplicated by movie id with
// a combined "Actor, Director" label when both apply, restricted to
// entries with a poster, sorted by vote average descending, and trimmed
// to the top 20.
func (c *Client) PersonMovieCredits(ctx context.Context, personID int) []models.ContentRecord {
	body := c.getCached(ctx, fmt.Sprintf("/person/%d/movie_credits", personID), nil)
	if body == nil {
		return []models.ContentRecord{}
	}
	var envelope personCreditsEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return []models.ContentRecord{}
	}

	position := make(map[int]int)
	records := make([]models.ContentRecord, 0, len(envelope.Cast)+len(envelope.Crew))

	for _, item := range envelope.Cast {
		if item.PosterPath == "" {
			continue
		}
		if _, ok := position[item.ID]; ok {
			continue
		}
		position[item.ID] = len(records)
		record := c.norm.Normalize(item, MediaMovie)
		record.Role = "Actor"
		record.Character = item.Character
		records = append(records, record)
	}
	for _, item := range envelope.Crew {
		if item.Job != "Director" {
			continue
		}
		// A movie the person both acted in and directed keeps one entry
		// with the combined role label.
		if idx, ok := position[item.ID]; ok {
			if !strings.Contains(records[idx].Role, "Director") {
				records[idx].Role += ", Director"
			}
			continue
		}
		if item.PosterPath == "" {
			continue
		}
		position[item.ID] = len(records)
		record := c.norm.Normalize(item, MediaMovie)
		record.Role = "Director"
		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].VoteAverage > records[j].VoteAverage
	})
	if len(records) > maxFilmography {
		records = records[:maxFilmography]
	}
	return records
}
