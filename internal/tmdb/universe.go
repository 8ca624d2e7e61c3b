// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package tmdb

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/cineverse-app/cineverse/internal/models"
)

// universeStrategy selects how a curated franchise collection is resolved.
type universeStrategy int

const (
	// byKeyword discovers movies tagged with a franchise keyword.
	byKeyword universeStrategy = iota
	// byCollection fetches the parts of an official TMDB collection.
	byCollection
	// byIDs fetches an explicit list of movie ids in parallel.
	byIDs
	// bySearch resolves through a title search.
	bySearch
)

type universe struct {
	strategy     universeStrategy
	keywordID    string
	collectionID int
	movieIDs     []int
	query        string
}

// universes maps franchise keys to their resolution strategies. The ids are
// upstream TMDB identifiers; hand-picked lists cover franchises that have
// neither a keyword nor an official collection.
var universes = map[string]universe{
	"mcu":          {strategy: byKeyword, keywordID: "180547"},
	"dceu":         {strategy: byKeyword, keywordID: "209130"},
	"harry_potter": {strategy: byCollection, collectionID: 1241},
	"star_wars":    {strategy: byCollection, collectionID: 10},
	"spy_universe": {strategy: byIDs, movieIDs: []int{864692, 585268, 434555, 86024, 1003596, 1003598}},
	"cop_universe": {strategy: byIDs, movieIDs: []int{626388, 525668, 273800, 72020}},
	"bts":          {strategy: bySearch, query: "BTS"},
}

// UniverseKeys lists the available franchise keys.
func UniverseKeys() []string {
	keys := make([]string, 0, len(universes))
	for k := range universes {
		keys = append(keys, k)
	}
	return keys
}

// Universe returns the movies of a curated franchise. An unknown key yields
// an empty slice without touching upstream.
func (c *Client) Universe(ctx context.Context, key string) []models.ContentRecord {
	u, ok := universes[key]
	if !ok {
		return []models.ContentRecord{}
	}

	switch u.strategy {
	case byKeyword:
		params := url.Values{}
		params.Set("with_keywords", u.keywordID)
		params.Set("sort_by", "release_date.desc")
		params.Set("page", "1")
		return c.decodeList(c.getCached(ctx, "/discover/movie", params), MediaMovie, false)
	case byCollection:
		return c.collectionMovies(ctx, u.collectionID)
	case byIDs:
		return c.moviesByIDs(ctx, u.movieIDs)
	case bySearch:
		return c.SearchMovies(ctx, u.query)
	default:
		return []models.ContentRecord{}
	}
}

// collectionEnvelope is the shape of /collection/{id}.
type collectionEnvelope struct {
	Parts []Item `json:"parts"`
}

func (c *Client) collectionMovies(ctx context.Context, collectionID int) []models.ContentRecord {
	body := c.getCached(ctx, "/collection/"+strconv.Itoa(collectionID), nil)
	if body == nil {
		return []models.ContentRecord{}
	}
	var envelope collectionEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return []models.ContentRecord{}
	}
	records := make([]models.ContentRecord, 0, len(envelope.Parts))
	for _, item := range envelope.Parts {
		records = append(records, c.norm.Normalize(item, MediaMovie))
	}
	return records
}

// moviesByIDs hydrates a hand-picked id list in parallel through the
// composite detail fetch, preserving list order. Failed fetches are
// dropped so one missing title never empties the whole franchise row.
func (c *Client) moviesByIDs(ctx context.Context, ids []int) []models.ContentRecord {
	slots := make([]*models.ContentRecord, len(ids))
	var wg sync.WaitGroup
	wg.Add(len(ids))
	for i, id := range ids {
		go func(i, id int) {
			defer wg.Done()
			slots[i] = c.MovieDetails(ctx, id)
		}(i, id)
	}
	wg.Wait()

	records := make([]models.ContentRecord, 0, len(ids))
	for _, r := range slots {
		if r != nil {
			records = append(records, *r)
		}
	}
	return records
}
