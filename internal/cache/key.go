// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package cache

import "net/url"

// Key builds a deterministic cache key from an endpoint path and its query
// parameters. url.Values.Encode sorts parameters by key, so two requests
// with the same parameters in different order produce the same key.
func Key(endpoint string, params url.Values) string {
	if len(params) == 0 {
		return endpoint
	}
	return endpoint + "?" + params.Encode()
}
