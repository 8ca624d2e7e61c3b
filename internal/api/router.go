// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cineverse-app/cineverse/internal/config"
)

// Router assembles the HTTP surface: handlers plus the middleware stack.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router from the handler set and API configuration.
func NewRouter(handler *Handler, cfg *config.APIConfig) *Router {
	return &Router{
		handler: handler,
		chiMiddleware: NewChiMiddleware(&ChiMiddlewareConfig{
			CORSAllowedOrigins: cfg.CORSOrigins,
			CORSMaxAge:         86400,
			RateLimitRequests:  cfg.RateLimitReqs,
			RateLimitWindow:    cfg.RateLimitWindow,
		}),
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Health and metrics stay outside the API rate budget.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/api/v1/health", router.handler.Health)
		r.Handle("/metrics", promhttp.Handler())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(PrometheusMetrics())

		r.Get("/home", router.handler.Home)
		r.Get("/search", router.handler.Search)
		r.Get("/search/smart", router.handler.SmartSearch)
		r.Get("/search/person", router.handler.SearchPerson)
		r.Get("/movie/{id}", router.handler.MovieDetail)
		r.Post("/recommend", router.handler.Recommend)
		r.Get("/discover/movies", router.handler.DiscoverMovies)
		r.Get("/discover/series", router.handler.DiscoverSeries)
		r.Get("/person/{id}/credits", router.handler.PersonCredits)
		r.Get("/universe/{key}", router.handler.Universe)
	})

	return r
}
