// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rolodex-api/rolodex/internal/auth"
	"github.com/rolodex-api/rolodex/internal/config"
	"github.com/rolodex-api/rolodex/internal/middleware"
)

// Router wires the API handlers onto a Chi router.
type Router struct {
	handler *Handler
	auth    *auth.Middleware
	cfg     *config.ServerConfig
}

// NewRouter creates a router for the given handlers and auth middleware.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware, cfg *config.ServerConfig) *Router {
	return &Router{
		handler: handler,
		auth:    authMiddleware,
		cfg:     cfg,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so it can be used with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Setup configures all HTTP routes. Registration and login are the only
// API routes reachable without a token.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         86400,
	}))
	r.Use(chiMiddleware(middleware.RequestLogging))

	// Operational endpoints
	r.Get("/ping", router.handler.Ping)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Public user endpoints
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", router.handler.UserRegister)
		r.Post("/login", router.handler.UserLogin)

		// Routes about the authenticated user
		r.Group(func(r chi.Router) {
			r.Use(chiMiddleware(middleware.PrometheusMetrics))
			r.Use(chiMiddleware(router.auth.Authenticate))

			r.Get("/current", router.handler.UserCurrent)
			r.Patch("/current", router.handler.UserUpdate)
			r.Delete("/logout", router.handler.UserLogout)
		})
	})

	// Contact and address endpoints, all owner-scoped
	r.Route("/api/contacts", func(r chi.Router) {
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(router.auth.Authenticate))

		r.Post("/", router.handler.ContactCreate)
		r.Get("/", router.handler.ContactSearch)
		r.Get("/{contactId}", router.handler.ContactGet)
		r.Put("/{contactId}", router.handler.ContactUpdate)
		r.Delete("/{contactId}", router.handler.ContactRemove)

		r.Route("/{contactId}/addresses", func(r chi.Router) {
			r.Post("/", router.handler.AddressCreate)
			r.Get("/", router.handler.AddressList)
			r.Get("/{addressId}", router.handler.AddressGet)
			r.Put("/{addressId}", router.handler.AddressUpdate)
			r.Delete("/{addressId}", router.handler.AddressRemove)
		})
	})

	return r
}
