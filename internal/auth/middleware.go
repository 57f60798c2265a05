// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/rolodex-api/rolodex/internal/database"
	"github.com/rolodex-api/rolodex/internal/logging"
	"github.com/rolodex-api/rolodex/internal/models"
)

type contextKey string

// UserContextKey holds the authenticated user for downstream handlers.
const UserContextKey contextKey = "user"

// Middleware enforces token authentication on protected routes.
type Middleware struct {
	db *database.DB
}

// NewMiddleware creates the authentication middleware backed by the given
// database handle.
func NewMiddleware(db *database.DB) *Middleware {
	return &Middleware{db: db}
}

// Authenticate resolves the Authorization header to a user and stores it
// in the request context. The header carries the raw token string and is
// compared by exact match against the stored token; a missing, empty, or
// unknown token yields 401. This is the only mechanism that establishes
// identity: no session store, no expiry, no refresh.
func (m *Middleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			unauthorized(w, r)
			return
		}

		user, err := m.db.GetUserByToken(r.Context(), token)
		if err != nil {
			if !errors.Is(err, database.ErrNotFound) {
				logging.Ctx(r.Context()).Error().Err(err).Msg("token lookup failed")
			}
			unauthorized(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// UserFromContext retrieves the authenticated user from the request
// context. Returns nil when the request did not pass Authenticate.
func UserFromContext(ctx context.Context) *models.User {
	if user, ok := ctx.Value(UserContextKey).(*models.User); ok {
		return user
	}
	return nil
}

// unauthorized writes the 401 envelope directly; the auth middleware sits
// in front of the api package and cannot import its response helpers.
func unauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Errors: "Unauthorized"}); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}
