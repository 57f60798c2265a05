// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package api

import (
	"net/http"

	"github.com/rolodex-api/rolodex/internal/auth"
	"github.com/rolodex-api/rolodex/internal/models"
)

// UserRegister handles POST /api/users.
func (h *Handler) UserRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.users.Register(r.Context(), &req)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	respondData(w, user)
}

// UserLogin handles POST /api/users/login.
func (h *Handler) UserLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.users.Login(r.Context(), &req)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	respondData(w, token)
}

// UserCurrent handles GET /api/users/current.
func (h *Handler) UserCurrent(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	projection, err := h.users.Get(r.Context(), user.Username)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	respondData(w, projection)
}

// UserUpdate handles PATCH /api/users/current.
func (h *Handler) UserUpdate(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	var req models.UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	projection, err := h.users.Update(r.Context(), user.Username, &req)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	respondData(w, projection)
}

// UserLogout handles DELETE /api/users/logout. The stored token is
// cleared so subsequent requests with it fail authentication.
func (h *Handler) UserLogout(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	if _, err := h.users.Logout(r.Context(), user.Username); err != nil {
		respondFailure(w, r, err)
		return
	}

	respondData(w, "Ok")
}
