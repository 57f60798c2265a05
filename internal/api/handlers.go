// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package api

import (
	"net/http"

	"github.com/rolodex-api/rolodex/internal/service"
)

// Handler bundles the domain services behind the HTTP endpoints.
type Handler struct {
	users     *service.UserService
	contacts  *service.ContactService
	addresses *service.AddressService
}

// NewHandler creates the API handler set.
func NewHandler(users *service.UserService, contacts *service.ContactService, addresses *service.AddressService) *Handler {
	return &Handler{
		users:     users,
		contacts:  contacts,
		addresses: addresses,
	}
}

// Ping is a liveness probe. It does not touch the database.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	respondData(w, "pong")
}
