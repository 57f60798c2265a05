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

// ContactCreate handles POST /api/contacts.
func (h *Handler) ContactCreate(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	var req models.CreateContactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	contact, err := h.contacts.Create(r.Context(), user, &req)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	respondData(w, contact)
}

// ContactGet handles GET /api/contacts/{contactId}.
func (h *Handler) ContactGet(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	contact, err := h.contacts.Get(r.Context(), user, pathID(r, "contactId"))
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	respondData(w, contact)
}

// ContactUpdate handles PUT /api/contacts/{contactId}.
func (h *Handler) ContactUpdate(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	var req models.UpdateContactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = pathID(r, "contactId")

	contact, err := h.contacts.Update(r.Context(), user, &req)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	respondData(w, contact)
}

// ContactRemove handles DELETE /api/contacts/{contactId}.
func (h *Handler) ContactRemove(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	if err := h.contacts.Remove(r.Context(), user, pathID(r, "contactId")); err != nil {
		respondFailure(w, r, err)
		return
	}

	respondData(w, "OK")
}

// ContactSearch handles GET /api/contacts. All filters are optional;
// an empty query lists the caller's contacts page by page.
func (h *Handler) ContactSearch(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	req := models.SearchContactsRequest{
		Name:  r.URL.Query().Get("name"),
		Email: r.URL.Query().Get("email"),
		Phone: r.URL.Query().Get("phone"),
		Page:  queryInt(r, "page", 1),
		Size:  queryInt(r, "size", 10),
	}

	contacts, paging, err := h.contacts.Search(r.Context(), user, &req)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	respondPaged(w, contacts, paging)
}
