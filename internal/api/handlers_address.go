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

// AddressCreate handles POST /api/contacts/{contactId}/addresses.
func (h *Handler) AddressCreate(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	var req models.CreateAddressRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	address, err := h.addresses.Create(r.Context(), user, pathID(r, "contactId"), &req)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	respondData(w, address)
}

// AddressUpdate handles PUT /api/contacts/{contactId}/addresses/{addressId}.
func (h *Handler) AddressUpdate(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	var req models.UpdateAddressRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.ID = pathID(r, "addressId")

	address, err := h.addresses.Update(r.Context(), user, pathID(r, "contactId"), &req)
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	respondData(w, address)
}

// AddressGet handles GET /api/contacts/{contactId}/addresses/{addressId}.
func (h *Handler) AddressGet(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	address, err := h.addresses.Get(r.Context(), user, pathID(r, "contactId"), pathID(r, "addressId"))
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	respondData(w, address)
}

// AddressList handles GET /api/contacts/{contactId}/addresses.
func (h *Handler) AddressList(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	addresses, err := h.addresses.List(r.Context(), user, pathID(r, "contactId"))
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	respondData(w, addresses)
}

// AddressRemove handles DELETE /api/contacts/{contactId}/addresses/{addressId}.
func (h *Handler) AddressRemove(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	if _, err := h.addresses.Remove(r.Context(), user, pathID(r, "contactId"), pathID(r, "addressId")); err != nil {
		respondFailure(w, r, err)
		return
	}

	respondData(w, "OK")
}
