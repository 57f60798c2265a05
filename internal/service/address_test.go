// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/rolodex-api/rolodex/internal/models"
)

func (ts *testServices) createAddress(t *testing.T, user *models.User, contactID int64) *models.AddressProjection {
	t.Helper()

	address, err := ts.addresses.Create(context.Background(), user, contactID, &models.CreateAddressRequest{
		Street:     "Jalan Test",
		City:       "Jakarta",
		Province:   "DKI Jakarta",
		Country:    "Indonesia",
		PostalCode: "12345",
	})
	if err != nil {
		t.Fatalf("Failed to create address: %v", err)
	}
	return address
}

func TestAddressCreate(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	alice := ts.registerUser(t, "alice1")
	bob := ts.registerUser(t, "bobby1")
	contact := ts.createContact(t, alice, "John")

	t.Run("creates address under owned contact", func(t *testing.T) {
		address := ts.createAddress(t, alice, contact.ID)
		if address.ID <= 0 {
			t.Errorf("Expected positive id, got %d", address.ID)
		}
		if address.Country != "Indonesia" {
			t.Errorf("Unexpected projection: %+v", address)
		}
	})

	t.Run("missing contact yields NotFound", func(t *testing.T) {
		_, err := ts.addresses.Create(ctx, alice, 99999, &models.CreateAddressRequest{
			Country:    "Indonesia",
			PostalCode: "12345",
		})
		wantDomainError(t, err, http.StatusNotFound)
	})

	t.Run("another user's contact yields NotFound", func(t *testing.T) {
		_, err := ts.addresses.Create(ctx, bob, contact.ID, &models.CreateAddressRequest{
			Country:    "Indonesia",
			PostalCode: "12345",
		})
		wantDomainError(t, err, http.StatusNotFound)
	})

	t.Run("missing required fields yield BadRequest", func(t *testing.T) {
		_, err := ts.addresses.Create(ctx, alice, contact.ID, &models.CreateAddressRequest{})
		wantDomainError(t, err, http.StatusBadRequest)
	})
}

func TestAddressGet(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	alice := ts.registerUser(t, "alice1")
	contact := ts.createContact(t, alice, "John")
	other := ts.createContact(t, alice, "Jane")
	address := ts.createAddress(t, alice, contact.ID)

	t.Run("round-trips the stored address", func(t *testing.T) {
		got, err := ts.addresses.Get(ctx, alice, contact.ID, address.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if *got != *address {
			t.Errorf("Expected %+v, got %+v", address, got)
		}
	})

	t.Run("address id under another contact yields NotFound", func(t *testing.T) {
		_, err := ts.addresses.Get(ctx, alice, other.ID, address.ID)
		wantDomainError(t, err, http.StatusNotFound)
	})

	t.Run("missing contact yields NotFound", func(t *testing.T) {
		_, err := ts.addresses.Get(ctx, alice, 99999, address.ID)
		wantDomainError(t, err, http.StatusNotFound)
	})
}

func TestAddressUpdate(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	alice := ts.registerUser(t, "alice1")
	contact := ts.createContact(t, alice, "John")

	t.Run("replaces address fields", func(t *testing.T) {
		address := ts.createAddress(t, alice, contact.ID)

		updated, err := ts.addresses.Update(ctx, alice, contact.ID, &models.UpdateAddressRequest{
			ID:         address.ID,
			Street:     "Jalan Baru",
			City:       "Bandung",
			Country:    "Indonesia",
			PostalCode: "40111",
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.City != "Bandung" || updated.PostalCode != "40111" {
			t.Errorf("Unexpected projection: %+v", updated)
		}
	})

	t.Run("unknown address id yields NotFound", func(t *testing.T) {
		_, err := ts.addresses.Update(ctx, alice, contact.ID, &models.UpdateAddressRequest{
			ID:         99999,
			Country:    "Indonesia",
			PostalCode: "12345",
		})
		wantDomainError(t, err, http.StatusNotFound)
	})
}

func TestAddressList(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	alice := ts.registerUser(t, "alice1")
	contact := ts.createContact(t, alice, "John")
	empty := ts.createContact(t, alice, "Jane")

	ts.createAddress(t, alice, contact.ID)
	ts.createAddress(t, alice, contact.ID)

	t.Run("lists addresses of a contact", func(t *testing.T) {
		addresses, err := ts.addresses.List(ctx, alice, contact.ID)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(addresses) != 2 {
			t.Errorf("Expected 2 addresses, got %d", len(addresses))
		}
	})

	t.Run("empty list is a valid result", func(t *testing.T) {
		addresses, err := ts.addresses.List(ctx, alice, empty.ID)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(addresses) != 0 {
			t.Errorf("Expected empty list, got %d", len(addresses))
		}
	})

	t.Run("missing contact yields NotFound", func(t *testing.T) {
		_, err := ts.addresses.List(ctx, alice, 99999)
		wantDomainError(t, err, http.StatusNotFound)
	})
}

func TestAddressRemove(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	alice := ts.registerUser(t, "alice1")
	contact := ts.createContact(t, alice, "John")

	t.Run("removes address and returns its projection", func(t *testing.T) {
		address := ts.createAddress(t, alice, contact.ID)

		removed, err := ts.addresses.Remove(ctx, alice, contact.ID, address.ID)
		if err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if removed.ID != address.ID {
			t.Errorf("Expected projection of removed address, got %+v", removed)
		}

		_, err = ts.addresses.Get(ctx, alice, contact.ID, address.ID)
		wantDomainError(t, err, http.StatusNotFound)
	})

	t.Run("unknown address id yields NotFound", func(t *testing.T) {
		_, err := ts.addresses.Remove(ctx, alice, contact.ID, 99999)
		wantDomainError(t, err, http.StatusNotFound)
	})
}
