// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rolodex-api/rolodex/internal/models"
)

func mustCreateContact(t *testing.T, db *DB, username, firstName string) *models.Contact {
	t.Helper()

	contact := &models.Contact{
		Username:  username,
		FirstName: firstName,
		LastName:  "Lastname",
		Email:     firstName + "@example.com",
		Phone:     "081234567890",
	}
	if err := db.CreateContact(context.Background(), contact); err != nil {
		t.Fatalf("Failed to create contact: %v", err)
	}
	return contact
}

func TestCreateContact(t *testing.T) {
	db := newTestDB(t)
	mustCreateUser(t, db, "alice")

	t.Run("assigns generated id", func(t *testing.T) {
		contact := mustCreateContact(t, db, "alice", "John")
		if contact.ID <= 0 {
			t.Errorf("Expected positive contact ID, got %d", contact.ID)
		}
	})

	t.Run("ids are monotonically increasing", func(t *testing.T) {
		first := mustCreateContact(t, db, "alice", "Jane")
		second := mustCreateContact(t, db, "alice", "Jack")
		if second.ID <= first.ID {
			t.Errorf("Expected ID %d > %d", second.ID, first.ID)
		}
	})
}

func TestGetContact(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	mustCreateUser(t, db, "alice")
	mustCreateUser(t, db, "bob")
	contact := mustCreateContact(t, db, "alice", "John")

	t.Run("returns owned contact", func(t *testing.T) {
		got, err := db.GetContact(ctx, "alice", contact.ID)
		if err != nil {
			t.Fatalf("GetContact failed: %v", err)
		}
		if got.FirstName != "John" {
			t.Errorf("Expected first name John, got %s", got.FirstName)
		}
		if got.Username != "alice" {
			t.Errorf("Expected owner alice, got %s", got.Username)
		}
	})

	t.Run("returns ErrNotFound for another owner", func(t *testing.T) {
		_, err := db.GetContact(ctx, "bob", contact.ID)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("returns ErrNotFound for unknown id", func(t *testing.T) {
		_, err := db.GetContact(ctx, "alice", 99999)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestUpdateContact(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	mustCreateUser(t, db, "alice")
	mustCreateUser(t, db, "bob")

	t.Run("updates owned contact", func(t *testing.T) {
		contact := mustCreateContact(t, db, "alice", "John")
		contact.FirstName = "Johnny"
		contact.Email = "johnny@example.com"

		if err := db.UpdateContact(ctx, contact); err != nil {
			t.Fatalf("UpdateContact failed: %v", err)
		}

		got, err := db.GetContact(ctx, "alice", contact.ID)
		if err != nil {
			t.Fatalf("GetContact failed: %v", err)
		}
		if got.FirstName != "Johnny" {
			t.Errorf("Expected first name Johnny, got %s", got.FirstName)
		}
		if got.Email != "johnny@example.com" {
			t.Errorf("Expected updated email, got %s", got.Email)
		}
	})

	t.Run("returns ErrNotFound for another owner", func(t *testing.T) {
		contact := mustCreateContact(t, db, "alice", "Jane")
		stolen := *contact
		stolen.Username = "bob"

		err := db.UpdateContact(ctx, &stolen)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestDeleteContact(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	mustCreateUser(t, db, "alice")
	mustCreateUser(t, db, "bob")

	t.Run("deletes owned contact", func(t *testing.T) {
		contact := mustCreateContact(t, db, "alice", "John")

		if err := db.DeleteContact(ctx, "alice", contact.ID); err != nil {
			t.Fatalf("DeleteContact failed: %v", err)
		}
		if _, err := db.GetContact(ctx, "alice", contact.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected contact to be gone, got %v", err)
		}
	})

	t.Run("returns ErrNotFound for another owner", func(t *testing.T) {
		contact := mustCreateContact(t, db, "alice", "Jane")

		err := db.DeleteContact(ctx, "bob", contact.ID)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		// Contact must still exist for its owner
		if _, err := db.GetContact(ctx, "alice", contact.ID); err != nil {
			t.Errorf("Expected contact to survive, got %v", err)
		}
	})
}

// ========================
// Search
// ========================

func TestSearchContacts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	mustCreateUser(t, db, "alice")
	mustCreateUser(t, db, "bob")

	// alice owns 17 contacts named "test 0" .. "test 16", bob owns one.
	for i := 0; i < 17; i++ {
		contact := &models.Contact{
			Username:  "alice",
			FirstName: fmt.Sprintf("test %d", i),
			LastName:  "Searchable",
			Email:     fmt.Sprintf("test%d@example.com", i),
			Phone:     fmt.Sprintf("08123456%04d", i),
		}
		if err := db.CreateContact(ctx, contact); err != nil {
			t.Fatalf("Failed to create contact %d: %v", i, err)
		}
	}
	mustCreateContact(t, db, "bob", "test 0")

	t.Run("scopes results to owner", func(t *testing.T) {
		contacts, total, err := db.SearchContacts(ctx, &ContactFilter{
			Username: "bob",
			Limit:    10,
			Offset:   0,
		})
		if err != nil {
			t.Fatalf("SearchContacts failed: %v", err)
		}
		if total != 1 {
			t.Errorf("Expected total 1 for bob, got %d", total)
		}
		if len(contacts) != 1 {
			t.Errorf("Expected 1 contact for bob, got %d", len(contacts))
		}
	})

	t.Run("paginates with total count", func(t *testing.T) {
		first, total, err := db.SearchContacts(ctx, &ContactFilter{
			Username: "alice",
			Limit:    10,
			Offset:   0,
		})
		if err != nil {
			t.Fatalf("SearchContacts failed: %v", err)
		}
		if total != 17 {
			t.Errorf("Expected total 17, got %d", total)
		}
		if len(first) != 10 {
			t.Errorf("Expected 10 contacts on page 1, got %d", len(first))
		}

		second, total, err := db.SearchContacts(ctx, &ContactFilter{
			Username: "alice",
			Limit:    10,
			Offset:   10,
		})
		if err != nil {
			t.Fatalf("SearchContacts failed: %v", err)
		}
		if total != 17 {
			t.Errorf("Expected total 17, got %d", total)
		}
		if len(second) != 7 {
			t.Errorf("Expected 7 contacts on page 2, got %d", len(second))
		}
	})

	t.Run("filters by name substring", func(t *testing.T) {
		contacts, total, err := db.SearchContacts(ctx, &ContactFilter{
			Username: "alice",
			Name:     "test 13",
			Limit:    10,
			Offset:   0,
		})
		if err != nil {
			t.Fatalf("SearchContacts failed: %v", err)
		}
		if total != 1 {
			t.Errorf("Expected total 1 for 'test 13', got %d", total)
		}
		if len(contacts) != 1 || contacts[0].FirstName != "test 13" {
			t.Errorf("Expected exactly contact 'test 13', got %+v", contacts)
		}
	})

	t.Run("name filter matches last name too", func(t *testing.T) {
		_, total, err := db.SearchContacts(ctx, &ContactFilter{
			Username: "alice",
			Name:     "Searchable",
			Limit:    100,
			Offset:   0,
		})
		if err != nil {
			t.Fatalf("SearchContacts failed: %v", err)
		}
		if total != 17 {
			t.Errorf("Expected all 17 via last name, got %d", total)
		}
	})

	t.Run("name match is case sensitive", func(t *testing.T) {
		_, total, err := db.SearchContacts(ctx, &ContactFilter{
			Username: "alice",
			Name:     "TEST 13",
			Limit:    10,
			Offset:   0,
		})
		if err != nil {
			t.Fatalf("SearchContacts failed: %v", err)
		}
		if total != 0 {
			t.Errorf("Expected no match for uppercased needle, got %d", total)
		}
	})

	t.Run("filters by email substring", func(t *testing.T) {
		_, total, err := db.SearchContacts(ctx, &ContactFilter{
			Username: "alice",
			Email:    "test13@",
			Limit:    10,
			Offset:   0,
		})
		if err != nil {
			t.Fatalf("SearchContacts failed: %v", err)
		}
		if total != 1 {
			t.Errorf("Expected total 1 for email filter, got %d", total)
		}
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		_, total, err := db.SearchContacts(ctx, &ContactFilter{
			Username: "alice",
			Name:     "test 13",
			Email:    "test1@example.com",
			Limit:    10,
			Offset:   0,
		})
		if err != nil {
			t.Fatalf("SearchContacts failed: %v", err)
		}
		if total != 0 {
			t.Errorf("Expected no contact matching both filters, got %d", total)
		}
	})

	t.Run("empty filter returns all owned contacts", func(t *testing.T) {
		contacts, total, err := db.SearchContacts(ctx, &ContactFilter{
			Username: "alice",
			Limit:    100,
			Offset:   0,
		})
		if err != nil {
			t.Fatalf("SearchContacts failed: %v", err)
		}
		if total != 17 || len(contacts) != 17 {
			t.Errorf("Expected 17 contacts, got total=%d len=%d", total, len(contacts))
		}
	})
}
