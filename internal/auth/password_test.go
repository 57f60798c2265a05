// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	t.Parallel()

	hasher := NewPasswordHasher(bcrypt.MinCost)

	t.Run("hash verifies against original password", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("rahasia")
		if err != nil {
			t.Fatalf("Hash failed: %v", err)
		}
		if !hasher.Verify(hash, "rahasia") {
			t.Error("Expected hash to verify against its password")
		}
	})

	t.Run("hash rejects a different password", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("rahasia")
		if err != nil {
			t.Fatalf("Hash failed: %v", err)
		}
		if hasher.Verify(hash, "salah") {
			t.Error("Expected verification to fail for wrong password")
		}
	})

	t.Run("hash is salted", func(t *testing.T) {
		t.Parallel()
		first, err := hasher.Hash("rahasia")
		if err != nil {
			t.Fatalf("Hash failed: %v", err)
		}
		second, err := hasher.Hash("rahasia")
		if err != nil {
			t.Fatalf("Hash failed: %v", err)
		}
		if first == second {
			t.Error("Expected different hashes for the same password")
		}
	})

	t.Run("zero cost falls back to default", func(t *testing.T) {
		t.Parallel()
		h := NewPasswordHasher(0)
		if h.cost != bcrypt.DefaultCost {
			t.Errorf("Expected default cost %d, got %d", bcrypt.DefaultCost, h.cost)
		}
	})
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("tokens are unique and opaque", func(t *testing.T) {
		t.Parallel()
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			token := GenerateToken()
			if token == "" {
				t.Fatal("Expected non-empty token")
			}
			if strings.Contains(token, " ") {
				t.Errorf("Unexpected whitespace in token %q", token)
			}
			if seen[token] {
				t.Fatalf("Duplicate token generated: %s", token)
			}
			seen[token] = true
		}
	})
}
