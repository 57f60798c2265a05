// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package validation

import (
	"strings"
	"testing"
)

type registerFixture struct {
	Username string `validate:"required,min=5,max=100"`
	Password string `validate:"required,max=100"`
	Name     string `validate:"required,min=5,max=100"`
}

type contactFixture struct {
	FirstName string `validate:"required,min=3,max=100"`
	LastName  string `validate:"omitempty,min=3,max=100"`
	Email     string `validate:"omitempty,email,max=100"`
	Phone     string `validate:"omitempty,numeric,min=11,max=100"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	t.Run("passes for valid struct", func(t *testing.T) {
		t.Parallel()
		err := ValidateStruct(&registerFixture{
			Username: "alice1",
			Password: "secret",
			Name:     "Alice Test",
		})
		if err != nil {
			t.Errorf("Expected nil error, got %v", err)
		}
	})

	t.Run("collects every violation", func(t *testing.T) {
		t.Parallel()
		err := ValidateStruct(&registerFixture{})
		if err == nil {
			t.Fatal("Expected validation error, got nil")
		}
		if len(err.Errors()) != 3 {
			t.Errorf("Expected 3 field errors, got %d", len(err.Errors()))
		}
		msg := err.Error()
		for _, want := range []string{"Username is required", "Password is required", "Name is required"} {
			if !strings.Contains(msg, want) {
				t.Errorf("Expected message to contain %q, got %q", want, msg)
			}
		}
	})

	t.Run("aggregate message joins with semicolons", func(t *testing.T) {
		t.Parallel()
		err := ValidateStruct(&registerFixture{Username: "ab", Password: "x", Name: "ok"})
		if err == nil {
			t.Fatal("Expected validation error, got nil")
		}
		if !strings.Contains(err.Error(), "; ") {
			t.Errorf("Expected semicolon-joined message, got %q", err.Error())
		}
	})

	t.Run("omitempty skips absent optional fields", func(t *testing.T) {
		t.Parallel()
		err := ValidateStruct(&contactFixture{FirstName: "John"})
		if err != nil {
			t.Errorf("Expected nil error for optional fields left empty, got %v", err)
		}
	})

	tests := []struct {
		name    string
		fixture contactFixture
		wantMsg string
	}{
		{
			name:    "short first name",
			fixture: contactFixture{FirstName: "Jo"},
			wantMsg: "FirstName must be at least 3 characters",
		},
		{
			name:    "invalid email",
			fixture: contactFixture{FirstName: "John", Email: "not-an-email"},
			wantMsg: "Email must be a valid email address",
		},
		{
			name:    "non-numeric phone",
			fixture: contactFixture{FirstName: "John", Phone: "081-234-5678"},
			wantMsg: "Phone must contain only digits",
		},
		{
			name:    "short phone",
			fixture: contactFixture{FirstName: "John", Phone: "0812345"},
			wantMsg: "Phone must be at least 11 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateStruct(&tt.fixture)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Expected message to contain %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	t.Parallel()

	t.Run("passes for valid value", func(t *testing.T) {
		t.Parallel()
		if err := ValidateVar("id", int64(42), "required,gt=0"); err != nil {
			t.Errorf("Expected nil error, got %v", err)
		}
	})

	t.Run("uses the given name in messages", func(t *testing.T) {
		t.Parallel()
		err := ValidateVar("contact_id", int64(0), "required,gt=0")
		if err == nil {
			t.Fatal("Expected validation error, got nil")
		}
		if !strings.Contains(err.Error(), "contact_id") {
			t.Errorf("Expected message to name contact_id, got %q", err.Error())
		}
	})
}

func TestGetValidator(t *testing.T) {
	t.Parallel()

	t.Run("returns the same instance", func(t *testing.T) {
		t.Parallel()
		if GetValidator() != GetValidator() {
			t.Error("Expected singleton validator instance")
		}
	})
}
