// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package models

// Request schemas. The validate tags follow go-playground/validator v10
// syntax; validation collects every failing field so clients see the full
// aggregate message in one round trip.

// RegisterUserRequest is the body of POST /api/users.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=5,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,min=5,max=100"`
}

// LoginUserRequest is the body of POST /api/users/login. Unknown body
// fields are rejected at decode time.
type LoginUserRequest struct {
	Username string `json:"username" validate:"required,min=5,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest is the body of PATCH /api/users/current. Both fields
// are optional; only the ones present are applied.
type UpdateUserRequest struct {
	Name     string `json:"name" validate:"omitempty,min=5,max=100"`
	Password string `json:"password" validate:"omitempty,max=100"`
}

// UsernameSchema validates bare usernames (get/logout flows).
const UsernameSchema = "required,min=5,max=100"

// IDSchema validates bare numeric ids from path parameters.
const IDSchema = "required,gt=0"

// CreateContactRequest is the body of POST /api/contacts.
type CreateContactRequest struct {
	FirstName string `json:"first_name" validate:"required,min=3,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,min=3,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone" validate:"omitempty,numeric,min=11,max=100"`
}

// UpdateContactRequest is the body of PUT /api/contacts/{id}; the id comes
// from the path and must be positive.
type UpdateContactRequest struct {
	ID        int64  `json:"id" validate:"required,gt=0"`
	FirstName string `json:"first_name" validate:"required,min=3,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,min=3,max=100"`
	Email     string `json:"email" validate:"omitempty,email,max=100"`
	Phone     string `json:"phone" validate:"omitempty,numeric,min=11,max=100"`
}

// SearchContactsRequest holds the query parameters of GET /api/contacts.
type SearchContactsRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Page  int    `json:"page" validate:"min=1"`
	Size  int    `json:"size" validate:"min=1,max=100"`
}

// ApplyDefaults fills in pagination defaults for omitted parameters.
// Called before validation, matching the schema's default semantics.
func (r *SearchContactsRequest) ApplyDefaults() {
	if r.Page == 0 {
		r.Page = 1
	}
	if r.Size == 0 {
		r.Size = 10
	}
}

// CreateAddressRequest is the body of POST /api/contacts/{id}/addresses.
type CreateAddressRequest struct {
	Street     string `json:"street" validate:"omitempty,min=3"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}

// UpdateAddressRequest is the body of PUT /api/contacts/{cid}/addresses/{aid};
// the address id comes from the path and must be positive.
type UpdateAddressRequest struct {
	ID         int64  `json:"id" validate:"required,gt=0"`
	Street     string `json:"street" validate:"omitempty,min=3"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
}
