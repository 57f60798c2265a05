// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

// Package service implements the business core: user accounts, owner-scoped
// contact CRUD with paginated search, and contact-scoped address CRUD.
//
// Domain failures are ordinary typed values (*Error) returned up the stack
// and translated to HTTP exactly once, in the api package. Services never
// swallow errors and raise on the first failing precondition.
package service

import (
	"errors"
	"net/http"
)

// Error is a domain failure carrying the HTTP status it maps to.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// BadRequest is a validation failure (400).
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Conflict is a duplicate-resource failure. It maps to 400, matching the
// register endpoint's contract.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Unauthorized is an authentication failure (401).
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NotFound is an entity or owned-scope lookup miss (404).
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// AsError extracts a domain error. Returns nil for unclassified failures,
// which the boundary surfaces as 500.
func AsError(err error) *Error {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}
