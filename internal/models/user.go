// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

// Package models defines the persisted entities and the projections returned
// to API clients. Projections never carry sensitive fields; the password hash
// in particular stays inside the database package and the services.
package models

// User is a registered account. Username is the natural key.
type User struct {
	Username string `json:"username"`
	// Password holds the bcrypt hash, never the plaintext.
	Password string `json:"-"`
	Name     string `json:"name"`
	// Token is the opaque bearer session marker. Nil means logged out.
	Token *string `json:"-"`
}

// UserProjection is the public view of a user.
type UserProjection struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Projection returns the public view of the user.
func (u *User) Projection() UserProjection {
	return UserProjection{Username: u.Username, Name: u.Name}
}

// TokenProjection is returned by login.
type TokenProjection struct {
	Token string `json:"token"`
}
