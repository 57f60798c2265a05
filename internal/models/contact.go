// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package models

// Contact is a single address-book entry owned by a user. Every read and
// mutation is scoped to (id, username); a contact id alone never resolves
// to a row for another owner.
type Contact struct {
	ID        int64  `json:"id"`
	Username  string `json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// ContactProjection is the public view of a contact.
type ContactProjection struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Projection returns the public view of the contact.
func (c *Contact) Projection() ContactProjection {
	return ContactProjection{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}
