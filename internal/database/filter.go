// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package database

import "strings"

// ContactFilter contains filter parameters for contact search queries.
//
// All filter fields combine using AND logic. Name matches when either
// first_name or last_name contains the value as a case-sensitive substring;
// Email and Phone match by substring containment on their own columns.
// Username is always present: search never crosses the owner boundary.
type ContactFilter struct {
	// Username scopes the search to one owner. Required.
	Username string

	// Name filters on first_name OR last_name substring match.
	Name string

	// Email filters on email substring match.
	Email string

	// Phone filters on phone substring match.
	Phone string

	// Limit is the page size; Offset is (page-1)*size.
	Limit  int
	Offset int
}

// buildConditions generates the WHERE clause conditions and matching
// arguments for the filter. The same conditions drive both the page query
// and the total count so paging metadata stays consistent.
func (f *ContactFilter) buildConditions() (string, []interface{}) {
	conditions := []string{"username = ?"}
	args := []interface{}{f.Username}

	if f.Name != "" {
		conditions = append(conditions, "(instr(first_name, ?) > 0 OR instr(last_name, ?) > 0)")
		args = append(args, f.Name, f.Name)
	}
	if f.Email != "" {
		conditions = append(conditions, "instr(email, ?) > 0")
		args = append(args, f.Email)
	}
	if f.Phone != "" {
		conditions = append(conditions, "instr(phone, ?) > 0")
		args = append(args, f.Phone)
	}

	return strings.Join(conditions, " AND "), args
}
