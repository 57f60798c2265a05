// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the core database tables and indexes.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			name     TEXT NOT NULL,
			token    TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS contacts (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			username   TEXT NOT NULL REFERENCES users(username),
			first_name TEXT NOT NULL,
			last_name  TEXT NOT NULL DEFAULT '',
			email      TEXT NOT NULL DEFAULT '',
			phone      TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS addresses (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			contact_id  INTEGER NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
			street      TEXT NOT NULL DEFAULT '',
			city        TEXT NOT NULL DEFAULT '',
			province    TEXT NOT NULL DEFAULT '',
			country     TEXT NOT NULL,
			postal_code TEXT NOT NULL
		)`,

		// Token lookup happens on every authenticated request.
		`CREATE INDEX IF NOT EXISTS idx_users_token ON users(token)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_username ON contacts(username)`,
		`CREATE INDEX IF NOT EXISTS idx_addresses_contact_id ON addresses(contact_id)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}
