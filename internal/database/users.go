// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rolodex-api/rolodex/internal/models"
)

// CreateUser inserts a new user row. The password must already be hashed.
func (db *DB) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO users (username, password, name, token)
		VALUES (?, ?, ?, ?)
	`, user.Username, user.Password, user.Name, user.Token)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByUsername retrieves a user by username.
// Returns ErrNotFound when no such user exists.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	row := db.conn.QueryRowContext(ctx, `
		SELECT username, password, name, token
		FROM users
		WHERE username = ?
	`, username)
	return scanUser(row)
}

// GetUserByToken retrieves the user whose stored token equals the given
// value. Returns ErrNotFound when the token matches no user. The empty
// token never matches: logged-out users store NULL.
func (db *DB) GetUserByToken(ctx context.Context, token string) (*models.User, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	row := db.conn.QueryRowContext(ctx, `
		SELECT username, password, name, token
		FROM users
		WHERE token = ?
	`, token)
	return scanUser(row)
}

// CountUsersByUsername reports how many users carry the given username.
// Used by registration to detect duplicates before inserting.
func (db *DB) CountUsersByUsername(ctx context.Context, username string) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var count int
	err := db.conn.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM users WHERE username = ?
	`, username).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// UpdateUser applies name and password changes to an existing user.
// Returns ErrNotFound when the user no longer exists.
func (db *DB) UpdateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	result, err := db.conn.ExecContext(ctx, `
		UPDATE users SET password = ?, name = ? WHERE username = ?
	`, user.Password, user.Name, user.Username)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// SetUserToken stores a fresh session token for the user. A nil token
// clears the session (logout).
func (db *DB) SetUserToken(ctx context.Context, username string, token *string) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	result, err := db.conn.ExecContext(ctx, `
		UPDATE users SET token = ? WHERE username = ?
	`, token, username)
	if err != nil {
		return fmt.Errorf("failed to set user token: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// scanUser scans a single user row, mapping sql.ErrNoRows to ErrNotFound.
func scanUser(row *sql.Row) (*models.User, error) {
	var (
		user  models.User
		token sql.NullString
	)
	if err := row.Scan(&user.Username, &user.Password, &user.Name, &token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	if token.Valid {
		user.Token = &token.String
	}
	return &user, nil
}
