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

// CreateContact inserts a contact and fills in its assigned id.
func (db *DB) CreateContact(ctx context.Context, contact *models.Contact) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	result, err := db.conn.ExecContext(ctx, `
		INSERT INTO contacts (username, first_name, last_name, email, phone)
		VALUES (?, ?, ?, ?, ?)
	`, contact.Username, contact.FirstName, contact.LastName, contact.Email, contact.Phone)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read contact id: %w", err)
	}
	contact.ID = id
	return nil
}

// GetContact retrieves a contact scoped to its owner.
// Returns ErrNotFound when no row matches (id, username); a contact is
// never visible to a non-owner.
func (db *DB) GetContact(ctx context.Context, username string, id int64) (*models.Contact, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	row := db.conn.QueryRowContext(ctx, `
		SELECT id, username, first_name, last_name, email, phone
		FROM contacts
		WHERE id = ? AND username = ?
	`, id, username)

	var contact models.Contact
	err := row.Scan(&contact.ID, &contact.Username, &contact.FirstName,
		&contact.LastName, &contact.Email, &contact.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan contact: %w", err)
	}
	return &contact, nil
}

// CountContact reports whether a contact exists within the owner's scope.
func (db *DB) CountContact(ctx context.Context, username string, id int64) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var count int
	err := db.conn.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM contacts WHERE id = ? AND username = ?
	`, id, username).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return count, nil
}

// UpdateContact replaces the mutable fields of an owned contact.
// Returns ErrNotFound when no row matches (id, username).
func (db *DB) UpdateContact(ctx context.Context, contact *models.Contact) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	result, err := db.conn.ExecContext(ctx, `
		UPDATE contacts
		SET first_name = ?, last_name = ?, email = ?, phone = ?
		WHERE id = ? AND username = ?
	`, contact.FirstName, contact.LastName, contact.Email, contact.Phone,
		contact.ID, contact.Username)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteContact removes an owned contact. The schema cascades the delete
// to the contact's addresses. Returns ErrNotFound when no row matches.
func (db *DB) DeleteContact(ctx context.Context, username string, id int64) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	result, err := db.conn.ExecContext(ctx, `
		DELETE FROM contacts WHERE id = ? AND username = ?
	`, id, username)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// SearchContacts returns one page of contacts matching the filter plus the
// total match count (ignoring limit/offset) for paging metadata.
func (db *DB) SearchContacts(ctx context.Context, filter *ContactFilter) ([]models.Contact, int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	where, args := filter.buildConditions()

	query := fmt.Sprintf(`
		SELECT id, username, first_name, last_name, email, phone
		FROM contacts
		WHERE %s
		ORDER BY id
		LIMIT ? OFFSET ?
	`, where)

	rows, err := db.conn.QueryContext(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search contacts: %w", err)
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var contact models.Contact
		if err := rows.Scan(&contact.ID, &contact.Username, &contact.FirstName,
			&contact.LastName, &contact.Email, &contact.Phone); err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM contacts WHERE %s`, where)
	if err := db.conn.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count search matches: %w", err)
	}

	return contacts, total, nil
}
