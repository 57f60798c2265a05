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

// CreateAddress inserts an address and fills in its assigned id.
func (db *DB) CreateAddress(ctx context.Context, address *models.Address) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	result, err := db.conn.ExecContext(ctx, `
		INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
		VALUES (?, ?, ?, ?, ?, ?)
	`, address.ContactID, address.Street, address.City, address.Province,
		address.Country, address.PostalCode)
	if err != nil {
		return fmt.Errorf("failed to insert address: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read address id: %w", err)
	}
	address.ID = id
	return nil
}

// GetAddress retrieves an address scoped to its contact.
// Returns ErrNotFound when no row matches (id, contact_id).
func (db *DB) GetAddress(ctx context.Context, contactID, id int64) (*models.Address, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	row := db.conn.QueryRowContext(ctx, `
		SELECT id, contact_id, street, city, province, country, postal_code
		FROM addresses
		WHERE id = ? AND contact_id = ?
	`, id, contactID)
	return scanAddress(row)
}

// ListAddresses returns every address of a contact. An empty slice is a
// valid result, not an error.
func (db *DB) ListAddresses(ctx context.Context, contactID int64) ([]models.Address, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, contact_id, street, city, province, country, postal_code
		FROM addresses
		WHERE contact_id = ?
		ORDER BY id
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		var address models.Address
		if err := rows.Scan(&address.ID, &address.ContactID, &address.Street,
			&address.City, &address.Province, &address.Country, &address.PostalCode); err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate addresses: %w", err)
	}
	return addresses, nil
}

// CountAddress reports whether an address exists within the contact's scope.
func (db *DB) CountAddress(ctx context.Context, contactID, id int64) (int, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var count int
	err := db.conn.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM addresses WHERE id = ? AND contact_id = ?
	`, id, contactID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count addresses: %w", err)
	}
	return count, nil
}

// UpdateAddress replaces the mutable fields of an address, scoped to its
// contact. Returns ErrNotFound when no row matches (id, contact_id).
func (db *DB) UpdateAddress(ctx context.Context, address *models.Address) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	result, err := db.conn.ExecContext(ctx, `
		UPDATE addresses
		SET street = ?, city = ?, province = ?, country = ?, postal_code = ?
		WHERE id = ? AND contact_id = ?
	`, address.Street, address.City, address.Province, address.Country,
		address.PostalCode, address.ID, address.ContactID)
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAddress removes an address scoped to its contact.
// Returns ErrNotFound when no row matches (id, contact_id).
func (db *DB) DeleteAddress(ctx context.Context, contactID, id int64) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	result, err := db.conn.ExecContext(ctx, `
		DELETE FROM addresses WHERE id = ? AND contact_id = ?
	`, id, contactID)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// scanAddress scans a single address row, mapping sql.ErrNoRows to
// ErrNotFound.
func scanAddress(row *sql.Row) (*models.Address, error) {
	var address models.Address
	err := row.Scan(&address.ID, &address.ContactID, &address.Street,
		&address.City, &address.Province, &address.Country, &address.PostalCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan address: %w", err)
	}
	return &address, nil
}
