// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package service

import (
	"context"
	"errors"

	"github.com/rolodex-api/rolodex/internal/database"
	"github.com/rolodex-api/rolodex/internal/models"
	"github.com/rolodex-api/rolodex/internal/validation"
)

// AddressService implements address CRUD reachable only through a contact
// the requesting user owns. Every operation first proves the parent
// contact exists within the user's scope; address lookups are then scoped
// to (id, contact_id) so ids never leak across contacts.
//
// The existence check and the following mutation are two separate calls,
// not one transaction. The race window is accepted: a contact deleted in
// between surfaces as a foreign key failure or a NotFound, never as an
// orphaned address, because the schema cascades deletes.
type AddressService struct {
	db *database.DB
}

// NewAddressService creates an AddressService backed by the given database
// handle.
func NewAddressService(db *database.DB) *AddressService {
	return &AddressService{db: db}
}

// checkContactExists validates the contact id and proves the contact
// belongs to the user. Every address operation begins here.
func (s *AddressService) checkContactExists(ctx context.Context, user *models.User, contactID int64) error {
	if err := validation.ValidateVar("contact_id", contactID, models.IDSchema); err != nil {
		return BadRequest(err.Error())
	}

	count, err := s.db.CountContact(ctx, user.Username, contactID)
	if err != nil {
		return err
	}
	if count != 1 {
		return NotFound("contact not found")
	}
	return nil
}

// Create stores a new address under an owned contact.
func (s *AddressService) Create(ctx context.Context, user *models.User, contactID int64, req *models.CreateAddressRequest) (*models.AddressProjection, error) {
	if err := s.checkContactExists(ctx, user, contactID); err != nil {
		return nil, err
	}
	if err := validation.ValidateStruct(req); err != nil {
		return nil, BadRequest(err.Error())
	}

	address := &models.Address{
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	if err := s.db.CreateAddress(ctx, address); err != nil {
		return nil, err
	}

	projection := address.Projection()
	return &projection, nil
}

// Update replaces the fields of an address under an owned contact.
func (s *AddressService) Update(ctx context.Context, user *models.User, contactID int64, req *models.UpdateAddressRequest) (*models.AddressProjection, error) {
	if err := s.checkContactExists(ctx, user, contactID); err != nil {
		return nil, err
	}
	if err := validation.ValidateStruct(req); err != nil {
		return nil, BadRequest(err.Error())
	}

	address := &models.Address{
		ID:         req.ID,
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	if err := s.db.UpdateAddress(ctx, address); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NotFound("address not found")
		}
		return nil, err
	}

	projection := address.Projection()
	return &projection, nil
}

// Get returns one address of an owned contact. The lookup is scoped to
// (id, contact_id), so an id belonging to a different contact yields
// NotFound even when the parent check passed.
func (s *AddressService) Get(ctx context.Context, user *models.User, contactID, addressID int64) (*models.AddressProjection, error) {
	if err := s.checkContactExists(ctx, user, contactID); err != nil {
		return nil, err
	}
	if err := validation.ValidateVar("address_id", addressID, models.IDSchema); err != nil {
		return nil, BadRequest(err.Error())
	}

	address, err := s.db.GetAddress(ctx, contactID, addressID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NotFound("address not found")
		}
		return nil, err
	}

	projection := address.Projection()
	return &projection, nil
}

// List returns every address of an owned contact. An empty list is a
// valid result, not an error.
func (s *AddressService) List(ctx context.Context, user *models.User, contactID int64) ([]models.AddressProjection, error) {
	if err := s.checkContactExists(ctx, user, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.db.ListAddresses(ctx, contactID)
	if err != nil {
		return nil, err
	}

	projections := make([]models.AddressProjection, len(addresses))
	for i := range addresses {
		projections[i] = addresses[i].Projection()
	}
	return projections, nil
}

// Remove deletes one address of an owned contact and returns the
// projection of the deleted record.
func (s *AddressService) Remove(ctx context.Context, user *models.User, contactID, addressID int64) (*models.AddressProjection, error) {
	if err := s.checkContactExists(ctx, user, contactID); err != nil {
		return nil, err
	}
	if err := validation.ValidateVar("address_id", addressID, models.IDSchema); err != nil {
		return nil, BadRequest(err.Error())
	}

	address, err := s.db.GetAddress(ctx, contactID, addressID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NotFound("address not found")
		}
		return nil, err
	}

	if err := s.db.DeleteAddress(ctx, contactID, addressID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NotFound("address not found")
		}
		return nil, err
	}

	projection := address.Projection()
	return &projection, nil
}
