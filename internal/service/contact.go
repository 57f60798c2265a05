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

// ContactService implements owner-scoped contact CRUD and paginated search.
// Every operation filters by both the contact id and the owning username;
// an id alone never resolves to another user's contact.
type ContactService struct {
	db *database.DB
}

// NewContactService creates a ContactService backed by the given database
// handle.
func NewContactService(db *database.DB) *ContactService {
	return &ContactService{db: db}
}

// Create stores a new contact owned by the user.
func (s *ContactService) Create(ctx context.Context, user *models.User, req *models.CreateContactRequest) (*models.ContactProjection, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, BadRequest(err.Error())
	}

	contact := &models.Contact{
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.db.CreateContact(ctx, contact); err != nil {
		return nil, err
	}

	projection := contact.Projection()
	return &projection, nil
}

// Get returns an owned contact by id.
func (s *ContactService) Get(ctx context.Context, user *models.User, id int64) (*models.ContactProjection, error) {
	if err := validation.ValidateVar("id", id, models.IDSchema); err != nil {
		return nil, BadRequest(err.Error())
	}

	contact, err := s.db.GetContact(ctx, user.Username, id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NotFound("contact not found")
		}
		return nil, err
	}

	projection := contact.Projection()
	return &projection, nil
}

// Update replaces the fields of an owned contact.
func (s *ContactService) Update(ctx context.Context, user *models.User, req *models.UpdateContactRequest) (*models.ContactProjection, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, BadRequest(err.Error())
	}

	contact := &models.Contact{
		ID:        req.ID,
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.db.UpdateContact(ctx, contact); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NotFound("contact not found")
		}
		return nil, err
	}

	projection := contact.Projection()
	return &projection, nil
}

// Remove deletes an owned contact. The persistence layer cascades the
// delete to the contact's addresses.
func (s *ContactService) Remove(ctx context.Context, user *models.User, id int64) error {
	if err := validation.ValidateVar("id", id, models.IDSchema); err != nil {
		return BadRequest(err.Error())
	}

	if err := s.db.DeleteContact(ctx, user.Username, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return NotFound("contact not found")
		}
		return err
	}
	return nil
}

// Search returns one page of the user's contacts matching the filters,
// plus paging metadata computed from the total match count. An empty page
// is a valid result.
func (s *ContactService) Search(ctx context.Context, user *models.User, req *models.SearchContactsRequest) ([]models.ContactProjection, models.Paging, error) {
	req.ApplyDefaults()
	if err := validation.ValidateStruct(req); err != nil {
		return nil, models.Paging{}, BadRequest(err.Error())
	}

	filter := &database.ContactFilter{
		Username: user.Username,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Limit:    req.Size,
		Offset:   (req.Page - 1) * req.Size,
	}

	contacts, total, err := s.db.SearchContacts(ctx, filter)
	if err != nil {
		return nil, models.Paging{}, err
	}

	projections := make([]models.ContactProjection, len(contacts))
	for i := range contacts {
		projections[i] = contacts[i].Projection()
	}
	return projections, models.NewPaging(req.Page, req.Size, total), nil
}
