// Rolodex - Contacts Management REST Backend
// Copyright 2026 Rolodex Contributors
// SPDX-License-Identifier: MIT
// https://github.com/rolodex-api/rolodex

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rolodex-api/rolodex/internal/auth"
	"github.com/rolodex-api/rolodex/internal/database"
	"github.com/rolodex-api/rolodex/internal/logging"
	"github.com/rolodex-api/rolodex/internal/models"
	"github.com/rolodex-api/rolodex/internal/validation"
)

// UserService implements account registration, login, profile access, and
// logout.
type UserService struct {
	db     *database.DB
	hasher *auth.PasswordHasher
}

// NewUserService creates a UserService backed by the given database handle
// and password hasher.
func NewUserService(db *database.DB, hasher *auth.PasswordHasher) *UserService {
	return &UserService{db: db, hasher: hasher}
}

// Register creates a new account. The username must be unique; the
// password is hashed before it is persisted and never returned.
func (s *UserService) Register(ctx context.Context, req *models.RegisterUserRequest) (*models.UserProjection, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, BadRequest(err.Error())
	}

	count, err := s.db.CountUsersByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, Conflict(fmt.Sprintf("Username %s already exists.", req.Username))
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: hash,
		Name:     req.Name,
	}
	if err := s.db.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Str("username", user.Username).Msg("user registered")
	projection := user.Projection()
	return &projection, nil
}

// Login verifies credentials and issues a fresh opaque token. An unknown
// username and a wrong password produce the same generic message so the
// endpoint cannot be used to enumerate accounts.
func (s *UserService) Login(ctx context.Context, req *models.LoginUserRequest) (*models.TokenProjection, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, BadRequest(err.Error())
	}

	user, err := s.db.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, Unauthorized("username or password wrong")
		}
		return nil, err
	}
	if !s.hasher.Verify(user.Password, req.Password) {
		return nil, Unauthorized("username or password wrong")
	}

	token := auth.GenerateToken()
	if err := s.db.SetUserToken(ctx, user.Username, &token); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Str("username", user.Username).Msg("user logged in")
	return &models.TokenProjection{Token: token}, nil
}

// Get returns the public profile of a user.
func (s *UserService) Get(ctx context.Context, username string) (*models.UserProjection, error) {
	if err := validation.ValidateVar("username", username, models.UsernameSchema); err != nil {
		return nil, BadRequest(err.Error())
	}

	user, err := s.db.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NotFound("user not found")
		}
		return nil, err
	}

	projection := user.Projection()
	return &projection, nil
}

// Update applies a partial profile update: only the fields present in the
// patch change, and a new password is re-hashed before it is stored.
func (s *UserService) Update(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.UserProjection, error) {
	if err := validation.ValidateStruct(req); err != nil {
		return nil, BadRequest(err.Error())
	}

	user, err := s.db.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NotFound("user not found")
		}
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.db.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NotFound("user not found")
		}
		return nil, err
	}

	projection := user.Projection()
	return &projection, nil
}

// Logout clears the user's session token. The token stays valid until this
// call; there is no expiry.
func (s *UserService) Logout(ctx context.Context, username string) (*models.UserProjection, error) {
	if err := validation.ValidateVar("username", username, models.UsernameSchema); err != nil {
		return nil, BadRequest(err.Error())
	}

	user, err := s.db.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NotFound("user not found")
		}
		return nil, err
	}

	if err := s.db.SetUserToken(ctx, user.Username, nil); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, NotFound("user not found")
		}
		return nil, err
	}

	logging.Ctx(ctx).Info().Str("username", user.Username).Msg("user logged out")
	projection := user.Projection()
	return &projection, nil
}
