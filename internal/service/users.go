// Package service implements the domain rules of tripsplit on top of a
// storage.Store: user registration and authentication, group creation
// with creator auto-membership, and expense recording with membership
// validation.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"tripsplit/internal/auth"
	"tripsplit/internal/fault"
	"tripsplit/internal/models"
	"tripsplit/internal/storage"
)

// Directory manages user accounts: registration, credential
// verification and lookup by email.
type Directory struct {
	store storage.Store
}

// NewDirectory creates a user directory backed by the given store.
func NewDirectory(store storage.Store) *Directory {
	return &Directory{store: store}
}

// Register creates a new user account with a hashed password.
// The full name defaults to the login username; the registration form
// only carries username and password, so there is nothing better to
// store yet.
func (d *Directory) Register(ctx context.Context, username, password string) (*models.User, error) {
	if err := auth.ValidatePassword(password); err != nil {
		return nil, err
	}

	existing, err := d.store.GetUserByEmail(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, fault.New(fault.Conflict, "email already registered")
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          username,
		FullName:       username,
		HashedPassword: hashed,
	}
	if err := d.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User registered", "email", user.Email)
	return user, nil
}

// Authenticate verifies the email and password, returning the user if
// valid. Unknown email and wrong password produce the same error.
func (d *Directory) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := d.store.GetUserByEmail(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !auth.VerifyPassword(password, user.HashedPassword) {
		return nil, fault.New(fault.Unauthorized, "incorrect email or password")
	}
	return user, nil
}

// Lookup retrieves a user by email. Returns (nil, nil) when absent.
func (d *Directory) Lookup(ctx context.Context, email string) (*models.User, error) {
	return d.store.GetUserByEmail(ctx, email)
}
