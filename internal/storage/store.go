// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"tripsplit/internal/models"
)

// Store defines the interface for tripsplit persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Lookup methods return (nil, nil) when the record does not exist;
// callers translate absence into their own error kinds.
type Store interface {
	// CreateUser persists a new user. The email must be unique.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// CreateGroup persists a new group together with its member set.
	// ID and CreatedAt are populated by the store if unset.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by ID, including its members.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsByCreator retrieves all groups created by the given
	// user. Iteration order is not guaranteed.
	ListGroupsByCreator(ctx context.Context, creatorEmail string) ([]*models.Group, error)

	// CreateExpense persists a new expense together with its
	// participant set. ID and CreatedAt are populated if unset.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpensesByGroup retrieves all expenses for a group,
	// newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}
