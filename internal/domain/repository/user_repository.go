// Package repository defines the persistence contracts the domain depends on.
// Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"quill/internal/domain/entity"
	"quill/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup key.
// It stays internal to the service layer; the delivery layer never sees it
// directly, so "no such account" can be merged into the generic auth failure.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create persists a new user. A duplicate email surfaces as the
	// domain-level conflict error, not as a raw database error.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID, or ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
