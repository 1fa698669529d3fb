// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"userdir/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when an insert is rejected by the unique
// index on the email column. The index is the authoritative uniqueness
// check; callers must not rely on a separate read-before-write.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user and fills in the store-generated ID and timestamps.
	// Returns ErrDuplicateEmail when the email unique index rejects the insert.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	// Returns ErrUserNotFound when no record matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindAll retrieves every user in store order. No ordering is guaranteed.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindAllByEmail retrieves every user with the given (normalized) email.
	// The schema makes email unique, but authentication scans candidates
	// defensively rather than trusting that.
	FindAllByEmail(ctx context.Context, email string) ([]*entity.User, error)

	// FindAllByUsername retrieves every user with the given username.
	// Usernames are not unique, so multiple records are expected.
	FindAllByUsername(ctx context.Context, username string) ([]*entity.User, error)

	// Delete removes the user with the given ID.
	// Returns ErrUserNotFound when the delete affected no rows, e.g. when the
	// record vanished between a lookup and the delete.
	Delete(ctx context.Context, id uuid.UUID) error

	// AttachArticle inserts the article ID into the user's article set.
	// Inserting an already-present article is a no-op, not an error.
	// Returns ErrUserNotFound when the user does not exist.
	AttachArticle(ctx context.Context, userID uuid.UUID, articleID string) error
}
