// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"userdir/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// DirectoryUsecase is the contract for all reads and writes of user records.
// Every operation validates its input before touching the store and returns
// either a domain entity or a classified error from internal/domain/errors.
// Identifiers cross this boundary as plain strings; the store's native
// identifier type never reaches callers.
type DirectoryUsecase interface {
	// Register creates a new account after validation and duplicate detection.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Get retrieves a single account by its string identifier.
	Get(ctx context.Context, id string) (*entity.User, error)

	// List retrieves every account in store order.
	List(ctx context.Context) ([]*entity.User, error)

	// Delete removes an account and returns its pre-delete snapshot.
	Delete(ctx context.Context, id string) (*entity.User, error)

	// AttachArticle adds an article ID to the account's article set.
	// Attaching an already-present article succeeds without effect.
	AttachArticle(ctx context.Context, userID, articleID string) (*entity.User, error)

	// AuthenticateByEmail returns the first account whose stored hash matches
	// the supplied password among all accounts with the given email.
	AuthenticateByEmail(ctx context.Context, email, password string) (*entity.User, error)

	// AuthenticateByUsername is the username-keyed variant. Usernames are not
	// unique, so several candidates may be scanned.
	AuthenticateByUsername(ctx context.Context, username, password string) (*entity.User, error)
}
