// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"userdir/internal/domain/entity"
	domainerrors "userdir/internal/domain/errors"
	"userdir/internal/domain/repository"
	"userdir/internal/domain/service"
	"userdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	validator service.InputValidator
	logger    *slog.Logger
}

// NewDirectoryService is the constructor for directoryService. It receives all dependencies as interfaces.
func NewDirectoryService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	validator service.InputValidator,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	return &directoryService{
		userRepo:  userRepo,
		hasher:    hasher,
		validator: validator,
		logger:    logger,
	}
}

// Register creates a new account. Validation runs before any store access so
// an invalid request never leaves partial state. Duplicate detection is the
// store's unique index on email; its rejection is the authoritative conflict.
func (srv *directoryService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)

	srv.logger.Info("Starting registration", slog.String("email", email))

	if !srv.validator.IsEmail(email) {
		return nil, errors.WithStack(domainerrors.NewFieldValidationError("email", email, "must be a valid email address"))
	}
	if !srv.validator.IsAlphanumeric(username) {
		return nil, errors.WithStack(domainerrors.NewFieldValidationError("username", username, "must be alphanumeric"))
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.logger.Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.logger.Warn("Registration rejected, email already registered", slog.String("email", email))

			return nil, domainerrors.ErrEmailTaken.WrapMessage("registration failed")
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	// Return the persisted record rather than echoing the input back.
	registered, err := srv.userRepo.FindByID(ctx, newUser.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrPersistenceFailed.WrapMessage("created user could not be read back")
		}

		return nil, errors.Wrap(err, "failed to read back created user")
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", registered.ID))

	return registered, nil
}

// Get retrieves a single account by its string identifier.
func (srv *directoryService) Get(ctx context.Context, id string) (*entity.User, error) {
	userID, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get user failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// List retrieves every account. No ordering is imposed beyond the store's own.
func (srv *directoryService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Delete removes an account and returns the pre-delete snapshot. A record
// deleted concurrently between the lookup and the delete surfaces as
// not-found, the same as if it never existed.
func (srv *directoryService) Delete(ctx context.Context, id string) (*entity.User, error) {
	userID, err := parseUserID(id)
	if err != nil {
		return nil, err
	}

	snapshot, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("delete user failed")
		}

		return nil, errors.Wrap(err, "failed to find user before delete")
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user already deleted")
		}

		return nil, errors.Wrap(err, "failed to delete user")
	}

	srv.logger.Info("User deleted", slog.Any("userID", snapshot.ID))

	return snapshot, nil
}

// AttachArticle set-inserts an article ID into the account's article set.
// Attaching an article that is already present succeeds without effect; the
// composite key in the store collapses the duplicate.
func (srv *directoryService) AttachArticle(ctx context.Context, userID, articleID string) (*entity.User, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	article := strings.TrimSpace(articleID)
	if article == "" {
		return nil, errors.WithStack(domainerrors.NewFieldValidationError("articleId", articleID, "must not be empty"))
	}

	if err := srv.userRepo.AttachArticle(ctx, id, article); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("attach article failed")
		}

		return nil, errors.Wrap(err, "failed to attach article")
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user deleted while attaching article")
		}

		return nil, errors.Wrap(err, "failed to read back user after attaching article")
	}

	srv.logger.Debug("Article attached", slog.Any("userID", user.ID), slog.String("articleID", article))

	return user, nil
}

// AuthenticateByEmail authenticates against every account carrying the email.
// The schema makes email unique, but the scan does not trust that: candidates
// are checked in store order and the first hash match wins.
func (srv *directoryService) AuthenticateByEmail(ctx context.Context, email, password string) (*entity.User, error) {
	normalized := normalizeEmail(email)

	if !srv.validator.IsEmail(normalized) {
		return nil, errors.WithStack(domainerrors.NewFieldValidationError("email", normalized, "must be a valid email address"))
	}

	candidates, err := srv.userRepo.FindAllByEmail(ctx, normalized)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidates for email authentication")
	}

	return srv.matchCredential(candidates, password, slog.String("email", normalized))
}

// AuthenticateByUsername authenticates against every account carrying the
// username. Usernames are not unique, so the linear scan is load bearing here.
func (srv *directoryService) AuthenticateByUsername(ctx context.Context, username, password string) (*entity.User, error) {
	trimmed := strings.TrimSpace(username)

	if !srv.validator.IsAlphanumeric(trimmed) {
		return nil, errors.WithStack(domainerrors.NewFieldValidationError("username", trimmed, "must be alphanumeric"))
	}

	candidates, err := srv.userRepo.FindAllByUsername(ctx, trimmed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidates for username authentication")
	}

	return srv.matchCredential(candidates, password, slog.String("username", trimmed))
}

// matchCredential verifies the plaintext candidate against each stored hash
// in store order. Unknown identifier and wrong password produce the same
// error so callers cannot tell registered accounts from unregistered ones.
func (srv *directoryService) matchCredential(candidates []*entity.User, password string, attr slog.Attr) (*entity.User, error) {
	for _, candidate := range candidates {
		if srv.hasher.Check(password, candidate.PasswordHash) {
			srv.logger.Debug("Authentication succeeded", slog.Any("userID", candidate.ID))

			return candidate, nil
		}
	}

	srv.logger.Warn("Authentication failed", attr)

	return nil, domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// parseUserID validates identifier syntax before any store access.
func parseUserID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.NewFieldValidationError("id", id, "must be a valid UUID"))
	}

	return parsed, nil
}
