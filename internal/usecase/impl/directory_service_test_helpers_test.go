package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"userdir/internal/domain/entity"
	"userdir/internal/infra/validate"
	"userdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// mockUserRepository is a hand-written testify mock of repository.UserRepository.
type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindAllByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	args := m.Called(ctx, email)
	if users := args.Get(0); users != nil {
		return users.([]*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) FindAllByUsername(ctx context.Context, username string) ([]*entity.User, error) {
	args := m.Called(ctx, username)
	if users := args.Get(0); users != nil {
		return users.([]*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockUserRepository) AttachArticle(ctx context.Context, userID uuid.UUID, articleID string) error {
	args := m.Called(ctx, userID, articleID)

	return args.Error(0)
}

// mockPasswordHasher is a hand-written testify mock of service.PasswordHasher.
type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

func (m *mockPasswordHasher) ValidatePasswordStrength(password string) error {
	args := m.Called(password)

	return args.Error(0)
}

// directoryServiceFixtures holds the service under test and its mocks.
// The input validator is the real implementation: it is a pure function and
// mocking it would only restate its behavior.
type directoryServiceFixtures struct {
	service  usecase.DirectoryUsecase
	userRepo *mockUserRepository
	hasher   *mockPasswordHasher
}

func createTestDirectoryService(t *testing.T) directoryServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepository{}
	hasher := &mockPasswordHasher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewDirectoryService(userRepo, hasher, validate.New(), logger)

	return directoryServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}
