package postgres

import (
	"context"

	"userdir/internal/domain/entity"
	"userdir/internal/domain/repository"
	"userdir/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain's UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user. The database generates the ID; the unique index
// on email is the authoritative duplicate check, so a rejected insert maps
// straight to ErrDuplicateEmail without any prior read.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required user information")
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID, including the article set.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Articles").
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindAll retrieves every user in store order.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userMs []model.UserModel
	if err := repo.db.WithContext(ctx).Preload("Articles").Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return toUserDomainSlice(userMs), nil
}

// FindAllByEmail retrieves every user with the given email, in store order.
func (repo *userRepository) FindAllByEmail(ctx context.Context, email string) ([]*entity.User, error) {
	var userMs []model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Articles").
		Where("email = ?", email).
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by email")
	}

	return toUserDomainSlice(userMs), nil
}

// FindAllByUsername retrieves every user with the given username, in store order.
func (repo *userRepository) FindAllByUsername(ctx context.Context, username string) ([]*entity.User, error) {
	var userMs []model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Articles").
		Where("username = ?", username).
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users by username")
	}

	return toUserDomainSlice(userMs), nil
}

// Delete removes the user row; article rows go with it via ON DELETE CASCADE.
// Zero rows affected means the record vanished between lookup and delete,
// which is reported as not-found rather than a store failure.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AttachArticle set-inserts the article row. The composite primary key plus
// ON CONFLICT DO NOTHING makes re-attachment a no-op, and the foreign key
// rejects articles for users that do not exist.
func (repo *userRepository) AttachArticle(ctx context.Context, userID uuid.UUID, articleID string) error {
	row := model.UserArticleModel{
		UserID:    userID,
		ArticleID: articleID,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to attach article")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
// The stored article rows collapse into a plain ID slice.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	articles := make([]string, 0, len(data.Articles))
	for _, row := range data.Articles {
		articles = append(articles, row.ArticleID)
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Articles:     articles,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toUserDomainSlice(data []model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(data))
	for i := range data {
		users = append(users, toUserDomain(&data[i]))
	}

	return users
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
// The ID stays zero so the database default generates it.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	articles := make([]model.UserArticleModel, 0, len(data.Articles))
	for _, articleID := range data.Articles {
		articles = append(articles, model.UserArticleModel{ArticleID: articleID})
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		Articles:     articles,
	}
}
