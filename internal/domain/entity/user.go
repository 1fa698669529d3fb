// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the sole entity of the directory, representing one registered account.
// The password is carried only as a bcrypt hash; the plaintext never reaches
// this struct after registration input has been processed.
type User struct {
	ID           uuid.UUID // Store-generated identifier, immutable after creation.
	Email        string    // Unique login identifier, trim+lowercase normalized.
	Username     string    // Display name, alphanumeric. Uniqueness is not enforced.
	PasswordHash string    // bcrypt hash of the account password.
	Articles     []string  // IDs of articles authored by this user. No duplicates.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// HasArticle reports whether the given article ID is already attached to the user.
func (u *User) HasArticle(articleID string) bool {
	for _, id := range u.Articles {
		if id == articleID {
			return true
		}
	}

	return false
}
