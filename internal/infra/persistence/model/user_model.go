// Package model contains the GORM persistence models. They mirror the
// database schema and never leave the persistence layer; repositories map
// them to domain entities at the boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The primary key is generated by
// Postgres; the unique index on email is the authoritative uniqueness check
// for registration.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username     string    `gorm:"type:varchar(100);index;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Articles []UserArticleModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserArticleModel mirrors the 'user_articles' table, one row per article a
// user has authored. The composite primary key gives the article set its
// no-duplicates invariant at the store level.
type UserArticleModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ArticleID string    `gorm:"type:varchar(255);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserArticleModel) TableName() string {
	return "user_articles"
}
