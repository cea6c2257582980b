package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatOwnedByUser scopes chat messages to one user's transcript.
type ChatOwnedByUser struct {
	UserID uuid.UUID
}

func (s ChatOwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByRole filters a transcript by speaker.
type ByRole struct {
	Role string
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", s.Role)
}
