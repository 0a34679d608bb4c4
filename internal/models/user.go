package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole distinguishes end users from the trainers who author plans.
type UserRole string

const (
	RoleUser    UserRole = "user"
	RoleTrainer UserRole = "trainer"
)

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleTrainer
}

type User struct {
	ID           uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         UserRole       `gorm:"size:20;not null;default:'user'" json:"role"`
}
