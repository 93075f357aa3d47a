package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a doctor account. The system runs single-tenant in practice
// (one seeded user), but nothing below assumes that.
type User struct {
	ID               uuid.UUID      `gorm:"primaryKey;size:36" json:"id"`
	Email            string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash     string         `gorm:"size:500;not null" json:"-"`
	FullName         string         `gorm:"size:255;not null" json:"fullName"`
	Crm              string         `gorm:"uniqueIndex;size:20;not null" json:"crm"`
	DigitalSignature *string        `gorm:"type:text" json:"digitalSignature,omitempty"`
	LogoURL          *string        `gorm:"size:500" json:"logoUrl,omitempty"`
	IsActive         bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id uuid.UUID) (*User, error)
	FindByEmail(email string) (*User, error)
}
