package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the account record. The referral code is assigned once at
// registration and never reassigned. ReferrerCode is normalized to upper case
// but not validated against an existing account, so dangling values are legal.
type User struct {
	ID           string  `gorm:"primaryKey;type:uuid" json:"id"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	ReferralCode string  `gorm:"uniqueIndex;size:8;not null" json:"referral_code"`
	ReferrerCode *string `gorm:"size:8" json:"referrer_code,omitempty"`

	Balance  float64 `gorm:"not null;default:0" json:"balance"`
	Earnings float64 `gorm:"not null;default:0" json:"earnings"`

	// Role is resolved once at login and carried in the session token,
	// instead of comparing emails against config on every request.
	Role Role `gorm:"not null;default:'user'" json:"role"`

	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
