package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FreeplayEntry is an append-only ledger row for freeplay submissions.
// The (user_id, referral_code) unique index is the idempotency guard:
// one freeplay credit per account per code.
type FreeplayEntry struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID       string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_freeplay_user_code" json:"user_id"`
	ReferralCode string    `gorm:"size:8;not null;uniqueIndex:idx_freeplay_user_code" json:"referral_code"`
	Reward       float64   `gorm:"not null" json:"reward"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (e *FreeplayEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
