package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionTypeDeposit       TransactionType = "deposit"
	TransactionTypeFreeplay      TransactionType = "freeplay"
	TransactionTypeReferralBonus TransactionType = "referral_bonus"
)

// Transaction is the append-only audit trail behind every balance or
// earnings mutation. Rows are never updated or deleted.
type Transaction struct {
	ID        string          `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount    float64         `gorm:"not null" json:"amount"`
	Type      TransactionType `gorm:"not null" json:"type"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
