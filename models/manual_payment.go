package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ManualPayment tracks the bank-transfer flow: a user uploads a transfer
// screenshot, an admin verifies it, and the credit worker applies the amount
// to the matching account exactly once (Credited flips inside the same
// transaction as the balance update).
type ManualPayment struct {
	ID            string  `gorm:"primaryKey;type:uuid" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Email         string  `gorm:"not null;index" json:"email"`
	Method        string  `gorm:"not null" json:"method"` // e.g. "chime", "wire"
	Amount        float64 `gorm:"not null" json:"amount"`
	ScreenshotURL string  `gorm:"type:text" json:"screenshot_url"`
	Verified      bool    `gorm:"not null;default:false;index" json:"verified"`
	Credited      bool    `gorm:"not null;default:false" json:"credited"`

	Timestamps
}

func (p *ManualPayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
