package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KYCSubmission is created by the public KYC form and read-only afterwards
// except for the admin export. It shares an email with User but is not a
// foreign key.
type KYCSubmission struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	FullName    string    `gorm:"not null" json:"full_name"`
	Email       string    `gorm:"not null;index" json:"email"`
	Phone       string    `json:"phone"`
	Country     string    `json:"country"`
	WalletOrSSN string    `gorm:"column:wallet_or_ssn" json:"wallet_or_ssn"`
	IDFileURL   string    `gorm:"type:text" json:"id_file_url"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"autoCreateTime"`
}

func (k *KYCSubmission) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}
