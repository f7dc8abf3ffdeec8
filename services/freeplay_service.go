package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"sportzino-backend/models"
)

// FreeplayService is the referral ledger: append-only freeplay events plus
// the balance credit they carry.
type FreeplayService struct {
	DB *gorm.DB
}

func NewFreeplayService(db *gorm.DB) *FreeplayService {
	return &FreeplayService{DB: db}
}

// SubmitFreeplay records one freeplay event for the acting account and
// credits its balance with FreeplayBonus. The event insert and the balance
// increment commit in the same transaction, so a resubmission of the same
// code can never leave a credit without its event or vice versa. The code is
// not checked against existing accounts; any non-empty code is accepted once.
func (s *FreeplayService) SubmitFreeplay(userID, referralCode string) (*models.FreeplayEntry, error) {
	code := strings.ToUpper(strings.TrimSpace(referralCode))
	if code == "" {
		return nil, ErrMissingReferralCode
	}

	entry := &models.FreeplayEntry{
		UserID:       userID,
		ReferralCode: code,
		Reward:       FreeplayBonus,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("balance", gorm.Expr("balance + ?", FreeplayBonus)).Error; err != nil {
			return err
		}
		return tx.Create(&models.Transaction{
			UserID: userID,
			Amount: FreeplayBonus,
			Type:   models.TransactionTypeFreeplay,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// (user_id, referral_code) unique index: one credit per account
			// per code, regardless of how often it is resubmitted.
			return nil, ErrFreeplayAlreadyClaimed
		}
		return nil, err
	}
	return entry, nil
}

// History returns the acting account's freeplay entries, newest first.
func (s *FreeplayService) History(userID string) ([]models.FreeplayEntry, error) {
	var entries []models.FreeplayEntry
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
