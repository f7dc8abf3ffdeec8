package workers

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"sportzino-backend/models"
)

// PaymentCreditWorker applies admin-verified manual payments to account
// balances. It polls instead of reacting so a crash between verification and
// crediting just means the next tick picks the row up again.
type PaymentCreditWorker struct {
	DB *gorm.DB
}

func NewPaymentCreditWorker(db *gorm.DB) *PaymentCreditWorker {
	return &PaymentCreditWorker{DB: db}
}

// PollPayments runs the credit sweep until the context is cancelled.
func PollPayments(ctx context.Context, w *PaymentCreditWorker, pollInterval time.Duration) {
	log.Println("Starting manual payment credit worker...")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Payment credit worker stopped.")
			return
		case <-ticker.C:
			if err := w.CreditPending(); err != nil {
				log.Printf("payment credit sweep failed: %v", err)
			}
		}
	}
}

// CreditPending credits every verified, not-yet-credited payment whose email
// matches an account. The balance increment, the audit row, and the credited
// flag commit together, so a payment can never be applied twice.
func (w *PaymentCreditWorker) CreditPending() error {
	var pending []models.ManualPayment
	if err := w.DB.Where("verified = ? AND credited = ?", true, false).Find(&pending).Error; err != nil {
		return err
	}

	for _, payment := range pending {
		var user models.User
		if err := w.DB.Where("email = ?", payment.Email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// No matching account yet; the row stays pending.
				log.Printf("payment %s has no account for %s, skipping", payment.ID, payment.Email)
				continue
			}
			return err
		}

		err := w.DB.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&models.ManualPayment{}).
				Where("id = ? AND credited = ?", payment.ID, false).
				UpdateColumn("credited", true)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Another sweep got here first.
				return nil
			}
			if err := tx.Model(&models.User{}).
				Where("id = ?", user.ID).
				UpdateColumn("balance", gorm.Expr("balance + ?", payment.Amount)).Error; err != nil {
				return err
			}
			return tx.Create(&models.Transaction{
				UserID: user.ID,
				Amount: payment.Amount,
				Type:   models.TransactionTypeDeposit,
			}).Error
		})
		if err != nil {
			log.Printf("failed to credit payment %s: %v", payment.ID, err)
			continue
		}
		log.Printf("credited payment %s: %.2f to %s", payment.ID, payment.Amount, payment.Email)
	}
	return nil
}
