package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sportzino-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.ManualPayment{},
	))
	return db
}

func TestCreditPendingAppliesVerifiedPaymentsOnce(t *testing.T) {
	db := newTestDB(t)
	user := &models.User{Email: "alice@x.com", PasswordHash: "x", ReferralCode: "AB12CD34"}
	require.NoError(t, db.Create(user).Error)

	verified := &models.ManualPayment{
		Name: "Alice", Email: "alice@x.com", Method: "chime", Amount: 25, Verified: true,
	}
	unverified := &models.ManualPayment{
		Name: "Alice", Email: "alice@x.com", Method: "wire", Amount: 40,
	}
	require.NoError(t, db.Create(verified).Error)
	require.NoError(t, db.Create(unverified).Error)

	w := NewPaymentCreditWorker(db)
	require.NoError(t, w.CreditPending())

	var after models.User
	require.NoError(t, db.First(&after, "id = ?", user.ID).Error)
	assert.Equal(t, 25.0, after.Balance, "only the verified payment credits")

	// Second sweep is a no-op: the row is credited now.
	require.NoError(t, w.CreditPending())
	require.NoError(t, db.First(&after, "id = ?", user.ID).Error)
	assert.Equal(t, 25.0, after.Balance)

	var txns int64
	require.NoError(t, db.Model(&models.Transaction{}).
		Where("type = ?", models.TransactionTypeDeposit).Count(&txns).Error)
	assert.EqualValues(t, 1, txns)
}

func TestCreditPendingSkipsUnmatchedEmail(t *testing.T) {
	db := newTestDB(t)

	payment := &models.ManualPayment{
		Name: "Ghost", Email: "ghost@x.com", Method: "chime", Amount: 10, Verified: true,
	}
	require.NoError(t, db.Create(payment).Error)

	w := NewPaymentCreditWorker(db)
	require.NoError(t, w.CreditPending())

	var after models.ManualPayment
	require.NoError(t, db.First(&after, "id = ?", payment.ID).Error)
	assert.False(t, after.Credited, "unmatched payments stay pending")
}
