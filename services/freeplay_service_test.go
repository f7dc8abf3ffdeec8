package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportzino-backend/models"
)

func seedUser(t *testing.T, svc *AccountService, email string) *models.User {
	t.Helper()
	user, _, err := svc.RegisterAccount(RegisterInput{Email: email, Password: "secret"})
	require.NoError(t, err)
	return user
}

func TestSubmitFreeplayMissingCode(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, nil)
	freeplay := NewFreeplayService(db)
	user := seedUser(t, accounts, "bob@x.com")

	_, err := freeplay.SubmitFreeplay(user.ID, "")
	assert.ErrorIs(t, err, ErrMissingReferralCode)
	_, err = freeplay.SubmitFreeplay(user.ID, "   ")
	assert.ErrorIs(t, err, ErrMissingReferralCode)

	var count int64
	require.NoError(t, db.Model(&models.FreeplayEntry{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitFreeplayCreditsBalance(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, nil)
	freeplay := NewFreeplayService(db)
	user := seedUser(t, accounts, "bob@x.com")

	entry, err := freeplay.SubmitFreeplay(user.ID, "ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", entry.ReferralCode) // normalized
	assert.Equal(t, FreeplayBonus, entry.Reward)

	var after models.User
	require.NoError(t, db.First(&after, "id = ?", user.ID).Error)
	assert.Equal(t, FreeplayBonus, after.Balance)

	var txn models.Transaction
	require.NoError(t, db.First(&txn, "user_id = ? AND type = ?", user.ID, models.TransactionTypeFreeplay).Error)
	assert.Equal(t, FreeplayBonus, txn.Amount)
}

func TestSubmitFreeplayIsOncePerCode(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, nil)
	freeplay := NewFreeplayService(db)
	user := seedUser(t, accounts, "bob@x.com")

	_, err := freeplay.SubmitFreeplay(user.ID, "AB12CD34")
	require.NoError(t, err)

	_, err = freeplay.SubmitFreeplay(user.ID, "AB12CD34")
	assert.ErrorIs(t, err, ErrFreeplayAlreadyClaimed)

	var entries int64
	require.NoError(t, db.Model(&models.FreeplayEntry{}).Count(&entries).Error)
	assert.EqualValues(t, 1, entries)

	var after models.User
	require.NoError(t, db.First(&after, "id = ?", user.ID).Error)
	assert.Equal(t, FreeplayBonus, after.Balance, "rejected resubmission must not credit")

	// A different code still works.
	_, err = freeplay.SubmitFreeplay(user.ID, "XY99ZZ00")
	require.NoError(t, err)
	require.NoError(t, db.First(&after, "id = ?", user.ID).Error)
	assert.Equal(t, 2*FreeplayBonus, after.Balance)
}

func TestFreeplayHistory(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, nil)
	freeplay := NewFreeplayService(db)
	bob := seedUser(t, accounts, "bob@x.com")
	carol := seedUser(t, accounts, "carol@x.com")

	_, err := freeplay.SubmitFreeplay(bob.ID, "AAAA1111")
	require.NoError(t, err)
	_, err = freeplay.SubmitFreeplay(bob.ID, "BBBB2222")
	require.NoError(t, err)
	_, err = freeplay.SubmitFreeplay(carol.ID, "AAAA1111")
	require.NoError(t, err)

	entries, err := freeplay.History(bob.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, bob.ID, e.UserID)
	}
}
