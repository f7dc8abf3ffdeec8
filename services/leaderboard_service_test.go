package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportzino-backend/models"
)

func TestLeaderboardSQLFallback(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db, nil)
	board := NewLeaderboardService(db, nil) // no redis configured

	for _, u := range []struct {
		email    string
		earnings float64
	}{
		{"low@x.com", 82},
		{"high@x.com", 246},
		{"mid@x.com", 164},
		{"zero@x.com", 0},
	} {
		user := seedUser(t, accounts, u.email)
		require.NoError(t, db.Model(&models.User{}).
			Where("id = ?", user.ID).
			UpdateColumn("earnings", u.earnings).Error)
	}

	rows, err := board.Top(10)
	require.NoError(t, err)
	require.Len(t, rows, 3, "zero-earning accounts stay off the board")
	assert.Equal(t, "high@x.com", rows[0].Email)
	assert.Equal(t, "mid@x.com", rows[1].Email)
	assert.Equal(t, "low@x.com", rows[2].Email)

	rows, err = board.Top(2)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	// BumpEarnings without redis is a no-op, not a panic.
	board.BumpEarnings("high@x.com", RegistrationBonus)
}
