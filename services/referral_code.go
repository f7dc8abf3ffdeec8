package services

import (
	"crypto/rand"
	"math/big"
)

const (
	referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referralCodeLength   = 8

	// How many fresh codes Register tries before giving up on a unique
	// insert. Collisions are vanishingly rare; the bound exists so a broken
	// index can't spin the request forever.
	maxCodeAttempts = 5
)

// GenerateReferralCode returns an 8-character code drawn uniformly from
// A-Z0-9. No collision avoidance here: the unique index on users.referral_code
// rejects duplicates and the caller regenerates.
func GenerateReferralCode() (string, error) {
	buf := make([]byte, referralCodeLength)
	alphabetSize := big.NewInt(int64(len(referralCodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		buf[i] = referralCodeAlphabet[n.Int64()]
	}
	return string(buf), nil
}
