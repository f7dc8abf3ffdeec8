package services

import "errors"

// Typed failures surfaced by the registration and freeplay flows. Handlers
// translate these to HTTP statuses; anything else is a storage fault (500).
var (
	ErrInvalidEmail         = errors.New("email is malformed")
	ErrEmptyPassword        = errors.New("password is required")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrMissingRequiredField = errors.New("required field missing")

	// ErrCodeSpaceExhausted means every generated referral code collided.
	// With 36^8 possible codes this is effectively unreachable.
	ErrCodeSpaceExhausted = errors.New("referral code generation exhausted retries")

	ErrMissingReferralCode    = errors.New("referral code is required")
	ErrFreeplayAlreadyClaimed = errors.New("freeplay already claimed for this code")
)
