package services

import (
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sportzino-backend/models"
)

// AccountService owns registration, login and profile lookups.
type AccountService struct {
	DB          *gorm.DB
	Leaderboard *LeaderboardService

	// generateCode produces candidate referral codes; swapped in tests to
	// force collisions.
	generateCode func() (string, error)
}

func NewAccountService(db *gorm.DB, leaderboard *LeaderboardService) *AccountService {
	return &AccountService{
		DB:           db,
		Leaderboard:  leaderboard,
		generateCode: GenerateReferralCode,
	}
}

type RegisterInput struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	ReferralCode string `json:"referral_code,omitempty"`
}

// RewardOutcome is the terminal state of the registration workflow's reward
// step. Referrer-not-found is not an error: registration still succeeds.
type RewardOutcome string

const (
	RewardApplied RewardOutcome = "applied"
	RewardSkipped RewardOutcome = "skipped"
)

// RegisterAccount runs the full registration workflow: validate, create the
// account with a fresh unique referral code, then credit the referrer if the
// presented code belongs to someone. Account creation and reward crediting
// commit independently; a reward failure never rolls back the account.
func (s *AccountService) RegisterAccount(input RegisterInput) (*models.User, RewardOutcome, error) {
	email := strings.TrimSpace(input.Email)
	if err := validateEmail(email); err != nil {
		return nil, RewardSkipped, err
	}
	if input.Password == "" {
		return nil, RewardSkipped, ErrEmptyPassword
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, RewardSkipped, err
	}
	if count > 0 {
		return nil, RewardSkipped, ErrEmailTaken
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, RewardSkipped, err
	}

	var referrerCode *string
	presented := strings.ToUpper(strings.TrimSpace(input.ReferralCode))
	if presented != "" {
		// Normalized to the upper-case form codes are issued in, but never
		// validated for existence. Dangling codes are allowed.
		referrerCode = &presented
	}

	user, err := s.createWithFreshCode(email, hash, referrerCode)
	if err != nil {
		return nil, RewardSkipped, err
	}

	outcome := RewardSkipped
	if presented != "" {
		outcome = s.applyReferralReward(presented)
	}
	return user, outcome, nil
}

// createWithFreshCode inserts the account, regenerating the referral code on
// a unique-index collision. The store decides uniqueness; this loop only
// retries the generation, bounded by maxCodeAttempts.
func (s *AccountService) createWithFreshCode(email, passwordHash string, referrerCode *string) (*models.User, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.generateCode()
		if err != nil {
			return nil, err
		}
		user := &models.User{
			Email:        email,
			PasswordHash: passwordHash,
			ReferralCode: code,
			ReferrerCode: referrerCode,
			Role:         models.RoleUser,
		}
		err = s.DB.Create(user).Error
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// The duplicate may be the email, not the code, if another request
		// registered the same address since the pre-check.
		var count int64
		if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
		log.Printf("referral code collision on %q, regenerating (attempt %d)", code, attempt+1)
	}
	return nil, ErrCodeSpaceExhausted
}

// applyReferralReward credits the owner of the presented code. It commits on
// its own: the account row is already persisted and stays either way.
func (s *AccountService) applyReferralReward(code string) RewardOutcome {
	var referrer models.User
	if err := s.DB.Where("referral_code = ?", code).First(&referrer).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("referral lookup failed for code %s: %v", code, err)
		}
		return RewardSkipped
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", referrer.ID).
			UpdateColumn("earnings", gorm.Expr("earnings + ?", RegistrationBonus)).Error; err != nil {
			return err
		}
		return tx.Create(&models.Transaction{
			UserID: referrer.ID,
			Amount: RegistrationBonus,
			Type:   models.TransactionTypeReferralBonus,
		}).Error
	})
	if err != nil {
		log.Printf("failed to credit referrer %s for code %s: %v", referrer.ID, code, err)
		return RewardSkipped
	}

	if s.Leaderboard != nil {
		s.Leaderboard.BumpEarnings(referrer.Email, RegistrationBonus)
	}
	return RewardApplied
}

// Authenticate verifies an email/password pair against the stored hash.
func (s *AccountService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", strings.TrimSpace(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// PromoteAdmin flips the configured admin account's role at boot. No-op when
// the account doesn't exist yet.
func (s *AccountService) PromoteAdmin(email string) error {
	if email == "" {
		return nil
	}
	res := s.DB.Model(&models.User{}).
		Where("email = ? AND role <> ?", email, models.RoleAdmin).
		UpdateColumn("role", models.RoleAdmin)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("promoted %s to admin", email)
	}
	return nil
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if email == "" || at <= 0 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	return nil
}

// HashPassword computes a one-way salted hash of the plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword recomputes and compares in constant time.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
