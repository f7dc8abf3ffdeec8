package services

import (
	"encoding/csv"
	"io"
	"mime/multipart"
	"strings"

	"gorm.io/gorm"

	"sportzino-backend/models"
	"sportzino-backend/utils"
)

// KYCService handles identity-verification submissions and the admin export.
type KYCService struct {
	DB *gorm.DB
}

func NewKYCService(db *gorm.DB) *KYCService {
	return &KYCService{DB: db}
}

type KYCInput struct {
	FullName    string
	Email       string
	Phone       string
	Country     string
	WalletOrSSN string
}

// Submit stores the uploaded ID document and creates the submission row.
// Submissions are independent of accounts; the email is just a field.
func (s *KYCService) Submit(input KYCInput, idFile *multipart.FileHeader) (*models.KYCSubmission, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	if input.FullName == "" || input.Email == "" {
		return nil, ErrMissingRequiredField
	}

	var fileURL string
	if idFile != nil {
		key := utils.ObjectKey("kyc", input.FullName, idFile.Filename)
		url, err := utils.StoreUpload(idFile, key)
		if err != nil {
			return nil, err
		}
		fileURL = url
	}

	sub := &models.KYCSubmission{
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       strings.TrimSpace(input.Phone),
		Country:     strings.TrimSpace(input.Country),
		WalletOrSSN: strings.TrimSpace(input.WalletOrSSN),
		IDFileURL:   fileURL,
	}
	if err := s.DB.Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

// List returns all submissions, newest first. Admin only; no core invariant
// applies here.
func (s *KYCService) List() ([]models.KYCSubmission, error) {
	var subs []models.KYCSubmission
	err := s.DB.Order("submitted_at DESC").Find(&subs).Error
	return subs, err
}

// WriteCSV streams every submission as CSV, same columns the admin dashboard
// shows.
func (s *KYCService) WriteCSV(w io.Writer) error {
	subs, err := s.List()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Full Name", "Email", "Phone", "Country", "Wallet/SSN", "ID File", "Date"}); err != nil {
		return err
	}
	for _, sub := range subs {
		record := []string{
			sub.ID,
			sub.FullName,
			sub.Email,
			sub.Phone,
			sub.Country,
			sub.WalletOrSSN,
			sub.IDFileURL,
			sub.SubmittedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
