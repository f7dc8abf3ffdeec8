package services

import (
	"errors"
	"mime/multipart"
	"strings"

	"gorm.io/gorm"

	"sportzino-backend/models"
	"sportzino-backend/utils"
)

// PaymentService covers the manual bank-transfer flow: public submission with
// a transfer screenshot, admin verification, and listing. The actual crediting
// happens in the payment credit worker once a row is verified.
type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

type ManualPaymentInput struct {
	Name   string
	Email  string
	Method string
	Amount float64
}

var ErrPaymentNotFound = errors.New("payment not found")

// SubmitManual records a claimed bank transfer. It stays unverified until an
// admin reviews the screenshot.
func (s *PaymentService) SubmitManual(input ManualPaymentInput, screenshot *multipart.FileHeader) (*models.ManualPayment, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Name == "" || input.Email == "" || input.Method == "" || input.Amount <= 0 {
		return nil, ErrMissingRequiredField
	}

	var screenshotURL string
	if screenshot != nil {
		key := utils.ObjectKey("payments", input.Name, screenshot.Filename)
		url, err := utils.StoreUpload(screenshot, key)
		if err != nil {
			return nil, err
		}
		screenshotURL = url
	}

	payment := &models.ManualPayment{
		Name:          input.Name,
		Email:         input.Email,
		Method:        strings.ToLower(strings.TrimSpace(input.Method)),
		Amount:        input.Amount,
		ScreenshotURL: screenshotURL,
	}
	if err := s.DB.Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

// Verify marks a payment as reviewed. Idempotent; the credit worker picks it
// up on its next tick.
func (s *PaymentService) Verify(paymentID string) (*models.ManualPayment, error) {
	var payment models.ManualPayment
	if err := s.DB.First(&payment, "id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if !payment.Verified {
		payment.Verified = true
		if err := s.DB.Save(&payment).Error; err != nil {
			return nil, err
		}
	}
	return &payment, nil
}

// List returns all manual payments, unverified first so admins see the queue.
func (s *PaymentService) List() ([]models.ManualPayment, error) {
	var payments []models.ManualPayment
	err := s.DB.Order("verified ASC, created_at DESC").Find(&payments).Error
	return payments, err
}
