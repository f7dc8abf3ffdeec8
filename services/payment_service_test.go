package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitManualValidation(t *testing.T) {
	svc := NewPaymentService(newTestDB(t))

	_, err := svc.SubmitManual(ManualPaymentInput{Name: "Alice", Email: "a@x.com", Method: "chime", Amount: 0}, nil)
	assert.ErrorIs(t, err, ErrMissingRequiredField)

	_, err = svc.SubmitManual(ManualPaymentInput{Name: "", Email: "a@x.com", Method: "chime", Amount: 10}, nil)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestVerifyManualPayment(t *testing.T) {
	svc := NewPaymentService(newTestDB(t))

	payment, err := svc.SubmitManual(ManualPaymentInput{
		Name: "Alice", Email: "a@x.com", Method: "Chime", Amount: 25,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "chime", payment.Method)
	assert.False(t, payment.Verified)

	verified, err := svc.Verify(payment.ID)
	require.NoError(t, err)
	assert.True(t, verified.Verified)
	assert.False(t, verified.Credited, "crediting belongs to the worker")

	// Idempotent.
	again, err := svc.Verify(payment.ID)
	require.NoError(t, err)
	assert.True(t, again.Verified)

	_, err = svc.Verify("no-such-id")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
