package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamkd2000/Hostel-Management/app/models"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

func messPayment(studentID int, amount float64, status models.PaymentStatus) models.Payment {
	return models.Payment{
		StudentID: studentID,
		Amount:    amount,
		FeeType:   models.FeeTypeMess,
		Month:     "2024-03",
		Status:    status,
	}
}

func TestRecordPaymentUpsertsByBillingPeriod(t *testing.T) {
	s := store.New()

	first, err := s.RecordPayment(messPayment(1, 2500, models.PaymentPaid))
	require.NoError(t, err)

	second, err := s.RecordPayment(messPayment(1, 2600, models.PaymentPaid))
	require.NoError(t, err)

	payments := s.Payments()
	require.Len(t, payments, 1, "same (student, fee type, month) must update, not insert")
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2600.0, payments[0].Amount)
}

func TestRecordPaymentDifferentMonthsCreateSeparateRecords(t *testing.T) {
	s := store.New()

	_, err := s.RecordPayment(messPayment(1, 2500, models.PaymentPaid))
	require.NoError(t, err)

	april := messPayment(1, 2500, models.PaymentPending)
	april.Month = "2024-04"
	_, err = s.RecordPayment(april)
	require.NoError(t, err)

	assert.Len(t, s.Payments(), 2)
}

func TestRecordPaymentRejectsDuplicateTransactionID(t *testing.T) {
	s := store.New()
	txn := "TXN123456"

	p := messPayment(1, 2500, models.PaymentPending)
	p.TransactionID = &txn
	_, err := s.RecordPayment(p)
	require.NoError(t, err)

	other := messPayment(2, 2500, models.PaymentPending)
	other.TransactionID = &txn
	_, err = s.RecordPayment(other)
	assert.ErrorIs(t, err, store.ErrDuplicateTransaction)
	assert.Len(t, s.Payments(), 1)
}

func TestRecordPaymentAllowsResubmittingOwnTransactionID(t *testing.T) {
	s := store.New()
	txn := "TXN554433"

	p := messPayment(1, 2500, models.PaymentPending)
	p.TransactionID = &txn
	_, err := s.RecordPayment(p)
	require.NoError(t, err)

	// Same billing tuple updates in place; carrying its own transaction ID
	// is not a duplicate.
	p.Amount = 2600
	_, err = s.RecordPayment(p)
	require.NoError(t, err)
	assert.Len(t, s.Payments(), 1)
}

func TestVerifyPaymentMarksPaid(t *testing.T) {
	s := store.New()
	p, _ := s.RecordPayment(messPayment(1, 2500, models.PaymentPending))

	s.VerifyPayment(p.ID)

	got, ok := s.PaymentByID(p.ID)
	require.True(t, ok)
	assert.Equal(t, models.PaymentPaid, got.Status)
}

func TestRejectPaymentStoresReason(t *testing.T) {
	s := store.New()
	p, _ := s.RecordPayment(messPayment(1, 2500, models.PaymentPending))

	s.RejectPayment(p.ID, "Invalid Proof or Transaction ID")

	got, _ := s.PaymentByID(p.ID)
	assert.Equal(t, models.PaymentRejected, got.Status)
	require.NotNil(t, got.RejectionReason)
	assert.Equal(t, "Invalid Proof or Transaction ID", *got.RejectionReason)
}

func TestVerifyAndRejectUnknownIDAreNoops(t *testing.T) {
	s := store.New()

	s.VerifyPayment(7)
	s.RejectPayment(7, "nothing here")

	assert.Empty(t, s.Payments())
}

func TestUpdatePaymentMergesPatch(t *testing.T) {
	s := store.New()
	p, _ := s.RecordPayment(messPayment(1, 2500, models.PaymentPending))

	amount := 2750.0
	method := models.PaymentCash
	err := s.UpdatePayment(p.ID, models.PaymentPatch{Amount: &amount, PaymentMethod: &method})
	require.NoError(t, err)

	got, _ := s.PaymentByID(p.ID)
	assert.Equal(t, 2750.0, got.Amount)
	assert.Equal(t, models.PaymentCash, got.PaymentMethod)
	assert.Equal(t, models.PaymentPending, got.Status, "unpatched fields stay put")
}

func TestUpdatePaymentRejectsForeignTransactionID(t *testing.T) {
	s := store.New()
	txn := "TXN998877"

	p1 := messPayment(1, 2500, models.PaymentPaid)
	p1.TransactionID = &txn
	_, err := s.RecordPayment(p1)
	require.NoError(t, err)

	p2, _ := s.RecordPayment(messPayment(2, 2500, models.PaymentPending))

	err = s.UpdatePayment(p2.ID, models.PaymentPatch{TransactionID: &txn})
	assert.ErrorIs(t, err, store.ErrDuplicateTransaction)

	got, _ := s.PaymentByID(p2.ID)
	assert.Nil(t, got.TransactionID)
}
