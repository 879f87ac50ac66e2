package store

import "github.com/iamkd2000/Hostel-Management/app/models"

// RecordPayment records a fee payment. If a payment already exists for the
// (student, fee type, month) tuple, the existing record is overwritten in
// place instead of inserting a duplicate; otherwise a new record is created
// with a fresh ID. Callers choose the initial status: Paid for
// admin-confirmed collections, Pending for student claims awaiting
// verification.
//
// A transaction ID that already belongs to a different payment is refused
// with ErrDuplicateTransaction.
func (s *Store) RecordPayment(data models.Payment) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.findPaymentByPeriod(data.StudentID, data.FeeType, data.Month)

	if data.TransactionID != nil {
		if dup := s.findPaymentByTransaction(*data.TransactionID); dup != nil && dup != existing {
			return models.Payment{}, ErrDuplicateTransaction
		}
	}

	if existing != nil {
		id := existing.ID
		*existing = data
		existing.ID = id
		return *existing, nil
	}

	p := data
	p.ID = s.nextPaymentID
	s.nextPaymentID++
	s.payments = append(s.payments, &p)
	return p, nil
}

// UpdatePayment merges the patch into the payment record. Unknown IDs are a
// no-op. A patched transaction ID held by another payment is refused with
// ErrDuplicateTransaction.
func (s *Store) UpdatePayment(id int, patch models.PaymentPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findPayment(id)
	if p == nil {
		return nil
	}

	if patch.TransactionID != nil {
		if dup := s.findPaymentByTransaction(*patch.TransactionID); dup != nil && dup != p {
			return ErrDuplicateTransaction
		}
	}

	patch.Apply(p)
	return nil
}

// VerifyPayment marks the payment Paid. Unknown IDs are a no-op.
func (s *Store) VerifyPayment(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.findPayment(id); p != nil {
		p.Status = models.PaymentPaid
	}
}

// RejectPayment marks the payment Rejected and records the reason. Unknown
// IDs are a no-op.
func (s *Store) RejectPayment(id int, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.findPayment(id); p != nil {
		p.Status = models.PaymentRejected
		p.RejectionReason = &reason
	}
}

// findPaymentByPeriod returns the payment for one billing tuple; the caller
// must hold the lock.
func (s *Store) findPaymentByPeriod(studentID int, feeType models.FeeType, month string) *models.Payment {
	for _, p := range s.payments {
		if p.StudentID == studentID && p.FeeType == feeType && p.Month == month {
			return p
		}
	}
	return nil
}

// findPaymentByTransaction returns the payment holding the transaction ID;
// the caller must hold the lock.
func (s *Store) findPaymentByTransaction(txnID string) *models.Payment {
	if txnID == "" {
		return nil
	}
	for _, p := range s.payments {
		if p.TransactionID != nil && *p.TransactionID == txnID {
			return p
		}
	}
	return nil
}
