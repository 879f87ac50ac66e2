package models

// Payment represents a mess or hostel fee payment for one billing period.
// A student holds at most one payment record per (student, fee type, month)
// tuple; recording the same tuple again updates the existing record.
type Payment struct {
	ID              int           `json:"id"`
	StudentID       int           `json:"student_id"`
	Amount          float64       `json:"amount"`
	FeeType         FeeType       `json:"fee_type"`
	Month           string        `json:"month"` // YYYY-MM for Mess, YYYY for Hostel
	Status          PaymentStatus `json:"status"`
	PaymentMethod   PaymentMethod `json:"payment_method,omitempty"`
	Date            string        `json:"date,omitempty"`
	TransactionID   *string       `json:"transaction_id,omitempty"`
	PayerName       *string       `json:"payer_name,omitempty"`
	ProofURL        *string       `json:"proof_url,omitempty"`
	RejectionReason *string       `json:"rejection_reason,omitempty"`
}

// PaymentPatch is a partial update to an existing payment. Nil fields are
// left untouched.
type PaymentPatch struct {
	Amount          *float64       `json:"amount,omitempty"`
	Status          *PaymentStatus `json:"status,omitempty"`
	PaymentMethod   *PaymentMethod `json:"payment_method,omitempty"`
	Date            *string        `json:"date,omitempty"`
	TransactionID   *string        `json:"transaction_id,omitempty"`
	PayerName       *string        `json:"payer_name,omitempty"`
	ProofURL        *string        `json:"proof_url,omitempty"`
	RejectionReason *string        `json:"rejection_reason,omitempty"`
}

// Apply merges the non-nil patch fields into the payment record.
func (p *PaymentPatch) Apply(pay *Payment) {
	if p == nil {
		return
	}
	if p.Amount != nil {
		pay.Amount = *p.Amount
	}
	if p.Status != nil {
		pay.Status = *p.Status
	}
	if p.PaymentMethod != nil {
		pay.PaymentMethod = *p.PaymentMethod
	}
	if p.Date != nil {
		pay.Date = *p.Date
	}
	if p.TransactionID != nil {
		pay.TransactionID = p.TransactionID
	}
	if p.PayerName != nil {
		pay.PayerName = p.PayerName
	}
	if p.ProofURL != nil {
		pay.ProofURL = p.ProofURL
	}
	if p.RejectionReason != nil {
		pay.RejectionReason = p.RejectionReason
	}
}
