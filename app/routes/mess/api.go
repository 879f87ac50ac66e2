package mess

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/iamkd2000/Hostel-Management/app/models"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

var validate = validator.New()

// GetPaymentsAPI returns payments with optional status, fee type, month,
// and student filters.
func GetPaymentsAPI(c *fiber.Ctx, s *store.Store) error {
	status := c.Query("status")
	feeType := c.Query("fee_type")
	month := c.Query("month")
	studentID := c.QueryInt("student_id", 0)

	var filtered []models.Payment
	for _, p := range s.Payments() {
		if status != "" && string(p.Status) != status {
			continue
		}
		if feeType != "" && string(p.FeeType) != feeType {
			continue
		}
		if month != "" && p.Month != month {
			continue
		}
		if studentID != 0 && p.StudentID != studentID {
			continue
		}
		filtered = append(filtered, p)
	}

	return c.JSON(fiber.Map{
		"payments": filtered,
		"count":    len(filtered),
	})
}

// GetPendingVerificationsAPI returns student claims awaiting the admin's
// verdict: pending payments that carry a transaction ID or payment proof.
func GetPendingVerificationsAPI(c *fiber.Ctx, s *store.Store) error {
	var pending []models.Payment
	for _, p := range s.Payments() {
		if p.Status == models.PaymentPending && (p.TransactionID != nil || p.ProofURL != nil) {
			pending = append(pending, p)
		}
	}

	return c.JSON(fiber.Map{
		"payments": pending,
		"count":    len(pending),
	})
}

// GetMessStatsAPI returns fee collection statistics.
func GetMessStatsAPI(c *fiber.Ctx, s *store.Store) error {
	stats := struct {
		TotalPayments        int     `json:"total_payments"`
		Paid                 int     `json:"paid"`
		Pending              int     `json:"pending"`
		Rejected             int     `json:"rejected"`
		TotalCollected       float64 `json:"total_collected"`
		PendingVerifications int     `json:"pending_verifications"`
	}{}

	for _, p := range s.Payments() {
		stats.TotalPayments++
		switch p.Status {
		case models.PaymentPaid:
			stats.Paid++
			stats.TotalCollected += p.Amount
		case models.PaymentPending:
			stats.Pending++
			if p.TransactionID != nil || p.ProofURL != nil {
				stats.PendingVerifications++
			}
		case models.PaymentRejected:
			stats.Rejected++
		}
	}

	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// RecordPaymentAPI records an admin-confirmed fee collection. A month a
// student has already settled is refused up front, matching the collection
// desk flow.
func RecordPaymentAPI(c *fiber.Ctx, s *store.Store) error {
	type RecordPaymentRequest struct {
		StudentID     int     `json:"student_id" validate:"required"`
		Amount        float64 `json:"amount" validate:"required,gt=0"`
		FeeType       string  `json:"fee_type" validate:"required,oneof=Mess Hostel"`
		Month         string  `json:"month" validate:"required"`
		PaymentMethod string  `json:"payment_method" validate:"required,oneof=Online Cash"`
		TransactionID *string `json:"transaction_id"`
	}

	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if _, ok := s.StudentByID(req.StudentID); !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	for _, p := range s.PaymentsForStudent(req.StudentID) {
		if p.FeeType == models.FeeType(req.FeeType) && p.Month == req.Month && p.Status == models.PaymentPaid {
			return c.Status(409).JSON(fiber.Map{"error": "Already paid for this month"})
		}
	}

	payment, err := s.RecordPayment(models.Payment{
		StudentID:     req.StudentID,
		Amount:        req.Amount,
		FeeType:       models.FeeType(req.FeeType),
		Month:         req.Month,
		Status:        models.PaymentPaid,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		Date:          time.Now().Format("2006-01-02"),
		TransactionID: req.TransactionID,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateTransaction) {
			return c.Status(409).JSON(fiber.Map{"error": "This Transaction ID has already been used"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Payment recorded successfully",
		"payment": payment,
	})
}

// SubmitClaimAPI records a student's self-reported payment, always Pending
// until an admin verifies it. Online claims must carry a transaction ID;
// the proof is an opaque data-URL or file name, nothing is stored serverside.
func SubmitClaimAPI(c *fiber.Ctx, s *store.Store, studentID int) error {
	type SubmitClaimRequest struct {
		Amount        float64 `json:"amount" validate:"required,gt=0"`
		FeeType       string  `json:"fee_type" validate:"required,oneof=Mess Hostel"`
		Month         string  `json:"month" validate:"required"`
		PaymentMethod string  `json:"payment_method" validate:"required,oneof=Online Cash"`
		Date          string  `json:"date"`
		TransactionID *string `json:"transaction_id"`
		PayerName     *string `json:"payer_name"`
		ProofURL      *string `json:"proof_url"`
	}

	var req SubmitClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	method := models.PaymentMethod(req.PaymentMethod)
	if method == models.PaymentOnline && (req.TransactionID == nil || *req.TransactionID == "") {
		return c.Status(400).JSON(fiber.Map{"error": "Transaction ID is required for online payments"})
	}
	if method == models.PaymentCash {
		req.TransactionID = nil
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	payment, err := s.RecordPayment(models.Payment{
		StudentID:     studentID,
		Amount:        req.Amount,
		FeeType:       models.FeeType(req.FeeType),
		Month:         req.Month,
		Status:        models.PaymentPending,
		PaymentMethod: method,
		Date:          date,
		TransactionID: req.TransactionID,
		PayerName:     req.PayerName,
		ProofURL:      req.ProofURL,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateTransaction) {
			return c.Status(409).JSON(fiber.Map{"error": "This Transaction ID has already been used"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to submit payment claim"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Payment verification request sent to admin",
		"payment": payment,
	})
}

func VerifyPaymentAPI(c *fiber.Ctx, s *store.Store) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment ID"})
	}
	if _, ok := s.PaymentByID(id); !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
	}

	s.VerifyPayment(id)

	payment, _ := s.PaymentByID(id)
	return c.JSON(fiber.Map{
		"message": "Payment verified",
		"payment": payment,
	})
}

func RejectPaymentAPI(c *fiber.Ctx, s *store.Store) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid payment ID"})
	}
	if _, ok := s.PaymentByID(id); !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Payment not found"})
	}

	type RejectRequest struct {
		Reason string `json:"reason"`
	}
	var req RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Reason == "" {
		req.Reason = "Invalid Proof or Transaction ID"
	}

	s.RejectPayment(id, req.Reason)

	payment, _ := s.PaymentByID(id)
	return c.JSON(fiber.Map{
		"message": "Payment rejected",
		"payment": payment,
	})
}
