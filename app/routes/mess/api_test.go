package mess_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamkd2000/Hostel-Management/app/models"
	"github.com/iamkd2000/Hostel-Management/app/routes/auth"
	"github.com/iamkd2000/Hostel-Management/app/routes/mess"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Store, models.Student) {
	t.Helper()
	s := store.New()
	st := s.AddStudent(models.Student{Name: "Arjun Mehta", Gender: models.GenderMale, Branch: "CSE", Year: "2nd Year", Contact: "9000000010"})
	app := fiber.New()
	mess.SetupMessRoutes(app, s)
	return app, s, st
}

func post(t *testing.T, app *fiber.App, path, token string, body fiber.Map) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func studentToken(t *testing.T, id int) string {
	t.Helper()
	token, err := auth.GenerateJWT(auth.RoleStudent, id)
	require.NoError(t, err)
	return token
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateJWT(auth.RoleAdmin, 0)
	require.NoError(t, err)
	return token
}

func TestOnlineClaimRequiresTransactionID(t *testing.T) {
	app, s, st := newTestApp(t)
	token := studentToken(t, st.ID)

	resp := post(t, app, "/api/mess/claims", token, fiber.Map{
		"amount":         2500.0,
		"fee_type":       "Mess",
		"month":          "2026-08",
		"payment_method": "Online",
	})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Empty(t, s.Payments())
}

func TestOnlineClaimIsRecordedPending(t *testing.T) {
	app, s, st := newTestApp(t)
	token := studentToken(t, st.ID)

	resp := post(t, app, "/api/mess/claims", token, fiber.Map{
		"amount":         2500.0,
		"fee_type":       "Mess",
		"month":          "2026-08",
		"payment_method": "Online",
		"transaction_id": "TXN100200",
	})
	require.Equal(t, 201, resp.StatusCode)

	payments := s.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, models.PaymentPending, payments[0].Status)
	require.NotNil(t, payments[0].TransactionID)
	assert.Equal(t, "TXN100200", *payments[0].TransactionID)
}

func TestClaimWithForeignTransactionIDRejected(t *testing.T) {
	app, s, st := newTestApp(t)
	other := s.AddStudent(models.Student{Name: "Rohit Nair", Gender: models.GenderMale, Branch: "EE", Year: "1st Year", Contact: "9000000011"})

	txn := "TXN100200"
	_, err := s.RecordPayment(models.Payment{
		StudentID: other.ID, Amount: 2500, FeeType: models.FeeTypeMess, Month: "2026-08",
		Status: models.PaymentPaid, PaymentMethod: models.PaymentOnline, Date: "2026-08-01", TransactionID: &txn,
	})
	require.NoError(t, err)

	resp := post(t, app, "/api/mess/claims", studentToken(t, st.ID), fiber.Map{
		"amount":         2500.0,
		"fee_type":       "Mess",
		"month":          "2026-08",
		"payment_method": "Online",
		"transaction_id": "TXN100200",
	})
	assert.Equal(t, 409, resp.StatusCode)
}

func TestAdminRecordRefusesSettledMonth(t *testing.T) {
	app, s, st := newTestApp(t)
	token := adminToken(t)

	_, err := s.RecordPayment(models.Payment{
		StudentID: st.ID, Amount: 2500, FeeType: models.FeeTypeMess, Month: "2026-08",
		Status: models.PaymentPaid, PaymentMethod: models.PaymentCash, Date: "2026-08-01",
	})
	require.NoError(t, err)

	resp := post(t, app, "/api/mess/payments", token, fiber.Map{
		"student_id":     st.ID,
		"amount":         2500.0,
		"fee_type":       "Mess",
		"month":          "2026-08",
		"payment_method": "Cash",
	})
	assert.Equal(t, 409, resp.StatusCode)
}

func TestAdminVerifyAndRejectFlow(t *testing.T) {
	app, s, st := newTestApp(t)

	resp := post(t, app, "/api/mess/claims", studentToken(t, st.ID), fiber.Map{
		"amount":         2500.0,
		"fee_type":       "Mess",
		"month":          "2026-08",
		"payment_method": "Online",
		"transaction_id": "TXN300400",
	})
	require.Equal(t, 201, resp.StatusCode)
	id := s.Payments()[0].ID

	token := adminToken(t)
	resp = post(t, app, "/api/mess/payments/1/verify", token, nil)
	require.Equal(t, 200, resp.StatusCode)

	p, ok := s.PaymentByID(id)
	require.True(t, ok)
	assert.Equal(t, models.PaymentPaid, p.Status)

	resp = post(t, app, "/api/mess/payments/1/reject", token, fiber.Map{})
	require.Equal(t, 200, resp.StatusCode)

	p, _ = s.PaymentByID(id)
	assert.Equal(t, models.PaymentRejected, p.Status)
	require.NotNil(t, p.RejectionReason)
	assert.Equal(t, "Invalid Proof or Transaction ID", *p.RejectionReason)
}

func TestClaimsEndpointRequiresStudentSession(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := post(t, app, "/api/mess/claims", adminToken(t), fiber.Map{
		"amount":         2500.0,
		"fee_type":       "Mess",
		"month":          "2026-08",
		"payment_method": "Cash",
	})
	assert.Equal(t, 403, resp.StatusCode)
}
