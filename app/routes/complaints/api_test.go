package complaints_test

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
	"github.com/iamkd2000/Hostel-Management/app/routes/complaints"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Store, models.Student) {
	t.Helper()
	s := store.New()
	st := s.AddStudent(models.Student{Name: "Arjun Mehta", Gender: models.GenderMale, Branch: "CSE", Year: "2nd Year", Contact: "9000000010"})
	app := fiber.New()
	complaints.SetupComplaintsRoutes(app, s)
	return app, s, st
}

func postComplaint(t *testing.T, app *fiber.App, token string, body fiber.Map) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest("POST", "/api/complaints/", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestStudentFilesComplaintForSelf(t *testing.T) {
	app, s, st := newTestApp(t)

	token, err := auth.GenerateJWT(auth.RoleStudent, st.ID)
	require.NoError(t, err)

	resp := postComplaint(t, app, token, fiber.Map{
		"student_id":  9999, // ignored for student sessions
		"category":    "Maintenance",
		"subcategory": "Fan",
		"description": "Ceiling fan not working",
	})
	require.Equal(t, 201, resp.StatusCode)

	got := s.Complaints()
	require.Len(t, got, 1)
	assert.Equal(t, st.ID, got[0].StudentID)
	assert.Equal(t, models.ComplaintPending, got[0].Status)
}

func TestRejectsSubcategoryFromWrongCategory(t *testing.T) {
	app, s, st := newTestApp(t)

	token, err := auth.GenerateJWT(auth.RoleStudent, st.ID)
	require.NoError(t, err)

	// "Fan" belongs to Maintenance, not Food.
	resp := postComplaint(t, app, token, fiber.Map{
		"category":    "Food",
		"subcategory": "Fan",
		"description": "Wrong pairing",
	})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Empty(t, s.Complaints())
}

func TestRejectsUnknownCategory(t *testing.T) {
	app, _, st := newTestApp(t)

	token, err := auth.GenerateJWT(auth.RoleStudent, st.ID)
	require.NoError(t, err)

	resp := postComplaint(t, app, token, fiber.Map{
		"category":    "Laundry",
		"subcategory": "Fan",
		"description": "No such category",
	})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestResolveRequiresAdmin(t *testing.T) {
	app, s, st := newTestApp(t)

	cm := s.AddComplaint(models.Complaint{StudentID: st.ID, Category: models.ComplaintFood, Subcategory: "Hygiene", Description: "Unclean plates"})

	token, err := auth.GenerateJWT(auth.RoleStudent, st.ID)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/complaints/1/resolve", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	admin, err := auth.GenerateJWT(auth.RoleAdmin, 0)
	require.NoError(t, err)

	req = httptest.NewRequest("POST", "/api/complaints/1/resolve", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	got := s.Complaints()
	require.Len(t, got, 1)
	assert.Equal(t, cm.ID, got[0].ID)
	assert.Equal(t, models.ComplaintResolved, got[0].Status)
}
