package applications

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/iamkd2000/Hostel-Management/app/models"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

var validate = validator.New()

// GetApplicationsAPI returns applications, most recent first, with optional
// status, type, and student filters.
func GetApplicationsAPI(c *fiber.Ctx, s *store.Store) error {
	status := c.Query("status")
	appType := c.Query("type")
	studentID := c.QueryInt("student_id", 0)

	var filtered []models.Application
	for _, a := range s.Applications() {
		if status != "" && string(a.Status) != status {
			continue
		}
		if appType != "" && string(a.Type) != appType {
			continue
		}
		if studentID != 0 && a.StudentID != studentID {
			continue
		}
		filtered = append(filtered, a)
	}

	return c.JSON(fiber.Map{
		"applications": filtered,
		"count":        len(filtered),
	})
}

// SubmitApplicationAPI files an application. A ProfileUpdate must carry the
// proposed field changes; other types must not.
func SubmitApplicationAPI(c *fiber.Ctx, s *store.Store, studentID int) error {
	type SubmitApplicationRequest struct {
		Type        string               `json:"type" validate:"required,oneof=Leave Bonafide Other ProfileUpdate"`
		Title       string               `json:"title" validate:"required"`
		Description string               `json:"description" validate:"required"`
		Data        *models.StudentPatch `json:"data"`
		ProofURL    *string              `json:"proof_url"`
	}

	var req SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	appType := models.ApplicationType(req.Type)
	if appType == models.ApplicationProfileUpdate && req.Data == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Profile update applications must include the proposed changes"})
	}
	if appType != models.ApplicationProfileUpdate {
		req.Data = nil
	}

	application := s.SubmitApplication(models.Application{
		StudentID:   studentID,
		Type:        appType,
		Title:       req.Title,
		Description: req.Description,
		Data:        req.Data,
		ProofURL:    req.ProofURL,
	})

	return c.Status(201).JSON(fiber.Map{
		"message":     "Application submitted successfully",
		"application": application,
	})
}

// ApproveApplicationAPI approves an application; for a ProfileUpdate the
// store applies the proposed changes to the student as part of the same
// operation.
func ApproveApplicationAPI(c *fiber.Ctx, s *store.Store) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid application ID"})
	}

	app, ok := findApplication(s, id)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Application not found"})
	}
	if app.Status != models.ApplicationPending {
		return c.Status(409).JSON(fiber.Map{"error": "Application has already been decided"})
	}

	s.UpdateApplicationStatus(id, models.ApplicationApproved, "")

	app, _ = findApplication(s, id)
	return c.JSON(fiber.Map{
		"message":     "Application approved",
		"application": app,
	})
}

func RejectApplicationAPI(c *fiber.Ctx, s *store.Store) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid application ID"})
	}

	app, ok := findApplication(s, id)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Application not found"})
	}
	if app.Status != models.ApplicationPending {
		return c.Status(409).JSON(fiber.Map{"error": "Application has already been decided"})
	}

	type RejectRequest struct {
		Reason string `json:"reason" validate:"required"`
	}
	var req RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "A rejection reason is required"})
	}

	s.UpdateApplicationStatus(id, models.ApplicationRejected, req.Reason)

	app, _ = findApplication(s, id)
	return c.JSON(fiber.Map{
		"message":     "Application rejected",
		"application": app,
	})
}

func findApplication(s *store.Store, id int) (models.Application, bool) {
	for _, a := range s.Applications() {
		if a.ID == id {
			return a, true
		}
	}
	return models.Application{}, false
}
