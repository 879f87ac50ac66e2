package complaints

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/iamkd2000/Hostel-Management/app/models"
	"github.com/iamkd2000/Hostel-Management/app/routes/auth"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

var validate = validator.New()

// subcategories fixes the allowed subcategory list per complaint category.
var subcategories = map[models.ComplaintCategory][]string{
	models.ComplaintMaintenance: {"Fan", "Light/Electric", "Plumbing/Water", "Furniture", "AC/Cooler", "Cleaning"},
	models.ComplaintFood:        {"Quality/Taste", "Hygiene", "Quantity", "Timings", "Menu Issue"},
	models.ComplaintDiscipline:  {"Noise", "Fighting", "Ragging", "Theft", "Late Entry", "Alcohol/Smoking"},
	models.ComplaintOther:       {"Wi-Fi/Internet", "Medical", "Staff Behavior", "Water Supply", "Miscellaneous"},
}

func validSubcategory(category models.ComplaintCategory, sub string) bool {
	for _, s := range subcategories[category] {
		if s == sub {
			return true
		}
	}
	return false
}

// GetComplaintsAPI returns complaints, most recent first, with optional
// status, category, and student filters.
func GetComplaintsAPI(c *fiber.Ctx, s *store.Store) error {
	status := c.Query("status")
	category := c.Query("category")
	studentID := c.QueryInt("student_id", 0)

	var filtered []models.Complaint
	for _, cm := range s.Complaints() {
		if status != "" && string(cm.Status) != status {
			continue
		}
		if category != "" && string(cm.Category) != category {
			continue
		}
		if studentID != 0 && cm.StudentID != studentID {
			continue
		}
		filtered = append(filtered, cm)
	}

	return c.JSON(fiber.Map{
		"complaints": filtered,
		"count":      len(filtered),
	})
}

// GetComplaintsStatsAPI returns complaint counts for the complaints page.
func GetComplaintsStatsAPI(c *fiber.Ctx, s *store.Store) error {
	stats := fiber.Map{}
	total, pending := 0, 0
	byCategory := map[models.ComplaintCategory]int{}
	for _, cm := range s.Complaints() {
		total++
		if cm.Status == models.ComplaintPending {
			pending++
		}
		byCategory[cm.Category]++
	}
	stats["total"] = total
	stats["pending"] = pending
	stats["resolved"] = total - pending
	stats["by_category"] = byCategory

	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// CreateComplaintAPI files a complaint. The subcategory must belong to the
// category's fixed list; a student session always files for itself, an
// admin names the student in the body.
func CreateComplaintAPI(c *fiber.Ctx, s *store.Store) error {
	type CreateComplaintRequest struct {
		StudentID   int    `json:"student_id"`
		Category    string `json:"category" validate:"required,oneof=Maintenance Food Discipline Other"`
		Subcategory string `json:"subcategory" validate:"required"`
		Description string `json:"description" validate:"required"`
	}

	var req CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if auth.SessionRole(c) == auth.RoleStudent {
		req.StudentID = auth.SessionStudentID(c)
	}
	if req.StudentID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "student_id is required"})
	}

	category := models.ComplaintCategory(req.Category)
	if !validSubcategory(category, req.Subcategory) {
		return c.Status(400).JSON(fiber.Map{"error": "Subcategory does not belong to the selected category"})
	}

	complaint := s.AddComplaint(models.Complaint{
		StudentID:   req.StudentID,
		Category:    category,
		Subcategory: req.Subcategory,
		Description: req.Description,
	})

	return c.Status(201).JSON(fiber.Map{
		"message":   "Complaint submitted successfully",
		"complaint": complaint,
	})
}

func ResolveComplaintAPI(c *fiber.Ctx, s *store.Store) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid complaint ID"})
	}

	found := false
	for _, cm := range s.Complaints() {
		if cm.ID == id {
			found = true
			break
		}
	}
	if !found {
		return c.Status(404).JSON(fiber.Map{"error": "Complaint not found"})
	}

	s.ResolveComplaint(id)

	return c.JSON(fiber.Map{"message": "Complaint resolved"})
}
