package students

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/iamkd2000/Hostel-Management/app/models"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

var validate = validator.New()

// GetStudentsAPI returns the registry with optional search, gender, and
// allocation filters plus pagination.
func GetStudentsAPI(c *fiber.Ctx, s *store.Store) error {
	search := strings.ToLower(c.Query("search"))
	gender := c.Query("gender")
	allocated := c.Query("allocated") // "true" | "false" | ""
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)

	var filtered []models.Student
	for _, st := range s.Students() {
		if search != "" {
			name := strings.ToLower(st.Name)
			email := strings.ToLower(st.Email)
			if !strings.Contains(name, search) && !strings.Contains(email, search) && !strings.Contains(st.Contact, search) {
				continue
			}
		}
		if gender != "" && string(st.Gender) != gender {
			continue
		}
		if allocated == "true" && st.RoomNumber == nil {
			continue
		}
		if allocated == "false" && st.RoomNumber != nil {
			continue
		}
		filtered = append(filtered, st)
	}

	totalCount := len(filtered)
	if offset > len(filtered) {
		offset = len(filtered)
	}
	filtered = filtered[offset:]
	if limit > 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}

	return c.JSON(fiber.Map{
		"students":    filtered,
		"count":       len(filtered),
		"total_count": totalCount,
	})
}

// GetStudentsStatsAPI returns registry statistics for the students page.
func GetStudentsStatsAPI(c *fiber.Ctx, s *store.Store) error {
	students := s.Students()

	stats := fiber.Map{
		"total":       len(students),
		"allocated":   0,
		"unallocated": 0,
		"male":        0,
		"female":      0,
	}
	allocated, male := 0, 0
	for _, st := range students {
		if st.RoomNumber != nil {
			allocated++
		}
		if st.Gender == models.GenderMale {
			male++
		}
	}
	stats["allocated"] = allocated
	stats["unallocated"] = len(students) - allocated
	stats["male"] = male
	stats["female"] = len(students) - male

	return c.JSON(fiber.Map{"success": true, "data": stats})
}

func GetStudentByIDAPI(c *fiber.Ctx, s *store.Store) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	student, ok := s.StudentByID(id)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	return c.JSON(fiber.Map{"student": student})
}

// CreateStudentAPI registers a new student. A room number may be supplied
// for immediate allocation; capacity and building fit are checked here
// before the store is invoked.
func CreateStudentAPI(c *fiber.Ctx, s *store.Store) error {
	type CreateStudentRequest struct {
		Name             string  `json:"name" validate:"required"`
		Gender           string  `json:"gender" validate:"required,oneof=Male Female"`
		Branch           string  `json:"branch" validate:"required"`
		Year             string  `json:"year" validate:"required"`
		BloodGroup       string  `json:"blood_group"`
		Caste            string  `json:"caste"`
		Contact          string  `json:"contact" validate:"required"`
		Email            string  `json:"email" validate:"omitempty,email"`
		PermanentAddress string  `json:"permanent_address"`
		TemporaryAddress string  `json:"temporary_address"`
		ParentName       string  `json:"parent_name"`
		ParentContact    string  `json:"parent_contact"`
		RoomNumber       *string `json:"room_number"`
		AdmissionDate    string  `json:"admission_date"`
		ProfilePhoto     *string `json:"profile_photo"`
	}

	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	gender := models.Gender(req.Gender)
	if req.RoomNumber != nil {
		if status, msg := checkAllocation(s, gender, *req.RoomNumber); status != 0 {
			return c.Status(status).JSON(fiber.Map{"error": msg})
		}
	}

	student := s.AddStudent(models.Student{
		Name:             req.Name,
		Gender:           gender,
		Branch:           req.Branch,
		Year:             req.Year,
		BloodGroup:       req.BloodGroup,
		Caste:            req.Caste,
		Contact:          req.Contact,
		Email:            req.Email,
		PermanentAddress: req.PermanentAddress,
		TemporaryAddress: req.TemporaryAddress,
		ParentName:       req.ParentName,
		ParentContact:    req.ParentContact,
		RoomNumber:       req.RoomNumber,
		AdmissionDate:    req.AdmissionDate,
		ProfilePhoto:     req.ProfilePhoto,
	})

	// The allocation happened inside AddStudent; return the stored record.
	if stored, ok := s.StudentByID(student.ID); ok {
		student = stored
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student registered successfully",
		"student": student,
	})
}

func DeleteStudentAPI(c *fiber.Ctx, s *store.Store) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	if _, ok := s.StudentByID(id); !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	s.DeleteStudent(id)

	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

// AllocateRoomAPI moves a student into a room. The store accepts any
// allocation, so the capacity and building-gender rules are enforced here.
func AllocateRoomAPI(c *fiber.Ctx, s *store.Store) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	type AllocateRequest struct {
		RoomNumber string `json:"room_number" validate:"required"`
	}
	var req AllocateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student, ok := s.StudentByID(id)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	if status, msg := checkAllocation(s, student.Gender, req.RoomNumber); status != 0 {
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}

	s.AllocateRoom(id, req.RoomNumber)

	student, _ = s.StudentByID(id)
	room, _ := s.RoomByNumber(req.RoomNumber)
	return c.JSON(fiber.Map{
		"message": "Room allocated successfully",
		"student": student,
		"room":    room,
	})
}

// checkAllocation applies the caller-side allocation rules: the room must
// exist, have a free bed, and belong to the student's building. A zero
// status means the allocation may proceed.
func checkAllocation(s *store.Store, gender models.Gender, roomNumber string) (int, string) {
	room, ok := s.RoomByNumber(roomNumber)
	if !ok {
		return 404, "Room not found"
	}
	if !room.Available() {
		return 409, "Room is already at full capacity"
	}
	if room.Building != models.BuildingForGender(gender) {
		return 400, "Room building does not match student gender"
	}
	return 0, ""
}
