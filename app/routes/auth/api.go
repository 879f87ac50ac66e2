package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/iamkd2000/Hostel-Management/app/config"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

// LoginAPI is the demonstration login stub: one configured admin account,
// and students identified by their registry ID with no password. This is
// deliberately not hardened.
func LoginAPI(c *fiber.Ctx, cfg *config.Config, s *store.Store) error {
	type LoginRequest struct {
		Role      string `json:"role"`
		Username  string `json:"username"`
		Password  string `json:"password"`
		StudentID int    `json:"student_id"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	switch req.Role {
	case RoleAdmin:
		if req.Username != cfg.AdminUsername || !CheckPasswordHash(req.Password, cfg.AdminPasswordHash) {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid admin credentials"})
		}

		token, err := GenerateJWT(RoleAdmin, 0)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
		}
		setSessionCookie(c, token)
		return c.JSON(fiber.Map{
			"message": "Login successful",
			"role":    RoleAdmin,
			"token":   token,
		})

	case RoleStudent:
		student, ok := s.StudentByID(req.StudentID)
		if !ok {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid student ID"})
		}

		token, err := GenerateJWT(RoleStudent, student.ID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
		}
		setSessionCookie(c, token)
		return c.JSON(fiber.Map{
			"message": "Login successful",
			"role":    RoleStudent,
			"token":   token,
			"student": student,
		})

	default:
		return c.Status(400).JSON(fiber.Map{"error": "Role must be admin or student"})
	}
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Logged out"})
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
	})
}
