package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/iamkd2000/Hostel-Management/app/config"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

func SetupAuthRoutes(app *fiber.App, cfg *config.Config, s *store.Store) {
	api := app.Group("/api/auth")
	api.Post("/login", func(c *fiber.Ctx) error {
		return LoginAPI(c, cfg, s)
	})
	api.Post("/logout", LogoutAPI)
}

// AuthMiddleware validates the session token and sets the caller's role and
// student ID on the request context.
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("role", claims.Role)
	c.Locals("student_id", claims.StudentID)

	return c.Next()
}

// AdminOnly rejects callers whose session is not an admin session. It must
// run after AuthMiddleware.
func AdminOnly(c *fiber.Ctx) error {
	if role, _ := c.Locals("role").(string); role != RoleAdmin {
		return c.Status(403).JSON(fiber.Map{"error": "Admin access required"})
	}
	return c.Next()
}

// SessionRole returns the caller's role set by AuthMiddleware.
func SessionRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}

// SessionStudentID returns the student ID bound to the session, zero for
// admin sessions.
func SessionStudentID(c *fiber.Ctx) int {
	id, _ := c.Locals("student_id").(int)
	return id
}
