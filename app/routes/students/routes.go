package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamkd2000/Hostel-Management/app/routes/auth"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

func SetupStudentsRoutes(app *fiber.App, s *store.Store) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", auth.AdminOnly, func(c *fiber.Ctx) error { return GetStudentsAPI(c, s) })
	api.Get("/stats", auth.AdminOnly, func(c *fiber.Ctx) error { return GetStudentsStatsAPI(c, s) })
	api.Post("/", auth.AdminOnly, func(c *fiber.Ctx) error { return CreateStudentAPI(c, s) })

	// Students may read their own record; everything else is admin work.
	api.Get("/:id", func(c *fiber.Ctx) error {
		if auth.SessionRole(c) != auth.RoleAdmin {
			if id, err := c.ParamsInt("id"); err != nil || id != auth.SessionStudentID(c) {
				return c.Status(403).JSON(fiber.Map{"error": "Admin access required"})
			}
		}
		return GetStudentByIDAPI(c, s)
	})

	api.Delete("/:id", auth.AdminOnly, func(c *fiber.Ctx) error { return DeleteStudentAPI(c, s) })
	api.Post("/:id/allocate", auth.AdminOnly, func(c *fiber.Ctx) error { return AllocateRoomAPI(c, s) })
}
