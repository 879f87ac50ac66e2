package applications

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamkd2000/Hostel-Management/app/routes/auth"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

func SetupApplicationsRoutes(app *fiber.App, s *store.Store) {
	api := app.Group("/api/applications")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		if auth.SessionRole(c) != auth.RoleAdmin {
			return c.JSON(fiber.Map{
				"applications": s.ApplicationsForStudent(auth.SessionStudentID(c)),
			})
		}
		return GetApplicationsAPI(c, s)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		if auth.SessionRole(c) != auth.RoleStudent {
			return c.Status(403).JSON(fiber.Map{"error": "Student session required"})
		}
		return SubmitApplicationAPI(c, s, auth.SessionStudentID(c))
	})

	api.Post("/:id/approve", auth.AdminOnly, func(c *fiber.Ctx) error { return ApproveApplicationAPI(c, s) })
	api.Post("/:id/reject", auth.AdminOnly, func(c *fiber.Ctx) error { return RejectApplicationAPI(c, s) })
}
