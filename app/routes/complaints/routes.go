package complaints

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamkd2000/Hostel-Management/app/routes/auth"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

func SetupComplaintsRoutes(app *fiber.App, s *store.Store) {
	api := app.Group("/api/complaints")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error {
		if auth.SessionRole(c) != auth.RoleAdmin {
			return c.JSON(fiber.Map{
				"complaints": s.ComplaintsForStudent(auth.SessionStudentID(c)),
			})
		}
		return GetComplaintsAPI(c, s)
	})
	api.Get("/stats", auth.AdminOnly, func(c *fiber.Ctx) error { return GetComplaintsStatsAPI(c, s) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateComplaintAPI(c, s) })
	api.Post("/:id/resolve", auth.AdminOnly, func(c *fiber.Ctx) error { return ResolveComplaintAPI(c, s) })
}
