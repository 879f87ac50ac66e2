package mess

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamkd2000/Hostel-Management/app/routes/auth"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

func SetupMessRoutes(app *fiber.App, s *store.Store) {
	api := app.Group("/api/mess")
	api.Use(auth.AuthMiddleware)

	// Students see only their own payment history.
	api.Get("/payments", func(c *fiber.Ctx) error {
		if auth.SessionRole(c) != auth.RoleAdmin {
			return c.JSON(fiber.Map{
				"payments": s.PaymentsForStudent(auth.SessionStudentID(c)),
			})
		}
		return GetPaymentsAPI(c, s)
	})

	api.Post("/claims", func(c *fiber.Ctx) error {
		if auth.SessionRole(c) != auth.RoleStudent {
			return c.Status(403).JSON(fiber.Map{"error": "Student session required"})
		}
		return SubmitClaimAPI(c, s, auth.SessionStudentID(c))
	})

	api.Get("/payments/pending", auth.AdminOnly, func(c *fiber.Ctx) error { return GetPendingVerificationsAPI(c, s) })
	api.Get("/stats", auth.AdminOnly, func(c *fiber.Ctx) error { return GetMessStatsAPI(c, s) })
	api.Post("/payments", auth.AdminOnly, func(c *fiber.Ctx) error { return RecordPaymentAPI(c, s) })
	api.Post("/payments/:id/verify", auth.AdminOnly, func(c *fiber.Ctx) error { return VerifyPaymentAPI(c, s) })
	api.Post("/payments/:id/reject", auth.AdminOnly, func(c *fiber.Ctx) error { return RejectPaymentAPI(c, s) })
}
