package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamkd2000/Hostel-Management/app/routes/auth"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

// GetDashboardStatsAPI returns the aggregate figures for the admin
// dashboard: occupancy per building, fee collection, and pending workloads.
func GetDashboardStatsAPI(c *fiber.Ctx, s *store.Store) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    s.DashboardStats(),
	})
}

func SetupDashboardRoutes(app *fiber.App, s *store.Store) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware, auth.AdminOnly)

	api.Get("/stats", func(c *fiber.Ctx) error { return GetDashboardStatsAPI(c, s) })
}
