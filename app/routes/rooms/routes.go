package rooms

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iamkd2000/Hostel-Management/app/routes/auth"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

func SetupRoomsRoutes(app *fiber.App, s *store.Store) {
	api := app.Group("/api/rooms")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetRoomsAPI(c, s) })
	api.Get("/stats", func(c *fiber.Ctx) error { return GetRoomsStatsAPI(c, s) })
	api.Get("/:room_number", func(c *fiber.Ctx) error { return GetRoomByNumberAPI(c, s) })
}
