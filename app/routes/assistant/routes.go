package assistant

import (
	"github.com/gofiber/fiber/v2"
	"github.com/iamkd2000/Hostel-Management/app/routes/auth"
	"github.com/iamkd2000/Hostel-Management/app/services"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

func SetupAssistantRoutes(app *fiber.App, s *store.Store, client *services.GenAIClient) {
	api := app.Group("/api/assistant")
	api.Use(auth.AuthMiddleware)

	api.Post("/chat", func(c *fiber.Ctx) error {
		return ChatAPI(c, s, client)
	})
}
