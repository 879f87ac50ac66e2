package assistant

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/iamkd2000/Hostel-Management/app/services"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

var validate = validator.New()

// ChatAPI answers a hostel policy question using the Gemini model,
// grounding the reply in the live store snapshot. A failed generation
// still returns 200 with a canned apology so the chat widget degrades
// gracefully instead of erroring out.
func ChatAPI(c *fiber.Ctx, s *store.Store, client *services.GenAIClient) error {
	req := struct {
		Message string `json:"message" validate:"required"`
	}{}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Message is required",
		})
	}

	prompt := services.BuildAssistantPrompt(s.Students(), s.Rooms(), s.Complaints(), req.Message)

	reply, err := client.GenerateContent(c.UserContext(), prompt)
	if err != nil {
		log.Printf("Assistant generation failed: %v", err)
		return c.JSON(fiber.Map{
			"success": true,
			"reply":   services.AssistantFallbackReply,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reply":   reply,
	})
}
