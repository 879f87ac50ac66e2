package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/iamkd2000/Hostel-Management/app/config"
	"github.com/iamkd2000/Hostel-Management/app/routes/applications"
	"github.com/iamkd2000/Hostel-Management/app/routes/assistant"
	"github.com/iamkd2000/Hostel-Management/app/routes/auth"
	"github.com/iamkd2000/Hostel-Management/app/routes/complaints"
	"github.com/iamkd2000/Hostel-Management/app/routes/dashboard"
	"github.com/iamkd2000/Hostel-Management/app/routes/mess"
	"github.com/iamkd2000/Hostel-Management/app/routes/rooms"
	"github.com/iamkd2000/Hostel-Management/app/routes/students"
	"github.com/iamkd2000/Hostel-Management/app/services"
	"github.com/iamkd2000/Hostel-Management/app/store"
)

// apiErrorHandler renders every unhandled error as a JSON envelope.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Initialize the in-memory store with the GCOEN room grid
	s := store.New()
	s.SeedRooms()
	if cfg.SeedDemoData {
		s.SeedDemoData(cfg.SeedStudentCount)
		log.Printf("Seeded demo data with %d students", cfg.SeedStudentCount)
	}

	genai := services.NewGenAIClient(cfg.GeminiAPIKey)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup auth routes
	auth.SetupAuthRoutes(app, cfg, s)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app, s)

	// Setup students routes
	students.SetupStudentsRoutes(app, s)

	// Setup rooms routes
	rooms.SetupRoomsRoutes(app, s)

	// Setup mess payment routes
	mess.SetupMessRoutes(app, s)

	// Setup complaints routes
	complaints.SetupComplaintsRoutes(app, s)

	// Setup applications routes
	applications.SetupApplicationsRoutes(app, s)

	// Setup assistant routes
	assistant.SetupAssistantRoutes(app, s, genai)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	// Start server
	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
