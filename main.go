package main

import (
	"log"
	"nautical-institute/app/config"
	"nautical-institute/app/database"
	"nautical-institute/app/routes/attendance"
	"nautical-institute/app/routes/auth"
	"nautical-institute/app/routes/dashboard"
	"nautical-institute/app/routes/folders"
	"nautical-institute/app/routes/logbooks"
	"nautical-institute/app/routes/quotations"
	"nautical-institute/app/routes/students"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Migrations failed: ", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Nautical Institute",
		ErrorHandler: errorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup folders and courses routes
	folders.SetupFoldersRoutes(app)

	// Setup logbooks routes
	logbooks.SetupLogbooksRoutes(app)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app)

	// Setup quotations routes
	quotations.SetupQuotationsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on " + addr)
	log.Fatal(app.Listen(addr))
}

func errorHandler(c *fiber.Ctx, err error) error {
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
