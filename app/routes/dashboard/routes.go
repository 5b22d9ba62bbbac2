package dashboard

import (
	"nautical-institute/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", GetDashboardStatsAPI)
}
