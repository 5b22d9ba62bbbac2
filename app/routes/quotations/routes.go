package quotations

import (
	"nautical-institute/app/models"
	"nautical-institute/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupQuotationsRoutes(app *fiber.App) {
	api := app.Group("/api/quotations")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RequireRoles(models.RoleAdmin, models.RoleSecretary))

	api.Get("/", GetAllQuotationsAPI)
	api.Post("/", CreateQuotationAPI)
	api.Put("/:id/status", UpdateQuotationStatusAPI)
}
