package logbooks

import (
	"nautical-institute/app/models"
	"nautical-institute/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupLogbooksRoutes(app *fiber.App) {
	api := app.Group("/api/logbooks")
	api.Use(auth.AuthMiddleware)

	api.Get("/:id", GetLogbookAPI)

	staff := auth.RequireRoles(models.RoleAdmin, models.RoleSecretary)
	api.Post("/", staff, CreateLogbookAPI)
	api.Put("/:id", staff, UpdateLogbookAPI)
	api.Put("/:id/finish", staff, FinishLogbookAPI)

	// Listing hangs off the folder
	folderAPI := app.Group("/api/folders")
	folderAPI.Use(auth.AuthMiddleware)
	folderAPI.Get("/:id/logbooks", GetLogbooksByFolderAPI)
}
