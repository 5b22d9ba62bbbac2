package folders

import (
	"nautical-institute/app/models"
	"nautical-institute/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupFoldersRoutes(app *fiber.App) {
	api := app.Group("/api/folders")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAllFoldersAPI)
	api.Get("/:id", GetFolderAPI)
	api.Get("/:id/roster", GetFolderRosterAPI)

	staff := auth.RequireRoles(models.RoleAdmin, models.RoleSecretary)
	api.Post("/", staff, CreateFolderAPI)
	api.Put("/:id/close", staff, CloseFolderAPI)
	api.Post("/:id/enrollments", staff, CreateEnrollmentAPI)

	courses := app.Group("/api/courses")
	courses.Use(auth.AuthMiddleware)
	courses.Get("/", GetAllCoursesAPI)
	courses.Get("/:id", GetCourseAPI)
	courses.Post("/", staff, CreateCourseAPI)
}
