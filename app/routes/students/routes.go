package students

import (
	"nautical-institute/app/models"
	"nautical-institute/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAllStudentsAPI)
	api.Get("/:nationalId", GetStudentAPI)

	// Registry changes are an administrative concern
	api.Post("/", auth.RequireRoles(models.RoleAdmin, models.RoleSecretary), CreateStudentAPI)
	api.Put("/:nationalId", auth.RequireRoles(models.RoleAdmin, models.RoleSecretary), UpdateStudentAPI)
}
