package attendance

import (
	"nautical-institute/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/logbooks")
	api.Use(auth.AuthMiddleware)

	// Instructors submit their own daily logs, so no extra role gate here.
	api.Post("/:id/daily-log", SubmitDailyLogAPI)
	api.Get("/:id/daily-log/:date", GetDailyLogAPI)
	api.Get("/:id/weeks", GetWeeksAPI)
	api.Get("/:id/attendance-summary", GetAttendanceSummaryAPI)
}
