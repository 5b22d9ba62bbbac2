package attendance

import (
	"errors"
	"nautical-institute/app/config"
	"nautical-institute/app/database"
	"nautical-institute/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SubmitDailyLogAPI persists one day's teaching record and its attendance
// roll in a single transaction. Date and hours are validated before any
// database work; resubmitting the same date overwrites the prior record.
func SubmitDailyLogAPI(c *fiber.Ctx) error {
	logbookID := c.Params("id")

	type MarkRequest struct {
		NationalID string `json:"national_id"`
		FullName   string `json:"full_name"`
		State      string `json:"state" validate:"required,oneof=present absent"`
	}
	type DailyLogRequest struct {
		Date    string        `json:"date" validate:"required"`
		Content string        `json:"content"`
		Hours   string        `json:"hours" validate:"required"`
		Marks   []MarkRequest `json:"marks" validate:"dive"`
	}

	var req DailyLogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := ParseEntryDate(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	hours, err := ParseHours(req.Hours)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if hours < 0 {
		return c.Status(400).JSON(fiber.Map{"error": database.ErrNegativeHours.Error()})
	}

	marks := make([]database.RosterMark, len(req.Marks))
	for i, mark := range req.Marks {
		marks[i] = database.RosterMark{
			NationalID: mark.NationalID,
			FullName:   mark.FullName,
			State:      models.AttendanceState(mark.State),
		}
	}

	user := c.Locals("user").(*models.User)
	markedBy := user.ID

	input := &database.DailyLogInput{
		LogbookID: logbookID,
		Date:      date,
		Content:   req.Content,
		Hours:     hours,
		Marks:     marks,
		MarkedBy:  &markedBy,
	}

	result, err := database.RecordDailyLog(config.GetDB(), input)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrLogbookNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Logbook not found"})
		case errors.Is(err, database.ErrLogbookFinished):
			return c.Status(400).JSON(fiber.Map{"error": "Logbook is finished"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save daily log: " + err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Daily log saved successfully",
		"result":  result,
	})
}

// GetDailyLogAPI returns the recorded content and marks for one date.
func GetDailyLogAPI(c *fiber.Ctx) error {
	logbookID := c.Params("id")

	date, err := ParseEntryDate(c.Params("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	view, err := database.GetDailyLog(config.GetDB(), logbookID, date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch daily log"})
	}
	if view == nil {
		return c.Status(404).JSON(fiber.Map{"error": "No record for this date"})
	}

	return c.JSON(fiber.Map{"daily_log": view})
}

func GetWeeksAPI(c *fiber.Ctx) error {
	logbookID := c.Params("id")

	weeks, err := database.GetWeeklyContents(config.GetDB(), logbookID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch weeks"})
	}

	return c.JSON(fiber.Map{
		"weeks": weeks,
		"count": len(weeks),
	})
}

func GetAttendanceSummaryAPI(c *fiber.Ctx) error {
	logbookID := c.Params("id")

	summary, err := database.GetLogbookAttendanceSummary(config.GetDB(), logbookID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance summary"})
	}

	return c.JSON(fiber.Map{
		"summary": summary,
		"count":   len(summary),
	})
}
