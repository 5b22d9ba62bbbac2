package logbooks

import (
	"nautical-institute/app/config"
	"nautical-institute/app/database"
	"nautical-institute/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func GetLogbooksByFolderAPI(c *fiber.Ctx) error {
	folderID := c.Params("id")

	logbooks, err := database.GetLogbooksByFolder(config.GetDB(), folderID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch logbooks"})
	}

	return c.JSON(fiber.Map{
		"logbooks": logbooks,
		"count":    len(logbooks),
	})
}

func GetLogbookAPI(c *fiber.Ctx) error {
	logbookID := c.Params("id")

	logbook, err := database.GetLogbookByID(config.GetDB(), logbookID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Logbook not found"})
	}

	return c.JSON(fiber.Map{"logbook": logbook})
}

func CreateLogbookAPI(c *fiber.Ctx) error {
	type LogbookRequest struct {
		FolderID         string  `json:"folder_id" validate:"required,uuid"`
		Subject          string  `json:"subject" validate:"required"`
		Instructor       string  `json:"instructor" validate:"required"`
		ResolutionNumber string  `json:"resolution_number"`
		TotalHours       float64 `json:"total_hours" validate:"gte=0"`
	}

	var req LogbookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// The folder must exist and be open
	folder, err := database.GetFolderByID(config.GetDB(), req.FolderID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Folder not found"})
	}
	if folder.Status != models.FolderOpen {
		return c.Status(400).JSON(fiber.Map{"error": "Folder is closed"})
	}

	logbook := &models.Logbook{
		FolderID:         req.FolderID,
		Subject:          req.Subject,
		Instructor:       req.Instructor,
		ResolutionNumber: req.ResolutionNumber,
		TotalHours:       req.TotalHours,
	}

	if err := database.CreateLogbook(config.GetDB(), logbook); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create logbook"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Logbook created successfully",
		"logbook": logbook,
	})
}

func UpdateLogbookAPI(c *fiber.Ctx) error {
	logbookID := c.Params("id")

	type LogbookUpdateRequest struct {
		Subject          string  `json:"subject" validate:"required"`
		Instructor       string  `json:"instructor" validate:"required"`
		ResolutionNumber string  `json:"resolution_number"`
		TotalHours       float64 `json:"total_hours" validate:"gte=0"`
	}

	var req LogbookUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	logbook := &models.Logbook{
		ID:               logbookID,
		Subject:          req.Subject,
		Instructor:       req.Instructor,
		ResolutionNumber: req.ResolutionNumber,
		TotalHours:       req.TotalHours,
	}

	if err := database.UpdateLogbook(config.GetDB(), logbook); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update logbook"})
	}

	return c.JSON(fiber.Map{
		"message": "Logbook updated successfully",
		"logbook": logbook,
	})
}

func FinishLogbookAPI(c *fiber.Ctx) error {
	logbookID := c.Params("id")

	if err := database.FinishLogbook(config.GetDB(), logbookID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to finish logbook"})
	}

	return c.JSON(fiber.Map{"message": "Logbook finished successfully"})
}
