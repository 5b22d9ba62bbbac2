package quotations

import (
	"nautical-institute/app/config"
	"nautical-institute/app/database"
	"nautical-institute/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func GetAllQuotationsAPI(c *fiber.Ctx) error {
	quotations, err := database.GetAllQuotations(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch quotations"})
	}

	return c.JSON(fiber.Map{
		"quotations": quotations,
		"count":      len(quotations),
	})
}

func CreateQuotationAPI(c *fiber.Ctx) error {
	type QuotationRequest struct {
		Customer string  `json:"customer" validate:"required"`
		CourseID *string `json:"course_id" validate:"omitempty,uuid"`
		Amount   float64 `json:"amount" validate:"gte=0"`
	}

	var req QuotationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	quotation := &models.Quotation{
		Customer: req.Customer,
		CourseID: req.CourseID,
		Amount:   req.Amount,
	}

	if err := database.CreateQuotation(config.GetDB(), quotation); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create quotation"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":   "Quotation created successfully",
		"quotation": quotation,
	})
}

func UpdateQuotationStatusAPI(c *fiber.Ctx) error {
	quotationID := c.Params("id")

	type StatusRequest struct {
		Status string `json:"status" validate:"required,oneof=draft sent accepted rejected"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	err := database.UpdateQuotationStatus(config.GetDB(), quotationID, models.QuotationStatus(req.Status))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update quotation status"})
	}

	return c.JSON(fiber.Map{"message": "Quotation status updated successfully"})
}
