package students

import (
	"nautical-institute/app/config"
	"nautical-institute/app/database"
	"nautical-institute/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func GetAllStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetAllStudents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func GetStudentAPI(c *fiber.Ctx) error {
	nationalID := c.Params("nationalId")
	if nationalID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "National ID is required"})
	}

	student, err := database.GetStudentByNationalID(config.GetDB(), nationalID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	if student == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	return c.JSON(fiber.Map{"student": student})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	type StudentRequest struct {
		NationalID string `json:"national_id" validate:"required"`
		FirstName  string `json:"first_name" validate:"required"`
		LastName   string `json:"last_name" validate:"required"`
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := &models.Student{
		NationalID: req.NationalID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	}

	if err := database.CreateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student created successfully",
		"student": student,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	nationalID := c.Params("nationalId")
	if nationalID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "National ID is required"})
	}

	type StudentUpdateRequest struct {
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
		IsActive  *bool  `json:"is_active"`
	}

	var req StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	student := &models.Student{
		NationalID: nationalID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		IsActive:   true,
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{
		"message": "Student updated successfully",
		"student": student,
	})
}
