package folders

import (
	"nautical-institute/app/config"
	"nautical-institute/app/database"
	"nautical-institute/app/models"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func GetAllFoldersAPI(c *fiber.Ctx) error {
	folders, err := database.GetAllFolders(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch folders"})
	}

	return c.JSON(fiber.Map{
		"folders": folders,
		"count":   len(folders),
	})
}

func GetFolderAPI(c *fiber.Ctx) error {
	folderID := c.Params("id")

	folder, err := database.GetFolderByID(config.GetDB(), folderID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Folder not found"})
	}

	return c.JSON(fiber.Map{"folder": folder})
}

// GetFolderRosterAPI resolves the attendance roster for a folder. An empty
// roster is a valid response, not an error.
func GetFolderRosterAPI(c *fiber.Ctx) error {
	folderID := c.Params("id")

	students, err := database.GetFolderRoster(config.GetDB(), folderID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve roster"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func CreateFolderAPI(c *fiber.Ctx) error {
	type FolderRequest struct {
		ActaNumber int    `json:"acta_number" validate:"required,gt=0"`
		CourseID   string `json:"course_id" validate:"required,uuid"`
		StartDate  string `json:"start_date" validate:"required"`
		EndDate    string `json:"end_date"`
	}

	var req FolderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid start date format. Use YYYY-MM-DD"})
	}

	folder := &models.ClassFolder{
		ActaNumber: req.ActaNumber,
		CourseID:   req.CourseID,
		StartDate:  startDate,
	}

	if req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid end date format. Use YYYY-MM-DD"})
		}
		folder.EndDate = &endDate
	}

	if err := database.CreateFolder(config.GetDB(), folder); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create folder: " + err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Folder created successfully",
		"folder":  folder,
	})
}

func CloseFolderAPI(c *fiber.Ctx) error {
	folderID := c.Params("id")

	if err := database.CloseFolder(config.GetDB(), folderID, time.Now()); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to close folder"})
	}

	return c.JSON(fiber.Map{"message": "Folder closed successfully"})
}

// CreateEnrollmentAPI enrolls a student into the folder's cohort. The
// enrollment row carries acta + year + course, not the folder id: that is the
// denormalized key the roster join relies on.
func CreateEnrollmentAPI(c *fiber.Ctx) error {
	folderID := c.Params("id")

	type EnrollmentRequest struct {
		StudentNationalID string `json:"student_national_id" validate:"required"`
	}

	var req EnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	folder, err := database.GetFolderByID(config.GetDB(), folderID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Folder not found"})
	}

	student, err := database.GetStudentByNationalID(config.GetDB(), req.StudentNationalID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to look up student"})
	}
	if student == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	enrollment := &models.Enrollment{
		StudentNationalID: req.StudentNationalID,
		ActaNumber:        folder.ActaNumber,
		Year:              folder.StartDate.Year(),
		CourseID:          folder.CourseID,
	}

	if err := database.CreateEnrollment(config.GetDB(), enrollment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create enrollment"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Student enrolled successfully",
		"enrollment": enrollment,
	})
}

func GetAllCoursesAPI(c *fiber.Ctx) error {
	courses, err := database.GetAllCourses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}

	return c.JSON(fiber.Map{
		"courses": courses,
		"count":   len(courses),
	})
}

func GetCourseAPI(c *fiber.Ctx) error {
	courseID := c.Params("id")

	course, err := database.GetCourseByID(config.GetDB(), courseID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
	}

	return c.JSON(fiber.Map{"course": course})
}

func CreateCourseAPI(c *fiber.Ctx) error {
	type CourseRequest struct {
		Name          string  `json:"name" validate:"required"`
		Code          string  `json:"code" validate:"required"`
		DurationHours float64 `json:"duration_hours" validate:"gte=0"`
	}

	var req CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	course := &models.Course{
		Name:          req.Name,
		Code:          req.Code,
		DurationHours: req.DurationHours,
	}

	if err := database.CreateCourse(config.GetDB(), course); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create course"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Course created successfully",
		"course":  course,
	})
}
