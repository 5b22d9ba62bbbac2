package dashboard

import (
	"nautical-institute/app/config"
	"nautical-institute/app/database"

	"github.com/gofiber/fiber/v2"
)

func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetDashboardStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}

	return c.JSON(fiber.Map{"stats": stats})
}
