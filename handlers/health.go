package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/studybridge/uniapply-api/database"
	"github.com/studybridge/uniapply-api/utils/response"
)

// HandleRoot is the plain-text liveness endpoint the frontend pings
func HandleRoot(c *fiber.Ctx) error {
	return c.SendString("University application API is running")
}

// HandleCheckHealth reports whether the database connection is alive
func HandleCheckHealth(c *fiber.Ctx, store database.Storage) error {
	if err := store.HealthCheck(); err != nil {
		return response.ServiceUnavailable(c, "Database connection is down")
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
