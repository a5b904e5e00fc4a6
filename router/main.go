package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/studybridge/uniapply-api/database"
	"github.com/studybridge/uniapply-api/handlers"
	application_handlers "github.com/studybridge/uniapply-api/handlers/application"
	university_handlers "github.com/studybridge/uniapply-api/handlers/university"
	"github.com/studybridge/uniapply-api/utils/middleware"
)

func SetupRoutes(app *fiber.App, store database.Storage, allowedOrigins string) {
	// Initialize handlers
	universityHandler := university_handlers.NewUniversityHandler(store)
	applicationHandler := application_handlers.NewApplicationHandler(store)

	// Apply security middleware
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:5173"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Liveness endpoints (public)
	app.Get("/", handlers.HandleRoot)
	app.Get("/ping", func(c *fiber.Ctx) error { return handlers.HandleCheckHealth(c, store) })

	// API group
	api := app.Group("/api")

	// Universities routes (catalog is read-only)
	api.Get("/universities", universityHandler.ListUniversities)
	api.Get("/universities/:id", universityHandler.GetUniversity)

	// Application submission
	api.Post("/apply", applicationHandler.Apply)
}
