package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/jais-samman14/hospital-management-backend/handlers"
	"github.com/jais-samman14/hospital-management-backend/middleware"
)

// Deps carries the constructed handlers into route setup. Nothing here is
// ambient: every handler holds its own store and logger.
type Deps struct {
	Log          *zap.Logger
	Health       *handlers.HealthHandler
	Patients     *handlers.PatientHandler
	Doctors      *handlers.DoctorHandler
	Appointments *handlers.AppointmentHandler
}

// SetupRoutes wires middleware and mounts every route.
func SetupRoutes(app *fiber.App, deps Deps) {
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.RequestLogger(deps.Log))

	createLimiter := middleware.NewRateLimiter(middleware.CreateRateLimit)

	// Blanket limiter covers every /api path, including health.
	api := app.Group("/api", middleware.NewRateLimiter(middleware.APIRateLimit))

	api.Get("/health", deps.Health.Check)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Welcome to Hospital Management System API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"patients":     "/api/patients",
				"doctors":      "/api/doctors",
				"appointments": "/api/appointments",
				"health":       "/api/health",
			},
		})
	})

	patients := api.Group("/patients")
	patients.Get("/", deps.Patients.List)
	patients.Post("/", createLimiter, deps.Patients.Create)
	patients.Get("/:id", deps.Patients.GetByID)
	patients.Put("/:id", deps.Patients.Update)
	patients.Delete("/:id", deps.Patients.Delete)

	// Literal segments are registered before /:id so they win the match.
	doctors := api.Group("/doctors")
	doctors.Get("/", deps.Doctors.List)
	doctors.Get("/available", deps.Doctors.ListAvailable)
	doctors.Get("/specialization/:specialization", deps.Doctors.ListBySpecialization)
	doctors.Get("/:id", deps.Doctors.GetByID)

	appointments := api.Group("/appointments")
	appointments.Get("/", deps.Appointments.List)
	appointments.Post("/", createLimiter, deps.Appointments.Create)
	appointments.Get("/patient/:patientId", deps.Appointments.ListByPatient)
	appointments.Get("/doctor/:doctorId", deps.Appointments.ListByDoctor)
	appointments.Put("/:id/status", deps.Appointments.UpdateStatus)
	appointments.Delete("/:id", deps.Appointments.Delete)

	// Catch-all for anything unmatched.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Endpoint not found",
		})
	})
}
