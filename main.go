package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/jais-samman14/hospital-management-backend/config"
	"github.com/jais-samman14/hospital-management-backend/database"
	"github.com/jais-samman14/hospital-management-backend/handlers"
	"github.com/jais-samman14/hospital-management-backend/logger"
	"github.com/jais-samman14/hospital-management-backend/routes"
	"github.com/jais-samman14/hospital-management-backend/storage"
)

func main() {
	envErr := godotenv.Load()

	log, err := logger.New(os.Getenv("ENVIRONMENT"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if envErr != nil {
		// The environment may provide everything, so this is only a warning.
		log.Warn("could not load .env file", zap.Error(envErr))
	}

	cfg := config.Load()

	// The server keeps listening even when the database probe fails: the
	// health endpoint reports Disconnected instead.
	pool, err := database.Connect(context.Background(), cfg, log)
	if pool == nil {
		log.Fatal("could not create connection pool", zap.Error(err))
	}
	defer pool.Close()

	app := fiber.New(fiber.Config{
		AppName: "Hospital Management System API v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   "Internal server error",
			})
		},
	})

	routes.SetupRoutes(app, routes.Deps{
		Log:          log,
		Health:       handlers.NewHealthHandler(pool, log),
		Patients:     handlers.NewPatientHandler(storage.NewPostgresPatientStore(pool, log), log),
		Doctors:      handlers.NewDoctorHandler(storage.NewPostgresDoctorStore(pool, log), log),
		Appointments: handlers.NewAppointmentHandler(storage.NewPostgresAppointmentStore(pool, log), log),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error("shutdown failed", zap.Error(err))
		}
	}()

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
	log.Info("server stopped")
}
