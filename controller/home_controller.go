package controller

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/jvdberg/go-api-base/settings"
)

type HomeController interface {
	Welcome(c fiber.Ctx) error
	Health(c fiber.Ctx) error
}

type homeController struct {
	settings *settings.Settings
	logger   *slog.Logger
	database *sql.DB
}

func NewHomeController(settings *settings.Settings, logger *slog.Logger, database *sql.DB) HomeController {
	return &homeController{
		settings: settings,
		logger:   logger,
		database: database,
	}
}

func (controller *homeController) Welcome(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    controller.settings.Name,
		"message": "Welcome to the API",
		"version": settings.Version,
		"host":    controller.settings.Host,
	})
}

func (controller *homeController) Health(c fiber.Ctx) error {
	status := "ok"
	if err := controller.database.PingContext(c.Context()); err != nil {
		status = "degraded"
		controller.logger.Error("database could not be pinged", slog.String("error", err.Error()))
	}

	return c.JSON(fiber.Map{
		"status":    status,
		"version":   settings.Version,
		"timestamp": time.Now().UTC().Unix(),
	})
}
