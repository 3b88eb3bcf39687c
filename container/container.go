package container

import (
	"database/sql"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/jvdberg/go-api-base/auth"
	"github.com/jvdberg/go-api-base/controller"
	"github.com/jvdberg/go-api-base/middleware"
	"github.com/jvdberg/go-api-base/settings"
	"github.com/jvdberg/go-api-base/store"
)

type Container struct {
	Settings      *settings.Settings
	Logger        *slog.Logger
	Database      *sql.DB
	UserStore     store.UserStore
	SessionStore  store.SessionStore
	Authenticator auth.Authenticator
	App           *fiber.App
}

func New(cfg *settings.Settings, log *slog.Logger, database *sql.DB) *Container {
	// Stores
	userStore := store.NewUserStore(database)
	sessionStore := store.NewSessionStore(database)

	// Services
	authenticator := auth.NewAuthenticator(userStore, sessionStore, cfg.SessionLifetime)
	validate := validator.New()

	// Controllers
	homeController := controller.NewHomeController(cfg, log, database)
	userController := controller.NewUserController(userStore, validate)
	authController := controller.NewAuthController(authenticator, validate)

	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ErrorHandler: newErrorHandler(log),
	})

	app.Use(recoverer.New())
	if cfg.Environment != settings.Testing {
		app.Use(logger.New())
	}

	app.Get("/", homeController.Welcome)
	app.Get("/health", homeController.Health)

	app.Get("/users", userController.List)
	app.Get("/users/:id", userController.Get)
	app.Post("/users", middleware.RequireSession(authenticator, userController.Create))
	app.Put("/users/:id", middleware.RequireSession(authenticator, userController.Update))
	app.Delete("/users/:id", middleware.RequireSession(authenticator, userController.Delete))

	app.Post("/auth/login", authController.Login)
	app.Post("/auth/validate", authController.Validate)
	app.Post("/auth/logout", authController.Logout)

	return &Container{
		Settings:      cfg,
		Logger:        log,
		Database:      database,
		UserStore:     userStore,
		SessionStore:  sessionStore,
		Authenticator: authenticator,
		App:           app,
	}
}
