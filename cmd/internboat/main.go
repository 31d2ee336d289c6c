package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"internboat/internal/config"
	"internboat/internal/http/handlers"
	applog "internboat/internal/log"
	"internboat/internal/repos"
	"internboat/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	// Store wiring: main owns the backend's lifecycle, handlers only see
	// the interface.
	var store services.UserStore
	switch cfg.Store {
	case config.StoreMemory:
		log.Println("[store] in-memory registrations; data is lost on restart")
		store = repos.NewMemoryUserStore()
	default:
		db, err := repos.OpenDB(cfg.DBDSN)
		if err != nil {
			log.Fatal(err)
		}
		store = repos.NewUserRepo(db)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal server error"
			var fe *fiber.Error
			if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
				code = fe.Code
				message = fe.Message
			} else {
				applog.Error(c, "server.error", err, nil)
			}
			return c.Status(code).JSON(fiber.Map{"message": message})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	// The frontend is served from another origin, so allow everyone.
	app.Use(cors.New())

	// ---------- App handlers ----------
	deps := handlers.NewDeps(store)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Internboat Backend is running! (API endpoints: /register, /view-registrations, /login, /courses)")
	})
	app.Post("/register", deps.UserHandler.Register)
	app.Get("/view-registrations", deps.UserHandler.ViewRegistrations)
	app.Post("/login", deps.UserHandler.Login)
	app.Get("/courses", deps.CatalogHandler.Courses)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	log.Fatal(app.Listen(":" + cfg.Port))
}
