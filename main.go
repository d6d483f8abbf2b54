package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rvolkov-dev/autobridge/app/models"
	"github.com/rvolkov-dev/autobridge/app/repository"
	"github.com/rvolkov-dev/autobridge/internal/pkg/cache"
	"github.com/rvolkov-dev/autobridge/internal/pkg/database"
	"github.com/rvolkov-dev/autobridge/internal/pkg/env"
	"github.com/rvolkov-dev/autobridge/internal/pkg/metrics/counter"
	"github.com/rvolkov-dev/autobridge/internal/pkg/router"
)

// Dev entry, run from the project root. The production binary lives in
// cmd/autobridge.
func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	repository.InitializeFactory(database.GetDB())

	if err := models.LoadSettings(database.GetDB()); err != nil {
		log.Printf("Warning: could not load settings, using defaults: %v", err)
	}

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if err := counter.FlushAll(); err != nil {
				log.Printf("Failed to flush view counters: %v", err)
			}
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:   "AutoBridge",
		BodyLimit: 4 * 1024 * 1024,
	})
	app.Use(recover.New(), logger.New())

	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "admin"),
		},
	}), monitor.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}
