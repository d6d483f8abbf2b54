package main

import (
	"fmt"
	"log"
	"os"
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

	// Drain pending view counters to the database periodically
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if err := counter.FlushAll(); err != nil {
				log.Printf("Failed to flush view counters: %v", err)
			}
		}
	}()

	// Find the project root from wherever the binary was started
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/autobridge to project root
		"../../../", // Fallback
	}

	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	app := fiber.New(fiber.Config{
		AppName:   "AutoBridge",
		BodyLimit: 4 * 1024 * 1024,
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			env.GetEnv("METRICS_USER", "admin"): env.GetEnv("METRICS_PASSWORD", "admin"),
		},
	}), monitor.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}
