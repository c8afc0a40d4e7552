package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/jkoopman/lexcursus/app/repository"
	"github.com/jkoopman/lexcursus/internal/pkg/cache"
	"github.com/jkoopman/lexcursus/internal/pkg/database"
	"github.com/jkoopman/lexcursus/internal/pkg/env"
	"github.com/jkoopman/lexcursus/internal/pkg/mail"
	"github.com/jkoopman/lexcursus/internal/pkg/metrics/counter"
	"github.com/jkoopman/lexcursus/internal/pkg/payment"
	"github.com/jkoopman/lexcursus/internal/pkg/router"
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

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/lexcursus to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// init fiber app
	app := fiber.New(fiber.Config{
		Views: html.New(basePath+"views", ".html"),
	})

	// ignore and cache favicon
	app.Use(favicon.New(favicon.Config{
		File:         basePath + "public/assets/icons/favicon.ico",
		URL:          "/favicon.ico",
		CacheControl: "public, max-age=604800",
	}))

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// fiber metrics
	app.Get("/metrics", basicauth.New(basicauth.Config{
		Users: map[string]string{
			"admin": env.GetEnv("METRICS_PASSWORD", "test"),
		},
	}), monitor.New())

	// static files
	app.Static("/", basePath+"public/assets", fiber.Static{
		CacheDuration: 15 * time.Second,
		Compress:      true,
	})

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// flush lesson view counters to the database in the background
	go counter.StartFlushLoop(context.Background(), 5*time.Minute)

	// ROUTER
	db := database.GetDB()
	factory := repository.NewFactory(db)
	router.InstallRouter(app, router.Dependencies{
		Repos:         factory.GetRepositories(),
		Payments:      payment.NewServiceFromDB(db).WithMailer(mail.Mailer{}),
		Checkout:      payment.NewClientFromEnv(),
		WebhookSecret: env.GetEnv("STRIPE_WEBHOOK_SECRET", ""),
	})

	return app
}
