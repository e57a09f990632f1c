package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cyra-health/cyra/internal/api"
	"github.com/cyra-health/cyra/internal/chat"
	"github.com/cyra-health/cyra/internal/db"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "cyra.db"))
	port := getEnv("PORT", "8080")
	uploadDir := getEnv("UPLOAD_DIR", filepath.Join("data", "uploads"))

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	var assistant *chat.Client
	if apiKey := os.Getenv("ASSISTANT_API_KEY"); apiKey != "" {
		assistant = &chat.Client{
			BaseURL: getEnv("ASSISTANT_BASE_URL", "https://api.openai.com"),
			APIKey:  apiKey,
			Model:   os.Getenv("ASSISTANT_MODEL"),
		}
	}

	handler := api.NewHandler(api.Config{
		Database:  database,
		Secret:    secretKey,
		Location:  location,
		UploadDir: uploadDir,
		Assistant: assistant,
	})

	app := fiber.New(fiber.Config{
		AppName:               "Cyra",
		DisableStartupMessage: true,
		BodyLimit:             12 << 20,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Cyra listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
