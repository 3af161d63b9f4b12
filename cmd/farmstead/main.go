package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"farmstead/internal/api"
	"farmstead/internal/config"
	"farmstead/internal/db"
	"farmstead/internal/security"
	"farmstead/internal/services"
	"farmstead/internal/store"
	"farmstead/internal/weather"
)

const secretKeyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	secretKey := cfg.SecretKey
	if secretKey == "change_me_in_production" {
		// Sessions will not survive a restart with a generated key; set
		// SECRET_KEY to keep users signed in across deploys.
		generated, err := security.RandomString(48, secretKeyAlphabet)
		if err != nil {
			log.Fatalf("secret key generation failed: %v", err)
		}
		secretKey = generated
		log.Printf("SECRET_KEY not set, using a generated key")
	}

	storage, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	weatherClient := weather.NewClient(cfg.WeatherGeoURL, cfg.WeatherDataURL)
	handler := api.NewHandler(storage, secretKey, cfg.Location, weatherClient, cfg.CookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "Farmstead",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	roller := services.NewRecurrenceService(storage, cfg.Location)
	if err := roller.Start(lifecycleCtx); err != nil {
		log.Fatalf("recurrence scheduler failed: %v", err)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Farmstead listening on http://0.0.0.0:%s (store: %s, tz: %s)", cfg.Port, cfg.StoreBackend, cfg.Location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func openStore(cfg config.Config) (store.Store, error) {
	if cfg.StoreBackend == config.StoreBackendMemory {
		return store.NewMemoryStore(cfg.Location), nil
	}
	database, err := db.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	return store.NewDatabaseStore(database, cfg.Location), nil
}
