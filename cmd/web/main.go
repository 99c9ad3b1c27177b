package main

import (
	"context"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"msgboard/internal/bridge"
	"msgboard/internal/config"
	handlers "msgboard/internal/http/handler"
	"msgboard/internal/http/middleware"
	"msgboard/internal/metrics"
	"msgboard/internal/otel"
	"msgboard/internal/site"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	shutdown, err := otel.Init(context.Background(), "msgboard-web")
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdown(context.Background())

	// Missing directories are not fatal: every affected route degrades to
	// the not-found behavior.
	for _, dir := range []string{cfg.TemplatesDir, cfg.StaticDir} {
		if _, err := os.Stat(dir); err != nil {
			log.Printf("warning: directory not found: %s", dir)
		}
	}

	st, err := site.New(cfg.TemplatesDir, cfg.StaticDir)
	if err != nil {
		log.Fatalf("failed to resolve site roots: %v", err)
	}

	// One-way, fire-and-forget link to the storage server.
	sender := bridge.NewUDPSender(cfg.UDPAddr())

	reg := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	go func() {
		if err := metrics.Serve(cfg.MetricsAddr, reg, nil); err != nil {
			log.Printf("admin listener stopped: %v", err)
		}
	}()

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(st),
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(promMW.Handler())

	handlers.RegisterRoutes(app, st, sender)

	addr := cfg.HTTPAddr()
	log.Printf("web listening on http://%s, forwarding submissions to udp %s", addr, cfg.UDPAddr())
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
