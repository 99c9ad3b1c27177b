package main

import (
	"context"
	"log"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"msgboard/internal/config"
	"msgboard/internal/database"
	"msgboard/internal/database/migration"
	"msgboard/internal/metrics"
	"msgboard/internal/otel"
	"msgboard/internal/repository/postgres"
	"msgboard/internal/service"
	"msgboard/internal/udp"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	shutdown, err := otel.Init(context.Background(), "msgboard-store")
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdown(context.Background())

	// The ping inside NewPostgres is the startup liveness check: the server
	// must not enter its receive loop without a working store.
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	repo := postgres.NewMessagePostgres(db)
	svc := service.NewMessageService(repo)

	reg := prometheus.NewRegistry()
	listener, err := udp.NewListener(cfg.UDPBindAddr(), svc, reg)
	if err != nil {
		log.Fatalf("failed to bind datagram socket: %v", err)
	}

	go func() {
		if err := metrics.Serve(cfg.MetricsAddr, reg, db.PingContext); err != nil {
			log.Printf("admin listener stopped: %v", err)
		}
	}()

	log.Printf("store listening on udp %s", listener.Addr())
	if err := listener.Run(ctx); err != nil {
		log.Fatalf("receive loop stopped: %v", err)
	}
}
