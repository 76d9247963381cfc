package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rideboard/internal/config"
	"rideboard/internal/db"
	"rideboard/internal/metrics"
	"rideboard/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	if cfg.AdminAPIKey == "" {
		log.Fatal("ADMIN_API_KEY is required. Admin endpoints cannot be left open.")
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if cfg.SeedDemoData {
		if err := database.SeedDemoData(ctx); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	metrics.Init(database)

	srv := server.New(cfg)
	srv.RegisterRoutes(database)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
