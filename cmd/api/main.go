package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/federacion/fixture-scheduler/internal/api"
	"github.com/federacion/fixture-scheduler/internal/storage/sqlite"
)

func main() {
	dbPath := os.Getenv("DATABASE_URL")
	if dbPath == "" {
		dbPath = "fixture-scheduler.db"
	}

	db, err := sqlite.New(dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}
	absMigrations, err := filepath.Abs(migrationsPath)
	if err != nil {
		log.Fatal("Failed to resolve migrations path:", err)
	}
	if err := db.Migrate(absMigrations); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	server := api.NewServer(db.Conn())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting federation fixture scheduler API server on port %s", port)
	if err := server.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
