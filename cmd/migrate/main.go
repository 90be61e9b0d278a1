package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"library-backend/internal/config"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/logger"
)

func main() {
	command := flag.String("migrate", database.MigrateUp, "Migration command: up, down, reset, status or version")
	timeout := flag.Duration("timeout", 2*time.Minute, "Overall timeout for the migration run")
	flag.Parse()

	_ = godotenv.Load()
	logger.Init(os.Getenv("APP_ENV"))

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load database config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := database.Migrate(ctx, dbConfig, *command); err != nil {
		log.Fatal().Err(err).Str("command", *command).Msg("Migration failed")
	}

	logger.Info("Migration finished", map[string]interface{}{
		"command": *command,
	})
}
