package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/catalogozord/backend/internal/infrastructure/config"
	"github.com/catalogozord/backend/internal/infrastructure/logger"
	"github.com/catalogozord/backend/internal/infrastructure/migration"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	source := flag.String("source", "migrations", "path to migration files")
	command := flag.String("command", "up", "migration command: up, down, version")
	flag.Parse()

	if err := run(*configPath, *source, *command); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, source, command string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Format: "console"})
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	runner, err := migration.NewRunner(db, source, log)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		return runner.Up()
	case "down":
		return runner.Down()
	case "version":
		version, dirty, err := runner.Version()
		if err != nil {
			return err
		}
		log.Info("schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return nil
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
