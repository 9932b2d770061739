// Command migrate manages the lead market database schema.
//
// Usage:
//
//	migrate up
//	migrate down [steps]
//	migrate version
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/leadexchange/leadmarket/internal/config"
	"github.com/leadexchange/leadmarket/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	if err := run(os.Args[1:], cfg.Database.URL(), logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, databaseURL string, logger *slog.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: migrate up | down [steps] | version")
	}

	switch args[0] {
	case "up":
		if err := db.MigrateUp(databaseURL); err != nil {
			return err
		}
		logger.Info("migrations applied")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid steps %q: %w", args[1], err)
			}
			steps = n
		}
		if err := db.MigrateDown(databaseURL, steps); err != nil {
			return err
		}
		logger.Info("migrations rolled back", "steps", steps)

	case "version":
		version, dirty, err := db.MigrationVersion(databaseURL)
		if err != nil {
			return err
		}
		logger.Info("schema version", "version", version, "dirty", dirty)

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}

	return nil
}
