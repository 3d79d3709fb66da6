package main

import (
	"context"
	"log"

	"elibrary-be/internal/config"
	"elibrary-be/internal/pkg/logger"
	"elibrary-be/internal/seed"
	"elibrary-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(database.GormConfig{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.Connection,
		LogLevel: cfg.Database.LogLevel,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction(), cfg.App.LogLevel)
	defer sysLogger.Sync()

	color.Cyan("Seeding roles, features, permissions and system messages...")
	sum, err := seed.NewSeeder(db, sysLogger).Run(context.Background())
	if err != nil {
		color.Red("Seeding failed: %v", err)
		log.Fatal(err)
	}

	color.Green("Roles created:            %d", sum.Roles)
	color.Green("Features created:         %d", sum.Features)
	color.Green("Permissions created:      %d", sum.Permissions)
	color.Green("Role permissions created: %d", sum.RolePermissions)
	color.Green("System messages created:  %d", sum.SystemMessages)
}
