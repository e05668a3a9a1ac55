package main

import (
	"log"

	"ai-chat-be/internal/config"
	"ai-chat-be/internal/model"
	"ai-chat-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := model.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	color.Green("✅ Migration complete")
}
