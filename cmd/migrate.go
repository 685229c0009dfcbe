package cmd

import (
	"log"

	"chat-directory/core/config"
	"chat-directory/core/database"
	"chat-directory/core/logger"
	"chat-directory/feature/servers/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCategories are created on first migration so a fresh install has
// something to file servers under.
var seedCategories = []models.Category{
	{Name: "Gaming", Description: "Play together"},
	{Name: "Music", Description: "Share and listen"},
	{Name: "Tech", Description: "Build and learn"},
}

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long:  `Runs the GORM auto-migration for all directory models and seeds the default categories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		logg.Info("Running migrations")
		if err := db.AutoMigrate(&models.Category{}, &models.User{}, &models.Server{}, &models.ServerMember{}); err != nil {
			return err
		}

		for _, cat := range seedCategories {
			// FirstOrCreate keeps the command idempotent across runs
			if err := db.Where("name = ?", cat.Name).FirstOrCreate(&cat).Error; err != nil {
				return err
			}
		}

		logg.Info("Migration complete", zap.Int("seed_categories", len(seedCategories)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
