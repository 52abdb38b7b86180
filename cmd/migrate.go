package cmd

import (
	"fmt"
	"interview_readiness_backend/pkg/database"

	"github.com/spf13/cobra"
	gormlogger "gorm.io/gorm/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations and seed default quotes, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := database.InitDB(&cfg.Database, gormlogger.Warn)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d tables on %s\n", len(database.Models()), cfg.Database.Driver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
