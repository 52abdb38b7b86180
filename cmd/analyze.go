package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"interview_readiness_backend/internal/app"
	"interview_readiness_backend/internal/util"

	"github.com/spf13/cobra"
)

var analyzeOwner string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Recompute and print the performance summary for one user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !util.IsUUID(analyzeOwner) {
			return errors.New("--owner must be a user id")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		application, err := app.Bootstrap(cfg, configDir)
		if err != nil {
			return err
		}
		defer application.Close()

		summary, err := application.Services.Analytics.GenerateSummary(context.Background(), analyzeOwner)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeOwner, "owner", "", "user id to analyze")
	analyzeCmd.MarkFlagRequired("owner")
	rootCmd.AddCommand(analyzeCmd)
}
