package cmd

import (
	"interview_readiness_backend/internal/app"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		application, err := app.NewApp(cfg, configDir)
		if err != nil {
			return err
		}
		defer application.Close()

		return application.Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
