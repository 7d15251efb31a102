package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hoopside/hoopside-backend/hoopside"
	"github.com/hoopside/hoopside-backend/hoopside/logger"
)

var (
	configPath string

	cfg *hoopside.Config
)

var rootCmd = &cobra.Command{
	Use:   "hoopside",
	Short: "Hoopside backend API and tooling",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = hoopside.LoadConfig(configPath)
		if err != nil {
			return err
		}

		customHandler := logger.NewHandler("Hoopside", cfg.Log.Level)
		slog.SetDefault(slog.New(customHandler))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to config")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
