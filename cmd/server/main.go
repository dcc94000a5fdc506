package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yuzvak/nhh-storefront/internal/config"
	"github.com/yuzvak/nhh-storefront/internal/pkg/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Navan Hire & Hardware storefront service",
	Long:          "Runs the storefront HTTP API. With no subcommand this is the same as \"serve\".",
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a JSON or YAML config file")
	rootCmd.AddCommand(serveCmd, migrateCmd, pricesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	return cfg, log, nil
}
