package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yigit/idscan/internal/config"
	"github.com/yigit/idscan/internal/pkg/logger"
	"github.com/yigit/idscan/internal/server"
)

// @title idscan API
// @version 1.0
// @description Local service behind the student ID capture tool: scan reconciliation, the captured list, CSV export, and batch upload.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	var configPath string

	cmd := &cobra.Command{
		Use:           "idscan-api",
		Short:         "Serve the student ID capture API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.NewServer(configPath)
			if err != nil {
				return err
			}
			return srv.Run()
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "path to the YAML config file")

	if err := cmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
