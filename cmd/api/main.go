package main

import (
	"context"
	"os"

	"github.com/yigit/coursemap/internal/bootstrap"
	"github.com/yigit/coursemap/internal/config"
	"github.com/yigit/coursemap/internal/pkg/logger"
	"github.com/yigit/coursemap/internal/server"
)

// @title Course Map API
// @version 1.0
// @description Course catalog navigation: search, course pages with linked prerequisites and blocked courses, and exam grade histograms

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(config.DefaultConfigPath)
	if err != nil {
		os.Exit(1)
	}

	srv, err := server.NewServer(context.Background(), cfg, lgr)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(context.Background()); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
