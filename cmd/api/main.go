package main

import (
	"os"

	"github.com/rakshithv/placemate/internal/pkg/logger"
	"github.com/rakshithv/placemate/internal/server"
)

// @title PlaceMate API
// @version 1.0
// @description Campus placement management backend: student academic profiles, companies, drives, analytics and reports.

// @contact.name API Support
// @contact.email placements@sahyadri.edu.in

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
