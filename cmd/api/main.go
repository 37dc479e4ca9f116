package main

import (
	"os"

	"github.com/inemx/registro-ine/internal/pkg/logger"
	"github.com/inemx/registro-ine/internal/server"
)

// @title Registro INE API
// @version 1.0
// @description API for registering personas with their direccion and credencial INE

// @host localhost:5000
// @BasePath /api
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
