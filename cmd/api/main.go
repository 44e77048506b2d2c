package main

import (
	"github.com/deniz/classbooker/internal/pkg/logger"
	"github.com/deniz/classbooker/internal/server"
)

// @title ClassBooker API
// @version 1.0
// @description Class booking and enrollment platform backend

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server execution failed or shutdown encountered errors")
	}

	logger.Info().Msg("Application finished gracefully")
}
