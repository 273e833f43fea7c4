package main

import (
	"context"
	"os"

	_ "temporada_ferias/docs"
	"temporada_ferias/internal/adapter/http/routes"
	"temporada_ferias/internal/config"
	"temporada_ferias/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Temporada de Férias API
// @version         1.0
// @description     Retreat registrations, PIX charges and the installment ledger.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer func() { _ = log.Sync() }()

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := routes.Run(context.Background(), cfg, log); err != nil {
		log.Error("[main] server stopped", zap.Error(err))
		os.Exit(1)
	}
}
