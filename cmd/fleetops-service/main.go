package main

import (
	"context"
	"fmt"
	"os"

	"fleetops-service/internal/auth"
	"fleetops-service/internal/config"
	"fleetops-service/internal/db"
	httphandler "fleetops-service/internal/http"
	"fleetops-service/internal/http/middleware"
	"fleetops-service/internal/logger"
	"fleetops-service/internal/repository"
	"fleetops-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	vehicleRepo := repository.NewVehicleRepository(database)
	fuelRepo := repository.NewFuelRepository(database)
	maintenanceRepo := repository.NewMaintenanceRepository(database)
	userRepo := repository.NewUserRepository(database)

	tokens := auth.NewTokens(cfg.Auth.AccessSecret, cfg.Auth.TokenTTLHours)

	authService := service.NewAuthService(userRepo, tokens, appLogger)
	vehicleService := service.NewVehicleService(vehicleRepo)
	fuelService := service.NewFuelService(fuelRepo, vehicleRepo)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, vehicleRepo)
	statisticsService := service.NewStatisticsService(vehicleRepo, fuelRepo, maintenanceRepo, cfg.Alerts, cfg.Statistics)
	reportService := service.NewReportService(statisticsService)

	if err := authService.Bootstrap(context.Background()); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to seed default accounts")
	}

	handler := httphandler.NewHandler(authService, vehicleService, fuelService, maintenanceService, statisticsService, reportService, appLogger)
	authMiddleware := middleware.Auth(tokens)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting fleetops service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
