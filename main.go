// File: parklot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parklot/config"
	"parklot/database"
	reservationRepo "parklot/database/repository/reservation"
	"parklot/handlers"
	"parklot/routes"
	"parklot/services/registry"
	"parklot/services/reservation"
	"parklot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// Display timezone for calendar dates and rendered timestamps.
	loc := time.FixedZone("display", config.AppConfig.TimezoneOffsetMin*60)

	// Repositories.
	repo := reservationRepo.NewMongoReservationRepo()

	// Services.
	slotRegistry := registry.New(config.AppConfig.SlotCount, config.AppConfig.SlotNamePrefix)
	reservationService := &reservation.DefaultReservationService{
		Repo:         repo,
		Engine:       &reservation.Engine{Registry: slotRegistry},
		Registry:     slotRegistry,
		Location:     loc,
		AdminKey:     config.AppConfig.AdminKey,
		AdminKeyHash: config.AppConfig.AdminKeyHash,
	}

	// Handlers.
	cacheTTL := time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second
	publicHandler := handlers.NewReservationHandler(
		reservationService, loc, logger, utils.GetCacheClient(), cacheTTL)
	adminHandler := handlers.NewAdminHandler(reservationService, publicHandler, logger)

	routes.RegisterRoutes(router, publicHandler, adminHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
