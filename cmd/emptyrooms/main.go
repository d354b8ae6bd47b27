package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/campusops/emptyrooms/internal/api"
	"github.com/campusops/emptyrooms/internal/config"
	"github.com/campusops/emptyrooms/internal/extract"
	"github.com/campusops/emptyrooms/internal/repository"
	"github.com/campusops/emptyrooms/internal/service"
	"github.com/campusops/emptyrooms/internal/web"

	// Register the repository backends
	_ "github.com/campusops/emptyrooms/internal/repository/memory"
	_ "github.com/campusops/emptyrooms/internal/repository/redis"
)

func main() {
	// Load a local .env if present; the environment wins otherwise
	_ = godotenv.Load()

	serverConfig := config.GetServerConfig()
	redisConfig := config.GetRedisConfig()

	// Initialize the repository using the factory
	repo, err := repository.NewRepository(redisConfig)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}

	// Close the Redis connection properly on exit if we got one
	if closer, ok := repo.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Printf("Error closing repository: %v", err)
			}
		}()
	}

	// Document collaborators
	extractor := extract.NewPdftotextExtractor(serverConfig.PdftotextBinary)
	grids := extract.ExcelGridLoader{SkipRows: serverConfig.ScheduleSkipRows}

	// Initialize the service layer
	availabilityService := service.NewAvailabilityService(repo, extractor, grids, serverConfig.RoomsFile)

	// SSE push of availability updates after uploads
	sseManager := web.NewSSEManager(availabilityService)
	availabilityService.RegisterUpdateCallback(sseManager.NotifyAvailabilityChanged)

	// Set up API routes
	mux := api.SetupRoutes(availabilityService, serverConfig)
	mux.Handle("/events", sseManager)

	// Configure the HTTP server
	server := &http.Server{
		Addr:         ":" + serverConfig.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disable write timeout for SSE connections
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors coming from the listener
	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting emptyrooms server on port %s", serverConfig.Port)
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Error starting server: %v", err)

	case <-shutdown:
		log.Println("Shutting down server...")

		// Close SSE connections first so Shutdown does not wait on them
		sseManager.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			log.Fatalf("Error shutting down server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}
