// @title HealthSync Backend API
// @version 1.0
// @description Clinic backend for patient registration, token auth, vitals recording and the vitals dashboard

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	_ "healthsync-backend/docs" // swagger spec registration
	"healthsync-backend/internal/config"
	"healthsync-backend/internal/dashboard"
	"healthsync-backend/internal/database"
	"healthsync-backend/internal/handlers"
	"healthsync-backend/internal/middleware"
	"healthsync-backend/internal/routes"
	"healthsync-backend/internal/store"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	pool, err := database.Connect(context.Background(), cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	if err := database.EnsureSchema(context.Background(), pool); err != nil {
		logger.Fatal().Err(err).Msg("ensure schema")
	}

	// Stores
	patientStore := store.NewPgPatientStore(pool)
	vitalStore := store.NewPgVitalStore(pool)

	// Handlers
	patientsHandler := handlers.NewPatientsHandler(patientStore, cfg)
	vitalsHandler := handlers.NewVitalsHandler(vitalStore)
	dashboardHandler := handlers.NewDashboardHandler(
		dashboard.NewReader(patientStore, vitalStore, &cfg.JWT), logger)
	healthHandler := handlers.NewHealthHandler(pool)

	routes.SetupRoutes(patientsHandler, vitalsHandler, dashboardHandler, healthHandler, cfg)

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	handler := middleware.RequestLogger(c.Handler(http.DefaultServeMux), logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen and serve")
		}
	}()

	// Wait for SIGINT/SIGTERM, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	logger.Info().Msg("server stopped")
}
