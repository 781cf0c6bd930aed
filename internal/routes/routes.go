package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"healthsync-backend/internal/config"
	"healthsync-backend/internal/handlers"
	"healthsync-backend/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	patientsHandler *handlers.PatientsHandler,
	vitalsHandler *handlers.VitalsHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
	cfg *config.Config,
) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Patient registry
	http.HandleFunc("/patients/add", patientsHandler.Register)
	http.HandleFunc("/login", patientsHandler.Login)

	// Vitals recording (bearer token in Authorization header)
	http.HandleFunc("/vitals/add", middleware.AuthMiddleware(vitalsHandler.AddVitals, &cfg.JWT))

	// Dashboard (token in query string)
	http.HandleFunc("/dashboard", dashboardHandler.View)

	// API docs
	http.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", healthHandler.Root)
}
