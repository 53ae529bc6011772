package api

import (
	"net/http"

	"relocation-estimate-service/internal/api/handlers"
	"relocation-estimate-service/internal/ports"
	"relocation-estimate-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	engine *services.PricingEngine,
	validator *services.AvailabilityValidator,
	fleet ports.FleetRepository,
	blackouts ports.BlackoutRepository,
) http.Handler {
	mux := http.NewServeMux()

	estimateHandler := &handlers.EstimateHandler{Engine: engine}
	riskHandler := &handlers.RiskHandler{}
	assignmentHandler := &handlers.AssignmentHandler{Fleet: fleet}
	availabilityHandler := &handlers.AvailabilityHandler{
		Blackouts: blackouts,
		Validator: validator,
	}
	customerHandler := &handlers.CustomerHandler{}
	fleetHandler := &handlers.FleetHandler{Repo: fleet}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/estimates", estimateHandler.Calculate)
	mux.HandleFunc("/risk-assessments", riskHandler.Assess)
	mux.HandleFunc("/assignments", assignmentHandler.Assign)
	mux.HandleFunc("/availability/check", availabilityHandler.Check)
	mux.HandleFunc("/customers/validate", customerHandler.Validate)
	mux.HandleFunc("/fleet", fleetHandler.List)

	return loggingMiddleware(mux)
}
