package api

import (
	"drone-route-service/internal/api/handlers"
	"drone-route-service/internal/platform/obs"
	"drone-route-service/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

type RouterConfig struct {
	Defaults handlers.Defaults
	// PlanRate and PlanBurst bound POST /plans.
	PlanRate  rate.Limit
	PlanBurst int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.ScenarioRepository, provider ports.DistanceProvider, cfg RouterConfig) http.Handler {
	obs.RegisterDefault()
	mux := http.NewServeMux()

	healthHandler := &handlers.HealthHandler{Repo: repo}
	locationHandler := &handlers.LocationHandler{Repo: repo}
	planHandler := &handlers.PlanHandler{
		Repo:     repo,
		Provider: provider,
		Defaults: cfg.Defaults,
	}
	energyHandler := &handlers.EnergyHandler{
		Repo:     repo,
		Provider: provider,
		Defaults: cfg.Defaults,
	}

	burst := cfg.PlanBurst
	if burst < 1 {
		burst = 1
	}
	limit := cfg.PlanRate
	if limit <= 0 {
		limit = rate.Inf
	}
	planLimiter := rate.NewLimiter(limit, burst)

	mux.HandleFunc("/health", healthHandler.Check)
	mux.HandleFunc("/locations", locationHandler.List)
	mux.Handle("/plans", rateLimitMiddleware(planLimiter, http.HandlerFunc(planHandler.Plan)))
	mux.HandleFunc("/energy", energyHandler.Evaluate)
	mux.Handle("/metrics", promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
