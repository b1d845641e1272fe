package main

import (
	"context"
	"drone-route-service/internal/adapters/distance"
	"drone-route-service/internal/adapters/repositories"
	"drone-route-service/internal/api"
	"drone-route-service/internal/api/handlers"
	"drone-route-service/internal/config"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

// main is the application composition root.
// It wires concrete adapters (scenario store, haversine distances) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	repo, closeRepo, err := repositories.Open(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	router := api.NewRouter(repo, distance.Haversine{}, api.RouterConfig{
		Defaults: handlers.Defaults{
			InitialPayload:    cfg.InitialPayload,
			FlightVelocityKmh: cfg.FlightVelocityKmh,
			LookupMode:        cfg.LookupMode,
			Workers:           cfg.OptimizerWorkers,
		},
		PlanRate:  rate.Limit(cfg.PlanRatePerSec),
		PlanBurst: cfg.PlanRateBurst,
	})

	// The write timeout covers a full exhaustive search on the largest supported scenarios.
	log.Printf("Server listening addr=:%s source=%s", cfg.Port, cfg.ScenarioSource)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv.ListenAndServe()
}
