package main

import (
	"context"
	"drone-route-service/internal/adapters/distance"
	"drone-route-service/internal/adapters/repositories"
	"drone-route-service/internal/config"
	"drone-route-service/internal/domain"
	"drone-route-service/internal/services"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// planner runs one planning pass against the configured scenario and prints
// the text report.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("planner", flag.ContinueOnError)
	minStops := fs.Int("min-stops", 1, "demand points to serve before the recharge visit")
	forbid := fs.String("forbid", "", "comma-separated ids that may not precede the recharge visit")
	noRecharge := fs.Bool("no-recharge", false, "plan a single tour without a recharge visit")
	payload := fs.Int("payload", cfg.InitialPayload, "initial payload units (unset with a zero INITIAL_PAYLOAD carries the tour's total demand)")
	velocity := fs.Float64("velocity", cfg.FlightVelocityKmh, "flight velocity in km/h")
	lookup := fs.String("lookup", cfg.LookupMode.String(), "current-draw lookup mode: exact, interpolate or strict")
	timeout := fs.Duration("timeout", 2*time.Minute, "abort the search after this long")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	mode, err := domain.ParseLookupMode(*lookup)
	if err != nil {
		return err
	}

	var forbidden []string
	for _, id := range strings.Split(*forbid, ",") {
		if id = strings.TrimSpace(id); id != "" {
			forbidden = append(forbidden, id)
		}
	}

	initial := initialPayload(fs, *payload)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	repo, closeRepo, err := repositories.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	plan, err := services.PlanDeliveries(ctx, services.PlanDeliveriesRequest{
		InitialPayload:         initial,
		FlightVelocityKmh:      *velocity,
		LookupMode:             mode,
		Recharge:               !*noRecharge,
		MinStopsBeforeRecharge: *minStops,
		ForbiddenPredecessors:  forbidden,
		Workers:                cfg.OptimizerWorkers,
	}, repo, distance.Haversine{})
	if err != nil {
		return err
	}

	log.Printf("plan_id=%s tour=%q distance_km=%.4f energy_wh=%d", plan.ID, strings.Join(plan.Tour, " -> "), plan.TotalDistanceKm, plan.FullTrace.TotalEnergyWh)
	if err := services.RenderReport(out, plan); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// initialPayload uses -payload as given when it was passed on the command
// line. Otherwise a zero configured default leaves the payload to the tour.
func initialPayload(fs *flag.FlagSet, v int) *int {
	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "payload" {
			explicit = true
		}
	})
	if !explicit && v == 0 {
		return nil
	}
	return &v
}
