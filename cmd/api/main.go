package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fleetopt/internal/api"
	"fleetopt/internal/config"
	"fleetopt/internal/metrics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found (using environment variables)")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	metrics.RegisterDefault()
	srv := api.NewServer(cfg)

	mux := http.NewServeMux()

	// Solvers
	mux.HandleFunc("/optimize", srv.OptimizeHandler)
	mux.HandleFunc("/optimize-load", srv.OptimizeLoadHandler)
	mux.HandleFunc("/v1/solver/config", srv.SolverConfigHandler)

	// Health
	mux.HandleFunc("/health", srv.HealthHandler)
	mux.HandleFunc("/readyz", srv.ReadyHandler)

	// Observability
	mux.HandleFunc("/debug/info", srv.DebugHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Middleware(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("optimization service listening on :%s (speed=%.0fkm/h maxStops=%d)", cfg.Port, cfg.SpeedKmh, cfg.MaxStops)
	log.Printf("enabled solvers: route sequencing (nearest neighbor), fleet allocation (best fit decreasing)")
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
