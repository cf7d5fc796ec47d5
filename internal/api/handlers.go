package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fleetopt/internal/buildinfo"
	"fleetopt/internal/metrics"
	"fleetopt/internal/model"
	"fleetopt/internal/solver"
)

// OptimizeHandler handles POST /optimize: nearest-neighbor sequencing plus
// route metrics and validation.
func (s *Server) OptimizeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	if !s.Limiter.Allow() {
		writeProblem(w, http.StatusTooManyRequests, "Rate Limit Exceeded", "retry later", r.URL.Path)
		return
	}

	var req model.OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error(), r.URL.Path)
		return
	}
	if len(req.Stops) > s.Cfg.MaxStops {
		writeProblem(w, http.StatusRequestEntityTooLarge, "Request Too Large",
			fmt.Sprintf("%d stops exceed the configured maximum of %d", len(req.Stops), s.Cfg.MaxStops), r.URL.Path)
		return
	}
	if err := s.validateOptimizeRequest(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid optimize request", err.Error(), r.URL.Path)
		return
	}

	depart := time.Now().UTC()
	if req.DepartAt != nil {
		depart = *req.DepartAt
	}

	started := time.Now()
	ordered := solver.Sequence(req.Start, req.Stops)
	route := solver.BuildRoute(req.Start, ordered, depart, s.Cfg.SpeedKmh)

	metrics.SolveDuration.WithLabelValues("sequence").Observe(float64(time.Since(started).Microseconds()) / 1000.0)
	metrics.SolveInputSize.WithLabelValues("sequence").Observe(float64(len(req.Stops)))
	if !route.IsValid {
		metrics.InvalidRoutes.Inc()
	}
	writeJSON(w, http.StatusOK, route)
}

// OptimizeLoadHandler handles POST /optimize-load: best-fit-decreasing
// assignment of shipments to vehicles.
func (s *Server) OptimizeLoadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	if !s.Limiter.Allow() {
		writeProblem(w, http.StatusTooManyRequests, "Rate Limit Exceeded", "retry later", r.URL.Path)
		return
	}

	var req model.LoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error(), r.URL.Path)
		return
	}
	if len(req.Shipments) > s.Cfg.MaxShipments {
		writeProblem(w, http.StatusRequestEntityTooLarge, "Request Too Large",
			fmt.Sprintf("%d shipments exceed the configured maximum of %d", len(req.Shipments), s.Cfg.MaxShipments), r.URL.Path)
		return
	}
	if len(req.Vehicles) > s.Cfg.MaxVehicles {
		writeProblem(w, http.StatusRequestEntityTooLarge, "Request Too Large",
			fmt.Sprintf("%d vehicles exceed the configured maximum of %d", len(req.Vehicles), s.Cfg.MaxVehicles), r.URL.Path)
		return
	}
	if err := s.validateLoadRequest(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid load request", err.Error(), r.URL.Path)
		return
	}

	started := time.Now()
	alloc := solver.Allocate(req.Vehicles, req.Shipments)

	metrics.SolveDuration.WithLabelValues("allocate").Observe(float64(time.Since(started).Microseconds()) / 1000.0)
	metrics.SolveInputSize.WithLabelValues("allocate").Observe(float64(len(req.Shipments)))
	metrics.UnassignedShipments.Add(float64(len(alloc.Unassigned)))
	writeJSON(w, http.StatusOK, alloc)
}

// HealthHandler handles GET /health. Solvers hold no state to become
// unready, so this succeeds unconditionally.
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"solvers": []string{"sequence (nearest neighbor)", "allocate (best fit decreasing)"},
	})
}

// ReadyHandler handles GET /readyz.
func (s *Server) ReadyHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ready": true})
}

// SolverConfigHandler handles GET /v1/solver/config and reports the
// effective solver configuration.
func (s *Server) SolverConfigHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"speedKmh":     s.Cfg.SpeedKmh,
		"maxStops":     s.Cfg.MaxStops,
		"maxShipments": s.Cfg.MaxShipments,
		"maxVehicles":  s.Cfg.MaxVehicles,
		"rateRps":      s.Cfg.RateRPS,
		"rateBurst":    s.Cfg.RateBurst,
	})
}

// DebugHandler handles GET /debug/info.
func (s *Server) DebugHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"build": buildinfo.Info(),
		"time":  time.Now().UTC().Format(time.RFC3339),
		"config": map[string]any{
			"port":         s.Cfg.Port,
			"speedKmh":     s.Cfg.SpeedKmh,
			"maxStops":     s.Cfg.MaxStops,
			"maxShipments": s.Cfg.MaxShipments,
			"maxVehicles":  s.Cfg.MaxVehicles,
		},
	})
}
