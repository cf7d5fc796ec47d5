package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service
	Registry = prometheus.NewRegistry()
	// HTTPRequests counts requests by method, path, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// SolveDuration tracks solver wall time per algorithm in milliseconds
	SolveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "solver_duration_ms", Help: "Solver wall time in ms.", Buckets: []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000}},
		[]string{"solver"},
	)
	// SolveInputSize tracks the input size handed to each solver
	SolveInputSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "solver_input_size", Help: "Stops or shipments per solve request.", Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500}},
		[]string{"solver"},
	)
	// UnassignedShipments counts shipments that fit no vehicle
	UnassignedShipments = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "allocator_unassigned_shipments_total", Help: "Shipments left unassigned by the fleet allocator."},
	)
	// InvalidRoutes counts produced routes that failed validation
	InvalidRoutes = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "routes_invalid_total", Help: "Optimized routes returned with validation errors."},
	)
)

// RegisterDefault registers collectors to the dedicated registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(SolveDuration)
		Registry.MustRegister(SolveInputSize)
		Registry.MustRegister(UnassignedShipments)
		Registry.MustRegister(InvalidRoutes)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
