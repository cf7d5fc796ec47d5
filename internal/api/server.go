package api

import (
	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"fleetopt/internal/config"
)

// Server holds the boundary's dependencies. Solvers are pure functions, so
// there is no store or client here; everything a request needs is either in
// its payload or in the immutable config.
type Server struct {
	Cfg      *config.Config
	Validate *validator.Validate
	Limiter  *rate.Limiter
}

// NewServer wires the boundary with explicitly constructed dependencies.
func NewServer(cfg *config.Config) *Server {
	return &Server{
		Cfg:      cfg,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
		Limiter:  rate.NewLimiter(rate.Limit(cfg.RateRPS), cfg.RateBurst),
	}
}
