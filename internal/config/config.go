package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the service's tunables. Values come from defaults, then an
// optional YAML file, then environment variables, each layer overriding the
// previous one.
type Config struct {
	Port         string  `yaml:"port"`
	SpeedKmh     float64 `yaml:"speedKmh"`
	MaxStops     int     `yaml:"maxStops"`
	MaxShipments int     `yaml:"maxShipments"`
	MaxVehicles  int     `yaml:"maxVehicles"`
	RateRPS      float64 `yaml:"rateRps"`
	RateBurst    int     `yaml:"rateBurst"`
}

// Default returns the built-in configuration: 40 km/h mixed urban/highway
// speed, and input caps sized so the O(n^2) sequencer stays well under a
// second per request.
func Default() *Config {
	return &Config{
		Port:         "8081",
		SpeedKmh:     40,
		MaxStops:     200,
		MaxShipments: 500,
		MaxVehicles:  100,
		RateRPS:      50,
		RateBurst:    100,
	}
}

// Load builds the effective configuration. path may be empty; a missing file
// at an explicitly configured path is an error, since silently running on
// defaults would hide a deployment mistake.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.SpeedKmh <= 0 {
		return nil, fmt.Errorf("speedKmh must be > 0, got %v", cfg.SpeedKmh)
	}
	if cfg.MaxStops <= 0 || cfg.MaxShipments <= 0 || cfg.MaxVehicles <= 0 {
		return nil, fmt.Errorf("input caps must be > 0")
	}
	// A non-positive limiter would turn every solve request into a 429.
	if cfg.RateRPS <= 0 || cfg.RateBurst <= 0 {
		return nil, fmt.Errorf("rateRps and rateBurst must be > 0, got %v/%d", cfg.RateRPS, cfg.RateBurst)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v, ok := envFloat("SPEED_KMH"); ok {
		c.SpeedKmh = v
	}
	if v, ok := envInt("MAX_STOPS"); ok {
		c.MaxStops = v
	}
	if v, ok := envInt("MAX_SHIPMENTS"); ok {
		c.MaxShipments = v
	}
	if v, ok := envInt("MAX_VEHICLES"); ok {
		c.MaxVehicles = v
	}
	if v, ok := envFloat("RATE_RPS"); ok {
		c.RateRPS = v
	}
	if v, ok := envInt("RATE_BURST"); ok {
		c.RateBurst = v
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envFloat(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
