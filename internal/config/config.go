// Package config reads the initializer settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultMongoURI is used when MONGODB_URI is unset.
const DefaultMongoURI = "mongodb://localhost:27017"

// Config holds the environment-driven settings. The target database name is
// fixed by the schema and is not configurable.
type Config struct {
	MongoURI    string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MetricsFile string `env:"BOOTSTRAP_METRICS_FILE"`
}

// Load parses Config from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses Config from environ instead of the process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	// An exported-but-empty MONGODB_URI behaves like an unset one.
	if cfg.MongoURI == "" {
		cfg.MongoURI = DefaultMongoURI
	}
	return &cfg, nil
}
