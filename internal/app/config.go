package app

import "errors"

// Config holds everything a Run needs.
type Config struct {
	InputPath string // map file; "-" reads the App's input reader
	Workers   int    // obstruction pool size; 0 means GOMAXPROCS
	Render    bool   // print the annotated map after the answers

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.Workers < 0 {
		return nil, errors.New("Workers cannot be negative")
	}
	return &cfg, nil
}
