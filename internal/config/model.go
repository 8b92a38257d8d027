package config

import (
	"errors"
	"fmt"
)

// Config is the complete, format-agnostic set of settings.
type Config struct {
	Canvas  Canvas  `toml:"canvas"`
	Logging Logging `toml:"logging"`
	Server  Server  `toml:"server"`
}

// Canvas configures the graph controller.
type Canvas struct {
	// GridSize enables snap-to-grid during drags when positive.
	GridSize float64 `toml:"grid_size"`
	// SpatialCellSize is the cell edge of the spatial grid index.
	SpatialCellSize float64 `toml:"spatial_cell_size"`
	// ForceImmediate flushes spatial updates on every mutation.
	ForceImmediate bool `toml:"force_immediate"`
	// GroupPadding is used when building group boxes around nodes.
	GroupPadding float64 `toml:"group_padding"`
}

// Logging configures the slog handler.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Server configures the optional HTTP endpoints.
type Server struct {
	// HealthcheckPort enables /health and /metrics when positive.
	HealthcheckPort int `toml:"healthcheck_port"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Canvas: Canvas{
			GridSize:        0,
			SpatialCellSize: 256,
			GroupPadding:    24,
		},
		Logging: Logging{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks every field and returns all problems joined.
func (c Config) Validate() error {
	var errs []error
	if c.Canvas.GridSize < 0 {
		errs = append(errs, fmt.Errorf("canvas.grid_size must not be negative, got %v", c.Canvas.GridSize))
	}
	if c.Canvas.SpatialCellSize <= 0 {
		errs = append(errs, fmt.Errorf("canvas.spatial_cell_size must be positive, got %v", c.Canvas.SpatialCellSize))
	}
	if c.Canvas.GroupPadding < 0 {
		errs = append(errs, fmt.Errorf("canvas.group_padding must not be negative, got %v", c.Canvas.GroupPadding))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log-level '%s': must be 'debug', 'info', 'warn', or 'error'", c.Logging.Level))
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		errs = append(errs, fmt.Errorf("invalid log-format '%s': must be 'text' or 'json'", c.Logging.Format))
	}
	if c.Server.HealthcheckPort < 0 || c.Server.HealthcheckPort > 65535 {
		errs = append(errs, fmt.Errorf("server.healthcheck_port out of range: %d", c.Server.HealthcheckPort))
	}
	return errors.Join(errs...)
}
