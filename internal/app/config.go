package app

import (
	"errors"

	"github.com/vk/nodecanvas/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScenePaths []string // hcl files or directories
	Settings   config.Config
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ScenePaths) == 0 {
		return nil, errors.New("ScenePaths is a required configuration field and cannot be empty")
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
