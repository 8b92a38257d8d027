package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/nodecanvas/internal/ctxlog"
)

// Loader reads a config file and overlays it on base.
type Loader interface {
	Load(ctx context.Context, path string, base Config) (Config, error)
}

// LoaderFor picks a loader by file extension.
func LoaderFor(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return &HCLLoader{}, nil
	case ".toml":
		return &TOMLLoader{}, nil
	default:
		return nil, fmt.Errorf("unsupported config file '%s': expected .hcl or .toml", path)
	}
}

// Load overlays the file at path on Default() and validates the result.
func Load(ctx context.Context, path string) (Config, error) {
	logger := ctxlog.FromContext(ctx)
	loader, err := LoaderFor(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := loader.Load(ctx, path, Default())
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	logger.Debug("Config file loaded.", "path", path, "config", cfg)
	return cfg, nil
}
