package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vk/nodecanvas/internal/ctxlog"
	"github.com/vk/nodecanvas/internal/metrics"
	"github.com/vk/nodecanvas/internal/scene"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	ctx        context.Context
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	scene      *scene.Scene
	registry   *prometheus.Registry
	metrics    *metrics.Recorder
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and metrics registry.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.Settings.Logging.Level, cfg.Settings.Logging.Format, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	sc, err := scene.Load(ctx, cfg.ScenePaths, scene.Options{GridSize: cfg.Settings.Canvas.GridSize})
	if err != nil {
		// A scene that cannot be loaded is a fatal startup error.
		panic(fmt.Errorf("failed to load scene: %w", err))
	}
	logger.Debug("Scene loaded.", "files", sc.Files)

	reg := prometheus.NewRegistry()
	return &App{
		ctx:      ctx,
		outW:     outW,
		logger:   logger,
		config:   cfg,
		scene:    sc,
		registry: reg,
		metrics:  metrics.New(reg),
	}
}

// Scene returns the loaded scene. This is primarily for testing.
func (a *App) Scene() *scene.Scene {
	return a.scene
}

// Registry returns the application's metrics registry. This is primarily for testing.
func (a *App) Registry() *prometheus.Registry {
	return a.registry
}
