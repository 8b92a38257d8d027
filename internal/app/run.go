package app

import (
	"context"
	"fmt"

	"github.com/vk/nodecanvas/internal/ctxlog"
	"github.com/vk/nodecanvas/internal/extension"
	"github.com/vk/nodecanvas/internal/graph"
)

// Run loads the scene into a new controller, replays every drag script and
// writes the report to the app's output.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.healthCheckServer()
	defer func() {
		if cerr := a.closeHealthCheckServer(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	settings := a.config.Settings.Canvas
	var transforms []extension.Transform
	if settings.GridSize > 0 {
		transforms = append(transforms, extension.SnapToGrid(settings.GridSize))
	}

	ctrl := graph.New(ctx, graph.Options{
		Transforms:     transforms,
		CellSize:       settings.SpatialCellSize,
		ForceImmediate: settings.ForceImmediate,
		Metrics:        a.metrics,
	})
	defer ctrl.Dispose()

	if err := ctrl.LoadGraph(a.scene.Document); err != nil {
		return fmt.Errorf("failed to load scene into controller: %w", err)
	}

	padding := settings.GroupPadding
	for _, w := range a.scene.Wraps {
		g, err := ctrl.CreateGroupAnnotationAroundNodes(w.Nodes, padding)
		if err != nil {
			return fmt.Errorf("failed to wrap nodes %v: %w", w.Nodes, err)
		}
		g.Group.Title = w.Title
		a.logger.Debug("Group created around nodes.", "id", g.ID, "nodes", w.Nodes)
	}

	a.logger.Info("🚀 Replaying drags...", "count", len(a.scene.Drags))
	results := replayDrags(ctx, ctrl, a.scene.Drags)
	a.logger.Info("🏁 Replay finished.")

	writeReport(a.outW, a.scene.Files, ctrl, results)

	a.logger.Debug("App.Run method finished.")
	return nil
}
