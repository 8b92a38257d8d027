package app

import (
	"context"

	"github.com/vk/nodecanvas/internal/ctxlog"
	"github.com/vk/nodecanvas/internal/geom"
	"github.com/vk/nodecanvas/internal/graph"
	"github.com/vk/nodecanvas/internal/metrics"
	"github.com/vk/nodecanvas/internal/scene"
)

// DragResult is the outcome of one replayed drag script.
type DragResult struct {
	Script  scene.DragScript
	Moved   []string
	Outcome string
	Err     error
}

// replayDrags drives g through every script in order. Each script starts
// from its own node selection; the selection is left in place afterwards.
func replayDrags(ctx context.Context, g graph.Graph, scripts []scene.DragScript) []DragResult {
	logger := ctxlog.FromContext(ctx)
	results := make([]DragResult, 0, len(scripts))

	for _, script := range scripts {
		res := DragResult{Script: script}

		g.ClearNodeSelection()
		for _, id := range script.Select {
			g.SelectNode(id, true)
		}

		if err := g.StartNodeDrag(script.NodeID); err != nil {
			logger.Warn("Drag could not start.", "node", script.NodeID, "error", err)
			res.Err = err
			results = append(results, res)
			continue
		}

		res.Moved = g.ActiveNodeIDs()
		original := make(map[string]geom.Point, len(res.Moved))
		for _, id := range res.Moved {
			if n, ok := g.Node(id); ok {
				original[id] = n.Position.Get()
			}
		}

		for _, delta := range script.Moves {
			g.MoveNodeDrag(delta)
		}

		if script.Cancel {
			g.CancelNodeDrag(original)
			res.Outcome = metrics.DragCancelled
		} else {
			g.EndNodeDrag()
			res.Outcome = metrics.DragEnded
		}
		logger.Debug("Drag replayed.", "node", script.NodeID, "moved", res.Moved, "outcome", res.Outcome)
		results = append(results, res)
	}
	return results
}
