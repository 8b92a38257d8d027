package scene

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/nodecanvas/internal/canvas"
	"github.com/vk/nodecanvas/internal/ctxlog"
	"github.com/vk/nodecanvas/internal/fsutil"
	"github.com/vk/nodecanvas/internal/geom"
)

// Defaults applied when a block omits its size.
var (
	DefaultNodeSize   = geom.Sz(160, 80)
	DefaultStickySize = geom.Sz(200, 120)
	DefaultGroupSize  = geom.Sz(320, 200)
)

// DefaultMarkerRadius is used when a marker omits its radius.
const DefaultMarkerRadius = 8

// Options tune how scene files are evaluated.
type Options struct {
	// GridSize is exposed to expressions as the variable grid.
	GridSize float64
}

// Load reads every scene file found under paths and merges them. Directories
// contribute their .hcl files; explicit files are read whatever their name.
func Load(ctx context.Context, paths []string, opts Options) (*Scene, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Scene loader started.", "paths", paths)

	files, err := fsutil.ResolveFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no scene files found in %v", paths)
	}
	logger.Debug("Discovered scene files.", "count", len(files))

	sc := &Scene{Files: files, Document: &canvas.Document{}}
	parser := hclparse.NewParser()
	evalCtx := newEvalContext(opts.GridSize)

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if err := sc.merge(&root, evalCtx); err != nil {
			return nil, fmt.Errorf("scene file %s: %w", file, err)
		}
	}

	if err := sc.checkReferences(); err != nil {
		return nil, err
	}

	logger.Debug("Scene loading complete.",
		"nodes", len(sc.Document.Nodes),
		"connections", len(sc.Document.Connections),
		"annotations", len(sc.Document.Annotations),
		"drags", len(sc.Drags),
		"wraps", len(sc.Wraps))
	return sc, nil
}

func (sc *Scene) merge(root *fileRoot, evalCtx *hcl.EvalContext) error {
	for _, b := range root.Nodes {
		n, err := translateNode(b, evalCtx)
		if err != nil {
			return err
		}
		sc.Document.Nodes = append(sc.Document.Nodes, n)
	}
	for _, b := range root.Connections {
		sc.Document.Connections = append(sc.Document.Connections, &canvas.Connection{
			ID:           b.ID,
			SourceNodeID: b.Source,
			SourcePortID: b.SourcePort,
			TargetNodeID: b.Target,
			TargetPortID: b.TargetPort,
		})
	}
	for _, b := range root.Annotations {
		a, err := translateAnnotation(b, evalCtx)
		if err != nil {
			return err
		}
		sc.Document.Annotations = append(sc.Document.Annotations, a)
	}
	for _, b := range root.Drags {
		moves, err := evalMoves(b.Moves, evalCtx)
		if err != nil {
			return fmt.Errorf("drag %q: %w", b.NodeID, err)
		}
		sc.Drags = append(sc.Drags, DragScript{
			NodeID: b.NodeID,
			Select: b.Select,
			Moves:  moves,
			Cancel: b.Cancel,
		})
	}
	for _, b := range root.Wraps {
		sc.Wraps = append(sc.Wraps, Wrap{Title: b.Title, Nodes: b.Nodes})
	}
	return nil
}

// checkReferences rejects drags and wraps that name nodes the scene lacks.
func (sc *Scene) checkReferences() error {
	known := make(map[string]struct{}, len(sc.Document.Nodes))
	for _, n := range sc.Document.Nodes {
		known[n.ID()] = struct{}{}
	}
	for _, d := range sc.Drags {
		if _, ok := known[d.NodeID]; !ok {
			return fmt.Errorf("drag references unknown node %q", d.NodeID)
		}
		for _, id := range d.Select {
			if _, ok := known[id]; !ok {
				return fmt.Errorf("drag %q selects unknown node %q", d.NodeID, id)
			}
		}
	}
	for _, w := range sc.Wraps {
		if len(w.Nodes) == 0 {
			return fmt.Errorf("wrap %q lists no nodes", w.Title)
		}
		for _, id := range w.Nodes {
			if _, ok := known[id]; !ok {
				return fmt.Errorf("wrap %q references unknown node %q", w.Title, id)
			}
		}
	}
	return nil
}
