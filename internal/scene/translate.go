package scene

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/nodecanvas/internal/canvas"
)

func translateNode(b *nodeBlock, evalCtx *hcl.EvalContext) (*canvas.Node, error) {
	pos, err := evalPoint(b.Position, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("node %q position: %w", b.ID, err)
	}
	size, err := evalSize(b.Size, evalCtx, DefaultNodeSize)
	if err != nil {
		return nil, fmt.Errorf("node %q size: %w", b.ID, err)
	}
	n := canvas.NewNode(b.ID, pos, size, translatePorts(b.Inputs), translatePorts(b.Outputs))
	n.Label = b.Label
	return n, nil
}

func translatePorts(blocks []*portBlock) []canvas.Port {
	var ports []canvas.Port
	for _, p := range blocks {
		ports = append(ports, canvas.Port{ID: p.ID, Label: p.Label})
	}
	return ports
}

func translateAnnotation(b *annotationBlock, evalCtx *hcl.EvalContext) (*canvas.Annotation, error) {
	pos, err := evalPoint(b.Position, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("annotation %q position: %w", b.ID, err)
	}

	var a *canvas.Annotation
	switch canvas.Kind(b.Kind) {
	case canvas.KindStickyNote:
		size, err := evalSize(b.Size, evalCtx, DefaultStickySize)
		if err != nil {
			return nil, fmt.Errorf("annotation %q size: %w", b.ID, err)
		}
		a = canvas.NewStickyNote(b.ID, pos, size, b.Text)
	case canvas.KindGroup:
		size, err := evalSize(b.Size, evalCtx, DefaultGroupSize)
		if err != nil {
			return nil, fmt.Errorf("annotation %q size: %w", b.ID, err)
		}
		a = canvas.NewGroup(b.ID, pos, size, b.Title)
	case canvas.KindMarker:
		radius := float64(DefaultMarkerRadius)
		if b.Radius != nil {
			radius = *b.Radius
		}
		a = canvas.NewMarker(b.ID, pos, b.MarkerType, radius)
	default:
		return nil, fmt.Errorf("annotation %q: unknown kind %q: must be 'sticky_note', 'group', or 'marker'", b.ID, b.Kind)
	}

	a.Color = b.Color
	if b.ZIndex != nil {
		a.ZIndex = *b.ZIndex
	}
	if b.Visible != nil {
		a.Visible.Set(*b.Visible)
	}
	return a, nil
}
