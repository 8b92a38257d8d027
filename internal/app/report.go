package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/vk/nodecanvas/internal/canvas"
	"github.com/vk/nodecanvas/internal/graph"
	"github.com/vk/nodecanvas/internal/metrics"
)

// Report styles
var (
	headingStyle = color.New(color.FgHiGreen, color.Bold)
	subtleStyle  = color.New(color.FgHiBlack)
	warnStyle    = color.New(color.FgYellow)
	goodStyle    = color.New(color.FgGreen)
	badStyle     = color.New(color.FgRed)
)

const canvasIcon = "\U0001F9ED" // 🧭

// writeReport prints the final canvas state and the drag outcomes.
func writeReport(w io.Writer, files []string, g graph.Graph, drags []DragResult) {
	nodes := g.Nodes()
	conns := g.Connections()
	anns := g.SortedAnnotations()

	fmt.Fprintf(w, "%s %s %s\n", canvasIcon, headingStyle.Sprint("Scene"), subtleStyle.Sprint(strings.Join(files, ", ")))
	fmt.Fprintf(w, "  nodes %d  connections %d  annotations %d  spatial version %d\n\n",
		len(nodes), len(conns), len(anns), g.SpatialVersion().Get())

	if len(nodes) > 0 {
		headingStyle.Fprintln(w, "Nodes")
		rows := make([][]string, 0, len(nodes))
		for _, n := range nodes {
			pos := n.Position.Get()
			vis := n.VisualPosition.Get()
			rows = append(rows, []string{
				n.ID(),
				fmt.Sprintf("(%g, %g)", pos.X, pos.Y),
				fmt.Sprintf("(%g, %g)", vis.X, vis.Y),
				fmt.Sprintf("%gx%g", n.Size.W, n.Size.H),
				fmt.Sprint(len(g.ConnectionsOf(n.ID()))),
			})
		}
		writeTable(w, []string{"ID", "POSITION", "VISUAL", "SIZE", "LINKS"}, rows)
		fmt.Fprintln(w)
	}

	if len(anns) > 0 {
		headingStyle.Fprintln(w, "Annotations (bottom to top)")
		rows := make([][]string, 0, len(anns))
		for _, a := range anns {
			rows = append(rows, []string{
				fmt.Sprint(a.ZIndex),
				string(a.Kind),
				a.ID,
				annotationDetail(g, a),
			})
		}
		writeTable(w, []string{"Z", "KIND", "ID", "DETAIL"}, rows)
		fmt.Fprintln(w)
	}

	if len(drags) > 0 {
		headingStyle.Fprintln(w, "Drags")
		for _, d := range drags {
			total := d.Script.Total()
			switch {
			case d.Err != nil:
				fmt.Fprintf(w, "  %s %s: %s\n", badStyle.Sprint("✗"), d.Script.NodeID, d.Err)
			case d.Outcome == metrics.DragCancelled:
				fmt.Fprintf(w, "  %s %s %s [%s]\n", warnStyle.Sprint("↺"), d.Script.NodeID, d.Outcome, strings.Join(d.Moved, ", "))
			default:
				fmt.Fprintf(w, "  %s %s %s [%s] by (%g, %g)\n", goodStyle.Sprint("✓"), d.Script.NodeID, d.Outcome, strings.Join(d.Moved, ", "), total.X, total.Y)
			}
		}
	}
}

func annotationDetail(g graph.Graph, a *canvas.Annotation) string {
	var parts []string
	switch a.Kind {
	case canvas.KindGroup:
		parts = append(parts, fmt.Sprintf("%q contains [%s]", a.Group.Title, strings.Join(g.FindContainedNodes(a.ID), ", ")))
	case canvas.KindStickyNote:
		parts = append(parts, fmt.Sprintf("%q", a.Sticky.Text))
	case canvas.KindMarker:
		parts = append(parts, fmt.Sprintf("%s r=%g", a.Marker.Type, a.Marker.Radius))
	}
	if !a.Visible.Get() {
		parts = append(parts, "hidden")
	}
	return strings.Join(parts, " ")
}

// writeTable prints a simple aligned table.
func writeTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var header strings.Builder
	header.WriteString("  ")
	for i, h := range headers {
		fmt.Fprintf(&header, "%-*s  ", widths[i], h)
	}
	subtleStyle.Fprintln(w, strings.TrimRight(header.String(), " "))

	for _, row := range rows {
		var line strings.Builder
		line.WriteString("  ")
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprintf(&line, "%-*s  ", widths[i], cell)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}
