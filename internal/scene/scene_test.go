package scene

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nodecanvas/internal/canvas"
	"github.com/vk/nodecanvas/internal/ctxlog"
	"github.com/vk/nodecanvas/internal/geom"
)

func testContext() context.Context {
	return ctxlog.Discard(context.Background())
}

func writeScene(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const pipelineScene = `
node "source" {
  label    = "Source"
  position = [0, 0]
  size     = [120, 80]
  output "out" {}
}

node "sink" {
  position = [grid * 10, 0]
  input "in" { label = "In" }
}

connection "source-to-sink" {
  source      = "source"
  source_port = "out"
  target      = "sink"
  target_port = "in"
}

annotation "group" "pipeline" {
  title    = "Pipeline"
  position = [-20, -20]
  size     = [360, 140]
  color    = "#336699"
}

annotation "sticky_note" "note" {
  text     = "check me"
  position = [0, 200]
  z_index  = 5
  visible  = false
}

annotation "marker" "pin" {
  marker_type = "flag"
  position    = [10, 10]
}

drag "source" {
  select = ["sink"]
  moves  = [[10, 0], [grid, grid]]
}

drag "sink" {
  moves  = [[-5, 5]]
  cancel = true
}

wrap {
  title = "Both"
  nodes = ["source", "sink"]
}
`

func TestLoad_FullScene(t *testing.T) {
	// Arrange
	path := writeScene(t, t.TempDir(), "pipeline.hcl", pipelineScene)

	// Act
	sc, err := Load(testContext(), []string{path}, Options{GridSize: 20})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{path}, sc.Files)

	doc := sc.Document
	require.Len(t, doc.Nodes, 2)
	source, sink := doc.Nodes[0], doc.Nodes[1]
	assert.Equal(t, "source", source.ID())
	assert.Equal(t, "Source", source.Label)
	assert.Equal(t, geom.Sz(120, 80), source.Size)
	require.Len(t, source.Outputs, 1)
	assert.Equal(t, canvas.Output, source.Outputs[0].Direction)
	assert.Equal(t, geom.Pt(200, 0), sink.Position.Get(), "grid variable is visible to expressions")
	assert.Equal(t, DefaultNodeSize, sink.Size)
	assert.Equal(t, "In", sink.Inputs[0].Label)

	require.Len(t, doc.Connections, 1)
	assert.Equal(t, &canvas.Connection{
		ID: "source-to-sink", SourceNodeID: "source", SourcePortID: "out", TargetNodeID: "sink", TargetPortID: "in",
	}, doc.Connections[0])

	require.Len(t, doc.Annotations, 3)
	group, note, pin := doc.Annotations[0], doc.Annotations[1], doc.Annotations[2]
	assert.Equal(t, canvas.KindGroup, group.Kind)
	assert.Equal(t, "Pipeline", group.Group.Title)
	assert.Equal(t, "#336699", group.Color)
	assert.Equal(t, canvas.ZIndexUnassigned, group.ZIndex)
	assert.Equal(t, "check me", note.Sticky.Text)
	assert.Equal(t, DefaultStickySize, note.Size)
	assert.Equal(t, 5, note.ZIndex)
	assert.False(t, note.Visible.Get())
	assert.Equal(t, "flag", pin.Marker.Type)
	assert.Equal(t, float64(DefaultMarkerRadius), pin.Marker.Radius)

	require.Len(t, sc.Drags, 2)
	assert.Equal(t, DragScript{
		NodeID: "source",
		Select: []string{"sink"},
		Moves:  []geom.Point{geom.Pt(10, 0), geom.Pt(20, 20)},
	}, sc.Drags[0])
	assert.Equal(t, geom.Pt(30, 20), sc.Drags[0].Total())
	assert.True(t, sc.Drags[1].Cancel)
	assert.Equal(t, []Wrap{{Title: "Both", Nodes: []string{"source", "sink"}}}, sc.Wraps)
}

func TestLoad_DirectoryMergesFilesInOrder(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	writeScene(t, dir, "b.hcl", `node "second" { position = [1, 1] }`)
	writeScene(t, dir, "a.hcl", `node "first" { position = [0, 0] }`)
	writeScene(t, dir, "notes.txt", `not a scene`)

	// Act
	sc, err := Load(testContext(), []string{dir}, Options{})

	// Assert
	require.NoError(t, err)
	require.Len(t, sc.Document.Nodes, 2)
	assert.Equal(t, "first", sc.Document.Nodes[0].ID())
	assert.Equal(t, "second", sc.Document.Nodes[1].ID())
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "syntax", content: `node "a" {`, wantErr: "failed to parse HCL file"},
		{name: "missing position", content: `node "a" {}`, wantErr: "failed to decode HCL file"},
		{name: "bad pair", content: `node "a" { position = [1, 2, 3] }`, wantErr: "two numbers"},
		{name: "non numeric", content: `node "a" { position = ["x", 2] }`, wantErr: "node \"a\" position"},
		{name: "negative size", content: `node "a" { position = [0, 0] size = [-1, 5] }`, wantErr: "must not be negative"},
		{name: "unknown kind", content: `annotation "frame" "f" { position = [0, 0] }`, wantErr: "unknown kind \"frame\""},
		{name: "unknown attribute", content: `zoom = 2`, wantErr: "zoom"},
		{name: "bad moves", content: `node "a" { position = [0, 0] }
drag "a" { moves = [1, 2] }`, wantErr: "drag \"a\""},
		{name: "drag unknown node", content: `drag "ghost" { moves = [[1, 1]] }`, wantErr: "unknown node \"ghost\""},
		{name: "drag selects unknown node", content: `node "a" { position = [0, 0] }
drag "a" {
  select = ["ghost"]
  moves  = [[1, 1]]
}`, wantErr: "selects unknown node \"ghost\""},
		{name: "wrap unknown node", content: `wrap {
  title = "x"
  nodes = ["ghost"]
}`, wantErr: "wrap \"x\" references unknown node \"ghost\""},
		{name: "wrap without nodes", content: `wrap {
  nodes = []
}`, wantErr: "lists no nodes"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			path := writeScene(t, t.TempDir(), "scene.hcl", tc.content)

			// Act
			_, err := Load(testContext(), []string{path}, Options{})

			// Assert
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestLoad_EmptyDirectory(t *testing.T) {
	// Act
	_, err := Load(testContext(), []string{t.TempDir()}, Options{})

	// Assert
	assert.ErrorContains(t, err, "no scene files found")
}

func TestDragScript_TotalOfNoMoves(t *testing.T) {
	assert.Equal(t, geom.Point{}, DragScript{NodeID: "a"}.Total())
}
