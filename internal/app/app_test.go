package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nodecanvas/internal/config"
)

const twoNodeScene = `
node "a" {
  position = [0, 0]
  size     = [100, 100]
  output "out" {}
}

node "b" {
  position = [300, 0]
  size     = [100, 100]
  input "in" {}
}

connection "a-b" {
  source      = "a"
  source_port = "out"
  target      = "b"
  target_port = "in"
}

annotation "group" "box" {
  title    = "Box"
  position = [-20, -20]
  size     = [160, 160]
}

annotation "sticky_note" "note" {
  text     = "hello"
  position = [0, 400]
  visible  = false
}

drag "a" {
  moves = [[10, 0], [3, 7]]
}

drag "b" {
  moves  = [[-5, 5]]
  cancel = true
}
`

func disableColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func counterValue(t *testing.T, reg *prometheus.Registry, name, labelValue string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelValue == "" {
				return m.GetCounter().GetValue()
			}
			for _, lp := range m.GetLabel() {
				if lp.GetValue() == labelValue {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestRun_ReplaysDragsAndReports(t *testing.T) {
	// Arrange
	disableColor(t)
	settings := config.Default()
	settings.Canvas.GridSize = 10
	app, out := SetupAppTest(t, twoNodeScene, &settings)

	// Act
	err := app.Run(context.Background())

	// Assert
	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, "nodes 2  connections 1  annotations 2")
	assert.Contains(t, output, "(13, 7)", "logical position keeps the raw drag delta")
	assert.Contains(t, output, "(10, 10)", "visual position is snapped to the grid")
	assert.Contains(t, output, "(300, 0)", "cancelled drag restores the node")
	assert.Contains(t, output, `"Box" contains [a]`)
	assert.Contains(t, output, `"hello" hidden`)
	assert.Contains(t, output, "a ended [a] by (13, 7)")
	assert.Contains(t, output, "b cancelled [b]")

	reg := app.Registry()
	assert.Equal(t, 1.0, counterValue(t, reg, "nodecanvas_drag_sessions_total", "ended"))
	assert.Equal(t, 1.0, counterValue(t, reg, "nodecanvas_drag_sessions_total", "cancelled"))
	assert.Positive(t, counterValue(t, reg, "nodecanvas_spatial_flushes_total", ""))
}

func TestRun_SelectionDragsTogether(t *testing.T) {
	// Arrange
	disableColor(t)
	scene := `
node "a" { position = [0, 0] }
node "b" { position = [200, 0] }
node "c" { position = [400, 0] }
drag "a" {
  select = ["a", "b"]
  moves  = [[0, 50]]
}
`
	app, out := SetupAppTest(t, scene, nil)

	// Act
	err := app.Run(context.Background())

	// Assert
	require.NoError(t, err)
	output := out.String()
	assert.Contains(t, output, "a ended [a, b] by (0, 50)")
	assert.Contains(t, output, "(200, 50)")
	assert.Contains(t, output, "(400, 0)")
}

func TestRun_WrapUsesConfiguredPadding(t *testing.T) {
	// Arrange
	disableColor(t)
	scene := `
node "a" {
  position = [0, 0]
  size     = [100, 50]
}
wrap {
  title = "Wrapped"
  nodes = ["a"]
}
`
	settings := config.Default()
	settings.Canvas.GroupPadding = 10
	app, out := SetupAppTest(t, scene, &settings)

	// Act
	err := app.Run(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"Wrapped" contains [a]`)
	assert.Contains(t, out.String(), "nodes 1  connections 0  annotations 1")
}

func TestRun_EmptyDragListPrintsNoDragSection(t *testing.T) {
	// Arrange
	disableColor(t)
	app, out := SetupAppTest(t, `node "solo" { position = [5, 5] }`, nil)

	// Act
	err := app.Run(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out.String(), "nodes 1  connections 0  annotations 0")
	assert.NotContains(t, out.String(), "Drags")
}

func TestRun_InvalidGraphFails(t *testing.T) {
	// Arrange
	scene := `
node "a" { position = [0, 0] }
connection "dangling" {
  source      = "a"
  source_port = "out"
  target      = "missing"
  target_port = "in"
}
`
	app, _ := SetupAppTest(t, scene, nil)

	// Act
	err := app.Run(context.Background())

	// Assert
	assert.ErrorContains(t, err, "failed to load scene into controller")
}

func TestNewApp_PanicsOnUnreadableScene(t *testing.T) {
	// Arrange
	cfg := &Config{ScenePaths: []string{"/definitely/not/here"}, Settings: config.Default()}

	// Act & Assert
	assert.PanicsWithError(t, "failed to load scene: error accessing path /definitely/not/here: stat /definitely/not/here: no such file or directory", func() {
		NewApp(&strings.Builder{}, cfg)
	})
}

func TestRoutes_HealthAndMetrics(t *testing.T) {
	// Arrange
	app, _ := SetupAppTest(t, twoNodeScene, nil)
	require.NoError(t, app.Run(context.Background()))
	handler := app.routes()

	// Act
	health := httptest.NewRecorder()
	handler.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	metricsRec := httptest.NewRecorder()
	handler.ServeHTTP(metricsRec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	// Assert
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, "OK\n", health.Body.String())
	assert.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), "nodecanvas_drag_sessions_total")
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{ScenePaths: []string{"scene.hcl"}, Settings: config.Default()}},
		{name: "no scene", cfg: Config{Settings: config.Default()}, wantErr: "ScenePaths is a required"},
		{name: "bad settings", cfg: Config{ScenePaths: []string{"s.hcl"}}, wantErr: "invalid log-level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			cfg, err := NewConfig(tc.cfg)

			// Assert
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg.ScenePaths, cfg.ScenePaths)
		})
	}
}

func TestNewLogger_LevelAndFormat(t *testing.T) {
	// Arrange
	var buf strings.Builder
	logger := newLogger("warn", "json", &buf)

	// Act
	logger.Info("hidden")
	logger.Warn("shown")

	// Assert
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
