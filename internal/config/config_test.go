package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nodecanvas/internal/ctxlog"
)

func testContext() context.Context {
	return ctxlog.Discard(context.Background())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	// Arrange
	cfg := Default()

	// Act
	err := cfg.Validate()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 256.0, cfg.Canvas.SpatialCellSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Zero(t, cfg.Server.HealthcheckPort)
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	// Arrange
	cfg := Default()
	cfg.Canvas.GridSize = -1
	cfg.Canvas.SpatialCellSize = 0
	cfg.Logging.Level = "verbose"
	cfg.Logging.Format = "xml"
	cfg.Server.HealthcheckPort = 70000

	// Act
	err := cfg.Validate()

	// Assert
	require.Error(t, err)
	assert.ErrorContains(t, err, "grid_size")
	assert.ErrorContains(t, err, "spatial_cell_size")
	assert.ErrorContains(t, err, "invalid log-level 'verbose'")
	assert.ErrorContains(t, err, "invalid log-format 'xml'")
	assert.ErrorContains(t, err, "healthcheck_port")
}

func TestLoad_HCLOverridesOnlyPresentKeys(t *testing.T) {
	// Arrange
	path := writeFile(t, "canvas.hcl", `
canvas {
  grid_size = 20
}
logging {
  format = "text"
}
`)

	// Act
	cfg, err := Load(testContext(), path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.Canvas.GridSize)
	assert.Equal(t, 256.0, cfg.Canvas.SpatialCellSize, "unset keys keep defaults")
	assert.Equal(t, 24.0, cfg.Canvas.GroupPadding)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_HCLFull(t *testing.T) {
	// Arrange
	path := writeFile(t, "canvas.hcl", `
canvas {
  grid_size         = 10
  spatial_cell_size = 128
  force_immediate   = true
  group_padding     = 8
}
logging {
  level  = "debug"
  format = "text"
}
server {
  healthcheck_port = 9090
}
`)

	// Act
	cfg, err := Load(testContext(), path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Config{
		Canvas:  Canvas{GridSize: 10, SpatialCellSize: 128, ForceImmediate: true, GroupPadding: 8},
		Logging: Logging{Level: "debug", Format: "text"},
		Server:  Server{HealthcheckPort: 9090},
	}, cfg)
}

func TestLoad_HCLRejectsUnknownAttribute(t *testing.T) {
	// Arrange
	path := writeFile(t, "canvas.hcl", `zoom = 2`)

	// Act
	_, err := Load(testContext(), path)

	// Assert
	assert.ErrorContains(t, err, "zoom")
}

func TestLoad_HCLSyntaxError(t *testing.T) {
	// Arrange
	path := writeFile(t, "canvas.hcl", `canvas {`)

	// Act
	_, err := Load(testContext(), path)

	// Assert
	assert.ErrorContains(t, err, "failed to parse HCL file")
}

func TestLoad_TOML(t *testing.T) {
	// Arrange
	path := writeFile(t, "canvas.toml", `
[canvas]
grid_size = 16
force_immediate = true

[server]
healthcheck_port = 8081
`)

	// Act
	cfg, err := Load(testContext(), path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 16.0, cfg.Canvas.GridSize)
	assert.True(t, cfg.Canvas.ForceImmediate)
	assert.Equal(t, 256.0, cfg.Canvas.SpatialCellSize)
	assert.Equal(t, 8081, cfg.Server.HealthcheckPort)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_TOMLRejectsUnknownKeys(t *testing.T) {
	// Arrange
	path := writeFile(t, "canvas.toml", "[canvas]\nzoom = 2\n")

	// Act
	_, err := Load(testContext(), path)

	// Assert
	assert.ErrorContains(t, err, "canvas.zoom")
}

func TestLoad_InvalidValueFailsValidation(t *testing.T) {
	// Arrange
	path := writeFile(t, "canvas.toml", "[logging]\nlevel = \"loud\"\n")

	// Act
	_, err := Load(testContext(), path)

	// Assert
	assert.ErrorContains(t, err, "invalid config")
	assert.ErrorContains(t, err, "loud")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	// Act
	_, err := Load(testContext(), "settings.yaml")

	// Assert
	assert.ErrorContains(t, err, "unsupported config file")
}

func TestLoad_MissingFile(t *testing.T) {
	// Act
	_, err := Load(testContext(), filepath.Join(t.TempDir(), "absent.toml"))

	// Assert
	assert.Error(t, err)
}
