package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/nodecanvas/internal/ctxlog"
)

// HCLLoader reads .hcl config files.
type HCLLoader struct{}

// hclRoot mirrors Config with pointer fields so omitted attributes can be
// told apart from zero values. Unknown attributes and blocks fail decoding.
type hclRoot struct {
	Canvas  *hclCanvas  `hcl:"canvas,block"`
	Logging *hclLogging `hcl:"logging,block"`
	Server  *hclServer  `hcl:"server,block"`
}

type hclCanvas struct {
	GridSize        *float64 `hcl:"grid_size,optional"`
	SpatialCellSize *float64 `hcl:"spatial_cell_size,optional"`
	ForceImmediate  *bool    `hcl:"force_immediate,optional"`
	GroupPadding    *float64 `hcl:"group_padding,optional"`
}

type hclLogging struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type hclServer struct {
	HealthcheckPort *int `hcl:"healthcheck_port,optional"`
}

// Load implements Loader.
func (l *HCLLoader) Load(ctx context.Context, path string, base Config) (Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL config loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root hclRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	cfg := base
	if c := root.Canvas; c != nil {
		setIf(&cfg.Canvas.GridSize, c.GridSize)
		setIf(&cfg.Canvas.SpatialCellSize, c.SpatialCellSize)
		setIf(&cfg.Canvas.ForceImmediate, c.ForceImmediate)
		setIf(&cfg.Canvas.GroupPadding, c.GroupPadding)
	}
	if lg := root.Logging; lg != nil {
		setIf(&cfg.Logging.Level, lg.Level)
		setIf(&cfg.Logging.Format, lg.Format)
	}
	if s := root.Server; s != nil {
		setIf(&cfg.Server.HealthcheckPort, s.HealthcheckPort)
	}
	return cfg, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
