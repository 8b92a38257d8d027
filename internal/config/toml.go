package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vk/nodecanvas/internal/ctxlog"
)

// TOMLLoader reads .toml config files.
type TOMLLoader struct{}

// Load implements Loader. Keys absent from the file keep their base value;
// unknown keys are rejected.
func (l *TOMLLoader) Load(ctx context.Context, path string, base Config) (Config, error) {
	ctxlog.FromContext(ctx).Debug("TOML config loader started.", "path", path)

	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode TOML file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
