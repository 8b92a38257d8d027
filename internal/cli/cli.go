package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/nodecanvas/internal/app"
	"github.com/vk/nodecanvas/internal/config"
	"github.com/vk/nodecanvas/internal/ctxlog"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// flagValues are the raw values bound to the command's flags.
type flagValues struct {
	configPath     string
	logLevel       string
	logFormat      string
	healthPort     int
	gridSize       float64
	cellSize       float64
	groupPadding   float64
	forceImmediate bool
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		flags  flagValues
		result *app.Config
	)
	cmd := &cobra.Command{
		Use:   "nodecanvas [flags] SCENE_PATH...",
		Short: "Load a node canvas scene, replay its drags and report the result",
		Long: `nodecanvas - A graph state controller for node-based canvases.

Arguments:
  SCENE_PATH
    Path to a single .hcl scene file or a directory containing .hcl files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			if len(positional) == 0 {
				slog.Debug("No scene path provided, printing usage and exiting.")
				return cmd.Help()
			}
			cfg, err := buildConfig(cmd, flags, positional)
			if err != nil {
				return err
			}
			result = cfg
			return nil
		},
	}
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	fs := cmd.Flags()
	fs.StringVarP(&flags.configPath, "config", "c", "", "Path to a .hcl or .toml config file.")
	fs.StringVar(&flags.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	fs.StringVar(&flags.logFormat, "log-format", "json", "Log output format. Options: 'text' or 'json'.")
	fs.IntVar(&flags.healthPort, "healthcheck-port", 0, "Port for the HTTP health check and metrics server. 0 is disabled.")
	fs.Float64Var(&flags.gridSize, "grid-size", 0, "Snap dragged nodes to a grid of this size. 0 is disabled.")
	fs.Float64Var(&flags.cellSize, "cell-size", 256, "Cell size of the spatial index.")
	fs.Float64Var(&flags.groupPadding, "group-padding", 24, "Padding used when creating groups around nodes.")
	fs.BoolVar(&flags.forceImmediate, "force-immediate", false, "Flush spatial updates on every mutation.")

	if err := cmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if result == nil {
		return nil, true, nil
	}
	slog.Debug("CLI parser finished successfully.", "config", result)
	return result, false, nil
}

// buildConfig layers defaults, the config file and explicit flags.
func buildConfig(cmd *cobra.Command, flags flagValues, scenePaths []string) (*app.Config, error) {
	settings := config.Default()
	if flags.configPath != "" {
		ctx := ctxlog.WithLogger(context.Background(), slog.Default())
		loaded, err := config.Load(ctx, flags.configPath)
		if err != nil {
			return nil, &ExitError{Code: 2, Message: err.Error()}
		}
		settings = loaded
	}

	changed := cmd.Flags().Changed
	if changed("log-level") {
		settings.Logging.Level = strings.ToLower(flags.logLevel)
	}
	if changed("log-format") {
		settings.Logging.Format = strings.ToLower(flags.logFormat)
	}
	if changed("healthcheck-port") {
		settings.Server.HealthcheckPort = flags.healthPort
	}
	if changed("grid-size") {
		settings.Canvas.GridSize = flags.gridSize
	}
	if changed("cell-size") {
		settings.Canvas.SpatialCellSize = flags.cellSize
	}
	if changed("group-padding") {
		settings.Canvas.GroupPadding = flags.groupPadding
	}
	if changed("force-immediate") {
		settings.Canvas.ForceImmediate = flags.forceImmediate
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		ScenePaths: scenePaths,
		Settings:   settings,
	})
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, nil
}
