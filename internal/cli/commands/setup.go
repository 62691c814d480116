package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tactics-lab/tacticsheet/internal/cli/config"
	"github.com/tactics-lab/tacticsheet/internal/cli/output"
	"github.com/tactics-lab/tacticsheet/internal/engine"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext assembles the config, logger, and renderer for a
// command invocation.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetCurrentConfig()
	if cfg == nil {
		cfg = &config.Config{
			Out:          config.DefaultOut,
			Sheet:        config.DefaultSheet,
			OutputFormat: config.DefaultOutput,
		}
	}
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// resolveInput picks the export path from the positional argument or the
// configured input, in that order.
func resolveInput(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input != "" {
		return cfg.Input, nil
	}
	return "", fmt.Errorf("no export file given (pass a path or set input in tacticsheet.yaml)")
}

// newEngine creates an engine for the given export path.
func newEngine(cfg *config.Config, logger *slog.Logger, input string) (*engine.Engine, error) {
	return engine.New(engine.Config{
		InputPath:  input,
		OutputPath: cfg.Out,
		SheetName:  cfg.Sheet,
		Logger:     logger,
	})
}
