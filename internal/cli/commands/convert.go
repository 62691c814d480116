package commands

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce coalesces bursts of filesystem events into one re-run.
// Analysis tools tend to write exports in several chunks.
const watchDebounce = 250 * time.Millisecond

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "convert [export.xml]",
		Short: "Convert a coding export into the tactics overview workbook",
		Long: `Convert a qualitative-coding XML export into a tactics overview
spreadsheet: one row per tactic, one column per family category.

The export path comes from the positional argument or the "input" config
key. The workbook path and sheet name come from --out and --sheet.`,
		Example: `  # Convert an export
  tacticsheet convert paper1.xml

  # Convert to a specific workbook path
  tacticsheet convert paper1.xml --out results/overview.xlsx

  # Re-convert whenever the export is re-written
  tacticsheet convert paper1.xml --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, watch)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Re-run the conversion when the export file changes")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, watch bool) error {
	cmdCtx := NewCommandContext(cmd)

	input, err := resolveInput(args, cmdCtx.Cfg)
	if err != nil {
		return err
	}

	if err := convertOnce(cmd.Context(), cmdCtx, input); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	return watchAndConvert(cmd, cmdCtx, input)
}

// convertOnce runs the full pipeline and prints the confirmation line.
func convertOnce(ctx context.Context, cmdCtx *CommandContext, input string) error {
	eng, err := newEngine(cmdCtx.Cfg, cmdCtx.Logger, input)
	if err != nil {
		return err
	}
	result, err := eng.Convert(ctx)
	if err != nil {
		return err
	}
	cmdCtx.Renderer.Printf("Wrote %s\n", result.OutputPath)
	return nil
}

// watchAndConvert re-runs the conversion whenever the export file is
// rewritten, until interrupted. Events are debounced; a failed re-run is
// logged and watching continues.
func watchAndConvert(cmd *cobra.Command, cmdCtx *CommandContext, input string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory, not the file: editors and exporters replace
	// files by rename, which drops a file-level watch.
	dir := filepath.Dir(input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(input)
	cmdCtx.Logger.Info("watching export", "path", target)

	var debounce *time.Timer
	for {
		var fire <-chan time.Time
		if debounce != nil {
			fire = debounce.C
		}

		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
			} else {
				debounce.Reset(watchDebounce)
			}

		case err := <-watcher.Errors:
			cmdCtx.Logger.Error("watch error", "error", err)

		case <-fire:
			debounce = nil
			if err := convertOnce(ctx, cmdCtx, input); err != nil {
				cmdCtx.Logger.Error("conversion failed", "error", err)
			}
		}
	}
}
