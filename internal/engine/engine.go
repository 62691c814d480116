// Package engine runs the conversion pipeline: parse the export, resolve
// tactic assignments, pivot against families, and write the workbook.
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tactics-lab/tacticsheet/internal/export"
	"github.com/tactics-lab/tacticsheet/internal/pivot"
	"github.com/tactics-lab/tacticsheet/internal/tactic"
	"github.com/tactics-lab/tacticsheet/internal/xlsx"
)

// Config holds engine configuration.
type Config struct {
	// InputPath is the coding export to read.
	InputPath string
	// OutputPath is where the workbook is written.
	OutputPath string
	// SheetName names the single output sheet.
	SheetName string
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// Engine converts one coding export into one tactics overview workbook.
// All state is built fresh per run; nothing persists between calls.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

// Result summarizes a completed conversion run.
type Result struct {
	// ID uniquely identifies this run in logs.
	ID string
	// OutputPath is the workbook that was written.
	OutputPath string
	// Tactics is the number of rows in the overview.
	Tactics int
	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// New creates an engine for the given configuration.
func New(cfg Config) (*Engine, error) {
	if cfg.InputPath == "" {
		return nil, fmt.Errorf("no export file configured")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{cfg: cfg, logger: logger}, nil
}

// BuildTable runs the pipeline up to the pivot table, without writing the
// workbook. Used by inspect-style consumers.
func (e *Engine) BuildTable(ctx context.Context) (*pivot.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := export.ParseFile(e.cfg.InputPath)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("parsed export",
		"codes", len(doc.Codes),
		"quotations", len(doc.Quotations),
		"families", len(doc.Families),
		"codings", len(doc.Codings))

	book := tactic.NewCodebook(doc.Codes)
	quotes := tactic.NewQuotationIndex(doc.Quotations)
	assignments, err := tactic.BuildAssignments(doc.Codings, book, quotes)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("resolved assignments", "tactics", len(assignments))

	return pivot.Build(assignments, doc.Families, book)
}

// Convert runs the full pipeline and writes the workbook.
func (e *Engine) Convert(ctx context.Context) (*Result, error) {
	runID := uuid.New().String()
	start := time.Now()
	e.logger.Debug("starting conversion", "run_id", runID, "input", e.cfg.InputPath)

	table, err := e.BuildTable(ctx)
	if err != nil {
		return nil, err
	}

	sheet := e.cfg.SheetName
	if sheet == "" {
		sheet = "Tactics"
	}
	if err := xlsx.WriteFile(table, sheet, e.cfg.OutputPath); err != nil {
		return nil, err
	}

	result := &Result{
		ID:         runID,
		OutputPath: e.cfg.OutputPath,
		Tactics:    len(table.Rows),
		Duration:   time.Since(start),
	}
	e.logger.Debug("conversion complete",
		"run_id", runID,
		"output", result.OutputPath,
		"tactics", result.Tactics,
		"duration", result.Duration)
	return result, nil
}
