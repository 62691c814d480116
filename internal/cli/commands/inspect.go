package commands

import (
	"github.com/spf13/cobra"

	"github.com/tactics-lab/tacticsheet/internal/cli/output"
	"github.com/tactics-lab/tacticsheet/internal/pivot"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [export.xml]",
		Short: "Print the tactics overview without writing a workbook",
		Long: `Build the tactics overview table and render it to stdout.

Output adapts to environment:
  - Terminal: styled table
  - Piped/Scripted: Markdown table

Use --output to override: auto, text, markdown, json`,
		Example: `  # Preview the overview in the terminal
  tacticsheet inspect paper1.xml

  # Machine-readable rows
  tacticsheet inspect paper1.xml --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args)
		},
	}

	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)

	input, err := resolveInput(args, cmdCtx.Cfg)
	if err != nil {
		return err
	}

	eng, err := newEngine(cmdCtx.Cfg, cmdCtx.Logger, input)
	if err != nil {
		return err
	}
	table, err := eng.BuildTable(cmd.Context())
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(tableRows(table))
	}

	rows := make([][]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		cells := make([]string, 0, len(pivot.FamilyColumns)+1)
		cells = append(cells, row.Tactic)
		for _, col := range pivot.FamilyColumns {
			cells = append(cells, row.Cells[col])
		}
		rows = append(rows, cells)
	}
	r.Table(table.Headers(), rows)
	return nil
}

// tableRows flattens the table into JSON-friendly objects, one per tactic,
// keyed by the index label and the family column names.
func tableRows(table *pivot.Table) []map[string]string {
	out := make([]map[string]string, 0, len(table.Rows))
	for _, row := range table.Rows {
		obj := make(map[string]string, len(pivot.FamilyColumns)+1)
		obj[pivot.IndexLabel] = row.Tactic
		for _, col := range pivot.FamilyColumns {
			obj[col] = row.Cells[col]
		}
		out = append(out, obj)
	}
	return out
}
