// Package xlsx renders the tactics overview table to a formatted Excel
// workbook: styled header row, wrapped cells, auto-sized columns, and
// frozen panes.
package xlsx

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/tactics-lab/tacticsheet/internal/pivot"
)

// headerFill is the background of the header row.
const headerFill = "D7E4BC"

// widthPadding is added to each column's measured content width.
const widthPadding = 2

// WriteFile renders the table to a single-sheet workbook at path.
func WriteFile(table *pivot.Table, sheet, path string) error {
	f, err := render(table, sheet)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func render(table *pivot.Table, sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Vertical: "top",
			WrapText: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create wrap style: %w", err)
	}

	headers := table.Headers()
	widths := make([]int, len(headers))

	// Header row.
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
		widths[col] = utf8.RuneCountInString(header)
	}

	// Data rows: tactic key, then one cell per family column.
	for i, row := range table.Rows {
		values := make([]string, 0, len(headers))
		values = append(values, row.Tactic)
		for _, famCol := range pivot.FamilyColumns {
			values = append(values, row.Cells[famCol])
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
			if n := utf8.RuneCountInString(value); n > widths[col] {
				widths[col] = n
			}
		}
	}

	// Style ranges. Data styling only applies when there are rows.
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header row: %w", err)
	}
	if len(table.Rows) > 0 {
		bottomRight := fmt.Sprintf("%s%d", lastCol, len(table.Rows)+1)
		if err := f.SetCellStyle(sheet, "A2", bottomRight, wrapStyle); err != nil {
			return nil, fmt.Errorf("failed to style data rows: %w", err)
		}
	}

	// Size each column to its longest string plus padding.
	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, float64(width+widthPadding)); err != nil {
			return nil, fmt.Errorf("failed to size column %s: %w", name, err)
		}
	}

	// Freeze the header row and the tactic column.
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	return f, nil
}
