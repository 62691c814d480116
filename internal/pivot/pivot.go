// Package pivot cross-references tactic assignments against code families
// to build the tactics overview table: one row per tactic, one cell per
// family category.
package pivot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tactics-lab/tacticsheet/internal/export"
	"github.com/tactics-lab/tacticsheet/internal/tactic"
)

// IndexLabel is the header of the leftmost (row key) column.
const IndexLabel = "Tactic"

// FamilyColumns is the fixed set of family categories, in output order.
// The table carries exactly these columns no matter which families the
// export actually defines.
var FamilyColumns = []string{
	"1. Title",
	"2. Description",
	"3. Participant",
	"4. Related Software Artifact",
	"5. Context",
	"6. Software Feature",
	"7. Tactic Intent",
	"8. Target Quality Attribute",
	"9. Other Related Quality Attributes",
	"10. Measured Impact",
	"11. Level of abstraction",
	"12. Tool or framework",
}

// Row is one tactic's worth of cells, keyed by family column name. Every
// fixed column is present; an empty intersection is an empty string.
type Row struct {
	Tactic string
	Cells  map[string]string
}

// Table is the finished overview, rows ascending by numeric tactic key.
type Table struct {
	Rows []Row
}

// Headers returns the full header row: index label plus family columns.
func (t *Table) Headers() []string {
	headers := make([]string, 0, len(FamilyColumns)+1)
	headers = append(headers, IndexLabel)
	return append(headers, FamilyColumns...)
}

// Build pivots tactic assignments into the overview table. For every
// tactic and family it intersects the tactic's code set with the family's
// members and renders the hits as sorted display names joined with "; ".
// Families the export defines beyond the fixed twelve are dropped; fixed
// columns with no matching family stay empty. A tactic key that does not
// parse as an integer is a fatal input error.
func Build(assignments tactic.Assignments, families []export.Family, book *tactic.Codebook) (*Table, error) {
	keys, err := sortedTactics(assignments)
	if err != nil {
		return nil, err
	}

	table := &Table{Rows: make([]Row, 0, len(keys))}
	for _, tac := range keys {
		byFamily := make(map[string]string, len(families))
		for _, fam := range families {
			cell, err := renderCell(assignments[tac], fam.Members, book)
			if err != nil {
				return nil, fmt.Errorf("tactic %s, family %q: %w", tac, fam.Name, err)
			}
			byFamily[fam.Name] = cell
		}

		// Reindex onto the fixed columns.
		cells := make(map[string]string, len(FamilyColumns))
		for _, col := range FamilyColumns {
			cells[col] = byFamily[col]
		}
		table.Rows = append(table.Rows, Row{Tactic: tac, Cells: cells})
	}
	return table, nil
}

// sortedTactics orders the tactic keys by their integer value.
func sortedTactics(assignments tactic.Assignments) ([]string, error) {
	keys := make([]string, 0, len(assignments))
	values := make(map[string]int, len(assignments))
	for tac := range assignments {
		n, err := strconv.Atoi(tac)
		if err != nil {
			return nil, fmt.Errorf("tactic key %q is not numeric: %w", tac, err)
		}
		keys = append(keys, tac)
		values[tac] = n
	}
	sort.Slice(keys, func(i, j int) bool { return values[keys[i]] < values[keys[j]] })
	return keys, nil
}

// renderCell intersects a tactic's code set with a family's members and
// renders the result as sorted display names.
func renderCell(codes map[string]struct{}, members []string, book *tactic.Codebook) (string, error) {
	var names []string
	for _, id := range members {
		if _, ok := codes[id]; !ok {
			continue
		}
		name, ok := book.Name(id)
		if !ok {
			return "", fmt.Errorf("unknown code id %q", id)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "; "), nil
}
