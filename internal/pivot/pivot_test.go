package pivot

import (
	"testing"

	"github.com/tactics-lab/tacticsheet/internal/export"
	"github.com/tactics-lab/tacticsheet/internal/tactic"
)

func codeSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestBuild_FixedColumns(t *testing.T) {
	book := tactic.NewCodebook([]export.Code{
		{ID: "c1", Name: "Use caching"},
	})
	families := []export.Family{
		{ID: "f1", Name: "1. Title", Members: []string{"c1"}},
		// A family name outside the fixed set must be dropped.
		{ID: "f2", Name: "13. Something extra", Members: []string{"c1"}},
	}
	assignments := tactic.Assignments{"1": codeSet("c1")}

	table, err := Build(assignments, families, book)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	row := table.Rows[0]
	if len(row.Cells) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(row.Cells))
	}
	for _, col := range FamilyColumns {
		if _, ok := row.Cells[col]; !ok {
			t.Errorf("missing fixed column %q", col)
		}
	}
	if _, ok := row.Cells["13. Something extra"]; ok {
		t.Error("extra family should not survive reindexing")
	}
	if row.Cells["1. Title"] != "Use caching" {
		t.Errorf("1. Title = %q, want 'Use caching'", row.Cells["1. Title"])
	}
	// Columns without a matching family are empty strings, never absent.
	if row.Cells["12. Tool or framework"] != "" {
		t.Errorf("12. Tool or framework = %q, want empty", row.Cells["12. Tool or framework"])
	}
}

func TestBuild_CellSortedByDisplayName(t *testing.T) {
	book := tactic.NewCodebook([]export.Code{
		{ID: "c1", Name: "Zebra pattern"},
		{ID: "c2", Name: "Alpha pattern"},
	})
	families := []export.Family{
		{ID: "f1", Name: "2. Description", Members: []string{"c1", "c2"}},
	}
	assignments := tactic.Assignments{"3": codeSet("c1", "c2")}

	table, err := Build(assignments, families, book)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	got := table.Rows[0].Cells["2. Description"]
	want := "Alpha pattern; Zebra pattern"
	if got != want {
		t.Errorf("cell = %q, want %q", got, want)
	}
}

func TestBuild_NumericRowOrder(t *testing.T) {
	book := tactic.NewCodebook([]export.Code{{ID: "c1", Name: "x"}})
	assignments := tactic.Assignments{
		"10": codeSet("c1"),
		"9":  codeSet("c1"),
		"2":  codeSet("c1"),
	}

	table, err := Build(assignments, nil, book)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	var got []string
	for _, row := range table.Rows {
		got = append(got, row.Tactic)
	}
	want := []string{"2", "9", "10"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row order = %v, want %v", got, want)
		}
	}
}

func TestBuild_NonNumericTacticFails(t *testing.T) {
	book := tactic.NewCodebook(nil)
	assignments := tactic.Assignments{"seven": codeSet("c1")}

	if _, err := Build(assignments, nil, book); err == nil {
		t.Fatal("expected error for non-numeric tactic key")
	}
}

func TestBuild_UnknownCodeFails(t *testing.T) {
	book := tactic.NewCodebook(nil)
	families := []export.Family{
		{ID: "f1", Name: "1. Title", Members: []string{"ghost"}},
	}
	assignments := tactic.Assignments{"1": codeSet("ghost")}

	if _, err := Build(assignments, families, book); err == nil {
		t.Fatal("expected error for code id missing from the codebook")
	}
}

func TestHeaders(t *testing.T) {
	table := &Table{}
	headers := table.Headers()
	if len(headers) != 13 {
		t.Fatalf("expected 13 headers, got %d", len(headers))
	}
	if headers[0] != IndexLabel {
		t.Errorf("headers[0] = %q, want %q", headers[0], IndexLabel)
	}
	if headers[1] != "1. Title" || headers[12] != "12. Tool or framework" {
		t.Errorf("unexpected family header order: %v", headers[1:])
	}
}
