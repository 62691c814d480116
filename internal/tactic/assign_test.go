package tactic

import (
	"testing"

	"github.com/tactics-lab/tacticsheet/internal/export"
)

func TestBuildAssignments_OverrideWinsOverMarker(t *testing.T) {
	book := NewCodebook([]export.Code{
		{ID: "c1", Name: "Pinned elsewhere (T9)"},
		{ID: "c2", Name: "Follows markers"},
	})
	quotes := NewQuotationIndex([]export.Quotation{
		{ID: "q0", Name: "Section (AT1)"},
		{ID: "q1", Name: "body"},
	})

	assignments, err := BuildAssignments([]export.Coding{
		{CodeID: "c1", QuotationID: "q1"},
		{CodeID: "c2", QuotationID: "q1"},
	}, book, quotes)
	if err != nil {
		t.Fatalf("BuildAssignments error: %v", err)
	}

	// c1's (T9) override beats the (AT1) marker its quotation resolves to.
	if _, ok := assignments["9"]["c1"]; !ok {
		t.Error("c1 should be assigned to tactic 9 via its override")
	}
	if _, ok := assignments["1"]["c1"]; ok {
		t.Error("c1 should not be assigned to tactic 1")
	}
	if _, ok := assignments["1"]["c2"]; !ok {
		t.Error("c2 should be assigned to tactic 1 via the marker")
	}
}

func TestBuildAssignments_UnresolvedLinkDropped(t *testing.T) {
	book := NewCodebook([]export.Code{
		{ID: "c1", Name: "No override"},
	})
	quotes := NewQuotationIndex([]export.Quotation{
		{ID: "q0", Name: "precedes every marker"},
		{ID: "q1", Name: "Section (AT1)"},
	})

	assignments, err := BuildAssignments([]export.Coding{
		{CodeID: "c1", QuotationID: "q0"},
	}, book, quotes)
	if err != nil {
		t.Fatalf("BuildAssignments error: %v", err)
	}

	if len(assignments) != 0 {
		t.Errorf("expected no assignments, got %v", assignments)
	}
}

func TestBuildAssignments_CodeUnderMultipleTactics(t *testing.T) {
	book := NewCodebook([]export.Code{
		{ID: "c1", Name: "Recurring theme"},
	})
	quotes := NewQuotationIndex([]export.Quotation{
		{ID: "q0", Name: "Section (AT1)"},
		{ID: "q1", Name: "body one"},
		{ID: "q2", Name: "Section (AT2)"},
		{ID: "q3", Name: "body two"},
	})

	assignments, err := BuildAssignments([]export.Coding{
		{CodeID: "c1", QuotationID: "q1"},
		{CodeID: "c1", QuotationID: "q3"},
	}, book, quotes)
	if err != nil {
		t.Fatalf("BuildAssignments error: %v", err)
	}

	// Without an override a code recurs under every tactic it was coded in.
	if _, ok := assignments["1"]["c1"]; !ok {
		t.Error("c1 should appear under tactic 1")
	}
	if _, ok := assignments["2"]["c1"]; !ok {
		t.Error("c1 should appear under tactic 2")
	}
}

func TestBuildAssignments_UnknownQuotationFails(t *testing.T) {
	book := NewCodebook([]export.Code{
		{ID: "c1", Name: "No override"},
	})
	quotes := NewQuotationIndex(nil)

	if _, err := BuildAssignments([]export.Coding{
		{CodeID: "c1", QuotationID: "ghost"},
	}, book, quotes); err == nil {
		t.Fatal("expected error for coding link referencing an unknown quotation")
	}
}
