package tactic

import (
	"fmt"

	"github.com/tactics-lab/tacticsheet/internal/export"
)

// Assignments maps a tactic number to the set of code ids linked to it.
// A code id may appear under several tactics when it is linked through
// quotations governed by different markers; that recurrence is kept as-is.
type Assignments map[string]map[string]struct{}

// BuildAssignments walks the coding links and accumulates codes per
// tactic. For each link the code's explicit override wins; otherwise the
// quotation's inherited tactic applies. Links resolving to neither are
// dropped.
func BuildAssignments(codings []export.Coding, book *Codebook, quotes *QuotationIndex) (Assignments, error) {
	assignments := make(Assignments)
	for _, link := range codings {
		tac, ok := book.Override(link.CodeID)
		if !ok {
			resolved, err := quotes.TacticFor(link.QuotationID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve coding link for code %q: %w", link.CodeID, err)
			}
			tac = resolved
		}
		if tac == "" {
			continue
		}
		if assignments[tac] == nil {
			assignments[tac] = make(map[string]struct{})
		}
		assignments[tac][link.CodeID] = struct{}{}
	}
	return assignments, nil
}
