package tactic

import (
	"fmt"
	"regexp"

	"github.com/tactics-lab/tacticsheet/internal/export"
)

// Tactic marker anywhere in a quotation name, e.g. "Caching tactic (AT7)".
// Unlike the code suffix this is an unanchored search.
var tacticMarkerPattern = regexp.MustCompile(`\(AT(\d+)\)`)

// quotationRecord is one quotation with its zero-based document order and
// the tactic digits from its marker, empty when the name carries none.
type quotationRecord struct {
	id     string
	order  int
	tactic string
}

// QuotationIndex resolves quotations to tactics. Marker quotations act as
// section headers: a marker applies to every quotation from its own
// position forward until the next marker.
type QuotationIndex struct {
	byID map[string]quotationRecord

	// titles holds the marker-carrying quotations ascending by order.
	titles []quotationRecord
}

// NewQuotationIndex indexes quotations in document order.
func NewQuotationIndex(quotations []export.Quotation) *QuotationIndex {
	ix := &QuotationIndex{
		byID: make(map[string]quotationRecord, len(quotations)),
	}
	for i, q := range quotations {
		rec := quotationRecord{id: q.ID, order: i}
		if m := tacticMarkerPattern.FindStringSubmatch(q.Name); m != nil {
			rec.tactic = m[1]
		}
		ix.byID[q.ID] = rec
		if rec.tactic != "" {
			ix.titles = append(ix.titles, rec)
		}
	}
	return ix
}

// TacticFor returns the tactic number governing the given quotation: the
// tactic of the nearest marker quotation at or before it in document
// order. Returns "" when no marker precedes the quotation, and an error
// when the id is unknown (a coding link referencing a quotation the export
// never defined).
func (ix *QuotationIndex) TacticFor(quotationID string) (string, error) {
	rec, ok := ix.byID[quotationID]
	if !ok {
		return "", fmt.Errorf("unknown quotation id %q", quotationID)
	}
	// titles is ascending by order, so scan backward for the first marker
	// at or before the target.
	for i := len(ix.titles) - 1; i >= 0; i-- {
		if ix.titles[i].order <= rec.order {
			return ix.titles[i].tactic, nil
		}
	}
	return "", nil
}
