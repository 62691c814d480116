// Package export parses qualitative-coding XML exports into raw entities.
// It extracts code definitions, quotations (in document order), code
// families, and the coding links that tie codes to quotations. No
// interpretation happens here; tactic resolution lives in internal/tactic.
package export

// Code is a single code definition. Name is the raw name as exported,
// including any trailing tactic suffix.
type Code struct {
	ID   string
	Name string
}

// Quotation is a marked span of source text. Name is the raw name as
// exported, which may carry an embedded tactic marker.
type Quotation struct {
	ID   string
	Name string
}

// Family groups codes into one descriptive category. Members holds the
// member code ids in document order.
type Family struct {
	ID      string
	Name    string
	Members []string
}

// Coding links one code to one quotation.
type Coding struct {
	CodeID      string
	QuotationID string
}

// Document holds everything read from one export file. Quotations preserve
// document order of appearance, which downstream resolution depends on.
type Document struct {
	Codes      []Code
	Quotations []Quotation
	Families   []Family
	Codings    []Coding
}
