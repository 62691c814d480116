// Package tactic derives tactic assignments from a parsed coding export.
// A tactic is a numeric grouping key. Codes claim a tactic explicitly via a
// trailing "(Tn)" suffix in their name; quotations inherit one from the
// nearest preceding "(ATn)" marker quotation.
package tactic

import (
	"regexp"
	"strings"

	"github.com/tactics-lab/tacticsheet/internal/export"
)

// Tactic suffix at the end of a code name, e.g. "Use caching (T7)".
// Anchored at the end after trailing whitespace.
var tacticSuffixPattern = regexp.MustCompile(`\s*\(T(\d+)\)\s*$`)

// Codebook maps code ids to cleaned display names and optional tactic
// overrides. Built once, read-only afterwards.
type Codebook struct {
	names     map[string]string
	overrides map[string]string
}

// NewCodebook indexes code definitions. A code whose raw name ends in
// "(Tn)" gets the digits recorded as its tactic override and the suffix
// stripped from its display name.
func NewCodebook(codes []export.Code) *Codebook {
	book := &Codebook{
		names:     make(map[string]string, len(codes)),
		overrides: make(map[string]string),
	}
	for _, c := range codes {
		name, tactic, ok := splitTacticSuffix(c.Name)
		book.names[c.ID] = name
		if ok {
			book.overrides[c.ID] = tactic
		}
	}
	return book
}

// Name returns the cleaned display name for a code id.
func (b *Codebook) Name(id string) (string, bool) {
	name, ok := b.names[id]
	return name, ok
}

// Override returns the explicit tactic number for a code id, if any.
func (b *Codebook) Override(id string) (string, bool) {
	tactic, ok := b.overrides[id]
	return tactic, ok
}

// splitTacticSuffix separates a trailing tactic suffix from a raw code
// name. Returns the cleaned name, the tactic digits, and whether a suffix
// was present. Without a suffix the name is returned unchanged.
func splitTacticSuffix(raw string) (name, tactic string, ok bool) {
	loc := tacticSuffixPattern.FindStringSubmatchIndex(raw)
	if loc == nil {
		return raw, "", false
	}
	return strings.TrimSpace(raw[:loc[0]]), raw[loc[2]:loc[3]], true
}
