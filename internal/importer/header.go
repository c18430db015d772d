// Package importer implements the spreadsheet import engine: tolerant
// header matching, row parsing, validation, size-chart extraction,
// aggregation into product payloads, and template generation.
package importer

import (
	"sort"
	"strings"
)

// ResolveCell resolves a cell value from a raw row, trying each candidate
// header name in order. For every candidate it tries the exact string, the
// string with "*" appended, with " *" appended, and with a trailing asterisk
// stripped; if none of those carry a value it falls back to a normalized
// scan of all row keys. Header text in distributed templates drifts
// (space-before-asterisk vs none, stray NBSPs, localized casing), hence the
// fallback. Returns the first candidate with a non-empty value.
func ResolveCell(row map[string]string, candidates ...string) (string, bool) {
	for _, cand := range candidates {
		if cand == "" {
			continue
		}
		if v, ok := lookupHeader(row, cand); ok {
			return v, true
		}
	}
	return "", false
}

func lookupHeader(row map[string]string, cand string) (string, bool) {
	stripped := strings.TrimSpace(strings.TrimSuffix(cand, "*"))
	for _, key := range []string{cand, cand + "*", cand + " *", stripped} {
		if v, ok := row[key]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
	}

	// Linear scan with both sides normalized. Keys are sorted so the
	// "first match" is deterministic across parses of the same row.
	want := NormalizeHeader(cand)
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if NormalizeHeader(k) == want {
			if v := strings.TrimSpace(row[k]); v != "" {
				return v, true
			}
		}
	}
	return "", false
}

// NormalizeHeader collapses runs of whitespace, strips NBSPs and a trailing
// required marker, and case-folds, so that "Product  Name *", "Product
// Name*" and "product name" all compare equal.
func NormalizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimSuffix(s, "*")
	s = strings.TrimSpace(s)
	return strings.ToLower(s)
}
