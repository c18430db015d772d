package importer

import (
	"fmt"
	"strings"

	"catalog-import-service/internal/models"
)

// MeasurementColumn is a measurement column resolved either from the field
// catalog or detected from header text.
type MeasurementColumn struct {
	Name     string
	Unit     string
	Required bool
}

// knownMeasurements are body-measurement names recognized without a unit
// suffix in the header.
var knownMeasurements = map[string]bool{
	"chest":    true,
	"shoulder": true,
	"length":   true,
	"width":    true,
	"height":   true,
	"sleeve":   true,
	"waist":    true,
	"hip":      true,
	"inseam":   true,
	"outseam":  true,
	"neck":     true,
	"armhole":  true,
	"bust":     true,
}

// MeasurementKey is the canonical draft-record key for a measurement:
// "Name (Unit)" with the required marker preserved.
func MeasurementKey(m models.Measurement) string {
	key := m.Name
	if m.Unit != "" {
		key = fmt.Sprintf("%s (%s)", m.Name, m.Unit)
	}
	if m.Required {
		key += "*"
	}
	return key
}

func measurementCandidates(m models.Measurement) []string {
	if m.Unit == "" {
		return []string{m.Name}
	}
	return []string{fmt.Sprintf("%s (%s)", m.Name, m.Unit), m.Name}
}

// DetectMeasurementColumns scans file headers for measurement columns: a
// header counts if its base name is a known body measurement or a
// garment-length variant, or if it ends in a parenthesized unit token. Core
// vocabulary headers and size-column aliases are never measurements, even
// when they carry a parenthesized suffix.
func DetectMeasurementColumns(headers []string) []MeasurementColumn {
	reserved := make(map[string]bool, len(coreColumns)+len(sizeHeaders))
	for _, c := range coreColumns {
		reserved[NormalizeHeader(c.Header)] = true
	}
	for _, s := range sizeHeaders {
		reserved[NormalizeHeader(s)] = true
	}

	var cols []MeasurementColumn
	seen := make(map[string]bool)
	for _, h := range headers {
		if reserved[NormalizeHeader(h)] {
			continue
		}
		col, ok := parseMeasurementHeader(h)
		if !ok {
			continue
		}
		key := strings.ToLower(col.Name) + "|" + strings.ToLower(col.Unit)
		if seen[key] {
			continue
		}
		seen[key] = true
		cols = append(cols, col)
	}
	return cols
}

// parseMeasurementHeader extracts name, unit and the required flag from a
// header like "Chest (in)*" or "Sleeve Length".
func parseMeasurementHeader(header string) (MeasurementColumn, bool) {
	h := strings.ReplaceAll(header, "\u00a0", " ")
	h = strings.Join(strings.Fields(h), " ")

	var col MeasurementColumn
	if strings.HasSuffix(h, "*") {
		col.Required = true
		h = strings.TrimSpace(strings.TrimSuffix(h, "*"))
	}

	if strings.HasSuffix(h, ")") {
		if open := strings.LastIndex(h, "("); open > 0 {
			col.Unit = strings.TrimSpace(h[open+1 : len(h)-1])
			h = strings.TrimSpace(h[:open])
		}
	}
	if h == "" {
		return MeasurementColumn{}, false
	}
	col.Name = h

	if col.Unit != "" {
		return col, true
	}
	lower := strings.ToLower(h)
	if knownMeasurements[lower] || strings.Contains(lower, "garment length") || strings.Contains(lower, "garment-length") {
		return col, true
	}
	return MeasurementColumn{}, false
}

// BuildSizeTable aggregates measurement values per distinct size token. For
// each size it locates the first row carrying that token and reads every
// measurement column from it; the resulting table is shared by all variants
// of the product. Explicitly detected columns take precedence over the
// catalog's declared measurements.
func BuildSizeTable(rows []map[string]string, field *models.FieldDefinition, detected []MeasurementColumn) map[string]map[string]string {
	cols := detected
	if len(cols) == 0 && field != nil {
		for _, m := range field.Measurements {
			cols = append(cols, MeasurementColumn{Name: m.Name, Unit: m.Unit, Required: m.Required})
		}
	}

	table := make(map[string]map[string]string)
	if len(cols) == 0 {
		return table
	}

	for _, row := range rows {
		size, ok := ResolveCell(row, sizeHeaders...)
		if !ok {
			continue
		}
		if _, done := table[size]; done {
			continue
		}
		values := make(map[string]string, len(cols))
		for _, col := range cols {
			values[col.Name] = measurementValue(row, col)
		}
		table[size] = values
	}
	return table
}

// measurementValue reads one measurement cell, trying the unit-suffixed
// forms, the bare name, and unit case variants; first non-empty hit wins.
func measurementValue(row map[string]string, col MeasurementColumn) string {
	var keys []string
	units := []string{col.Unit}
	if col.Unit != "" {
		units = append(units, strings.ToLower(col.Unit), strings.ToUpper(col.Unit))
	}
	for _, u := range units {
		if u == "" {
			continue
		}
		base := fmt.Sprintf("%s (%s)", col.Name, u)
		keys = append(keys, base+"*", base)
	}
	keys = append(keys, col.Name+"*", col.Name)

	for _, k := range keys {
		if v := strings.TrimSpace(row[k]); v != "" {
			return v
		}
	}
	if v, ok := ResolveCell(row, keys...); ok {
		return v
	}
	return ""
}
