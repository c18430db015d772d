package importer

import (
	"fmt"
	"sort"
	"strings"

	"catalog-import-service/internal/models"
)

// Lead columns the importer itself populates when a validated file is handed
// back to the user.
var leadColumns = []models.TemplateColumn{
	{Header: "Error"},
	{Header: "Solution"},
}

// GenerateTemplate produces the template columns for a category and mode:
// the Error/Solution lead columns, the mode-specific core commerce headers,
// then every catalog field's display header with size-chart fields expanded
// into one column per measurement ordered by rank. Catalog headers that
// collide case-insensitively with a core header are skipped. Required
// headers carry a " *" suffix for human visibility; the suffix never
// changes positional indices since the header matcher strips it.
func GenerateTemplate(catalog *models.FieldCatalog, mode models.ImportMode) []models.TemplateColumn {
	cols := make([]models.TemplateColumn, 0, len(leadColumns)+len(coreColumns)+len(catalog.Required)+len(catalog.Optional))
	cols = append(cols, leadColumns...)

	used := make(map[string]bool)
	for _, c := range coreColumnsFor(mode) {
		used[NormalizeHeader(c.Header)] = true
		cols = append(cols, models.TemplateColumn{
			Header:   markRequired(c.Header, c.Required),
			Required: c.Required,
			Example:  c.Example,
		})
	}

	for _, f := range catalog.Fields() {
		if f.Kind == models.FieldKindSizeChart {
			ms := append([]models.Measurement(nil), f.Measurements...)
			sort.SliceStable(ms, func(i, j int) bool { return ms[i].Rank < ms[j].Rank })
			for _, m := range ms {
				header := m.Name
				if m.Unit != "" {
					header = fmt.Sprintf("%s (%s)", m.Name, m.Unit)
				}
				if used[NormalizeHeader(header)] {
					continue
				}
				used[NormalizeHeader(header)] = true
				cols = append(cols, models.TemplateColumn{
					Header:   markRequired(header, m.Required),
					Required: m.Required,
					Example:  measurementExample(m.Unit),
				})
			}
			continue
		}

		header := f.Header()
		if used[NormalizeHeader(header)] {
			continue
		}
		used[NormalizeHeader(header)] = true
		cols = append(cols, models.TemplateColumn{
			Header:   markRequired(header, f.Required),
			Required: f.Required,
			Options:  f.Options,
			Example:  fieldExample(f),
		})
	}

	return cols
}

// TemplateHeaders extracts the header row from generated columns.
func TemplateHeaders(cols []models.TemplateColumn) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header
	}
	return out
}

// TemplateExampleRow extracts the example row from generated columns.
func TemplateExampleRow(cols []models.TemplateColumn) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Example
	}
	return out
}

func markRequired(header string, required bool) string {
	if required {
		return header + " *"
	}
	return header
}

func fieldExample(f models.FieldDefinition) string {
	switch f.Kind {
	case models.FieldKindText:
		return "Sample text"
	case models.FieldKindNumber:
		return "10"
	case models.FieldKindDate:
		return "2024-01-01"
	case models.FieldKindArray:
		return "value 1, value 2"
	case models.FieldKindSelect, models.FieldKindAttribute:
		if len(f.Options) > 0 {
			return f.Options[0]
		}
		return "Option 1"
	case models.FieldKindCustomField:
		return "Sample value"
	}
	return ""
}

func measurementExample(unit string) string {
	switch strings.ToLower(unit) {
	case "in", "inch", "inches":
		return "38"
	case "cm":
		return "96"
	case "m":
		return "1"
	}
	return "10"
}
