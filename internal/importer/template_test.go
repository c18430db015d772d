package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog-import-service/internal/models"
)

func apparelCatalog() *models.FieldCatalog {
	return &models.FieldCatalog{
		CategoryID: "201",
		Required: []models.FieldDefinition{
			{Name: "fabric", DisplayName: "Fabric", Kind: models.FieldKindText, Required: true},
			{
				Name: "size_chart",
				Kind: models.FieldKindSizeChart,
				Measurements: []models.Measurement{
					{Name: "Sleeve", Unit: "in", Rank: 2},
					{Name: "Chest", Unit: "in", Required: true, Rank: 1},
				},
			},
		},
		Optional: []models.FieldDefinition{
			{Name: "fit", DisplayName: "Fit", Kind: models.FieldKindSelect, Options: []string{"Regular", "Slim"}},
		},
	}
}

func TestGenerateTemplate_LeadColumnsFirst(t *testing.T) {
	cols := GenerateTemplate(models.EmptyFieldCatalog("142"), models.ImportModeInsert)

	assert.Equal(t, "Error", cols[0].Header)
	assert.Equal(t, "Solution", cols[1].Header)
}

func TestGenerateTemplate_InsertModeOmitsUpdateColumns(t *testing.T) {
	cols := GenerateTemplate(models.EmptyFieldCatalog("142"), models.ImportModeInsert)

	headers := TemplateHeaders(cols)
	assert.NotContains(t, headers, "Variant SKU *")
	assert.NotContains(t, headers, "Is Active")
}

func TestGenerateTemplate_UpdateModeIncludesSKU(t *testing.T) {
	cols := GenerateTemplate(models.EmptyFieldCatalog("142"), models.ImportModeUpdate)

	headers := TemplateHeaders(cols)
	assert.Contains(t, headers, "Variant SKU *")
	assert.Contains(t, headers, "Is Active")
}

func TestGenerateTemplate_RequiredMarker(t *testing.T) {
	cols := GenerateTemplate(models.EmptyFieldCatalog("142"), models.ImportModeInsert)

	headers := TemplateHeaders(cols)
	assert.Contains(t, headers, "Product Name *")
	assert.Contains(t, headers, "RAN number")
}

func TestGenerateTemplate_SizeChartExpandedByRank(t *testing.T) {
	cols := GenerateTemplate(apparelCatalog(), models.ImportModeInsert)

	headers := TemplateHeaders(cols)
	chestIdx, sleeveIdx := -1, -1
	for i, h := range headers {
		switch h {
		case "Chest (in) *":
			chestIdx = i
		case "Sleeve (in)":
			sleeveIdx = i
		}
	}
	assert.NotEqual(t, -1, chestIdx)
	assert.NotEqual(t, -1, sleeveIdx)
	assert.Less(t, chestIdx, sleeveIdx)
}

func TestGenerateTemplate_SkipsCoreCollisions(t *testing.T) {
	catalog := &models.FieldCatalog{
		CategoryID: "142",
		Optional: []models.FieldDefinition{
			{Name: "product_name", DisplayName: "product name", Kind: models.FieldKindText},
			{Name: "fabric", DisplayName: "Fabric", Kind: models.FieldKindText},
		},
	}

	cols := GenerateTemplate(catalog, models.ImportModeInsert)

	count := 0
	for _, h := range TemplateHeaders(cols) {
		if NormalizeHeader(h) == "product name" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Contains(t, TemplateHeaders(cols), "Fabric")
}

func TestGenerateTemplate_SelectOptionsAndExamples(t *testing.T) {
	cols := GenerateTemplate(apparelCatalog(), models.ImportModeInsert)

	var fit models.TemplateColumn
	for _, c := range cols {
		if c.Header == "Fit" {
			fit = c
		}
	}
	assert.Equal(t, []string{"Regular", "Slim"}, fit.Options)
	assert.Equal(t, "Regular", fit.Example)
}

func TestGenerateTemplate_RoundTripsThroughHeaderMatcher(t *testing.T) {
	// Every emitted header must resolve a cell keyed by that exact header.
	for _, mode := range []models.ImportMode{models.ImportModeInsert, models.ImportModeUpdate} {
		cols := GenerateTemplate(apparelCatalog(), mode)
		for _, col := range cols[len(leadColumns):] {
			row := map[string]string{col.Header: "value"}

			v, ok := ResolveCell(row, col.Header)

			assert.True(t, ok, "header %q (mode %s) did not resolve", col.Header, mode)
			assert.Equal(t, "value", v)
		}
	}
}

func TestTemplateExampleRow_AlignsWithHeaders(t *testing.T) {
	cols := GenerateTemplate(apparelCatalog(), models.ImportModeInsert)

	headers := TemplateHeaders(cols)
	examples := TemplateExampleRow(cols)

	assert.Equal(t, len(headers), len(examples))
}

func TestMeasurementExample(t *testing.T) {
	assert.Equal(t, "38", measurementExample("in"))
	assert.Equal(t, "96", measurementExample("cm"))
	assert.Equal(t, "10", measurementExample("kg"))
}
