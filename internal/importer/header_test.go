package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCell_ExactHeader(t *testing.T) {
	row := map[string]string{"Product Name": "Cola"}

	v, ok := ResolveCell(row, "Product Name")

	assert.True(t, ok)
	assert.Equal(t, "Cola", v)
}

func TestResolveCell_RequiredMarkerVariants(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"no space before asterisk", "Product Name*"},
		{"space before asterisk", "Product Name *"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := map[string]string{tt.key: "Cola"}

			v, ok := ResolveCell(row, "Product Name")

			assert.True(t, ok)
			assert.Equal(t, "Cola", v)
		})
	}
}

func TestResolveCell_CandidateCarriesMarker(t *testing.T) {
	row := map[string]string{"Product Name": "Cola"}

	v, ok := ResolveCell(row, "Product Name *")

	assert.True(t, ok)
	assert.Equal(t, "Cola", v)
}

func TestResolveCell_NormalizedScan(t *testing.T) {
	// NBSP between words plus casing drift, only reachable through the
	// normalized fallback scan.
	row := map[string]string{"product name *": "Cola"}

	v, ok := ResolveCell(row, "Product Name")

	assert.True(t, ok)
	assert.Equal(t, "Cola", v)
}

func TestResolveCell_SkipsEmptyCells(t *testing.T) {
	row := map[string]string{
		"Product Name":  "",
		"Product Name*": "Cola",
	}

	v, ok := ResolveCell(row, "Product Name")

	assert.True(t, ok)
	assert.Equal(t, "Cola", v)
}

func TestResolveCell_FirstCandidateWins(t *testing.T) {
	row := map[string]string{
		"Variant Hsn Code": "61091000",
		"HSN":              "99999999",
	}

	v, ok := ResolveCell(row, "Variant Hsn Code", "Hsn Code", "HSN")

	assert.True(t, ok)
	assert.Equal(t, "61091000", v)
}

func TestResolveCell_NoMatch(t *testing.T) {
	row := map[string]string{"Product Name": "Cola"}

	v, ok := ResolveCell(row, "Variant Title")

	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestResolveCell_TrimsValues(t *testing.T) {
	row := map[string]string{"Product Name": "  Cola  "}

	v, ok := ResolveCell(row, "Product Name")

	assert.True(t, ok)
	assert.Equal(t, "Cola", v)
}

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Product Name", "product name"},
		{"Product Name *", "product name"},
		{"Product  Name*", "product name"},
		{"product name", "product name"},
		{"  Chest (in) * ", "chest (in)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeHeader(tt.in), "input %q", tt.in)
	}
}
