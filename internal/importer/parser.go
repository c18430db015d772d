package importer

import (
	"strconv"
	"strings"

	"catalog-import-service/internal/models"
)

// ParseRow converts one raw row into a DraftRecord. Every canonical field is
// populated (possibly with its zero value) so downstream stages never need
// presence checks. Parsing never fails; malformed numerics normalize to 0
// and validation flags them afterwards.
func ParseRow(row map[string]string, catalog *models.FieldCatalog, mode models.ImportMode, rowNum int) *models.DraftRecord {
	d := &models.DraftRecord{
		RowNum:      rowNum,
		Row:         row,
		FieldValues: make(map[string]string),
	}

	d.ProductName = cell(row, productNameHeaders)
	d.CategoryID = cell(row, categoryIDHeaders)
	d.Description = cell(row, descriptionHeaders)
	d.Brand = cell(row, brandHeaders)
	d.Tags = cell(row, tagsHeaders)

	d.VariantTitle = cell(row, variantTitleHeaders)
	d.SKU = cell(row, skuHeaders)
	d.BuyingPrice = parseAmount(cell(row, buyingPriceHeaders))
	d.MRP = parseAmount(cell(row, mrpHeaders))
	d.SellingPrice = parseAmount(cell(row, sellingPriceHeaders))
	d.IsPublished = cell(row, isPublishedHeaders)
	d.IsVisible = normalizeVisibility(cell(row, isVisibleHeaders))
	d.B2BEnabled = cell(row, b2bHeaders)
	d.P2PEnabled = cell(row, p2pHeaders)
	d.IsActive = cell(row, isActiveHeaders)
	d.EAN = normalizeEAN(cell(row, eanHeaders))
	d.RAN = cell(row, ranHeaders)
	d.HSNCode = cell(row, hsnHeaders)
	d.TaxRate = cell(row, taxHeaders)
	d.CGST = cell(row, cgstHeaders)
	d.SGST = cell(row, sgstHeaders)
	d.IGST = cell(row, igstHeaders)
	d.Cess = cell(row, cessHeaders)
	d.NetQty = cell(row, netQtyHeaders)
	d.IsPack = cell(row, isPackHeaders)
	d.PackQty = cell(row, packQtyHeaders)
	d.ProductDims = cell(row, productDimsHeaders)
	d.PackageDims = cell(row, packageDimsHeaders)
	for i := range imageHeaders {
		d.ImageURLs[i] = cell(row, imageHeaders[i])
	}

	for _, f := range catalog.Fields() {
		switch f.Kind {
		case models.FieldKindSizeChart:
			// Each measurement resolves independently, keyed "Name (Unit)"
			// with the required marker preserved.
			for _, m := range f.Measurements {
				v, _ := ResolveCell(row, measurementCandidates(m)...)
				d.FieldValues[MeasurementKey(m)] = v
			}
		default:
			v, _ := ResolveCell(row, f.Synonyms()...)
			d.FieldValues[f.Header()] = v
		}
	}

	return d
}

func cell(row map[string]string, candidates []string) string {
	v, _ := ResolveCell(row, candidates...)
	return v
}

// parseAmount normalizes a currency-like string: currency symbols and
// thousands separators are stripped before parsing. Unparseable input
// yields 0 rather than an error.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '₹', '$', '€', '£', ',', ' ', '\u00a0':
		default:
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

// normalizeEAN protects long digit strings against spreadsheet
// scientific-notation corruption: numeric cells are re-rendered as
// fixed-point integer strings, anything else has its non-digits stripped.
func normalizeEAN(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeVisibility maps source labels to the canonical {0, 1, 2} set:
// Online→1, Offline→0, Both→2, matched as substrings in that priority
// order. Unrecognized input is passed through raw for validation to reject.
func normalizeVisibility(s string) string {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)
	switch {
	case strings.Contains(lower, "online"):
		return "1"
	case strings.Contains(lower, "offline"):
		return "0"
	case strings.Contains(lower, "both"):
		return "2"
	}
	switch trimmed {
	case "0", "1", "2":
		return trimmed
	}
	return trimmed
}
