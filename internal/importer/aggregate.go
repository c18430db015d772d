package importer

import (
	"strconv"
	"strings"

	"github.com/gosimple/slug"

	"catalog-import-service/internal/models"
)

// Aggregate groups valid draft records by exact product name into Product
// aggregates, each owning one Variant per record. Records that carry no
// image are counted and dropped rather than reported as errors; the second
// return value is that dropped-variant count. Invalid drafts are skipped
// entirely.
func Aggregate(drafts []*models.DraftRecord, catalog *models.FieldCatalog, categoryOverride string, detected []MeasurementColumn) ([]*models.Product, int) {
	type group struct {
		product *models.Product
		drafts  []*models.DraftRecord
	}

	var order []string
	groups := make(map[string]*group)
	dropped := 0

	for _, d := range drafts {
		if !d.Valid {
			continue
		}
		name := strings.TrimSpace(d.ProductName)
		g, ok := groups[name]
		if !ok {
			category := categoryOverride
			if category == "" {
				category = d.CategoryID
			}
			g = &group{product: &models.Product{
				Name:        name,
				Description: d.Description,
				IsActive:    true,
				IsPublished: d.IsPublished,
				IsVisible:   d.IsVisible,
				Brand:       d.Brand,
				Category:    category,
				Tags:        splitList(d.Tags),
				Variants:    []*models.Variant{},
			}}
			if g.product.Tags == nil {
				g.product.Tags = []string{}
			}
			groups[name] = g
			order = append(order, name)
		}
		g.drafts = append(g.drafts, d)

		v, ok := buildVariant(d, catalog)
		if !ok {
			dropped++
			continue
		}
		g.product.Variants = append(g.product.Variants, v)
	}

	products := make([]*models.Product, 0, len(order))
	for _, name := range order {
		g := groups[name]
		attachSizeCharts(g.product, g.drafts, catalog, detected)
		products = append(products, g.product)
	}
	return products, dropped
}

// buildVariant maps one draft record to a Variant. Returns false when the
// record owns no image; such variants are excluded from their product.
func buildVariant(d *models.DraftRecord, catalog *models.FieldCatalog) (*models.Variant, bool) {
	images := d.Images()
	if len(images) == 0 {
		return nil, false
	}

	v := &models.Variant{
		Name:            d.VariantTitle,
		Slug:            slug.Make(d.VariantTitle),
		SKU:             d.SKU,
		Description:     d.Description,
		BasePrice:       d.BuyingPrice,
		MRP:             d.MRP,
		SellingPrice:    d.SellingPrice,
		Margin:          d.SellingPrice - d.BuyingPrice,
		EANNumber:       optionalString(d.EAN),
		RANNumber:       optionalString(d.RAN),
		HSNCode:         d.HSNCode,
		TaxRate:         d.TaxRate,
		CGST:            d.CGST,
		SGST:            d.SGST,
		IGST:            d.IGST,
		Cess:            d.Cess,
		NetQty:          d.NetQty,
		IsPack:          parseFlag(d.IsPack),
		PackQty:         parseCount(d.PackQty),
		ProductDims:     parseDimensions(d.ProductDims),
		PackageDims:     parseDimensions(d.PackageDims),
		IsActive:        d.IsActive == "" || parseFlag(d.IsActive),
		Images:          images,
		Attributes:      []models.VariantAttribute{},
		CustomFields:    []models.CustomFieldValue{},
		SizeChartValues: []models.SizeChartValue{},
	}

	props := make(map[string]interface{})
	for _, f := range catalog.Fields() {
		value := strings.TrimSpace(d.FieldValues[f.Header()])
		switch f.Kind {
		case models.FieldKindCustomField:
			if value == "" {
				continue
			}
			if f.CustomFieldID != "" {
				v.CustomFields = append(v.CustomFields, models.CustomFieldValue{
					CustomFieldID: f.CustomFieldID,
					Value:         value,
				})
			}
			props[f.Name] = value
		case models.FieldKindAttribute:
			if value == "" {
				continue
			}
			v.Attributes = append(v.Attributes, models.VariantAttribute{
				AttributeID: f.AttributeID,
				Name:        f.AttributeName,
				Value:       value,
			})
			switch strings.ToLower(f.AttributeName) {
			case "size":
				v.Size = value
			case "color", "colour":
				v.Color = value
			}
		case models.FieldKindArray:
			if value == "" {
				continue
			}
			props[f.Name] = splitList(value)
		case models.FieldKindSizeChart:
			// Deferred to the per-product measurement table.
		default:
			if value != "" {
				props[f.Name] = value
			}
		}
	}
	if len(props) > 0 {
		v.Properties = props
	}

	// Heuristic fallback: infer size and color from the variant title when
	// no attribute resolved them. Wrong for some multi-word titles, but it
	// only runs when the schema gave us nothing better.
	if v.Size == "" || v.Color == "" {
		tokens := strings.Fields(d.VariantTitle)
		if len(tokens) > 0 {
			if v.Size == "" {
				v.Size = tokens[0]
			}
			if v.Color == "" {
				v.Color = tokens[len(tokens)-1]
			}
		}
	}

	return v, true
}

// attachSizeCharts builds the per-product size table once and attaches it to
// every variant of the product, ordered by first appearance of each size.
func attachSizeCharts(p *models.Product, drafts []*models.DraftRecord, catalog *models.FieldCatalog, detected []MeasurementColumn) {
	rows := make([]map[string]string, 0, len(drafts))
	for _, d := range drafts {
		rows = append(rows, d.Row)
	}

	table := BuildSizeTable(rows, catalog.SizeChartField(), detected)
	if len(table) == 0 {
		return
	}

	var entries []models.SizeChartValue
	seen := make(map[string]bool)
	for _, row := range rows {
		size, ok := ResolveCell(row, sizeHeaders...)
		if !ok || seen[size] {
			continue
		}
		seen[size] = true
		if values, ok := table[size]; ok {
			entries = append(entries, models.SizeChartValue{Size: size, Values: values})
		}
	}

	for _, v := range p.Variants {
		v.SizeChartValues = entries
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "y":
		return true
	}
	return false
}

func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// parseDimensions splits an "L x W x H" cell into its parts. Anything that
// does not yield exactly three parts maps to nil.
func parseDimensions(s string) *models.Dimensions {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	normalized := strings.NewReplacer("X", "x", "*", "x").Replace(s)
	parts := strings.Split(normalized, "x")
	if len(parts) != 3 {
		return nil
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil
		}
	}
	return &models.Dimensions{
		Length: parts[0],
		Width:  parts[1],
		Height: parts[2],
		Unit:   "cm",
	}
}
