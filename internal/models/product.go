package models

// Product is the aggregate handed to the bulk submission service. It is a
// derived, non-persistent view built fresh per upload attempt from the
// currently valid draft records.
type Product struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsActive    bool       `json:"is_active"`
	IsPublished string     `json:"is_published"`
	IsVisible   string     `json:"is_visible"`
	Brand       string     `json:"brand"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	Variants    []*Variant `json:"variants"`
}

// Variant is one sellable unit of a Product. Either EANNumber or RANNumber
// is non-nil for every variant that survives validation; a variant without
// at least one image never reaches this type.
type Variant struct {
	Name            string                 `json:"name"`
	Slug            string                 `json:"slug"`
	SKU             string                 `json:"sku"`
	Description     string                 `json:"description"`
	BasePrice       float64                `json:"base_price"`
	MRP             float64                `json:"mrp"`
	SellingPrice    float64                `json:"selling_price"`
	Margin          float64                `json:"margin"`
	EANNumber       *string                `json:"ean_number"`
	RANNumber       *string                `json:"ran_number"`
	HSNCode         string                 `json:"hsn_code"`
	TaxRate         string                 `json:"tax_rate"`
	CGST            string                 `json:"cgst"`
	SGST            string                 `json:"sgst"`
	IGST            string                 `json:"igst"`
	Cess            string                 `json:"cess"`
	NetQty          string                 `json:"net_qty"`
	IsPack          bool                   `json:"is_pack"`
	PackQty         int                    `json:"pack_qty"`
	ProductDims     *Dimensions            `json:"product_dimensions"`
	PackageDims     *Dimensions            `json:"package_dimensions"`
	IsActive        bool                   `json:"is_active"`
	Size            string                 `json:"size,omitempty"`
	Color           string                 `json:"color,omitempty"`
	Images          []string               `json:"images"`
	Attributes      []VariantAttribute     `json:"attributes"`
	CustomFields    []CustomFieldValue     `json:"custom_fields"`
	SizeChartValues []SizeChartValue       `json:"size_chart_values"`
	Properties      map[string]interface{} `json:"properties,omitempty"`
}

// VariantAttribute is a resolved attribute id/value pair.
type VariantAttribute struct {
	AttributeID string `json:"attribute_id"`
	Name        string `json:"name"`
	Value       string `json:"value"`
}

// CustomFieldValue is a resolved custom-field id/value pair.
type CustomFieldValue struct {
	CustomFieldID string `json:"custom_field_id"`
	Value         string `json:"value"`
}

// SizeChartValue holds the measurement values captured for one size token.
type SizeChartValue struct {
	Size   string            `json:"size"`
	Values map[string]string `json:"values"`
}

// Dimensions is a parsed L x W x H triple.
type Dimensions struct {
	Length string `json:"length"`
	Width  string `json:"width"`
	Height string `json:"height"`
	Unit   string `json:"unit"`
}
