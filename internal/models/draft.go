package models

// DraftRecord is the typed form of one spreadsheet row. It is created once
// during parsing and never mutated afterwards; re-parsing the same row must
// yield an identical record. All canonical fields are always present (zero
// values when the cell was blank) so downstream stages stay total.
type DraftRecord struct {
	RowNum int               `json:"row"`
	Row    map[string]string `json:"-"`

	// Product-level commerce fields.
	ProductName string `json:"productName"`
	CategoryID  string `json:"categoryId"`
	Description string `json:"description"`
	Brand       string `json:"brand"`
	Tags        string `json:"tags"`

	// Variant-level commerce fields.
	VariantTitle string  `json:"variantTitle"`
	SKU          string  `json:"sku"`
	BuyingPrice  float64 `json:"buyingPrice"`
	MRP          float64 `json:"mrp"`
	SellingPrice float64 `json:"sellingPrice"`
	IsPublished  string  `json:"isPublished"`
	IsVisible    string  `json:"isVisible"`
	B2BEnabled   string  `json:"b2bEnabled"`
	P2PEnabled   string  `json:"p2pEnabled"`
	IsActive     string  `json:"isActive"`
	EAN          string  `json:"ean"`
	RAN          string  `json:"ran"`
	HSNCode      string  `json:"hsnCode"`
	TaxRate      string  `json:"taxRate"`
	CGST         string  `json:"cgst"`
	SGST         string  `json:"sgst"`
	IGST         string  `json:"igst"`
	Cess         string  `json:"cess"`
	NetQty       string  `json:"netQty"`
	IsPack       string  `json:"isPack"`
	PackQty      string  `json:"packQty"`
	ProductDims  string  `json:"productDimensions"`
	PackageDims  string  `json:"packageDimensions"`
	ImageURLs    [4]string `json:"imageUrls"`

	// Field-catalog values keyed by display name; size-chart measurements
	// are keyed "Name (Unit)" with a trailing asterisk when required.
	FieldValues map[string]string `json:"fieldValues"`

	// Errors and Remediations are parallel: Remediations[i] is the
	// suggested fix for Errors[i].
	Errors       []string `json:"errors"`
	Remediations []string `json:"remediations"`
	Valid        bool     `json:"valid"`
}

// Images returns the non-empty image URLs in slot order. The first entry is
// implicitly the primary image.
func (d *DraftRecord) Images() []string {
	out := make([]string, 0, len(d.ImageURLs))
	for _, u := range d.ImageURLs {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}
