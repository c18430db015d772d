package importer

import "catalog-import-service/internal/models"

// coreColumn is one fixed commerce column of the import vocabulary. The
// template generator and the row parser share this table so that every
// emitted header resolves back through the header matcher.
type coreColumn struct {
	Header     string
	Required   bool
	UpdateOnly bool
	Example    string
}

// coreColumns is the canonical header list, in template order. Every header
// is also accepted without its required marker.
var coreColumns = []coreColumn{
	{Header: "Product Name", Required: true, Example: "Classic Crew Neck T-Shirt"},
	{Header: "Product Category Id", Required: true, Example: "142"},
	{Header: "Product Description", Example: "100% combed cotton, regular fit"},
	{Header: "Product Brand", Example: "Aurelia"},
	{Header: "Product Tags", Example: "tshirt, cotton, summer"},
	{Header: "Variant Title", Required: true, Example: "M Blue"},
	{Header: "Variant SKU", Required: true, UpdateOnly: true, Example: "TSH-BLU-M-001"},
	{Header: "Variant Buying Price", Required: true, Example: "250.00"},
	{Header: "Variant MRP", Required: true, Example: "499.00"},
	{Header: "Variant Selling Price", Required: true, Example: "399.00"},
	{Header: "Is Published", Required: true, Example: "Published"},
	{Header: "Is Visible", Required: true, Example: "Online"},
	{Header: "B2B Enabled", Required: true, Example: "false"},
	{Header: "P2P Enabled", Required: true, Example: "false"},
	{Header: "Is Active", UpdateOnly: true, Example: "true"},
	{Header: "EAN number", Required: true, Example: "8901234567890"},
	{Header: "RAN number", Example: ""},
	{Header: "Variant Hsn Code", Example: "61091000"},
	{Header: "Variant Tax %", Required: true, Example: "5"},
	{Header: "Variant CGST %", Required: true, Example: "2.5"},
	{Header: "Variant SGST %", Required: true, Example: "2.5"},
	{Header: "Variant IGST %", Required: true, Example: "5"},
	{Header: "Variant Cess %", Required: true, Example: "0"},
	{Header: "Variant Net Quantity", Example: "1"},
	{Header: "Is Pack", Example: "false"},
	{Header: "Pack Quantity", Example: ""},
	{Header: "Product Dimensions (L x W x H cm)", Example: "30 x 22 x 2"},
	{Header: "Package Dimensions (L x W x H cm)", Example: "32 x 24 x 4"},
	{Header: "Product Image 1 Url", Required: true, Example: "https://cdn.example.com/p/1.jpg"},
	{Header: "Product Image 2 Url", Example: ""},
	{Header: "Product Image 3 Url", Example: ""},
	{Header: "Product Image 4 Url", Example: ""},
}

// coreColumnsFor filters the vocabulary by import mode.
func coreColumnsFor(mode models.ImportMode) []coreColumn {
	if mode == models.ImportModeUpdate {
		return coreColumns
	}
	out := make([]coreColumn, 0, len(coreColumns))
	for _, c := range coreColumns {
		if !c.UpdateOnly {
			out = append(out, c)
		}
	}
	return out
}

// Documented synonym lists for the fixed commerce fields. The first entry is
// the canonical template header; the rest cover older template revisions
// still in circulation.
var (
	productNameHeaders = []string{"Product Name", "Name"}
	categoryIDHeaders  = []string{"Product Category Id", "Category Id", "Category"}
	descriptionHeaders = []string{"Product Description", "Description"}
	brandHeaders       = []string{"Product Brand", "Brand"}
	tagsHeaders        = []string{"Product Tags", "Tags"}

	variantTitleHeaders = []string{"Variant Title", "Title"}
	skuHeaders          = []string{"Variant SKU", "SKU"}
	buyingPriceHeaders  = []string{"Variant Buying Price", "Buying Price"}
	mrpHeaders          = []string{"Variant MRP", "MRP"}
	sellingPriceHeaders = []string{"Variant Selling Price", "Selling Price"}
	isPublishedHeaders  = []string{"Is Published", "Published"}
	isVisibleHeaders    = []string{"Is Visible", "Visible"}
	b2bHeaders          = []string{"B2B Enabled", "B2B"}
	p2pHeaders          = []string{"P2P Enabled", "P2P"}
	isActiveHeaders     = []string{"Is Active", "Active"}
	eanHeaders          = []string{"EAN number", "EAN"}
	ranHeaders          = []string{"RAN number", "RAN"}
	hsnHeaders          = []string{"Variant Hsn Code", "Hsn Code", "HSN"}
	taxHeaders          = []string{"Variant Tax %", "Tax %"}
	cgstHeaders         = []string{"Variant CGST %", "CGST %"}
	sgstHeaders         = []string{"Variant SGST %", "SGST %"}
	igstHeaders         = []string{"Variant IGST %", "IGST %"}
	cessHeaders         = []string{"Variant Cess %", "Cess %"}
	netQtyHeaders       = []string{"Variant Net Quantity", "Net Quantity", "Net Qty"}
	isPackHeaders       = []string{"Is Pack", "Pack"}
	packQtyHeaders      = []string{"Pack Quantity", "Pack Qty"}
	productDimsHeaders  = []string{"Product Dimensions (L x W x H cm)", "Product Dimensions"}
	packageDimsHeaders  = []string{"Package Dimensions (L x W x H cm)", "Package Dimensions"}

	imageHeaders = [4][]string{
		{"Product Image 1 Url", "Image 1 Url", "Image 1"},
		{"Product Image 2 Url", "Image 2 Url", "Image 2"},
		{"Product Image 3 Url", "Image 3 Url", "Image 3"},
		{"Product Image 4 Url", "Image 4 Url", "Image 4"},
	}

	// sizeHeaders are the aliases checked when scanning rows for distinct
	// size tokens during size-chart processing.
	sizeHeaders = []string{"Size", "Variant Size", "size"}
)
