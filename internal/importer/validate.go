package importer

import (
	"fmt"
	"strings"

	"catalog-import-service/internal/models"
)

// remediations maps error text (by substring, first match wins) to a human
// fix suggestion. Order matters: more specific substrings come first.
var remediations = []struct {
	match string
	fix   string
}{
	{"Product Name", "Enter the product name in the Product Name column."},
	{"Variant Title", "Enter a variant title such as \"M Blue\"."},
	{"Variant SKU", "Update mode needs the existing variant SKU to locate the record."},
	{"EAN number or RAN", "Provide the 8 or 13 digit EAN barcode, or a RAN number if the item has no barcode."},
	{"Hsn Code", "Variants identified only by RAN need an HSN code for tax classification."},
	{"CGST", "Enter the CGST rate as a plain number, e.g. 2.5."},
	{"SGST", "Enter the SGST rate as a plain number, e.g. 2.5."},
	{"IGST", "Enter the IGST rate as a plain number, e.g. 5."},
	{"Cess", "Enter the Cess rate as a plain number, or 0 if none applies."},
	{"Buying Price", "Enter a buying price greater than zero, without currency symbols."},
	{"MRP", "Enter the maximum retail price as a number greater than zero."},
	{"Is Published", "Use Published or Unpublished in the Is Published column."},
	{"Is Visible", "Use Online, Offline or Both in the Is Visible column."},
	{"B2B Enabled", "Use true or false in the B2B Enabled column."},
	{"P2P Enabled", "Use true or false in the P2P Enabled column."},
	{"Image", "Paste at least one image URL into the Product Image columns."},
	{"at least", "Provide the minimum number of comma-separated values for this column."},
}

const genericRemediation = "Fill in the highlighted column and re-upload the file."

func remediationFor(errText string) string {
	for _, r := range remediations {
		if strings.Contains(errText, r.match) {
			return r.fix
		}
	}
	return genericRemediation
}

// Validate applies the fixed core rules followed by the field-catalog rules,
// in a stable order, and returns the error list with its parallel
// remediation list. A draft is valid iff the error list is empty.
func Validate(d *models.DraftRecord, catalog *models.FieldCatalog, mode models.ImportMode) (errs []string, fixes []string) {
	add := func(msg string) {
		errs = append(errs, msg)
		fixes = append(fixes, remediationFor(msg))
	}

	if d.ProductName == "" {
		add("Product Name is required")
	}
	if d.VariantTitle == "" {
		add("Variant Title is required")
	}
	if mode == models.ImportModeUpdate && d.SKU == "" {
		add("Variant SKU is required")
	}
	if d.EAN == "" && d.RAN == "" {
		add("Either EAN number or RAN number is required")
	}
	if d.EAN == "" && d.RAN != "" {
		if d.HSNCode == "" {
			add("Variant Hsn Code is required when only a RAN number is provided")
		}
		if d.CGST == "" {
			add("Variant CGST % is required when only a RAN number is provided")
		}
		if d.SGST == "" {
			add("Variant SGST % is required when only a RAN number is provided")
		}
		if d.IGST == "" {
			add("Variant IGST % is required when only a RAN number is provided")
		}
		if d.Cess == "" {
			add("Variant Cess % is required when only a RAN number is provided")
		}
	}
	if d.BuyingPrice <= 0 {
		add("Variant Buying Price must be greater than 0")
	}
	if d.MRP <= 0 {
		add("Variant MRP must be greater than 0")
	}
	if d.IsPublished == "" {
		add("Is Published is required")
	}
	if d.IsVisible != "0" && d.IsVisible != "1" && d.IsVisible != "2" {
		add("Is Visible must be Online, Offline or Both")
	}
	if d.B2BEnabled == "" {
		add("B2B Enabled is required")
	}
	if d.P2PEnabled == "" {
		add("P2P Enabled is required")
	}
	if len(d.Images()) == 0 {
		add("At least one Product Image Url is required")
	}

	for _, f := range catalog.Required {
		validateRequiredField(d, f, add)
	}

	return errs, fixes
}

func validateRequiredField(d *models.DraftRecord, f models.FieldDefinition, add func(string)) {
	value := strings.TrimSpace(d.FieldValues[f.Header()])

	switch f.Kind {
	case models.FieldKindText, models.FieldKindSelect, models.FieldKindDate, models.FieldKindNumber:
		if value == "" {
			add(fmt.Sprintf("%s is required", f.Header()))
		}
	case models.FieldKindArray:
		items := splitList(value)
		if len(items) == 0 {
			add(fmt.Sprintf("%s is required", f.Header()))
		} else if f.MinItems > 0 && len(items) < f.MinItems {
			add(fmt.Sprintf("%s requires at least %d items", f.Header(), f.MinItems))
		}
	case models.FieldKindAttribute, models.FieldKindCustomField:
		if value == "" {
			add(fmt.Sprintf("%s is required", f.Header()))
		}
	case models.FieldKindSizeChart:
		for _, m := range f.Measurements {
			if !m.Required {
				continue
			}
			v := strings.TrimSpace(d.FieldValues[MeasurementKey(m)])
			if v == "" {
				// The resolved key may be absent when the file used a
				// drifted header; fall back to the raw row.
				v, _ = ResolveCell(d.Row, measurementCandidates(m)...)
			}
			if v == "" {
				label := m.Name
				if m.Unit != "" {
					label = fmt.Sprintf("%s (%s)", m.Name, m.Unit)
				}
				add(fmt.Sprintf("%s is required", label))
			}
		}
	}
}

// splitList splits a comma-separated cell into trimmed, non-empty items.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
