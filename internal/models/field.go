package models

// FieldKind discriminates the dynamic field definitions a category schema
// can declare. Dispatch over this tag must stay exhaustive: every consumer
// switches over all eight kinds.
type FieldKind string

const (
	FieldKindText        FieldKind = "text"
	FieldKindSelect      FieldKind = "select"
	FieldKindDate        FieldKind = "date"
	FieldKindNumber      FieldKind = "number"
	FieldKindArray       FieldKind = "array"
	FieldKindAttribute   FieldKind = "attribute"
	FieldKindCustomField FieldKind = "custom_field"
	FieldKindSizeChart   FieldKind = "size_chart"
)

// Measurement is a single named, ranked, unit-bearing size-chart entry
// (e.g. chest in inches). Values are captured once per distinct size token.
type Measurement struct {
	Name     string `json:"name"`
	Unit     string `json:"unit"`
	Required bool   `json:"required"`
	Rank     int    `json:"rank"`
}

// FieldDefinition describes one dynamic column the category schema expects.
// Name is the raw schema field name; DisplayName is what the spreadsheet
// header shows. AttributeID/AttributeName are set for attribute kind,
// CustomFieldID for custom_field kind, Measurements for size_chart kind.
type FieldDefinition struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Label         string        `json:"label,omitempty"`
	DisplayName   string        `json:"displayName"`
	Kind          FieldKind     `json:"kind"`
	Required      bool          `json:"required"`
	MinItems      int           `json:"minItems,omitempty"`
	AttributeID   string        `json:"attributeId,omitempty"`
	AttributeName string        `json:"attributeName,omitempty"`
	Options       []string      `json:"options,omitempty"`
	CustomFieldID string        `json:"customFieldId,omitempty"`
	Measurements  []Measurement `json:"measurements,omitempty"`
}

// Header returns the spreadsheet-facing name for the field, preferring the
// display name the way distributed templates do.
func (f *FieldDefinition) Header() string {
	if f.DisplayName != "" {
		return f.DisplayName
	}
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Synonyms returns the candidate header names for the field, in the order
// the header matcher must try them: display name, raw field name, attribute
// name, field label.
func (f *FieldDefinition) Synonyms() []string {
	return []string{f.DisplayName, f.Name, f.AttributeName, f.Label}
}

// FieldCatalog is the category-specific set of required and optional field
// definitions. It is immutable for the lifetime of one category selection;
// a new selection produces a new catalog.
type FieldCatalog struct {
	CategoryID string            `json:"categoryId"`
	Required   []FieldDefinition `json:"required"`
	Optional   []FieldDefinition `json:"optional"`
}

// EmptyFieldCatalog is the degraded-mode catalog used when the schema fetch
// fails or times out: core validation rules still apply, dynamic rules do not.
func EmptyFieldCatalog(categoryID string) *FieldCatalog {
	return &FieldCatalog{CategoryID: categoryID}
}

// Fields returns all definitions in catalog order, required first.
func (c *FieldCatalog) Fields() []FieldDefinition {
	out := make([]FieldDefinition, 0, len(c.Required)+len(c.Optional))
	out = append(out, c.Required...)
	out = append(out, c.Optional...)
	return out
}

// IsEmpty reports whether the catalog carries no dynamic fields.
func (c *FieldCatalog) IsEmpty() bool {
	return len(c.Required) == 0 && len(c.Optional) == 0
}

// SizeChartField returns the first size_chart field in the catalog, or nil.
func (c *FieldCatalog) SizeChartField() *FieldDefinition {
	for i := range c.Required {
		if c.Required[i].Kind == FieldKindSizeChart {
			return &c.Required[i]
		}
	}
	for i := range c.Optional {
		if c.Optional[i].Kind == FieldKindSizeChart {
			return &c.Optional[i]
		}
	}
	return nil
}
