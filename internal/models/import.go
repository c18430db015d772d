package models

// ImportMode selects between creating new products and updating existing
// ones. Update mode requires a variant SKU on every row.
type ImportMode string

const (
	ImportModeInsert ImportMode = "insert"
	ImportModeUpdate ImportMode = "update"
)

// ParseImportMode maps a form value to an ImportMode, defaulting to insert.
func ParseImportMode(s string) ImportMode {
	if s == string(ImportModeUpdate) {
		return ImportModeUpdate
	}
	return ImportModeInsert
}

// ImportFormat represents the intake file format.
type ImportFormat string

const (
	ImportFormatCSV  ImportFormat = "csv"
	ImportFormatXLSX ImportFormat = "xlsx"
)

// ImportRowError is one validation failure on one row, paired with its
// remediation suggestion.
type ImportRowError struct {
	Row         int    `json:"row"`
	Message     string `json:"message"`
	Remediation string `json:"remediation"`
}

// ImportResult is the response body for an import request.
type ImportResult struct {
	Success         bool              `json:"success"`
	TotalRows       int               `json:"totalRows"`
	ValidRows       int               `json:"validRows"`
	InvalidRows     int               `json:"invalidRows"`
	ProductCount    int               `json:"productCount"`
	VariantCount    int               `json:"variantCount"`
	DroppedVariants int               `json:"droppedVariants"`
	SchemaDegraded  bool              `json:"schemaDegraded,omitempty"`
	Errors          []ImportRowError  `json:"errors,omitempty"`
	Submission      *SubmissionResult `json:"submission,omitempty"`
	ProcessingMs    int64             `json:"processingMs"`
}

// SubmissionResult is the bulk submission service's outcome, propagated
// verbatim to the caller.
type SubmissionResult struct {
	CreatedCount     int                `json:"created_count"`
	UpdatedCount     int                `json:"updated_count"`
	FailedCount      int                `json:"failed_count"`
	EANRejectedCount int                `json:"ean_rejected_count"`
	Created          []SubmissionDetail `json:"created,omitempty"`
	Updated          []SubmissionDetail `json:"updated,omitempty"`
	Failed           []SubmissionDetail `json:"failed,omitempty"`
}

// SubmissionDetail identifies one product in a submission outcome list.
type SubmissionDetail struct {
	ExternalID string `json:"external_id,omitempty"`
	Name       string `json:"name"`
	Message    string `json:"message,omitempty"`
}

// TemplateColumn describes one header of a generated template.
type TemplateColumn struct {
	Header   string   `json:"header"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Example  string   `json:"example"`
}

// Template is the JSON form of a generated import template.
type Template struct {
	CategoryID string           `json:"categoryId"`
	Mode       ImportMode       `json:"mode"`
	Columns    []TemplateColumn `json:"columns"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Success bool  `json:"success"`
	Error   Error `json:"error"`
}

// Error carries a stable machine code plus a human message.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResponse is the standard success envelope for non-import endpoints.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message *string     `json:"message,omitempty"`
}
