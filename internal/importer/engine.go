package importer

import (
	"strconv"

	"catalog-import-service/internal/models"
)

// Result is the outcome of one pipeline run over an uploaded row set.
type Result struct {
	Drafts          []*models.DraftRecord
	Products        []*models.Product
	TotalRows       int
	ValidRows       int
	InvalidRows     int
	VariantCount    int
	DroppedVariants int
}

// Run executes the import pipeline once over the decoded row set: parse each
// row into a draft, validate it, then aggregate the valid drafts into
// product payloads. Rows are independent until aggregation, which is a
// single sequential scan; the whole pass is synchronous.
func Run(rows []map[string]string, headers []string, catalog *models.FieldCatalog, mode models.ImportMode, categoryID string) *Result {
	detected := DetectMeasurementColumns(headers)

	res := &Result{TotalRows: len(rows)}
	res.Drafts = make([]*models.DraftRecord, 0, len(rows))
	for i, row := range rows {
		rowNum := i + 2
		if n, err := strconv.Atoi(row["_row"]); err == nil {
			rowNum = n
		}

		d := ParseRow(row, catalog, mode, rowNum)
		errs, fixes := Validate(d, catalog, mode)
		d.Errors = errs
		d.Remediations = fixes
		d.Valid = len(errs) == 0

		if d.Valid {
			res.ValidRows++
		} else {
			res.InvalidRows++
		}
		res.Drafts = append(res.Drafts, d)
	}

	res.Products, res.DroppedVariants = Aggregate(res.Drafts, catalog, categoryID, detected)
	for _, p := range res.Products {
		res.VariantCount += len(p.Variants)
	}
	return res
}

// RowErrors flattens per-draft errors into the response shape, pairing each
// error with its remediation.
func (r *Result) RowErrors() []models.ImportRowError {
	var out []models.ImportRowError
	for _, d := range r.Drafts {
		for i, e := range d.Errors {
			out = append(out, models.ImportRowError{
				Row:         d.RowNum,
				Message:     e,
				Remediation: d.Remediations[i],
			})
		}
	}
	return out
}
