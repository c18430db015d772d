package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog-import-service/internal/models"
)

func shirtRow(title, image string) map[string]string {
	return map[string]string{
		"Product Name*":          "Shirt",
		"Variant Title*":         title,
		"Variant Buying Price*":  "250.00",
		"Variant MRP*":           "499.00",
		"Variant Selling Price*": "399.00",
		"EAN number*":            "8901234567890",
		"Product Image 1 Url*":   image,
		"Is Published*":          "Published",
		"Is Visible*":            "Both",
		"B2B Enabled*":           "false",
		"P2P Enabled*":           "false",
	}
}

func TestRun_ColaSingleVariant(t *testing.T) {
	catalog := models.EmptyFieldCatalog("142")

	res := Run([]map[string]string{colaRow()}, nil, catalog, models.ImportModeInsert, "142")

	assert.Equal(t, 1, res.TotalRows)
	assert.Equal(t, 1, res.ValidRows)
	assert.Equal(t, 0, res.InvalidRows)
	assert.Len(t, res.Products, 1)
	assert.Equal(t, "Cola", res.Products[0].Name)
	assert.Len(t, res.Products[0].Variants, 1)
	assert.Equal(t, 1, res.VariantCount)
}

func TestRun_ShirtTwoVariants(t *testing.T) {
	catalog := models.EmptyFieldCatalog("142")
	rows := []map[string]string{
		shirtRow("M Blue", "http://x/m.jpg"),
		shirtRow("L Blue", "http://x/l.jpg"),
	}

	res := Run(rows, nil, catalog, models.ImportModeInsert, "142")

	assert.Equal(t, 2, res.ValidRows)
	assert.Len(t, res.Products, 1)
	assert.Len(t, res.Products[0].Variants, 2)
	assert.Equal(t, 2, res.VariantCount)
}

func TestRun_InvalidRowsExcludedFromAggregation(t *testing.T) {
	catalog := models.EmptyFieldCatalog("142")
	bad := shirtRow("M Blue", "http://x/m.jpg")
	delete(bad, "EAN number*")
	rows := []map[string]string{
		shirtRow("L Blue", "http://x/l.jpg"),
		bad,
	}

	res := Run(rows, nil, catalog, models.ImportModeInsert, "142")

	assert.Equal(t, 1, res.ValidRows)
	assert.Equal(t, 1, res.InvalidRows)
	assert.Len(t, res.Products, 1)
	assert.Len(t, res.Products[0].Variants, 1)

	for _, d := range res.Drafts {
		assert.Equal(t, len(d.Errors) == 0, d.Valid)
	}
}

func TestRun_RowNumbersFromIntake(t *testing.T) {
	catalog := models.EmptyFieldCatalog("142")
	bad := shirtRow("M Blue", "")
	bad["_row"] = "7"

	res := Run([]map[string]string{bad}, nil, catalog, models.ImportModeInsert, "142")

	rowErrs := res.RowErrors()
	assert.NotEmpty(t, rowErrs)
	for _, e := range rowErrs {
		assert.Equal(t, 7, e.Row)
		assert.NotEmpty(t, e.Remediation)
	}
}

func TestRun_MeasurementColumnsDetectedFromHeaders(t *testing.T) {
	catalog := models.EmptyFieldCatalog("201")
	headers := []string{"Product Name", "Variant Title", "Size", "Chest (in)*"}
	row := shirtRow("M Blue", "http://x/m.jpg")
	row["Size"] = "M"
	row["Chest (in)*"] = "38"

	res := Run([]map[string]string{row}, headers, catalog, models.ImportModeInsert, "201")

	assert.Len(t, res.Products, 1)
	v := res.Products[0].Variants[0]
	assert.Equal(t, []models.SizeChartValue{
		{Size: "M", Values: map[string]string{"Chest": "38"}},
	}, v.SizeChartValues)
}
