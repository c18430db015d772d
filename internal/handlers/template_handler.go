package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"catalog-import-service/internal/importer"
	"catalog-import-service/internal/middleware"
	"catalog-import-service/internal/models"
	"catalog-import-service/internal/schema"
)

type TemplateHandler struct {
	resolver *schema.Resolver
	logger   *logrus.Entry
}

func NewTemplateHandler(resolver *schema.Resolver, logger *logrus.Logger) *TemplateHandler {
	return &TemplateHandler{
		resolver: resolver,
		logger:   logger.WithField("component", "template_handler"),
	}
}

// GetTemplate returns the import template for a category as JSON, CSV or XLSX.
// A failed schema fetch degrades to the core commerce columns so the caller
// always gets a usable file.
// GET /api/v1/catalog/import/template
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	categoryID := c.Query("categoryId")
	mode := models.ParseImportMode(c.DefaultQuery("mode", "insert"))
	format := c.DefaultQuery("format", "json")

	catalog := models.EmptyFieldCatalog(categoryID)
	degraded := false
	if categoryID != "" {
		resolved, err := h.resolver.Resolve(c.Request.Context(), tenantID, categoryID)
		if err != nil {
			h.logger.WithError(err).WithField("categoryId", categoryID).
				Warn("Schema fetch failed, template falls back to core columns")
			degraded = true
		} else {
			catalog = resolved
		}
	}

	cols := importer.GenerateTemplate(catalog, mode)

	switch format {
	case "csv":
		h.writeCSVTemplate(c, cols)
	case "xlsx":
		h.writeXLSXTemplate(c, cols)
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"schemaDegraded": degraded,
			"template": models.Template{
				CategoryID: categoryID,
				Mode:       mode,
				Columns:    cols,
			},
		})
	}
}

// writeCSVTemplate streams the header row plus one example row.
func (h *TemplateHandler) writeCSVTemplate(c *gin.Context, cols []models.TemplateColumn) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=catalog_import_template.csv")

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(importer.TemplateHeaders(cols))
	writer.Write(importer.TemplateExampleRow(cols))
}

// writeXLSXTemplate generates a styled Excel template with dropdowns for
// option-backed columns and an example data row.
func (h *TemplateHandler) writeXLSXTemplate(c *gin.Context, cols []models.TemplateColumn) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Catalog"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	requiredStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"C65911"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, col := range cols {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col.Header)

		if col.Required {
			f.SetCellStyle(sheetName, cell, cell, requiredStyle)
		} else {
			f.SetCellStyle(sheetName, cell, cell, headerStyle)
		}

		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)

		if col.Example != "" {
			exampleCell, _ := excelize.CoordinatesToCellName(i+1, 2)
			f.SetCellValue(sheetName, exampleCell, col.Example)
		}

		if len(col.Options) > 0 {
			dv := excelize.NewDataValidation(true)
			dv.Sqref = fmt.Sprintf("%s2:%s1000", colName, colName)
			if err := dv.SetDropList(col.Options); err == nil {
				f.AddDataValidation(sheetName, dv)
			}
		}
	}

	// Column reference sheet
	f.NewSheet("Columns")
	f.SetCellValue("Columns", "A1", "Column")
	f.SetCellValue("Columns", "B1", "Required")
	f.SetCellValue("Columns", "C1", "Example")
	for i, col := range cols {
		row := i + 2
		f.SetCellValue("Columns", fmt.Sprintf("A%d", row), col.Header)
		required := "Optional"
		if col.Required {
			required = "Required"
		}
		f.SetCellValue("Columns", fmt.Sprintf("B%d", row), required)
		f.SetCellValue("Columns", fmt.Sprintf("C%d", row), col.Example)
	}
	f.SetColWidth("Columns", "A", "A", 30)
	f.SetColWidth("Columns", "B", "B", 15)
	f.SetColWidth("Columns", "C", "C", 40)

	sheetIdx, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIdx)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=catalog_import_template.xlsx")

	f.Write(c.Writer)
}
