package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalog-import-service/internal/events"
	"catalog-import-service/internal/importer"
	"catalog-import-service/internal/intake"
	"catalog-import-service/internal/middleware"
	"catalog-import-service/internal/models"
	"catalog-import-service/internal/schema"
)

// Submitter is the bulk submission service boundary.
type Submitter interface {
	Submit(ctx context.Context, tenantID string, products []*models.Product, mode models.ImportMode) (*models.SubmissionResult, error)
}

type ImportHandler struct {
	resolver  *schema.Resolver
	submitter Submitter
	publisher *events.Publisher
	logger    *logrus.Entry
}

// NewImportHandler wires the import pipeline behind the HTTP surface.
// publisher may be nil when NATS is not configured.
func NewImportHandler(resolver *schema.Resolver, submitter Submitter, publisher *events.Publisher, logger *logrus.Logger) *ImportHandler {
	return &ImportHandler{
		resolver:  resolver,
		submitter: submitter,
		publisher: publisher,
		logger:    logger.WithField("component", "import_handler"),
	}
}

// SelectCategory records a category selection and starts its schema fetch in
// the background, so the catalog is usually ready by the time a file
// arrives. Stale fetches are discarded: last selection wins.
// POST /api/v1/catalog/category-selection
func (h *ImportHandler) SelectCategory(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)

	var req struct {
		CategoryID string `json:"categoryId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "CATEGORY_REQUIRED",
				Message: "categoryId is required",
			},
		})
		return
	}

	h.resolver.Select(tenantID, req.CategoryID)
	c.JSON(http.StatusAccepted, models.SuccessResponse{Success: true})
}

// ImportCatalog ingests a CSV or XLSX catalog file, validates every row
// against the category schema, aggregates valid rows into products and
// submits them to the catalog store unless validateOnly is set.
// POST /api/v1/catalog/import
func (h *ImportHandler) ImportCatalog(c *gin.Context) {
	tenantID := middleware.GetTenantID(c)
	startTime := time.Now()

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "FILE_REQUIRED",
				Message: "Please upload a CSV or Excel file",
			},
		})
		return
	}
	defer file.Close()

	categoryID := c.PostForm("categoryId")
	mode := models.ParseImportMode(c.DefaultPostForm("mode", "insert"))
	validateOnly := c.DefaultPostForm("validateOnly", "false") == "true"

	decoded, err := intake.Decode(file, header.Filename, header.Size)
	if err != nil {
		code := "PARSE_ERROR"
		if ie, ok := err.(*intake.Error); ok {
			code = ie.Code
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   models.Error{Code: code, Message: err.Error()},
		})
		return
	}

	// One bounded wait on the pending schema fetch; degraded means core
	// rules only.
	catalog := models.EmptyFieldCatalog(categoryID)
	degraded := false
	if categoryID != "" {
		catalog, degraded = h.resolver.Await(c.Request.Context(), tenantID, categoryID)
	}

	result := importer.Run(decoded.Rows, decoded.Headers, catalog, mode, categoryID)

	resp := &models.ImportResult{
		Success:         result.InvalidRows == 0,
		TotalRows:       result.TotalRows,
		ValidRows:       result.ValidRows,
		InvalidRows:     result.InvalidRows,
		ProductCount:    len(result.Products),
		VariantCount:    result.VariantCount,
		DroppedVariants: result.DroppedVariants,
		SchemaDegraded:  degraded,
		Errors:          result.RowErrors(),
	}

	submitted := false
	if !validateOnly && len(result.Products) > 0 {
		submission, err := h.submitter.Submit(c.Request.Context(), tenantID, result.Products, mode)
		if err != nil {
			h.logger.WithError(err).WithFields(logrus.Fields{
				"tenantId": tenantID,
				"products": len(result.Products),
			}).Error("Bulk submission failed")
			c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Success: false,
				Error:   models.Error{Code: "SUBMISSION_FAILED", Message: err.Error()},
			})
			return
		}
		resp.Submission = submission
		submitted = true
	}

	resp.ProcessingMs = time.Since(startTime).Milliseconds()

	if h.publisher != nil {
		h.publisher.PublishImportCompleted(c.Request.Context(), events.ImportCompletedEvent{
			TenantID:        tenantID,
			CategoryID:      categoryID,
			Mode:            string(mode),
			Filename:        header.Filename,
			TotalRows:       resp.TotalRows,
			ValidRows:       resp.ValidRows,
			InvalidRows:     resp.InvalidRows,
			ProductCount:    resp.ProductCount,
			VariantCount:    resp.VariantCount,
			DroppedVariants: resp.DroppedVariants,
			ValidateOnly:    validateOnly,
			Submitted:       submitted,
		})
	}

	c.JSON(http.StatusOK, resp)
}
