package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"catalog-import-service/internal/middleware"
	"catalog-import-service/internal/models"
	"catalog-import-service/internal/schema"
)

// MockSubmitter is a mock implementation of Submitter
type MockSubmitter struct {
	mock.Mock
}

var _ Submitter = (*MockSubmitter)(nil)

func (m *MockSubmitter) Submit(ctx context.Context, tenantID string, products []*models.Product, mode models.ImportMode) (*models.SubmissionResult, error) {
	args := m.Called(ctx, tenantID, products, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubmissionResult), args.Error(1)
}

// emptyCatalogFetcher serves an empty catalog for every category.
type emptyCatalogFetcher struct{}

func (emptyCatalogFetcher) GetRequiredFields(ctx context.Context, tenantID, categoryID string) (*models.FieldCatalog, error) {
	return models.EmptyFieldCatalog(categoryID), nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newTestRouter(submitter Submitter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	resolver := schema.NewResolver(emptyCatalogFetcher{}, nil, time.Minute, time.Second, testLogger())
	importHandler := NewImportHandler(resolver, submitter, nil, testLogger())
	templateHandler := NewTemplateHandler(resolver, testLogger())

	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.TenantMiddleware())
	api.POST("/catalog/category-selection", importHandler.SelectCategory)
	api.POST("/catalog/import", importHandler.ImportCatalog)
	api.GET("/catalog/import/template", templateHandler.GetTemplate)
	return router
}

const validCSV = "Product Name *,Variant Title *,Variant Buying Price *,Variant MRP *,EAN number *,Product Image 1 Url *,Is Published *,Is Visible *,B2B Enabled *,P2P Enabled *\n" +
	"Cola,1L,70.00,99.00,1234567890123,http://x/y.jpg,Published,Online,false,false\n"

func multipartBody(t *testing.T, filename, content string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = fw.Write([]byte(content))
	assert.NoError(t, err)
	for k, v := range fields {
		assert.NoError(t, w.WriteField(k, v))
	}
	assert.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestImportCatalog_ValidateOnly(t *testing.T) {
	submitter := new(MockSubmitter)
	router := newTestRouter(submitter)

	body, contentType := multipartBody(t, "catalog.csv", validCSV, map[string]string{
		"categoryId":   "142",
		"mode":         "insert",
		"validateOnly": "true",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Tenant-ID", "tenant-123")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ImportResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.TotalRows)
	assert.Equal(t, 1, resp.ValidRows)
	assert.Equal(t, 1, resp.ProductCount)
	assert.Nil(t, resp.Submission)
	submitter.AssertNotCalled(t, "Submit")
}

func TestImportCatalog_SubmitsValidProducts(t *testing.T) {
	submitter := new(MockSubmitter)
	router := newTestRouter(submitter)

	submitter.On("Submit", mock.Anything, "tenant-123", mock.Anything, models.ImportModeInsert).
		Return(&models.SubmissionResult{CreatedCount: 1}, nil)

	body, contentType := multipartBody(t, "catalog.csv", validCSV, map[string]string{
		"categoryId": "142",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Tenant-ID", "tenant-123")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ImportResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Submission)
	assert.Equal(t, 1, resp.Submission.CreatedCount)
	submitter.AssertExpectations(t)
}

func TestImportCatalog_SubmissionFailure(t *testing.T) {
	submitter := new(MockSubmitter)
	router := newTestRouter(submitter)

	submitter.On("Submit", mock.Anything, "tenant-123", mock.Anything, models.ImportModeInsert).
		Return(nil, errors.New("bulk endpoint unavailable"))

	body, contentType := multipartBody(t, "catalog.csv", validCSV, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Tenant-ID", "tenant-123")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp models.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "SUBMISSION_FAILED", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "bulk endpoint unavailable")
}

func TestImportCatalog_InvalidRowsNotSubmitted(t *testing.T) {
	submitter := new(MockSubmitter)
	router := newTestRouter(submitter)

	csv := "Product Name *,Variant Title *\nCola,1L\n"
	body, contentType := multipartBody(t, "catalog.csv", csv, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Tenant-ID", "tenant-123")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ImportResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, 1, resp.InvalidRows)
	assert.NotEmpty(t, resp.Errors)
	submitter.AssertNotCalled(t, "Submit")
}

func TestImportCatalog_MissingFile(t *testing.T) {
	router := newTestRouter(new(MockSubmitter))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/import", nil)
	req.Header.Set("X-Tenant-ID", "tenant-123")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "FILE_REQUIRED", resp.Error.Code)
}

func TestImportCatalog_UnsupportedFormat(t *testing.T) {
	router := newTestRouter(new(MockSubmitter))

	body, contentType := multipartBody(t, "catalog.pdf", validCSV, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Tenant-ID", "tenant-123")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_FORMAT", resp.Error.Code)
}

func TestImportCatalog_RequiresTenant(t *testing.T) {
	router := newTestRouter(new(MockSubmitter))

	body, contentType := multipartBody(t, "catalog.csv", validCSV, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/import", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSelectCategory(t *testing.T) {
	router := newTestRouter(new(MockSubmitter))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/category-selection",
		bytes.NewBufferString(`{"categoryId":"142"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-ID", "tenant-123")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestSelectCategory_MissingCategoryID(t *testing.T) {
	router := newTestRouter(new(MockSubmitter))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/catalog/category-selection",
		bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-ID", "tenant-123")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTemplate_JSON(t *testing.T) {
	router := newTestRouter(new(MockSubmitter))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/import/template?categoryId=142&mode=insert", nil)
	req.Header.Set("X-Tenant-ID", "tenant-123")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success  bool            `json:"success"`
		Template models.Template `json:"template"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "142", resp.Template.CategoryID)
	assert.Equal(t, "Error", resp.Template.Columns[0].Header)
	assert.Equal(t, "Solution", resp.Template.Columns[1].Header)
}

func TestGetTemplate_CSV(t *testing.T) {
	router := newTestRouter(new(MockSubmitter))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/import/template?categoryId=142&format=csv", nil)
	req.Header.Set("X-Tenant-ID", "tenant-123")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Body.String(), "Product Name *")
}

func TestGetTemplate_XLSX(t *testing.T) {
	router := newTestRouter(new(MockSubmitter))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/import/template?categoryId=142&format=xlsx", nil)
	req.Header.Set("X-Tenant-ID", "tenant-123")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}
