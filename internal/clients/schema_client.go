package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"catalog-import-service/internal/models"
)

// SchemaClient talks to the category schema service, which owns the
// required/optional field definitions per category.
type SchemaClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSchemaClient creates a schema client from SCHEMA_SERVICE_URL.
func NewSchemaClient() *SchemaClient {
	baseURL := os.Getenv("SCHEMA_SERVICE_URL")
	if baseURL == "" {
		baseURL = "http://categories-service:8080"
	}

	return &SchemaClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// fieldCatalogResponse is the schema service's envelope.
type fieldCatalogResponse struct {
	Success bool                 `json:"success"`
	Data    *models.FieldCatalog `json:"data,omitempty"`
	Message *string              `json:"message,omitempty"`
}

// GetRequiredFields fetches the field catalog for a category.
func (c *SchemaClient) GetRequiredFields(ctx context.Context, tenantID, categoryID string) (*models.FieldCatalog, error) {
	url := fmt.Sprintf("%s/api/v1/categories/%s/fields", c.baseURL, categoryID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Tenant-ID", tenantID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("schema service returned %d: %s", resp.StatusCode, string(body))
	}

	var result fieldCatalogResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding schema response: %w", err)
	}
	if result.Data == nil {
		return nil, fmt.Errorf("schema service returned no data for category %s", categoryID)
	}

	result.Data.CategoryID = categoryID
	return result.Data, nil
}
