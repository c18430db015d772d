package clients

import (
	"bytes"
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

// SubmissionClient submits aggregated product payloads to the catalog
// store. Submission is a single atomic call: no retry, no rollback; any
// failure is propagated verbatim to the caller.
type SubmissionClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSubmissionClient creates a submission client from
// SUBMISSION_SERVICE_URL.
func NewSubmissionClient() *SubmissionClient {
	baseURL := os.Getenv("SUBMISSION_SERVICE_URL")
	if baseURL == "" {
		baseURL = "http://products-service:8080"
	}

	return &SubmissionClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type bulkSubmissionRequest struct {
	Products []*models.Product `json:"products"`
	Mode     models.ImportMode `json:"mode"`
}

// Submit sends the product aggregates in one bulk call and returns the
// store's per-item outcome.
func (c *SubmissionClient) Submit(ctx context.Context, tenantID string, products []*models.Product, mode models.ImportMode) (*models.SubmissionResult, error) {
	payload, err := json.Marshal(bulkSubmissionRequest{Products: products, Mode: mode})
	if err != nil {
		return nil, fmt.Errorf("encoding submission payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/products/bulk", c.baseURL)
	if mode == models.ImportModeUpdate {
		url = fmt.Sprintf("%s/api/v1/products/bulk/upsert", c.baseURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
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

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("submission service returned %d: %s", resp.StatusCode, string(body))
	}

	var result models.SubmissionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding submission response: %w", err)
	}
	return &result, nil
}
