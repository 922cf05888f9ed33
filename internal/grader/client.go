package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/tosoham/ResumeGrader/internal/model"
)

// Service routes. The grading backend accepts the resume under the "file"
// multipart field on both analysis routes.
const (
	RouteGrade  = "/grade-resume"
	RouteParse  = "/upload-resume"
	RouteHealth = "/health"

	FileFieldName = "file"
)

// Response body cap; grading reports are small JSON documents
const maxResponseBytes = 4 << 20

// Failure taxonomy. Transport errors, non-2xx statuses, and bodies that fail
// schema validation all settle a submission as failed; these sentinels let
// callers tell the two broad cases apart.
var (
	ErrRequestFailed     = errors.New("grading request failed")
	ErrMalformedResponse = errors.New("malformed grading response")
)

// Client issues HTTP requests against the grading service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a grading service client. baseURL comes from the injected
// configuration, never from a package-level default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the configured service base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Analyze uploads the resume at filePath and returns the decoded report.
// ModeGrade targets the grading route, ModeParse the parse-only route.
func (c *Client) Analyze(ctx context.Context, filePath string, mode model.AnalysisMode) (*model.AnalysisReport, error) {
	route := RouteGrade
	if mode == model.ModeParse {
		route = RouteParse
	}

	req, err := c.buildUploadRequest(ctx, route, filePath)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrRequestFailed, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, errorDetail(body))
	}

	if err := ValidateResponse(body); err != nil {
		return nil, err
	}

	var report model.AnalysisReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &report, nil
}

// CheckHealth probes the service health route
func (c *Client) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+RouteHealth, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health status %d", ErrRequestFailed, resp.StatusCode)
	}
	return nil
}

// buildUploadRequest assembles the multipart POST with exactly one file part
func (c *Client) buildUploadRequest(ctx context.Context, route, filePath string) (*http.Request, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(FileFieldName, filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+route, &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req, nil
}

// errorDetail extracts the service's error detail when the body carries one
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}

	const maxDetail = 200
	if len(body) > maxDetail {
		body = body[:maxDetail]
	}
	return string(body)
}
