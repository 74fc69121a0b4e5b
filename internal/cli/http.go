package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/okian/staffgen/internal/domain/model"
)

// runIDHeader carries the run identifier assigned by the service.
const runIDHeader = "X-Run-Id"

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new HTTP client with timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{client: &http.Client{Timeout: timeout}}
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	return resp, nil
}

// RemoteGenerator asks a running service to generate the batch.
type RemoteGenerator struct {
	client  *HTTPClient
	baseURL string
}

// NewRemoteGenerator creates a generator targeting baseURL.
func NewRemoteGenerator(baseURL string, timeout time.Duration) *RemoteGenerator {
	return &RemoteGenerator{
		client:  NewHTTPClient(timeout),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type remoteError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Generate posts req to the service and decodes the result.
func (g *RemoteGenerator) Generate(ctx context.Context, req model.GenerationRequest) (model.Result, error) {
	resp, err := g.client.Post(ctx, g.baseURL+employeesPath, req)
	if err != nil {
		return model.Result{}, fmt.Errorf("%w: %w", ErrRemote, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		var apiErr remoteError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
			return model.Result{}, fmt.Errorf("%w: status %d: %s: %s", ErrRemote, resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return model.Result{}, fmt.Errorf("%w: status %d", ErrRemote, resp.StatusCode)
	}

	var result model.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return model.Result{}, fmt.Errorf("%w: decode response: %w", ErrRemote, err)
	}
	result.RunID = resp.Header.Get(runIDHeader)
	return result, nil
}
