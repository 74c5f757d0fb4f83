// Package generate is the client for the external data-generation service.
// The service receives a finalized schema, a natural-language prompt, and a
// requested item count, and returns generated data instances. The items are
// treated as opaque JSON; no generation logic lives in this repository.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mesh-intelligence/stencil/pkg/types"
)

// Request parameters for one generation call.
type Request struct {
	Schema *types.Schema `json:"schema"`
	Prompt string        `json:"prompt"`
	Count  int           `json:"count"`
}

// Result is the service response: generated instances, opaque to stencil.
type Result struct {
	Items []json.RawMessage `json:"items"`
}

// Request validation errors.
var (
	ErrNoSchema     = errors.New("generate: schema is required")
	ErrInvalidCount = errors.New("generate: count must be positive")
	ErrNoEndpoint   = errors.New("generate: endpoint is not configured")
)

// Client calls the generation service over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the service at the given endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Generate posts the schema, prompt, and count to the service and decodes
// the generated items. The schema must pass Validate before it is sent.
func (c *Client) Generate(ctx context.Context, req Request) (*Result, error) {
	if c.endpoint == "" {
		return nil, ErrNoEndpoint
	}
	if req.Schema == nil {
		return nil, ErrNoSchema
	}
	if req.Count <= 0 {
		return nil, ErrInvalidCount
	}
	if err := req.Schema.Validate(); err != nil {
		return nil, fmt.Errorf("generate: invalid schema: %w", err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("generate: marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("generate: building request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("generate: calling service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("generate: service returned %s: %s", resp.Status, snippet)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("generate: decoding response: %w", err)
	}
	return &result, nil
}
