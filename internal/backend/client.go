// Package backend is the client of the storefront's REST API, which owns products, categories,
// users, carts and orders. It speaks the API's own wire format and maps it onto internal models.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// TransportError reports a failed round trip: a non-2xx answer, or no answer at all when
// StatusCode is 0.
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("API Error: %s %s: %v", e.Method, e.Path, e.Err)
	}

	return fmt.Sprintf("API Error: %d %s", e.StatusCode, e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) HTTPStatus() int {
	return e.StatusCode
}

// SchemaError reports a 2xx response whose body does not have the expected shape.
type SchemaError struct {
	Resource string
	Err      error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("malformed %s response: %v", e.Resource, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func (e *SchemaError) Malformed() bool {
	return true
}

type Client struct {
	baseURL  string
	http     *http.Client
	validate *validator.Validate
}

func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend base url %q", baseURL)
	}

	if httpClient == nil {
		httpClient = NewHTTPClient(10 * time.Second)
	}

	return &Client{
		baseURL:  strings.TrimRight(u.String(), "/"),
		http:     httpClient,
		validate: validator.New(),
	}, nil
}

// NewHTTPClient returns a traced client; every outgoing request gets its own span.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// do issues one JSON request. dest may be nil when the response body is irrelevant.
func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", method, path, err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if cid := middleware.CorrelationIDFromContext(ctx); cid != "" {
		req.Header.Set(middleware.HeaderCorrelationID, cid)
	}

	logger := middleware.LoggerFromContext(ctx)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordBackendRequest(method, 0)
		logger.Warn("Backend request failed", slog.String("method", method), slog.String("path", path), slog.String("error", err.Error()))

		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	metrics.RecordBackendRequest(method, resp.StatusCode)
	logger.Debug("Backend request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)

		return &TransportError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
		}
	}

	if dest == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, Path: path, StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode), Err: err}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return &SchemaError{Resource: path, Err: fmt.Errorf("empty body")}
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return &SchemaError{Resource: path, Err: err}
	}

	return nil
}

// check validates a decoded wire value before it is mapped.
func (c *Client) check(resource string, value any) error {
	if err := c.validate.Struct(value); err != nil {
		return &SchemaError{Resource: resource, Err: err}
	}

	return nil
}

func checkAll[T any](c *Client, resource string, values []T) error {
	for i := range values {
		if err := c.check(resource, &values[i]); err != nil {
			return err
		}
	}

	return nil
}
