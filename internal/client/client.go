// Package client holds the resource access clients: stateless wrappers that
// translate CRUD calls into requests against the dashboard REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	apierrors "github.com/yukikurage/project-dashboard/internal/errors"
)

const apiPrefix = "/api"

// Config configures a Client.
type Config struct {
	BaseURL string
	// WorkItemsUnderAPI serves work items from /api/workItems instead of the
	// historical unprefixed /workItems.
	WorkItemsUnderAPI bool
	// LegacyWorkItemWhitespace strips every whitespace character from work
	// item update strings and sends "" for absent ones, as older backends
	// expect. The server keeps the title, status and priority on "" but
	// clears an absent description or assignee.
	LegacyWorkItemWhitespace bool
	// HTTPClient defaults to a client without a timeout.
	HTTPClient *http.Client
}

// Client performs JSON requests against one API origin. It holds no entity
// state and is safe for concurrent use.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	validate         *validator.Validate
	workItemsPrefix  string
	legacyWhitespace bool
}

// New creates a Client.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	prefix := ""
	if cfg.WorkItemsUnderAPI {
		prefix = apiPrefix
	}
	return &Client{
		baseURL:          strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:       httpClient,
		validate:         validator.New(),
		workItemsPrefix:  prefix,
		legacyWhitespace: cfg.LegacyWorkItemWhitespace,
	}
}

// CloseIdleConnections releases pooled connections.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// do sends one request. A non-nil body is sent as JSON; a non-nil out
// receives the decoded response body.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apierrors.WrapRequestFailed(op, 0, fmt.Errorf("failed to encode request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return apierrors.WrapRequestFailed(op, 0, fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apierrors.WrapRequestFailed(op, 0, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierrors.WrapRequestFailed(op, resp.StatusCode, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apierrors.NewRequestFailed(op, resp.StatusCode, decodeAPIError(data))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apierrors.WrapRequestFailed(op, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

// decodeAPIError returns the server's error body, or nil when it has none.
func decodeAPIError(data []byte) *apierrors.APIError {
	var apiErr apierrors.APIError
	if err := json.Unmarshal(data, &apiErr); err != nil || (apiErr.Code == "" && apiErr.Message == "") {
		return nil
	}
	return &apiErr
}

func (c *Client) checkEntity(op string, v interface{}) error {
	if err := c.validate.Struct(v); err != nil {
		return apierrors.WrapRequestFailed(op, 0, fmt.Errorf("invalid response entity: %w", err))
	}
	return nil
}

func getOne[T any](ctx context.Context, c *Client, op, method, path string, body interface{}) (T, error) {
	var out T
	if err := c.do(ctx, op, method, path, nil, body, &out); err != nil {
		var zero T
		return zero, err
	}
	if err := c.checkEntity(op, out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func getList[T any](ctx context.Context, c *Client, op, path string, query url.Values) ([]T, error) {
	var out []T
	if err := c.do(ctx, op, http.MethodGet, path, query, nil, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if err := c.checkEntity(op, out[i]); err != nil {
			return nil, err
		}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// route builds prefix/seg1/seg2..., escaping every segment.
func route(prefix string, segments ...string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
