package servicenow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/opsbridge/snbridge/pkg/models"
)

const (
	tableAPIPath   = "/api/now/table/"
	defaultTimeout = 30 * time.Second
	defaultLimit   = 100 // sysparm_limit for read calls

	// Request pacing against the remote instance.
	requestsPerSecond = 5
	requestBurst      = 10
)

var (
	errRequestFailed = fmt.Errorf("request failed")
	errAuthFailed    = fmt.Errorf("authentication failed")
)

// Client issues authenticated GET/POST calls against one configured
// table and returns raw envelopes. It enforces a request rate limit
// but no retries; a failed call is terminal for the caller.
type Client struct {
	baseURL    string
	table      string
	username   string
	password   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Table API client from the connection config. The
// config is owned by the adapter and treated as immutable here.
func NewClient(cfg *models.ConnectionConfig) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.ServiceURL, "/"),
		table:    cfg.TableName,
		username: cfg.Credentials.Username,
		password: cfg.Credentials.Password,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}
}

// Get issues a read against the configured table.
func (c *Client) Get(ctx context.Context) (*Envelope, error) {
	url := fmt.Sprintf("%s%s%s?sysparm_limit=%d", c.baseURL, tableAPIPath, c.table, defaultLimit)

	return c.do(ctx, http.MethodGet, url, nil)
}

// Post issues a create against the configured table with the given
// record fields as the JSON body.
func (c *Client) Post(ctx context.Context, fields Record) (*Envelope, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}

	url := c.baseURL + tableAPIPath + c.table

	return c.do(ctx, http.MethodPost, url, body)
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) (*Envelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w (%d): check credentials for %s", errAuthFailed, resp.StatusCode, c.baseURL)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: %s %s: %s", errRequestFailed, method, url, errorDetail(resp.StatusCode, respBody))
	}

	return &Envelope{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}

// errorDetail extracts the Table API error message when the body
// carries one, falling back to the raw status code.
func errorDetail(statusCode int, body []byte) string {
	var apiErr ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Sprintf("status %d: %s", statusCode, apiErr.Error.Message)
	}

	return fmt.Sprintf("status %d", statusCode)
}
