package postcodesio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// API Docs: https://postcodes.io/docs
// Sample request: https://api.postcodes.io/postcodes/SW1A%201AA
const (
	DefaultBaseURL = "https://api.postcodes.io"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return NewClientWithOptions(logger, DefaultBaseURL, nil)
}

// NewClientWithOptions allows overriding the base URL and HTTP client
func NewClientWithOptions(logger *slog.Logger, baseURL string, httpClient *http.Client) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger.With("component", "postcodesio-client"),
	}
}

// Lookup fetches the postcodes.io record for a single postcode. The postcode
// is sent as one escaped path segment, exactly as supplied.
func (c *Client) Lookup(ctx context.Context, postcode string) (*LookupAPIResponse, error) {
	u, err := url.Parse(c.baseURL + "/postcodes/" + url.PathEscape(postcode))
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup URL: %w", err)
	}

	c.logger.Debug("looking up postcode", "postcode", postcode, "url", u.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResp LookupAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// StatusError is returned when postcodes.io answers with a non-2xx status.
// postcodes.io uses 404 for unknown postcodes, so callers may treat it as a miss.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch returned status %d: %s", e.StatusCode, e.Body)
}
