package dvsa

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/OpaceDigitalAgency/driving-lesson-hunter/internal/types"
)

// DVSA "find your nearest" practical test centre listing
const (
	DefaultCentresURL = "http://assets.dft.gov.uk/dvsa/find-your-nearest/practical.csv"
)

type Client struct {
	httpClient *http.Client
	centresURL string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return NewClientWithOptions(logger, DefaultCentresURL, nil)
}

// NewClientWithOptions allows overriding the CSV URL and HTTP client
func NewClientWithOptions(logger *slog.Logger, centresURL string, httpClient *http.Client) *Client {
	if strings.TrimSpace(centresURL) == "" {
		centresURL = DefaultCentresURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		centresURL: centresURL,
		logger:     logger.With("component", "dvsa-client"),
	}
}

// FetchCentres downloads the full catalog and parses it. The file is fetched
// on every call.
func (c *Client) FetchCentres(ctx context.Context) ([]types.Centre, error) {
	c.logger.Debug("fetching test centre catalog", "url", c.centresURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.centresURL, nil)
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
		return nil, fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	catalog := Parse(string(body))

	c.logger.Debug("parsed test centre catalog",
		"header", catalog.Header,
		"centres", len(catalog.Centres),
		"skipped_rows", catalog.Skipped,
	)

	return catalog.Centres, nil
}
