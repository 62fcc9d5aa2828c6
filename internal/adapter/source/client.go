// Package source retrieves the activity archive and parses it into raw
// observations.
package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/quantself/step-report/internal/domain"
)

// Fetcher retrieves the raw source archive bytes.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Client fetches the source archive over HTTP.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an archive fetcher for the given URL.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Fetch downloads the archive. Any transport failure or non-200 response is
// reported as ErrSourceUnavailable; there are no retries, this is a one-shot
// batch fetch of a static file.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", domain.ErrSourceUnavailable, c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s: status %d", domain.ErrSourceUnavailable, c.url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrSourceUnavailable, err)
	}

	c.logger.Info("archive fetched", "url", c.url, "bytes", len(data))
	return data, nil
}
