package source

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
)

// CachedFetcher wraps a Fetcher with an on-disk copy of the archive. The
// cache only spares the network on a rerun; a read or write failure falls
// through to the inner fetcher rather than failing the run.
type CachedFetcher struct {
	inner  Fetcher
	path   string
	logger *slog.Logger
}

// NewCachedFetcher creates a cache decorator storing the archive under dir.
func NewCachedFetcher(inner Fetcher, dir string, logger *slog.Logger) *CachedFetcher {
	return &CachedFetcher{
		inner:  inner,
		path:   filepath.Join(dir, "activity.zip"),
		logger: logger,
	}
}

func (c *CachedFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if data, err := os.ReadFile(c.path); err == nil && len(data) > 0 {
		c.logger.Info("archive cache hit", "path", c.path, "bytes", len(data))
		return data, nil
	}

	data, err := c.inner.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.write(data); err != nil {
		c.logger.Warn("archive cache write failed", "path", c.path, "error", err)
	}
	return data, nil
}

func (c *CachedFetcher) write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
