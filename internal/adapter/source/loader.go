package source

import (
	"context"
	"log/slog"

	"github.com/quantself/step-report/internal/domain"
)

// Loader turns the fetched archive into the raw observation sequence.
// It implements pipeline.Extractor.
type Loader struct {
	fetcher Fetcher
	logger  *slog.Logger
}

// NewLoader creates a Loader on top of a Fetcher.
func NewLoader(fetcher Fetcher, logger *slog.Logger) *Loader {
	return &Loader{fetcher: fetcher, logger: logger}
}

// Extract fetches the archive, unpacks its single record file, and parses it
// into observations in file order.
func (l *Loader) Extract(ctx context.Context) ([]domain.Observation, error) {
	archive, err := l.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	record, err := extractSingleFile(archive)
	if err != nil {
		return nil, err
	}

	observations, err := parseObservations(record)
	if err != nil {
		return nil, err
	}

	l.logger.Info("source parsed", "observations", len(observations))
	return observations, nil
}
