// Package pipeline wires the load-analyze-render-export stages into a single
// batch run.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/quantself/step-report/internal/domain"
	"github.com/quantself/step-report/internal/observability"
	"github.com/quantself/step-report/internal/report"
)

// Extractor produces the raw observation sequence from the source archive.
type Extractor interface {
	Extract(ctx context.Context) ([]domain.Observation, error)
}

// Exporter publishes the finished analysis to a downstream sink.
type Exporter interface {
	Export(ctx context.Context, a domain.Analysis) error
}

// Pipeline runs one extract-analyze-render pass over the static dataset.
// Each run recomputes everything from the source; nothing persists between
// runs.
type Pipeline struct {
	extractor Extractor
	exporter  Exporter // nil when export is disabled
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
	rendered  atomic.Pointer[string]
}

// New creates a Pipeline. Pass a nil exporter to disable export.
func New(e Extractor, exp Exporter, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		extractor: e,
		exporter:  exp,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once a run has produced a report.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no report has been produced yet")
	}
	return nil
}

// Report returns the rendered report from the last successful run.
func (p *Pipeline) Report() (string, bool) {
	s := p.rendered.Load()
	if s == nil {
		return "", false
	}
	return *s, true
}

// Run executes one batch pass. Source and parse failures abort the run; an
// imputation-impossible dataset is reported inside the rendered output
// instead, since it is a legitimate data condition.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()

	observations, err := p.extractor.Extract(ctx)
	if err != nil {
		return err
	}
	p.metrics.ObservationsParsed.Add(float64(len(observations)))

	analysis := domain.Analyze(observations)
	p.metrics.MissingObservations.Add(float64(analysis.Missing))
	p.metrics.ValuesImputed.Add(float64(analysis.ImputeStats.Imputed))
	p.metrics.ImputeFallbacks.Add(float64(analysis.ImputeStats.Fallbacks))

	if analysis.ImputeWarning != "" {
		p.logger.Warn("imputation skipped", "reason", analysis.ImputeWarning)
	}
	if analysis.ImputeStats.Fallbacks > 0 {
		p.logger.Warn("global-mean fallback used for intervals with no samples",
			"fallbacks", analysis.ImputeStats.Fallbacks)
	}

	rendered := report.Render(analysis)
	p.rendered.Store(&rendered)
	p.ready.Store(true)

	if p.exporter != nil {
		if err := p.exporter.Export(ctx, analysis); err != nil {
			return err
		}
		p.metrics.SummariesExported.Add(float64(len(analysis.ImputedDaily.Totals)))
	}

	p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	p.logger.Info("run complete",
		"observations", len(observations),
		"missing", analysis.Missing,
		"days_included", len(analysis.ImputedDaily.Totals),
		"duration", time.Since(start),
	)
	return nil
}
