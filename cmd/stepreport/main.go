// Command stepreport runs the activity statistics batch job: it fetches the
// step-count archive, computes daily and interval statistics with mean
// imputation, writes the text report, and optionally exports daily summaries
// to Kafka and serves the finished report over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/quantself/step-report/internal/adapter/http"
	kafkaadapter "github.com/quantself/step-report/internal/adapter/kafka"
	"github.com/quantself/step-report/internal/adapter/source"
	"github.com/quantself/step-report/internal/config"
	"github.com/quantself/step-report/internal/observability"
	"github.com/quantself/step-report/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Archive caching is optional; a cache dir enables it.
	var fetcher source.Fetcher = source.NewClient(cfg.SourceURL, cfg.FetchTimeout, logger)
	if cfg.CacheDir != "" {
		fetcher = source.NewCachedFetcher(fetcher, cfg.CacheDir, logger)
		logger.Info("archive caching enabled", "dir", cfg.CacheDir)
	}
	loader := source.NewLoader(fetcher, logger)

	// Kafka export is optional; configuring brokers enables it.
	var exporter pipeline.Exporter
	if cfg.KafkaEnabled() {
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		exporter = writer
		logger.Info("kafka export enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	p := pipeline.New(loader, exporter, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := p.Run(ctx); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	rendered, _ := p.Report()
	if err := writeReport(cfg.OutputPath, rendered); err != nil {
		logger.Error("write report failed", "error", err)
		os.Exit(1)
	}

	if !cfg.Serve {
		return
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

// writeReport writes the rendered report to path, or stdout when path is empty.
func writeReport(path, rendered string) error {
	if path == "" {
		_, err := fmt.Print(rendered)
		return err
	}
	return os.WriteFile(path, []byte(rendered), 0o644)
}
