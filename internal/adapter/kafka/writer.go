// Package kafka publishes imputed daily summaries to a sink topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/quantself/step-report/internal/config"
	"github.com/quantself/step-report/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces one message per imputed daily total.
// It implements pipeline.Exporter.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured export topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// Export serializes and publishes the analysis's imputed daily totals in a
// single WriteMessages call.
func (w *Writer) Export(ctx context.Context, a domain.Analysis) error {
	totals := a.ImputedDaily.Totals
	if len(totals) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, len(totals))
	for i, total := range totals {
		msg, err := serializeDailySummary(total, a.GeneratedAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}

	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write daily summaries: %w", err)
	}
	w.logger.Info("daily summaries exported", "count", len(msgs), "topic", w.writer.Topic)
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// dailySummaryMessage is the wire form of one imputed daily total.
type dailySummaryMessage struct {
	Date        string    `json:"date"`
	DayType     string    `json:"day_type"`
	TotalSteps  float64   `json:"total_steps"`
	GeneratedAt time.Time `json:"generated_at"`
}

// serializeDailySummary marshals a daily total into a Kafka message keyed by date.
func serializeDailySummary(total domain.DailyTotal, generatedAt time.Time) (kafkago.Message, error) {
	dayType := domain.ClassifyDayType(total.Date)
	date := total.Date.Format("2006-01-02")

	data, err := json.Marshal(dailySummaryMessage{
		Date:        date,
		DayType:     string(dayType),
		TotalSteps:  total.Steps,
		GeneratedAt: generatedAt,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize daily summary: %w", err)
	}

	return kafkago.Message{
		Key:   []byte(date),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "day_type", Value: []byte(dayType)},
			{Key: "generated_at", Value: []byte(generatedAt.Format(time.RFC3339))},
		},
	}, nil
}
