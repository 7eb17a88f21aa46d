package oteladapters_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	lognoop "go.opentelemetry.io/otel/log/noop"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/solidkit/solidkit-go/journal/oteladapters"
)

type recordingHandler struct {
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, record slog.Record) error {
	h.records = append(h.records, record)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *recordingHandler) WithGroup(string) slog.Handler { return h }

func Test_SlogBridgeLogger_WithHandler_ForwardsMessages(t *testing.T) {
	handler := &recordingHandler{}
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)

	logger.InfoContext(context.Background(), "entry appended", "journal_name", "travel-diary")
	logger.ErrorContext(context.Background(), "append failed")

	assert.Len(t, handler.records, 2)
	assert.Equal(t, "entry appended", handler.records[0].Message)
	assert.Equal(t, slog.LevelInfo, handler.records[0].Level)
	assert.Equal(t, slog.LevelError, handler.records[1].Level)
}

func Test_OTelLogger_EmitsWithoutPanic(t *testing.T) {
	logger := oteladapters.NewOTelLogger(lognoop.NewLoggerProvider().Logger("test"))

	assert.NotPanics(t, func() {
		logger.DebugContext(context.Background(), "sql executed", "duration_ms", 1.234)
		logger.InfoContext(context.Background(), "entries appended", "entry_count", 2)
		logger.WarnContext(context.Background(), "close failed")
		logger.ErrorContext(context.Background(), "query failed", "error", "boom")
	})
}

func Test_MetricsCollector_RecordsWithoutPanic(t *testing.T) {
	collector := oteladapters.NewMetricsCollector(metricnoop.NewMeterProvider().Meter("test"))
	labels := map[string]string{"action": "append"}

	assert.NotPanics(t, func() {
		collector.RecordDuration("journal_append_duration", 5*time.Millisecond, labels)
		collector.RecordDurationContext(context.Background(), "journal_append_duration", 5*time.Millisecond, labels)
		collector.IncrementCounter("journal_retries_total", labels)
		collector.IncrementCounterContext(context.Background(), "journal_retries_total", labels)
		collector.RecordValue("journal_queue_size", 3, labels)
		collector.RecordValueContext(context.Background(), "journal_queue_size", 3, labels)
	})
}

func Test_TracingCollector_SpanLifecycle(t *testing.T) {
	collector := oteladapters.NewTracingCollector(tracenoop.NewTracerProvider().Tracer("test"))

	ctx, span := collector.StartSpan(
		context.Background(),
		"journal.append",
		map[string]string{"journal_name": "travel-diary"},
	)

	assert.NotNil(t, ctx)
	assert.NotNil(t, span)

	assert.NotPanics(t, func() {
		span.AddAttribute("entry_count", "2")
		span.SetStatus("ok")
		collector.FinishSpan(span, "ok", map[string]string{"outcome": "appended"})
	})
}
