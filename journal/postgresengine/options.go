package postgresengine

import (
	"github.com/solidkit/solidkit-go/journal"
)

// Option defines a functional option for configuring a JournalStore.
type Option func(*JournalStore) error

// WithTableName sets the entry table name for the JournalStore.
func WithTableName(tableName string) Option {
	return func(s *JournalStore) error {
		if tableName == "" {
			return journal.ErrEmptyTableName
		}

		s.entryTableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the JournalStore.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: Entry counts, durations, concurrency conflicts (production-safe)
// Warn level: Non-critical issues like cleanup failures
// Error level: Critical failures that cause operation failures.
func WithLogger(logger journal.Logger) Option {
	return func(s *JournalStore) error {
		s.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the JournalStore.
// The metrics collector will receive performance and operational metrics including
// query/append durations, entry counts, and concurrency conflicts.
func WithMetrics(collector journal.MetricsCollector) Option {
	return func(s *JournalStore) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the JournalStore.
// The tracing collector will receive distributed tracing information including
// span creation for query/append operations, context propagation, and error tracking.
func WithTracing(collector journal.TracingCollector) Option {
	return func(s *JournalStore) error {
		s.tracingCollector = collector
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the JournalStore.
// The contextual logger will receive log messages with context information including
// automatic trace/span correlation when tracing is enabled.
func WithContextualLogger(logger journal.ContextualLogger) Option {
	return func(s *JournalStore) error {
		s.contextualLogger = logger
		return nil
	}
}
