package journal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/solidkit/solidkit-go/journal"
)

func Test_RetryOnConflict_SucceedsOnFirstAttempt(t *testing.T) {
	attempts := 0

	err := journal.RetryOnConflict(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func Test_RetryOnConflict_RetriesOnConcurrencyConflict(t *testing.T) {
	attempts := 0

	err := journal.RetryOnConflict(
		context.Background(),
		func(ctx context.Context) error {
			attempts++
			if attempts < 3 {
				return journal.ErrConcurrencyConflict
			}
			return nil
		},
		journal.WithBaseDelay(0),
	)

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func Test_RetryOnConflict_DoesNotRetryPermanentErrors(t *testing.T) {
	permanentErr := errors.New("permanent failure")
	attempts := 0

	err := journal.RetryOnConflict(context.Background(), func(ctx context.Context) error {
		attempts++
		return permanentErr
	})

	assert.ErrorIs(t, err, permanentErr)
	assert.Equal(t, 1, attempts)
}

func Test_RetryOnConflict_StopsAfterMaxAttempts(t *testing.T) {
	attempts := 0

	err := journal.RetryOnConflict(
		context.Background(),
		func(ctx context.Context) error {
			attempts++
			return journal.ErrConcurrencyConflict
		},
		journal.WithMaxAttempts(4),
		journal.WithBaseDelay(0),
	)

	assert.ErrorIs(t, err, journal.ErrConcurrencyConflict)
	assert.Equal(t, 4, attempts)
}

func Test_RetryOnConflict_HonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	err := journal.RetryOnConflict(
		ctx,
		func(ctx context.Context) error {
			cancel()
			return journal.ErrConcurrencyConflict
		},
		journal.WithBaseDelay(time.Minute),
	)

	assert.ErrorIs(t, err, context.Canceled)
}

func Test_RetryOnConflict_InvalidOptions(t *testing.T) {
	tests := []struct {
		name        string
		option      journal.RetryOption
		expectedErr error
	}{
		{
			name:        "zero_max_attempts",
			option:      journal.WithMaxAttempts(0),
			expectedErr: journal.ErrInvalidMaxAttempts,
		},
		{
			name:        "negative_max_attempts",
			option:      journal.WithMaxAttempts(-1),
			expectedErr: journal.ErrInvalidMaxAttempts,
		},
		{
			name:        "negative_base_delay",
			option:      journal.WithBaseDelay(-time.Second),
			expectedErr: journal.ErrNegativeBaseDelay,
		},
		{
			name:        "jitter_factor_above_one",
			option:      journal.WithJitterFactor(1.5),
			expectedErr: journal.ErrInvalidJitterFactor,
		},
		{
			name:        "jitter_factor_below_zero",
			option:      journal.WithJitterFactor(-0.1),
			expectedErr: journal.ErrInvalidJitterFactor,
		},
		{
			name:        "nil_metrics_collector",
			option:      journal.WithRetryMetrics(nil, "append"),
			expectedErr: journal.ErrNilMetricsCollector,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := journal.RetryOnConflict(
				context.Background(),
				func(ctx context.Context) error { return nil },
				tt.option,
			)

			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

type recordingCollector struct {
	durations map[string]int
	counters  map[string]int
}

func newRecordingCollector() *recordingCollector {
	return &recordingCollector{
		durations: make(map[string]int),
		counters:  make(map[string]int),
	}
}

func (c *recordingCollector) RecordDuration(metric string, _ time.Duration, _ map[string]string) {
	c.durations[metric]++
}

func (c *recordingCollector) IncrementCounter(metric string, _ map[string]string) {
	c.counters[metric]++
}

func (c *recordingCollector) RecordValue(string, float64, map[string]string) {}

func Test_RetryOnConflict_RecordsMetrics(t *testing.T) {
	collector := newRecordingCollector()
	attempts := 0

	err := journal.RetryOnConflict(
		context.Background(),
		func(ctx context.Context) error {
			attempts++
			return journal.ErrConcurrencyConflict
		},
		journal.WithMaxAttempts(3),
		journal.WithBaseDelay(0),
		journal.WithRetryMetrics(collector, "append"),
	)

	assert.ErrorIs(t, err, journal.ErrConcurrencyConflict)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 2, collector.counters["journal_retries_total"], "two retries were attempted")
	assert.Equal(t, 1, collector.counters["journal_max_retries_reached_total"])
}
