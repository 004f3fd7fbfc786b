package isoforest

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordGrow is called after a growth pass completes.
	// trees is the number of trees built, duration the total time taken.
	RecordGrow(trees int, duration time.Duration)

	// RecordScore is called after each scoring operation.
	// duration is the time taken, err is nil if successful.
	RecordScore(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, time.Duration)    {}
func (NoopMetricsCollector) RecordScore(time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount       atomic.Int64
	GrowTrees       atomic.Int64
	GrowTotalNanos  atomic.Int64
	ScoreCount      atomic.Int64
	ScoreErrors     atomic.Int64
	ScoreTotalNanos atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(trees int, duration time.Duration) {
	b.GrowCount.Add(1)
	b.GrowTrees.Add(int64(trees))
	b.GrowTotalNanos.Add(duration.Nanoseconds())
}

// RecordScore implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScore(duration time.Duration, err error) {
	b.ScoreCount.Add(1)
	b.ScoreTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScoreErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:     b.GrowCount.Load(),
		GrowTrees:     b.GrowTrees.Load(),
		ScoreCount:    b.ScoreCount.Load(),
		ScoreErrors:   b.ScoreErrors.Load(),
		ScoreAvgNanos: b.getAvgScoreNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgScoreNanos() int64 {
	count := b.ScoreCount.Load()
	if count == 0 {
		return 0
	}
	return b.ScoreTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount     int64
	GrowTrees     int64
	ScoreCount    int64
	ScoreErrors   int64
	ScoreAvgNanos int64
}
