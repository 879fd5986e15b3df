package metrics

import "sync/atomic"

// SyncMetrics aggregates import counters across sync runs. Counters are
// atomic so concurrent supplier syncs share one instance safely.
type SyncMetrics struct {
	FetchedCount  atomic.Int32
	ImportedCount atomic.Int32
	InvalidCount  atomic.Int32
	FailedCount   atomic.Int32
}
