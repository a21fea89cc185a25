package logger

import (
	"sync/atomic"

	"github.com/seqlog/seqlog/core"
)

// Stats tracks a logger's counters with atomic operations
type Stats struct {
	// Separate atomic counters per message level
	droppedError uint64
	droppedWarn  uint64
	droppedEvent uint64
	droppedInfo  uint64
	droppedDebug uint64
	// blockedTotal counts Block-policy enqueues that timed out
	blockedTotal uint64
	// processedTotal counts fully dispatched messages
	processedTotal uint64
	// sinkFailures counts per-sink write errors and panics
	sinkFailures uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) droppedCounter(level core.Level) *uint64 {
	switch level {
	case core.ErrorLevel:
		return &s.droppedError
	case core.WarnLevel:
		return &s.droppedWarn
	case core.EventLevel:
		return &s.droppedEvent
	case core.InfoLevel:
		return &s.droppedInfo
	case core.DebugLevel:
		return &s.droppedDebug
	default:
		return nil
	}
}

// IncrementDropped atomically increments the dropped counter for a level
func (s *Stats) IncrementDropped(level core.Level) {
	if c := s.droppedCounter(level); c != nil {
		atomic.AddUint64(c, 1)
	}
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	atomic.AddUint64(&s.blockedTotal, 1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.processedTotal, 1)
}

// IncrementSinkFailure atomically increments the sink failure counter
func (s *Stats) IncrementSinkFailure() {
	atomic.AddUint64(&s.sinkFailures, 1)
}

// Snapshot is a point-in-time copy of a logger's counters
type Snapshot struct {
	Dropped        map[core.Level]uint64
	BlockedTotal   uint64
	ProcessedTotal uint64
	SinkFailures   uint64
}

// DroppedTotal returns the total dropped across all levels
func (s Snapshot) DroppedTotal() uint64 {
	var total uint64
	for _, n := range s.Dropped {
		total += n
	}
	return total
}

// Snapshot returns a consistent-enough copy of the counters for
// monitoring and tests
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Dropped: map[core.Level]uint64{
			core.ErrorLevel: atomic.LoadUint64(&s.droppedError),
			core.WarnLevel:  atomic.LoadUint64(&s.droppedWarn),
			core.EventLevel: atomic.LoadUint64(&s.droppedEvent),
			core.InfoLevel:  atomic.LoadUint64(&s.droppedInfo),
			core.DebugLevel: atomic.LoadUint64(&s.droppedDebug),
		},
		BlockedTotal:   atomic.LoadUint64(&s.blockedTotal),
		ProcessedTotal: atomic.LoadUint64(&s.processedTotal),
		SinkFailures:   atomic.LoadUint64(&s.sinkFailures),
	}
}
