// Package stats tracks per-session dialogue metrics.
package stats

import (
	"sync"
	"time"

	"github.com/insightlane/concierge/internal/classifier"
)

// Collector counts turns for one widget session. Safe for concurrent use;
// the scheduler records from timer callbacks while the host reads snapshots.
type Collector struct {
	mu        sync.Mutex
	startTime time.Time
	turnCount int64
	cancelled int64
	rejected  int64
	byIntent  map[classifier.Intent]int64
	byTone    map[classifier.Tone]int64
}

// NewCollector creates a collector anchored at the current time.
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		byIntent:  make(map[classifier.Intent]int64),
		byTone:    make(map[classifier.Tone]int64),
	}
}

// Snapshot is a point-in-time copy of the session metrics.
type Snapshot struct {
	Uptime    time.Duration               `json:"uptime"`
	TurnCount int64                       `json:"turn_count"`
	Cancelled int64                       `json:"cancelled"`
	Rejected  int64                       `json:"rejected"`
	ByIntent  map[classifier.Intent]int64 `json:"by_intent"`
	ByTone    map[classifier.Tone]int64   `json:"by_tone"`
}

// RecordTurn records one accepted, classified user turn.
func (c *Collector) RecordTurn(intent classifier.Intent, tone classifier.Tone) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turnCount++
	c.byIntent[intent]++
	c.byTone[tone]++
}

// RecordCancelled records a pending turn discarded by widget close.
func (c *Collector) RecordCancelled() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelled++
}

// RecordRejected records a submission dropped by the pending guard.
func (c *Collector) RecordRejected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rejected++
}

// Collect returns a snapshot of the current metrics.
func (c *Collector) Collect() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	byIntent := make(map[classifier.Intent]int64, len(c.byIntent))
	for k, v := range c.byIntent {
		byIntent[k] = v
	}
	byTone := make(map[classifier.Tone]int64, len(c.byTone))
	for k, v := range c.byTone {
		byTone[k] = v
	}

	return Snapshot{
		Uptime:    time.Since(c.startTime),
		TurnCount: c.turnCount,
		Cancelled: c.cancelled,
		Rejected:  c.rejected,
		ByIntent:  byIntent,
		ByTone:    byTone,
	}
}

// StartTime returns when the collector started.
func (c *Collector) StartTime() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startTime
}
