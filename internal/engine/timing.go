package engine

import (
	"time"

	"github.com/insightlane/concierge/internal/classifier"
)

// Timing controls the perceived-effort delays of the scheduler. Replies to
// intents that imply more "work" are deliberately held back longer.
type Timing struct {
	// StatusInterval is the cadence at which the status turn's text cycles.
	StatusInterval time.Duration

	// Delays maps an intent to its finalize delay. Intents absent from the
	// map use DefaultDelay.
	Delays map[classifier.Intent]time.Duration

	// DefaultDelay applies to intents without a dedicated entry.
	DefaultDelay time.Duration
}

// DefaultTiming returns the production cadence of the widget.
func DefaultTiming() Timing {
	return Timing{
		StatusInterval: 820 * time.Millisecond,
		Delays: map[classifier.Intent]time.Duration{
			classifier.IntentROI:          3200 * time.Millisecond,
			classifier.IntentHowAIWorks:   2600 * time.Millisecond,
			classifier.IntentTech:         2400 * time.Millisecond,
			classifier.IntentPricing:      1900 * time.Millisecond,
			classifier.IntentConfirmation: 1700 * time.Millisecond,
			classifier.IntentRefusal:      1700 * time.Millisecond,
		},
		DefaultDelay: 1800 * time.Millisecond,
	}
}

// DelayFor returns the finalize delay for an intent.
func (t Timing) DelayFor(intent classifier.Intent) time.Duration {
	if d, ok := t.Delays[intent]; ok {
		return d
	}
	return t.DefaultDelay
}

// Scaled returns a copy of t with every duration divided by factor.
// A factor <= 0 leaves t unchanged. Used by the demo's speedup setting and
// by tests that cannot wait seconds per turn.
func (t Timing) Scaled(factor float64) Timing {
	if factor <= 0 || factor == 1 {
		return t
	}
	scaled := Timing{
		StatusInterval: scale(t.StatusInterval, factor),
		DefaultDelay:   scale(t.DefaultDelay, factor),
		Delays:         make(map[classifier.Intent]time.Duration, len(t.Delays)),
	}
	for intent, d := range t.Delays {
		scaled.Delays[intent] = scale(d, factor)
	}
	return scaled
}

func scale(d time.Duration, factor float64) time.Duration {
	return time.Duration(float64(d) / factor)
}
