// Package engine schedules dialogue turns for one widget session.
//
// Turn lifecycle:
//
//	Idle -> Classifying (synchronous) -> Pending (status rotating) -> Finalized -> Idle
//
// Submitting appends the user's message, classifies it and updates the
// conversation context, then parks a rotating status turn behind two timers:
// one cycles the status text, the other replaces the status with the
// synthesized reply. Closing the session cancels both timers before touching
// any state, so a stale timer can never fire into a dead session.
package engine

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/insightlane/concierge/internal/classifier"
	"github.com/insightlane/concierge/internal/convo"
	"github.com/insightlane/concierge/internal/respond"
	"github.com/insightlane/concierge/internal/stats"
)

// Engine is the turn scheduler for one open widget. One pending turn at a
// time; a second submission while pending is dropped, not queued.
type Engine struct {
	mu     sync.Mutex
	locale respond.Locale
	timing Timing
	log    *zap.Logger
	stats  *stats.Collector

	onTrialRequest func()
	onUpdate       func()

	ctx        convo.Context
	transcript []convo.Turn

	pending bool
	closed  bool
	// gen invalidates timer callbacks scheduled for an earlier turn;
	// incremented on finalize and close.
	gen uint64

	pendingIntent classifier.Intent
	pendingTone   classifier.Tone
	pendingRaw    string

	statusID      string
	statusPhrases []string
	statusIdx     int
	statusTimer   *time.Timer
	finalizeTimer *time.Timer
}

// Config configures a session engine.
type Config struct {
	// Locale selects vocabulary and response tables. Defaults to Polish.
	Locale respond.Locale

	// Timing overrides the production delays; zero value means defaults.
	Timing Timing

	// Logger receives structured engine events. Nil means no logging.
	Logger *zap.Logger

	// OnTrialRequest fires synchronously when a turn classifies as an
	// explicit trial request.
	OnTrialRequest func()

	// OnUpdate is called after every transcript mutation so the host can
	// re-render. Called outside the engine lock.
	OnUpdate func()
}

// New creates an idle engine with a fresh conversation context.
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = &Config{}
	}
	locale := cfg.Locale
	if locale == "" {
		locale = respond.LocalePL
	}
	timing := cfg.Timing
	if timing.StatusInterval == 0 {
		timing = DefaultTiming()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		locale:         locale,
		timing:         timing,
		log:            log,
		stats:          stats.NewCollector(),
		onTrialRequest: cfg.OnTrialRequest,
		onUpdate:       cfg.OnUpdate,
		ctx:            convo.NewContext(),
	}
}

// CanSubmit reports whether input would currently be accepted: non-blank,
// no turn in flight, session open.
func (e *Engine) CanSubmit(input string) bool {
	if strings.TrimSpace(input) == "" {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.pending && !e.closed
}

// Submit starts a turn for text. It returns false when the submission is
// rejected: blank input, a turn already pending, or a closed session.
func (e *Engine) Submit(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false
	}
	if e.pending {
		e.stats.RecordRejected()
		e.mu.Unlock()
		e.log.Debug("submission dropped, turn in flight")
		return false
	}

	e.transcript = append(e.transcript, convo.NewTurn(convo.AuthorUser, convo.KindMessage, text))

	tone := classifier.ClassifyTone(text)
	intent := classifier.ClassifyIntent(text)
	e.ctx = convo.Update(e.ctx, intent, tone, text)
	e.stats.RecordTurn(intent, tone)

	e.pending = true
	e.pendingIntent = intent
	e.pendingTone = tone
	e.pendingRaw = text

	status := convo.NewTurn(convo.AuthorAssistant, convo.KindStatus, "")
	e.statusPhrases = respond.StatusPhrases(e.locale, intent)
	e.statusIdx = 0
	status.Text = e.statusPhrases[0]
	e.statusID = status.ID
	e.transcript = append(e.transcript, status)

	gen := e.gen
	e.statusTimer = time.AfterFunc(e.timing.StatusInterval, func() { e.rotateStatus(gen) })
	e.finalizeTimer = time.AfterFunc(e.timing.DelayFor(intent), func() { e.finalize(gen) })

	e.log.Info("turn started",
		zap.String("intent", intent.String()),
		zap.String("tone", tone.String()),
		zap.String("stage", string(e.ctx.Stage)),
		zap.Duration("delay", e.timing.DelayFor(intent)),
	)

	trial := intent == classifier.IntentCTATrial
	e.mu.Unlock()

	if trial && e.onTrialRequest != nil {
		e.onTrialRequest()
	}
	e.notify()
	return true
}

// rotateStatus advances the status turn's text to the next phrase,
// wrapping cyclically, and reschedules itself.
func (e *Engine) rotateStatus(gen uint64) {
	e.mu.Lock()
	if e.closed || !e.pending || gen != e.gen {
		e.mu.Unlock()
		return
	}
	e.statusIdx = (e.statusIdx + 1) % len(e.statusPhrases)
	for i := range e.transcript {
		if e.transcript[i].ID == e.statusID {
			e.transcript[i].Text = e.statusPhrases[e.statusIdx]
			break
		}
	}
	e.statusTimer = time.AfterFunc(e.timing.StatusInterval, func() { e.rotateStatus(gen) })
	e.mu.Unlock()

	e.notify()
}

// finalize replaces the status turn with the synthesized reply.
func (e *Engine) finalize(gen uint64) {
	e.mu.Lock()
	if e.closed || !e.pending || gen != e.gen {
		e.mu.Unlock()
		return
	}
	if e.statusTimer != nil {
		e.statusTimer.Stop()
		e.statusTimer = nil
	}
	e.finalizeTimer = nil
	e.removeStatusTurn()

	reply := respond.Synthesize(e.locale, e.pendingIntent, e.pendingRaw, e.pendingTone, e.ctx)
	text := reply.Body + "\n\n" + reply.NextStep
	e.transcript = append(e.transcript, convo.NewTurn(convo.AuthorAssistant, convo.KindMessage, text))

	e.pending = false
	e.gen++

	e.log.Info("turn finalized", zap.String("intent", e.pendingIntent.String()))
	e.mu.Unlock()

	e.notify()
}

// Close cancels any in-flight turn and makes the engine reject all further
// submissions. Both timers are stopped before any state changes; the
// partially visible status turn is removed without a reply. Idempotent.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.gen++

	if e.statusTimer != nil {
		e.statusTimer.Stop()
		e.statusTimer = nil
	}
	if e.finalizeTimer != nil {
		e.finalizeTimer.Stop()
		e.finalizeTimer = nil
	}

	wasPending := e.pending
	if e.pending {
		e.removeStatusTurn()
		e.pending = false
		e.stats.RecordCancelled()
	}
	e.mu.Unlock()

	if wasPending {
		e.log.Info("turn cancelled by close")
		e.notify()
	}
	e.log.Debug("session closed")
}

// Transcript returns a copy of the transcript, oldest turn first.
func (e *Engine) Transcript() []convo.Turn {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]convo.Turn, len(e.transcript))
	copy(out, e.transcript)
	return out
}

// Context returns the current conversation context.
func (e *Engine) Context() convo.Context {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctx
}

// Pending reports whether a turn is in flight.
func (e *Engine) Pending() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending
}

// Stats returns a snapshot of the session metrics.
func (e *Engine) Stats() stats.Snapshot {
	return e.stats.Collect()
}

// removeStatusTurn deletes the pending status turn from the transcript.
// Caller holds the lock.
func (e *Engine) removeStatusTurn() {
	for i := range e.transcript {
		if e.transcript[i].ID == e.statusID {
			e.transcript = append(e.transcript[:i], e.transcript[i+1:]...)
			break
		}
	}
	e.statusID = ""
}

func (e *Engine) notify() {
	if e.onUpdate != nil {
		e.onUpdate()
	}
}
