package progress

import (
	"context"
	"time"

	"github.com/chainscope/syncpulse/pkg/broadcast"
	"github.com/chainscope/syncpulse/pkg/utils"
)

// Defaults for the two polling tiers: poll fast while actively catching up
// for responsive visibility, back off once caught up or stalled to keep log
// volume down.
const (
	DefaultShortDelay = 30 * time.Second
	DefaultLongDelay  = 300 * time.Second
)

// Options holds the reporter tunables.
type Options struct {
	ShortDelay      time.Duration // cadence while catching up
	LongDelay       time.Duration // cadence once caught up or stalled
	SyncedThreshold uint64        // slot distance counting as caught up
}

func DefaultOptions() Options {
	return Options{
		ShortDelay:      DefaultShortDelay,
		LongDelay:       DefaultLongDelay,
		SyncedThreshold: DefaultSyncedThreshold,
	}
}

// OptionsFromEnv returns the defaults with SYNC_SHORT_DELAY, SYNC_LONG_DELAY
// and SYNC_SYNCED_THRESHOLD environment overrides applied.
func OptionsFromEnv() Options {
	return Options{
		ShortDelay:      utils.EnvDuration("SYNC_SHORT_DELAY", DefaultShortDelay),
		LongDelay:       utils.EnvDuration("SYNC_LONG_DELAY", DefaultLongDelay),
		SyncedThreshold: uint64(utils.EnvInt("SYNC_SYNCED_THRESHOLD", DefaultSyncedThreshold)),
	}
}

// Reporter periodically drains pending sync events from its broadcast
// cursor, folds them into one IntervalStats window, evaluates the sync state
// and emits a summary record to its sink. It is an explicit state machine
// over {current delay tier, cursor}: Step advances it by one iteration, Run
// schedules Step on the adaptive cadence.
type Reporter struct {
	cursor *broadcast.Cursor[Event]
	sink   Sink
	opts   Options
	delay  time.Duration
}

// New subscribes a reporter to hub and starts it in the short tier. The
// cursor is private to the reporter; other subscribers on the same hub keep
// their own independent view of the stream. Zero option fields fall back to
// the defaults.
func New(hub *broadcast.Hub[Event], sink Sink, opts Options) *Reporter {
	if opts.ShortDelay <= 0 {
		opts.ShortDelay = DefaultShortDelay
	}
	if opts.LongDelay <= 0 {
		opts.LongDelay = DefaultLongDelay
	}
	if opts.SyncedThreshold == 0 {
		opts.SyncedThreshold = DefaultSyncedThreshold
	}
	return &Reporter{
		cursor: hub.Subscribe(),
		sink:   sink,
		opts:   opts,
		delay:  opts.ShortDelay,
	}
}

// Delay reports the current polling tier.
func (r *Reporter) Delay() time.Duration { return r.delay }

// Step runs one reporter iteration without sleeping: drain the cursor until
// empty, evaluate, emit one record and transition the delay tier. Syncing
// keeps the short tier; Synced and NotSyncing move to the long tier. The
// emitted record is returned for callers that schedule Step themselves.
func (r *Reporter) Step() Record {
	stats := r.drain()
	state := EvaluateAt(stats, r.opts.SyncedThreshold)
	rec := Record{State: state, Stats: stats, Window: r.delay}
	switch state.Status {
	case Syncing:
		r.sink.Info(rec)
		r.delay = r.opts.ShortDelay
	case Synced:
		r.sink.Info(rec)
		r.delay = r.opts.LongDelay
	default:
		r.sink.Warn(rec)
		r.delay = r.opts.LongDelay
	}
	return rec
}

// drain folds every pending event into one window, seeded at the identity
// element. An empty cursor yields the identity; that is the normal "no
// events yet" outcome, not an error.
func (r *Reporter) drain() IntervalStats {
	acc := Zero()
	for {
		ev, ok := r.cursor.TryNext()
		if !ok {
			return acc
		}
		acc = Combine(acc, Classify(ev))
	}
}

// Run blocks, stepping on the adaptive cadence until ctx is cancelled. It is
// the reporter's only long-running entry point; it has no terminal state of
// its own and no failure modes.
func (r *Reporter) Run(ctx context.Context) {
	timer := time.NewTimer(r.delay)
	defer timer.Stop()
	defer r.cursor.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			r.Step()
			timer.Reset(r.delay)
		}
	}
}
