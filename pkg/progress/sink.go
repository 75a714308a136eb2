package progress

import (
	"time"

	"github.com/chainscope/syncpulse/pkg/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Record is the log payload for one reporting window. Constructed right
// before emission and discarded after; never persisted.
type Record struct {
	State  SyncState
	Stats  IntervalStats
	Window time.Duration // duration of the just-drained window
}

// MarshalLogObject renders the record as structured log fields.
func (r Record) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("status", r.State.Status.String())
	if r.State.Status == Syncing {
		enc.AddFloat64("percent", r.State.Percent)
	}
	enc.AddDuration("window", r.Window)
	return r.Stats.MarshalLogObject(enc)
}

// Sink receives one Record per reporting window. NotSyncing windows arrive
// through Warn, everything else through Info. Any concrete logger satisfies
// it; emission is expected to be asynchronous and non-blocking.
type Sink interface {
	Info(Record)
	Warn(Record)
}

// ZapSink emits records through a zap logger.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink wraps the given logger. A nil logger falls back to the process
// logger built by logging.New.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		l, err := logging.New()
		if err != nil {
			l = zap.NewNop()
		}
		logger = l
	}
	return &ZapSink{logger: logger}
}

func (s *ZapSink) Info(r Record) { s.logger.Info("sync progress", zap.Inline(r)) }

func (s *ZapSink) Warn(r Record) { s.logger.Warn("sync progress", zap.Inline(r)) }
