package progress

import (
	"github.com/chainscope/syncpulse/pkg/chain"
	"go.uber.org/zap/zapcore"
)

// IntervalStats accumulates the sync events observed during one reporting
// window. The window is owned by a single reporter goroutine; nothing mutates
// it concurrently.
type IntervalStats struct {
	BlocksApplied    uint64
	RollbacksApplied uint64
	IndexPoint       chain.Point // last-seen tip of the indexer's own chain-sync cursor
	NodePoint        chain.Point // last-seen tip reported by the followed node
}

// Zero returns the identity element for Combine: zero counters, both points
// at genesis.
func Zero() IntervalStats { return IntervalStats{} }

// Combine merges two windows: counters add, point fields take the right-hand
// value when it is concrete. Windows are folded left-to-right, so within one
// drain the chronologically last event's points win. The right bias over two
// concrete points is deliberate and pinned by tests; changing it changes
// which tip gets reported when several events land in one window.
func Combine(a, b IntervalStats) IntervalStats {
	return IntervalStats{
		BlocksApplied:    a.BlocksApplied + b.BlocksApplied,
		RollbacksApplied: a.RollbacksApplied + b.RollbacksApplied,
		IndexPoint:       pickPoint(a.IndexPoint, b.IndexPoint),
		NodePoint:        pickPoint(a.NodePoint, b.NodePoint),
	}
}

// pickPoint keeps y unless it is genesis. Genesis is the bottom element of
// the point order, so combining never loses a concrete point.
func pickPoint(x, y chain.Point) chain.Point {
	if y.IsGenesis() {
		return x
	}
	return y
}

// MarshalLogObject renders the window as structured log fields.
func (s IntervalStats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("blocksApplied", s.BlocksApplied)
	enc.AddUint64("rollbacksApplied", s.RollbacksApplied)
	if err := enc.AddObject("indexPoint", s.IndexPoint); err != nil {
		return err
	}
	return enc.AddObject("nodePoint", s.NodePoint)
}
