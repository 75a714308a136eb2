package progress

import "github.com/chainscope/syncpulse/pkg/chain"

// Event is one observation from the indexer's chain-sync loop. Exactly three
// kinds exist: Applied, RolledBack and Resumed.
type Event interface {
	stats() IntervalStats
}

// Applied reports one block applied forward.
type Applied struct {
	Tip     chain.Point // indexer tip after applying the block
	NodeTip chain.Point // node tip at the time of the application
}

// RolledBack reports the indexer reverting to an earlier point after a fork.
type RolledBack struct {
	Tip     chain.Point // indexer tip after the rollback
	NodeTip chain.Point // node tip at the time of the rollback
}

// Resumed reports the indexer reconnecting and continuing from a point. It
// carries no fresh node-tip observation, so it leaves the window's node point
// untouched; resumes are rare and followed shortly by Applied events.
type Resumed struct {
	Tip chain.Point
}

func (e Applied) stats() IntervalStats {
	return IntervalStats{BlocksApplied: 1, IndexPoint: e.Tip, NodePoint: e.NodeTip}
}

func (e RolledBack) stats() IntervalStats {
	return IntervalStats{RollbacksApplied: 1, IndexPoint: e.Tip, NodePoint: e.NodeTip}
}

func (e Resumed) stats() IntervalStats {
	return IntervalStats{IndexPoint: e.Tip, NodePoint: chain.Genesis()}
}

// Classify maps one raw sync event to the single-event statistics record it
// contributes to the current window. Every well-formed event classifies to
// exactly one record; there are no failure modes.
func Classify(ev Event) IntervalStats { return ev.stats() }
