package progress

// SyncStatus classifies the indexer's position against the node tip.
type SyncStatus int

const (
	// NotSyncing means no node tip has been observed, so progress cannot be
	// judged. Typically the chain-sync connection has not produced events yet.
	NotSyncing SyncStatus = iota
	// Syncing means the indexer is catching up to the node tip.
	Syncing
	// Synced means the indexer is within the synced threshold of the node tip.
	Synced
)

func (s SyncStatus) String() string {
	switch s {
	case Syncing:
		return "syncing"
	case Synced:
		return "synced"
	default:
		return "not-syncing"
	}
}

// SyncState is the evaluated state for one window. Percent is the completion
// percentage in [0,100]; it is meaningful while Syncing and pinned to 100
// once Synced.
type SyncState struct {
	Status  SyncStatus
	Percent float64
}

// DefaultSyncedThreshold is the slot distance from the node tip under which
// the indexer counts as caught up. A tunable constant, not derived from
// chain parameters.
const DefaultSyncedThreshold = 100

// Evaluate derives the sync state from one window's statistics using the
// default synced threshold.
func Evaluate(stats IntervalStats) SyncState {
	return EvaluateAt(stats, DefaultSyncedThreshold)
}

// EvaluateAt applies the classification table in order: no node tip observed
// means NotSyncing; a node tip with no indexer tip means Syncing from zero;
// otherwise the slot delta against threshold decides.
//
// The percentage assumes the node slot reflects the node's true tip. When
// both endpoints start near genesis simultaneously the ratio is not
// meaningful; known limitation, left as is.
func EvaluateAt(stats IntervalStats, threshold uint64) SyncState {
	if stats.NodePoint.IsGenesis() {
		return SyncState{Status: NotSyncing}
	}
	if stats.IndexPoint.IsGenesis() {
		return SyncState{Status: Syncing, Percent: 0}
	}
	indexSlot, nodeSlot := stats.IndexPoint.Slot(), stats.NodePoint.Slot()
	if nodeSlot < indexSlot+threshold {
		return SyncState{Status: Synced, Percent: 100}
	}
	return SyncState{Status: Syncing, Percent: 100 * float64(indexSlot) / float64(nodeSlot)}
}
