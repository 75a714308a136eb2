package progress

import (
	"testing"

	"github.com/chainscope/syncpulse/pkg/chain"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate_WithinThresholdIsSynced(t *testing.T) {
	stats := IntervalStats{
		IndexPoint: chain.NewPoint(500, "i"),
		NodePoint:  chain.NewPoint(550, "n"),
	}
	assert.Equal(t, Synced, Evaluate(stats).Status)
}

func TestEvaluate_BehindThresholdIsSyncing(t *testing.T) {
	stats := IntervalStats{
		IndexPoint: chain.NewPoint(500, "i"),
		NodePoint:  chain.NewPoint(700, "n"),
	}

	state := Evaluate(stats)
	assert.Equal(t, Syncing, state.Status)
	assert.InDelta(t, 71.43, state.Percent, 0.01)
}

func TestEvaluate_GenesisNodePointIsNotSyncing(t *testing.T) {
	// No node tip observed: progress cannot be judged regardless of the
	// indexer's own point.
	assert.Equal(t, NotSyncing, Evaluate(Zero()).Status)
	assert.Equal(t, NotSyncing, Evaluate(IntervalStats{
		IndexPoint: chain.NewPoint(500, "i"),
	}).Status)
}

func TestEvaluate_GenesisIndexPointIsSyncingFromZero(t *testing.T) {
	state := Evaluate(IntervalStats{NodePoint: chain.NewPoint(700, "n")})
	assert.Equal(t, Syncing, state.Status)
	assert.Zero(t, state.Percent)
}

func TestEvaluate_ThresholdBoundary(t *testing.T) {
	node := chain.NewPoint(1000, "n")

	// Delta 99 is within the threshold, delta 100 is not.
	at := func(indexSlot uint64) SyncStatus {
		return Evaluate(IntervalStats{
			IndexPoint: chain.NewPoint(indexSlot, "i"),
			NodePoint:  node,
		}).Status
	}
	assert.Equal(t, Synced, at(901))
	assert.Equal(t, Syncing, at(900))
}

func TestEvaluateAt_CustomThreshold(t *testing.T) {
	stats := IntervalStats{
		IndexPoint: chain.NewPoint(990, "i"),
		NodePoint:  chain.NewPoint(1000, "n"),
	}
	assert.Equal(t, Synced, EvaluateAt(stats, 100).Status)
	assert.Equal(t, Syncing, EvaluateAt(stats, 5).Status)
}

func TestSyncStatus_String(t *testing.T) {
	assert.Equal(t, "not-syncing", NotSyncing.String())
	assert.Equal(t, "syncing", Syncing.String())
	assert.Equal(t, "synced", Synced.String())
}
