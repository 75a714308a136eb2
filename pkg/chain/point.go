package chain

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Point is a position on a chain: either the genesis sentinel or a concrete
// (slot, block hash) pair. The zero value is genesis. Points order totally by
// slot number, with genesis as the bottom element.
type Point struct {
	slot     uint64
	hash     string
	concrete bool
}

// Genesis returns the sentinel point that precedes every concrete point.
func Genesis() Point { return Point{} }

// NewPoint returns the concrete point at the given slot and block hash.
func NewPoint(slot uint64, hash string) Point {
	return Point{slot: slot, hash: hash, concrete: true}
}

func (p Point) IsGenesis() bool { return !p.concrete }

// Slot is zero for genesis.
func (p Point) Slot() uint64 { return p.slot }

// Hash is empty for genesis.
func (p Point) Hash() string { return p.hash }

// Before reports whether p orders strictly before q. Genesis precedes every
// concrete point and never precedes itself.
func (p Point) Before(q Point) bool {
	if !p.concrete {
		return q.concrete
	}
	if !q.concrete {
		return false
	}
	return p.slot < q.slot
}

func (p Point) String() string {
	if !p.concrete {
		return "genesis"
	}
	return fmt.Sprintf("%d@%s", p.slot, p.hash)
}

// MarshalLogObject renders the point as a structured log field.
func (p Point) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if !p.concrete {
		enc.AddBool("genesis", true)
		return nil
	}
	enc.AddUint64("slot", p.slot)
	enc.AddString("hash", p.hash)
	return nil
}
