package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_GenesisIsBottom(t *testing.T) {
	g := Genesis()
	p := NewPoint(42, "abcd")

	assert.True(t, g.IsGenesis())
	assert.False(t, p.IsGenesis())
	assert.True(t, g.Before(p))
	assert.False(t, p.Before(g))
	assert.False(t, g.Before(g))
}

func TestPoint_OrderBySlot(t *testing.T) {
	low := NewPoint(10, "aa")
	high := NewPoint(20, "bb")

	assert.True(t, low.Before(high))
	assert.False(t, high.Before(low))
	assert.False(t, low.Before(NewPoint(10, "cc")))
}

func TestPoint_ZeroValueIsGenesis(t *testing.T) {
	var p Point
	assert.True(t, p.IsGenesis())
	assert.Equal(t, "genesis", p.String())
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "42@abcd", NewPoint(42, "abcd").String())
}
