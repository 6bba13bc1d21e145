package worker

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// sequenceTracker tracks which event sequence numbers reached the
// journal. Backed by a bitset so gap scans stay cheap. Sequences at or
// below base were journaled by earlier runs and are not tracked.
type sequenceTracker struct {
	mu   sync.Mutex
	bits *bitset.BitSet
	base uint64
	max  uint64
}

func newSequenceTracker(base uint64) *sequenceTracker {
	return &sequenceTracker{
		bits: bitset.New(1024),
		base: base,
		max:  base,
	}
}

// Mark record the sequence as journaled
func (t *sequenceTracker) Mark(seq uint64) {
	if seq <= t.base {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bits.Set(uint(seq - t.base))
	if seq > t.max {
		t.max = seq
	}
}

// FirstGap returns the smallest missing sequence, zero when contiguous
func (t *sequenceTracker) FirstGap() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.max == t.base {
		return 0
	}
	idx, found := t.bits.NextClear(1)
	if found && t.base+uint64(idx) < t.max {
		return t.base + uint64(idx)
	}
	return 0
}

// MarkedCount returns how many sequences were journaled this run
func (t *sequenceTracker) MarkedCount() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return uint64(t.bits.Count())
}

// MaxSeq returns the highest journaled sequence
func (t *sequenceTracker) MaxSeq() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.max
}
