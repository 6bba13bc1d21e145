package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceTracker(t *testing.T) {
	tracker := newSequenceTracker(0)
	assert.Equal(t, uint64(0), tracker.FirstGap())
	assert.Equal(t, uint64(0), tracker.MarkedCount())
	assert.Equal(t, uint64(0), tracker.MaxSeq())

	tracker.Mark(1)
	tracker.Mark(2)
	tracker.Mark(3)
	assert.Equal(t, uint64(0), tracker.FirstGap())
	assert.Equal(t, uint64(3), tracker.MarkedCount())
	assert.Equal(t, uint64(3), tracker.MaxSeq())

	// skipping one leaves a visible gap until it arrives
	tracker.Mark(5)
	assert.Equal(t, uint64(4), tracker.FirstGap())
	tracker.Mark(4)
	assert.Equal(t, uint64(0), tracker.FirstGap())
	assert.Equal(t, uint64(5), tracker.MarkedCount())
	assert.Equal(t, uint64(5), tracker.MaxSeq())

	// marking twice counts once
	tracker.Mark(5)
	assert.Equal(t, uint64(5), tracker.MarkedCount())
}

func TestSequenceTrackerFirstGapAtStart(t *testing.T) {
	tracker := newSequenceTracker(0)
	tracker.Mark(5)
	assert.Equal(t, uint64(1), tracker.FirstGap())
}

func TestSequenceTrackerBase(t *testing.T) {
	tracker := newSequenceTracker(10)
	assert.Equal(t, uint64(10), tracker.MaxSeq())

	// sequences journaled by earlier runs are ignored
	tracker.Mark(5)
	tracker.Mark(10)
	assert.Equal(t, uint64(0), tracker.MarkedCount())
	assert.Equal(t, uint64(10), tracker.MaxSeq())

	tracker.Mark(11)
	assert.Equal(t, uint64(0), tracker.FirstGap())
	tracker.Mark(13)
	assert.Equal(t, uint64(12), tracker.FirstGap())
	assert.Equal(t, uint64(2), tracker.MarkedCount())
	assert.Equal(t, uint64(13), tracker.MaxSeq())

	tracker.Mark(12)
	assert.Equal(t, uint64(0), tracker.FirstGap())
	assert.Equal(t, uint64(3), tracker.MarkedCount())
}
