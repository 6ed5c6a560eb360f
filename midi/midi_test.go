package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pistofo/jules-virtual-piano/model"
)

func TestNoteName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("C4", NoteName(60))
	assert.Equal("C#4", NoteName(61))
	assert.Equal("A0", NoteName(21))
	assert.Equal("G9", NoteName(127))
	assert.Equal("C-1", NoteName(0))
}

func TestNoteNames(t *testing.T) {
	assert.Equal(t, []string{"C4", "E4", "G4"}, NoteNames(model.Notes{60, 64, 67}))
}

func TestReduceTracksSimultaneousNotes(t *testing.T) {
	assert := assert.New(t)

	events := []reducedEvent{
		{offsetMicros: 0, note: 60},
		{offsetMicros: 0, note: 64},
		{offsetMicros: 0, note: 67},
		{offsetMicros: 500000, isNoteOff: true, note: 67},
		{offsetMicros: 500000, note: 69},
		{offsetMicros: 1000000, isNoteOff: true, note: 60},
		{offsetMicros: 1000000, isNoteOff: true, note: 64},
		{offsetMicros: 1000000, isNoteOff: true, note: 69},
	}
	snapshots := reduce(events)

	assert.Equal([]Snapshot{
		{OffsetMicros: 0, Notes: model.Notes{60, 64, 67}},
		{OffsetMicros: 500000, Notes: model.Notes{60, 64, 69}},
	}, snapshots)
}

func TestReduceOrdersNoteOffsFirstWithinAnOffset(t *testing.T) {
	assert := assert.New(t)

	// retrigger of the same note at one offset must survive
	events := []reducedEvent{
		{offsetMicros: 0, note: 60},
		{offsetMicros: 100, note: 60},
		{offsetMicros: 100, isNoteOff: true, note: 60},
	}
	snapshots := reduce(events)

	assert.Equal([]Snapshot{
		{OffsetMicros: 0, Notes: model.Notes{60}},
	}, snapshots)
}

func TestReduceSkipsUnchangedAndEmptySets(t *testing.T) {
	assert := assert.New(t)

	events := []reducedEvent{
		{offsetMicros: 0, note: 60},
		{offsetMicros: 100, isNoteOff: true, note: 72}, // stray off, set unchanged
		{offsetMicros: 200, isNoteOff: true, note: 60}, // set empties
	}
	snapshots := reduce(events)

	assert.Equal([]Snapshot{
		{OffsetMicros: 0, Notes: model.Notes{60}},
	}, snapshots)
}
