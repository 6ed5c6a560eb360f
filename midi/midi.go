package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/pistofo/jules-virtual-piano/model"
	"github.com/pistofo/jules-virtual-piano/pitch"
	"github.com/pistofo/jules-virtual-piano/util"
)

// Snapshot is the set of notes sounding together from OffsetMicros until
// the next snapshot.
type Snapshot struct {
	OffsetMicros int64
	Notes        model.Notes
}

type reducedEvent struct {
	offsetMicros int64
	isNoteOff    bool
	note         uint8
}

// ReadFile parses a standard MIDI file.
func ReadFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file... %v", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file... %v", err)
	}
	return res, nil
}

// NoteName converts a MIDI note number to a note identifier such as "C4"
// (60 = C4), always in sharp spelling.
func NoteName(key uint8) string {
	octave := int(key)/12 - 1
	return pitch.ClassName(key%12, false) + strconv.Itoa(octave)
}

// NoteNames converts a set of MIDI note numbers to identifiers.
func NoteNames(notes model.Notes) []string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = NoteName(n)
	}
	return names
}

// Snapshots reduces an SMF to the time-ordered sequence of distinct
// simultaneous note sets.
func Snapshots(s *smf.SMF) []Snapshot {
	var events []reducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, reducedEvent{
					offsetMicros: s.TimeAt(absTicks),
					note:         key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, reducedEvent{
					offsetMicros: s.TimeAt(absTicks),
					isNoteOff:    true,
					note:         key,
				})
			}
		}
	}
	return reduce(events)
}

// reduce replays note on/off events against a pressed-note map and emits a
// snapshot at every offset where the sounding set changed. Note offs sort
// first within an offset so retriggered notes survive the boundary.
func reduce(events []reducedEvent) []Snapshot {
	sort.Slice(events, func(i, j int) bool {
		if events[i].offsetMicros != events[j].offsetMicros {
			return events[i].offsetMicros < events[j].offsetMicros
		}
		return events[i].isNoteOff
	})

	var snapshots []Snapshot
	pressed := make(map[uint8]bool)
	for i, evt := range events {
		if evt.isNoteOff {
			delete(pressed, evt.note)
		} else {
			pressed[evt.note] = true
		}
		// flush once all events at this offset have been applied
		if i+1 < len(events) && events[i+1].offsetMicros == evt.offsetMicros {
			continue
		}
		notes := util.GetKeys(pressed)
		sort.Slice(notes, func(a, b int) bool { return notes[a] < notes[b] })
		if len(notes) == 0 {
			continue
		}
		if n := len(snapshots); n > 0 && sameNotes(snapshots[n-1].Notes, notes) {
			continue
		}
		snapshots = append(snapshots, Snapshot{OffsetMicros: evt.offsetMicros, Notes: notes})
	}
	return snapshots
}

func sameNotes(a, b model.Notes) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
