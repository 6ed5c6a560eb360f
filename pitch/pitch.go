package pitch

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pistofo/jules-virtual-piano/model"
)

// ParseError reports a note identifier that does not name a playable note.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid note identifier: %q", e.Input)
}

var noteRegex = regexp.MustCompile(`^([A-G])([#b]?)(-?[0-9])$`)

// Semitone offset of each natural letter from C.
var letterClass = map[string]model.PitchClass{
	"C": 0, "D": 2, "E": 4, "F": 5, "G": 7, "A": 9, "B": 11,
}

var sharpNames = [12]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var flatNames = [12]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

// Uncommon spellings collapsed to their standard equivalents before
// pitch-class lookup. Chord definitions use a few of these (e.g. the
// diminished 7th of C is properly Bbb).
var enharmonic = map[string]string{
	"Cb":  "B",
	"Fb":  "E",
	"E#":  "F",
	"B#":  "C",
	"Dbb": "C",
	"Ebb": "D",
	"Gbb": "F",
	"Abb": "G",
	"Bbb": "A",
}

var classByName = func() map[string]model.PitchClass {
	m := make(map[string]model.PitchClass)
	for pc := 0; pc < 12; pc++ {
		m[sharpNames[pc]] = model.PitchClass(pc)
		m[flatNames[pc]] = model.PitchClass(pc)
	}
	return m
}()

// Parse converts a note identifier like "C4" or "G#3" to its absolute
// pitch (C4 = 60). The octave digit may be negative ("C-1" = 0).
func Parse(name string) (model.Pitch, error) {
	match := noteRegex.FindStringSubmatch(name)
	if match == nil {
		return 0, &ParseError{Input: name}
	}
	pc := letterClass[match[1]]
	switch match[2] {
	case "#":
		pc = (pc + 1) % 12
	case "b":
		pc = (pc + 11) % 12
	}
	octave, err := strconv.Atoi(match[3])
	if err != nil {
		return 0, &ParseError{Input: name}
	}
	p := (octave+1)*12 + int(pc)
	if p < 0 || p > 127 {
		return 0, &ParseError{Input: name}
	}
	return model.Pitch(p), nil
}

// ParseClass converts an octave-less note name like "C", "Eb" or "Bbb" to
// its pitch class, collapsing uncommon spellings first.
func ParseClass(name string) (model.PitchClass, error) {
	if standard, ok := enharmonic[name]; ok {
		name = standard
	}
	pc, ok := classByName[name]
	if !ok {
		return 0, &ParseError{Input: name}
	}
	return pc, nil
}

// Name returns the display name of p's pitch class.
func Name(p model.Pitch, useFlats bool) string {
	return ClassName(p%12, useFlats)
}

// ClassName returns the display name of a pitch class in the requested
// spelling.
func ClassName(pc model.PitchClass, useFlats bool) string {
	if useFlats {
		return flatNames[pc%12]
	}
	return sharpNames[pc%12]
}

var intervalNames = [...]string{
	"Unison", "Minor 2nd", "Major 2nd", "Minor 3rd", "Major 3rd",
	"Perfect 4th", "Tritone", "Perfect 5th", "Minor 6th", "Major 6th",
	"Minor 7th", "Major 7th", "Octave", "Minor 9th", "Major 9th",
	"Minor 10th", "Major 10th", "Perfect 11th", "Augmented 11th",
	"Perfect 12th", "Minor 13th", "Major 13th",
}

// IntervalName names the interval of the given signed semitone count,
// folding anything two octaves or wider down an octave at a time. The
// catalog stops at a compound 13th; wider leftovers report false.
func IntervalName(semitones int) (string, bool) {
	v := semitones
	if v < 0 {
		v = -v
	}
	for v >= 24 {
		v -= 12
	}
	if v >= len(intervalNames) {
		return "", false
	}
	return intervalNames[v], true
}
