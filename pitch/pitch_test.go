package pitch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsesNaturalsAndSharps(t *testing.T) {
	assert := assert.New(t)

	cases := map[string]uint8{
		"C4":  60,
		"C#4": 61,
		"A0":  21,
		"G#3": 56,
		"B7":  107,
		"C-1": 0,
		"G9":  127,
		"Eb4": 63,
		"Bb3": 58,
	}
	for name, want := range cases {
		got, err := Parse(name)
		assert.NoError(err)
		assert.Equal(want, got, "parsing %v", name)
	}
}

func TestParseRejectsMalformedIdentifiers(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"", "H4", "Cbb4", "C##4", "C", "C10", "c4", "4C", "G#9"} {
		_, err := Parse(name)
		assert.Error(err, "parsing %v", name)

		var parseErr *ParseError
		assert.True(errors.As(err, &parseErr), "parsing %v", name)
	}
}

func TestParseClassCollapsesEnharmonics(t *testing.T) {
	assert := assert.New(t)

	cases := map[string]uint8{
		"C":   0,
		"Db":  1,
		"C#":  1,
		"Eb":  3,
		"E#":  5,
		"Cb":  11,
		"Fb":  4,
		"B#":  0,
		"Bbb": 9,
		"Gbb": 5,
	}
	for name, want := range cases {
		got, err := ParseClass(name)
		assert.NoError(err)
		assert.Equal(want, got, "parsing %v", name)
	}

	_, err := ParseClass("X")
	assert.Error(err)
}

func TestSpellingTables(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("C#", ClassName(1, false))
	assert.Equal("Db", ClassName(1, true))
	assert.Equal("A#", ClassName(10, false))
	assert.Equal("Bb", ClassName(10, true))
	assert.Equal("C", ClassName(0, true))
	assert.Equal("F#", Name(66, false))
}

func TestIntervalNames(t *testing.T) {
	assert := assert.New(t)

	cases := map[int]string{
		0:   "Unison",
		7:   "Perfect 5th",
		-7:  "Perfect 5th",
		3:   "Minor 3rd",
		12:  "Octave",
		14:  "Major 9th",
		21:  "Major 13th",
		26:  "Major 9th", // folds an octave downward
		-12: "Octave",
	}
	for semitones, want := range cases {
		got, ok := IntervalName(semitones)
		assert.True(ok, "interval %v", semitones)
		assert.Equal(want, got, "interval %v", semitones)
	}

	// the leftover just past a compound 13th has no name
	_, ok := IntervalName(22)
	assert.False(ok)
	_, ok = IntervalName(23)
	assert.False(ok)
}
