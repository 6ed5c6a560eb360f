package model

// Pitch is a MIDI-style absolute pitch in [0, 127].
type Pitch = uint8

// PitchClass is one of the 12 chromatic note identities, in [0, 11].
type PitchClass = uint8

type Notes = []uint8
