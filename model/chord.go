package model

// IntervalPattern holds the forward semitone distances between adjacent
// pitch classes in some ordering, each in [1, 11]. An ordering of n pitch
// classes has a pattern of length n-1.
type IntervalPattern = []uint8

// ChordTemplate is one entry of the chord database. RootIndex is the
// position, within the canonical ordering computed when the database was
// built, of the pitch class the definition nominated as the chord's root.
// SymmetricRoot marks shapes that repeat under rotation (dim7, augmented),
// where any member is an equally valid root.
type ChordTemplate struct {
	Name          string
	Pattern       IntervalPattern
	RootIndex     int
	SymmetricRoot bool
}

// PatternsEqual reports whether two interval patterns have identical
// length and contents.
func PatternsEqual(a, b IntervalPattern) bool {
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
