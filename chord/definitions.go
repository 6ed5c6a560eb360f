package chord

// A definition names a chord shape by example, spelled from a C root. The
// first note is the shape's nominal root. symmetricRoot marks shapes that
// repeat under rotation, where convention names the chord after whichever
// member is lowest.
type definition struct {
	name          string
	notes         string
	symmetricRoot bool
}

// Order matters: lookup keeps the first template whose pattern matches.
// Shapes whose pitch-class sets coincide with an earlier entry under
// inversion (6 vs m7, m6 vs m7b5, sus2 vs sus4) are deliberately absent,
// since they would canonicalize to the same pattern and never match.
var definitions = []definition{
	{name: "", notes: "C,E,G"},
	{name: "m", notes: "C,Eb,G"},
	{name: "dim", notes: "C,Eb,Gb"},
	{name: "+", notes: "C,E,G#", symmetricRoot: true},
	{name: "sus4", notes: "C,F,G"},
	{name: "7", notes: "C,E,G,Bb"},
	{name: "Maj7", notes: "C,E,G,B"},
	{name: "m7", notes: "C,Eb,G,Bb"},
	{name: "mMaj7", notes: "C,Eb,G,B"},
	{name: "dim7", notes: "C,Eb,Gb,Bbb", symmetricRoot: true},
	{name: "m7b5", notes: "C,Eb,Gb,Bb"},
	{name: "7sus4", notes: "C,F,G,Bb"},
	{name: "7b5", notes: "C,E,Gb,Bb"},
	{name: "7#5", notes: "C,E,G#,Bb"},
	{name: "add9", notes: "C,D,E,G"},
	{name: "madd9", notes: "C,D,Eb,G"},
	{name: "9", notes: "C,E,G,Bb,D"},
	{name: "Maj9", notes: "C,E,G,B,D"},
	{name: "m9", notes: "C,Eb,G,Bb,D"},
	{name: "6/9", notes: "C,D,E,G,A"},
	{name: "7b9", notes: "C,E,G,Bb,Db"},
	{name: "7#9", notes: "C,E,G,Bb,D#"},
	{name: "11", notes: "C,E,G,Bb,D,F"},
	{name: "m11", notes: "C,Eb,G,Bb,D,F"},
	{name: "13", notes: "C,E,G,Bb,D,F,A"},
	{name: "13", notes: "C,E,G,Bb,D,A"},
	{name: "13", notes: "C,E,G,Bb,A"},
}
