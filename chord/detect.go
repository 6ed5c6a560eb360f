// Package chord names the chord formed by a set of simultaneously active
// notes. Note sets canonicalize to their most compact stacking, whose
// interval pattern is matched against a fixed table of named shapes.
package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pistofo/jules-virtual-piano/model"
	"github.com/pistofo/jules-virtual-piano/pitch"
	"github.com/pistofo/jules-virtual-piano/stacking"
)

// Clusters this dense never name cleanly, and the permutation search is
// factorial. Cutting over to the fallback label at 9 caps the worst case
// at 8! orderings.
const soupThreshold = 9

// Detect names the chord formed by the given note identifiers (e.g.
// "C4", "Eb3"). The returned string is empty exactly when notes is empty.
// Duplicate octaves of the same pitch class collapse to one entry; the
// lowest note supplies the bass for inversion slashes. Identifiers that
// fail to parse surface a *pitch.ParseError.
func Detect(notes []string, useFlats bool) (string, error) {
	if len(notes) == 0 {
		return "", nil
	}

	pitches := make([]model.Pitch, 0, len(notes))
	for _, n := range notes {
		p, err := pitch.Parse(n)
		if err != nil {
			return "", err
		}
		pitches = append(pitches, p)
	}
	sort.Slice(pitches, func(i, j int) bool {
		return pitches[i] < pitches[j]
	})
	bass := pitches[0]

	if len(pitches) == 1 {
		return pitch.Name(bass, useFlats), nil
	}
	if len(pitches) == 2 {
		label, ok := pitch.IntervalName(int(pitches[1]) - int(pitches[0]))
		if !ok {
			label = "Interval"
		}
		low := pitch.Name(pitches[0], useFlats)
		high := pitch.Name(pitches[1], useFlats)
		return fmt.Sprintf("%v (%v, %v)", label, low, high), nil
	}

	// Distinct pitch classes, in order of first appearance bass-upwards.
	var pcs []model.PitchClass
	seen := make(map[model.PitchClass]bool)
	for _, p := range pitches {
		pc := p % 12
		if !seen[pc] {
			seen[pc] = true
			pcs = append(pcs, pc)
		}
	}
	bassClass := bass % 12

	if len(pcs) == 1 {
		return pitch.ClassName(bassClass, useFlats), nil
	}
	if len(pcs) >= soupThreshold {
		return pitch.ClassName(bassClass, useFlats) + " Note Soup", nil
	}

	ordering := stacking.Canonicalize(pcs)
	template, ok := Lookup(stacking.PatternOf(ordering))
	if !ok {
		names := make([]string, len(pcs))
		for i, pc := range pcs {
			names[i] = pitch.ClassName(pc, useFlats)
		}
		return "(" + strings.Join(names, ", ") + ")", nil
	}

	root := ordering[template.RootIndex]
	if template.SymmetricRoot {
		root = bassClass
	}
	name := pitch.ClassName(root, useFlats) + template.Name
	if root != bassClass {
		name += "/" + pitch.ClassName(bassClass, useFlats)
	}
	return name, nil
}
