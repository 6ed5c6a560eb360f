package chord

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pistofo/jules-virtual-piano/model"
	"github.com/pistofo/jules-virtual-piano/pitch"
	"github.com/pistofo/jules-virtual-piano/stacking"
)

var (
	buildOnce sync.Once
	templates []model.ChordTemplate
)

// Templates returns the chord template database, compiling the authored
// definitions on first use. The slice is never mutated afterwards.
func Templates() []model.ChordTemplate {
	buildOnce.Do(func() {
		for _, def := range definitions {
			t, err := compile(def)
			if err != nil {
				panic(fmt.Sprintf("bad chord definition %q (%v): %v", def.name, def.notes, err))
			}
			templates = append(templates, t)
		}
	})
	return templates
}

// Lookup returns the first template whose pattern equals p.
func Lookup(p model.IntervalPattern) (model.ChordTemplate, bool) {
	for _, t := range Templates() {
		if model.PatternsEqual(t.Pattern, p) {
			return t, true
		}
	}
	return model.ChordTemplate{}, false
}

func compile(def definition) (model.ChordTemplate, error) {
	var t model.ChordTemplate

	var pcs []model.PitchClass
	seen := make(map[model.PitchClass]bool)
	for _, name := range strings.Split(def.notes, ",") {
		pc, err := pitch.ParseClass(strings.TrimSpace(name))
		if err != nil {
			return t, err
		}
		if !seen[pc] {
			seen[pc] = true
			pcs = append(pcs, pc)
		}
	}
	if len(pcs) < 2 {
		return t, fmt.Errorf("need at least 2 distinct pitch classes, got %v", len(pcs))
	}

	root := pcs[0]
	ordering := stacking.Canonicalize(pcs)
	rootIndex := -1
	for i, pc := range ordering {
		if pc == root {
			rootIndex = i
			break
		}
	}

	t.Name = def.name
	t.Pattern = stacking.PatternOf(ordering)
	t.RootIndex = rootIndex
	t.SymmetricRoot = def.symmetricRoot
	return t, nil
}
