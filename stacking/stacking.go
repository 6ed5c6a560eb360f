// Package stacking picks the canonical ordering of a pitch-class set: the
// most compact ascending arrangement, which matches the conventional
// close-voiced spelling of a chord regardless of how it was voiced.
package stacking

import (
	"strconv"
	"strings"

	"github.com/pistofo/jules-virtual-piano/model"
	"github.com/pistofo/jules-virtual-piano/permute"
	"github.com/pistofo/jules-virtual-piano/util"
	"golang.org/x/exp/slices"
)

// PatternOf returns the forward wrap-around semitone distance between each
// adjacent pair in ordering. Distances land in [1, 11] as long as the
// ordering holds distinct pitch classes.
func PatternOf(ordering []model.PitchClass) model.IntervalPattern {
	if len(ordering) < 2 {
		return nil
	}
	pattern := make(model.IntervalPattern, 0, len(ordering)-1)
	for i := 0; i < len(ordering)-1; i++ {
		interval := int(ordering[i+1]) - int(ordering[i])
		for interval < 0 {
			interval += 12
		}
		pattern = append(pattern, uint8(interval))
	}
	return pattern
}

// PatternKey joins a pattern into a comma-delimited string, the form used
// for tie-breaking between equal-energy orderings.
func PatternKey(p model.IntervalPattern) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ",")
}

// Canonicalize returns the minimum-energy ordering of a set of distinct
// pitch classes, where energy is the sum of an ordering's interval
// pattern. Equal-energy candidates are settled by comparing pattern keys,
// so the result is a function of the set alone: the same set always
// canonicalizes to the same ordering, no matter how it was discovered.
func Canonicalize(pcs []model.PitchClass) []model.PitchClass {
	out := make([]model.PitchClass, len(pcs))
	copy(out, pcs)
	if len(out) <= 1 {
		return out
	}
	slices.Sort(out)

	var best []model.PitchClass
	var bestEnergy uint64
	var bestKey string
	permute.Each(out, func(ordering []model.PitchClass) {
		pattern := PatternOf(ordering)
		energy := util.Sum(pattern)
		if best != nil && energy > bestEnergy {
			return
		}
		key := PatternKey(pattern)
		if best == nil || energy < bestEnergy || key < bestKey {
			best = append(best[:0], ordering...)
			bestEnergy = energy
			bestKey = key
		}
	})
	return best
}
