package resample

import (
	"fmt"
	"math"
	"strings"
)

// Deficit is the number of extra samples to draw for one class.
type Deficit[L comparable] struct {
	Label L
	Count int
}

// Plan lists the classes to oversample, in the stable label order of the
// class count table. Only positive deficits are present.
type Plan[L comparable] struct {
	Deficits      []Deficit[L]
	MajorityLabel L
	MajorityCount int
}

// Total returns the number of samples the plan adds.
func (p Plan[L]) Total() int {
	total := 0
	for _, d := range p.Deficits {
		total += d.Count
	}
	return total
}

// Empty reports whether the plan adds nothing.
func (p Plan[L]) Empty() bool {
	return len(p.Deficits) == 0
}

// AsMap returns the deficits keyed by label.
func (p Plan[L]) AsMap() map[L]int {
	m := make(map[L]int, len(p.Deficits))
	for _, d := range p.Deficits {
		m[d.Label] = d.Count
	}
	return m
}

// String renders the plan as "1:+13 2:+17".
func (p Plan[L]) String() string {
	if p.Empty() {
		return "{}"
	}
	parts := make([]string, len(p.Deficits))
	for i, d := range p.Deficits {
		parts[i] = fmt.Sprintf("%v:+%d", d.Label, d.Count)
	}
	return strings.Join(parts, " ")
}

// ComputePlan computes how many samples each class needs to reach
// floor(ratio * N_max), N_max being the majority class count.
//
// Classes without a resolved ratio, and classes already at or above their
// target, are omitted; a deficit is never negative. A ratio of 0.0 therefore
// leaves its class untouched.
func ComputePlan[L comparable](counts ClassCounts[L], ratios map[L]float64) Plan[L] {
	majority, nMax, ok := counts.Majority()
	if !ok {
		return Plan[L]{}
	}

	plan := Plan[L]{MajorityLabel: majority, MajorityCount: nMax}
	for _, label := range counts.Labels {
		r, rated := ratios[label]
		if !rated {
			continue
		}
		target := int(math.Floor(r * float64(nMax)))
		if deficit := target - counts.Counts[label]; deficit > 0 {
			plan.Deficits = append(plan.Deficits, Deficit[L]{Label: label, Count: deficit})
		}
	}
	return plan
}
