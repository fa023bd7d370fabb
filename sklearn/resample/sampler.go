package resample

import (
	"fmt"

	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

// DrawDuplicates draws, for every class in plan and in plan order, Count
// indices uniformly with replacement from the members of indices carrying
// that label. labels is indexed by sample index.
//
// A class with a positive deficit but no member in indices is an
// InternalInvariantError: class counts and plan disagree.
func DrawDuplicates[L comparable](indices []int, labels []L, plan Plan[L], src RandomSource) ([]int, error) {
	if plan.Empty() {
		return nil, nil
	}
	if src == nil {
		return nil, errors.NewInternalInvariantError("DrawDuplicates", "random source is nil")
	}

	wanted := plan.AsMap()
	members := make(map[L][]int, len(wanted))
	for _, idx := range indices {
		if idx < 0 || idx >= len(labels) {
			return nil, errors.NewValueError("DrawDuplicates", fmt.Sprintf("index %d out of range [0, %d)", idx, len(labels)))
		}
		label := labels[idx]
		if _, ok := wanted[label]; ok {
			members[label] = append(members[label], idx)
		}
	}

	drawn := make([]int, 0, plan.Total())
	for _, d := range plan.Deficits {
		pool := members[d.Label]
		if len(pool) == 0 {
			return nil, errors.NewInternalInvariantError("DrawDuplicates",
				fmt.Sprintf("class %v needs %d samples but has none to duplicate", d.Label, d.Count))
		}
		for i := 0; i < d.Count; i++ {
			drawn = append(drawn, pool[src.IntN(len(pool))])
		}
	}
	return drawn, nil
}

// combineIndices concatenates the originals and the duplicates into a new
// slice and, when shuffle is set, permutes the whole sequence with src.
func combineIndices(indices, duplicates []int, src RandomSource, shuffle bool) []int {
	combined := make([]int, 0, len(indices)+len(duplicates))
	combined = append(combined, indices...)
	combined = append(combined, duplicates...)
	if shuffle {
		src.Shuffle(len(combined), func(i, j int) {
			combined[i], combined[j] = combined[j], combined[i]
		})
	}
	return combined
}

// SampleIndices returns indices followed by the duplicates DrawDuplicates
// selects for plan. With shuffle the result is a uniform random permutation;
// without it, originals keep their order and duplicates follow grouped by
// class in plan order. The result has len(indices)+plan.Total() entries and
// contains every original index at least once.
func SampleIndices[L comparable](indices []int, labels []L, plan Plan[L], src RandomSource, shuffle bool) ([]int, error) {
	duplicates, err := DrawDuplicates(indices, labels, plan, src)
	if err != nil {
		return nil, err
	}
	if shuffle && src == nil {
		return nil, errors.NewInternalInvariantError("SampleIndices", "random source is nil")
	}
	return combineIndices(indices, duplicates, src, shuffle), nil
}

// arange returns [0, 1, ..., n-1].
func arange(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}
