package resample

import (
	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

// Strategy decides how many samples each class gains and which samples are
// duplicated. The RandomOverSampler owns validation, shuffling and row
// selection; a Strategy only sees labels and indices.
type Strategy[L comparable] interface {
	// ComputePlan returns the per-class deficits for the given counts.
	ComputePlan(counts ClassCounts[L]) (Plan[L], error)
	// Draw returns the indices to append to the originals.
	Draw(indices []int, labels []L, plan Plan[L], src RandomSource) ([]int, error)
}

// RandomDuplication oversamples by drawing existing class members uniformly
// with replacement.
type RandomDuplication[L comparable] struct {
	Ratio RatioSpec[L]
	// Strict rejects per-class specs that leave a present class without a
	// ratio instead of warning about it.
	Strict bool
}

// Validate checks the ratio specification.
func (s *RandomDuplication[L]) Validate() error {
	return s.Ratio.Validate()
}

// ComputePlan implements Strategy.
func (s *RandomDuplication[L]) ComputePlan(counts ClassCounts[L]) (Plan[L], error) {
	ratios, err := ResolveRatios(s.Ratio, counts)
	if err != nil {
		return Plan[L]{}, err
	}

	if unrated := UnratedClasses(s.Ratio, counts); len(unrated) > 0 {
		labels := formatLabels(unrated)
		if s.Strict {
			return Plan[L]{}, errors.NewInvalidConfigurationError("ratio",
				"per-class mapping has no ratio for some classes", labels)
		}
		errors.Warn(errors.NewUnratedClassWarning(labels))
	}

	return ComputePlan(counts, ratios), nil
}

// Draw implements Strategy.
func (s *RandomDuplication[L]) Draw(indices []int, labels []L, plan Plan[L], src RandomSource) ([]int, error) {
	return DrawDuplicates(indices, labels, plan, src)
}
