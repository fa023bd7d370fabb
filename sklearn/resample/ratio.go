package resample

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

// RatioSpec is the minimum representation target relative to the majority
// class: either one value for every class or a per-class mapping. The zero
// value is the scalar 0.0.
type RatioSpec[L comparable] struct {
	scalar   float64
	perClass map[L]float64
	mapped   bool
}

// Scalar applies r to every class.
func Scalar[L comparable](r float64) RatioSpec[L] {
	return RatioSpec[L]{scalar: r}
}

// PerClass applies ratios[k] to class k. Classes absent from ratios are not
// oversampled. The map is copied.
func PerClass[L comparable](ratios map[L]float64) RatioSpec[L] {
	cp := make(map[L]float64, len(ratios))
	for k, v := range ratios {
		cp[k] = v
	}
	return RatioSpec[L]{perClass: cp, mapped: true}
}

// IsPerClass reports whether the spec is a per-class mapping.
func (s RatioSpec[L]) IsPerClass() bool {
	return s.mapped
}

// Value returns the scalar ratio. It is meaningless for per-class specs.
func (s RatioSpec[L]) Value() float64 {
	return s.scalar
}

// Ratios returns a copy of the per-class mapping, nil for scalar specs.
func (s RatioSpec[L]) Ratios() map[L]float64 {
	if !s.mapped {
		return nil
	}
	cp := make(map[L]float64, len(s.perClass))
	for k, v := range s.perClass {
		cp[k] = v
	}
	return cp
}

func checkRatio(param string, r float64) error {
	if math.IsNaN(r) || r < 0.0 || r > 1.0 {
		return errors.NewInvalidConfigurationError(param, "ratio must be in [0.0, 1.0]", r)
	}
	return nil
}

// Validate checks that every ratio lies in [0.0, 1.0].
func (s RatioSpec[L]) Validate() error {
	if !s.mapped {
		return checkRatio("ratio", s.scalar)
	}
	for _, k := range sortedKeys(s.perClass) {
		if err := checkRatio(fmt.Sprintf("ratio[%v]", k), s.perClass[k]); err != nil {
			return err
		}
	}
	return nil
}

// String renders the spec as "0.5" or "{0: 1, 1: 0.5}".
func (s RatioSpec[L]) String() string {
	if !s.mapped {
		return fmt.Sprintf("%g", s.scalar)
	}
	parts := make([]string, 0, len(s.perClass))
	for _, k := range sortedKeys(s.perClass) {
		parts = append(parts, fmt.Sprintf("%v: %g", k, s.perClass[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// ResolveRatios turns spec into a concrete ratio per class present in counts.
//
// A scalar is assigned to every class. A per-class mapping is restricted to
// the labels present in both the mapping and counts; a class missing from the
// mapping gets no entry and is therefore never oversampled. counts is not
// modified.
func ResolveRatios[L comparable](spec RatioSpec[L], counts ClassCounts[L]) (map[L]float64, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	resolved := make(map[L]float64, counts.Len())
	for _, label := range counts.Labels {
		if !spec.mapped {
			resolved[label] = spec.scalar
			continue
		}
		if r, ok := spec.perClass[label]; ok {
			resolved[label] = r
		}
	}
	return resolved, nil
}

// UnratedClasses lists, in first-appearance order, the classes in counts that
// a per-class spec leaves without a ratio. It is empty for scalar specs.
func UnratedClasses[L comparable](spec RatioSpec[L], counts ClassCounts[L]) []L {
	if !spec.mapped {
		return nil
	}
	var unrated []L
	for _, label := range counts.Labels {
		if _, ok := spec.perClass[label]; !ok {
			unrated = append(unrated, label)
		}
	}
	return unrated
}

// sortedKeys orders map keys by their printed form so that error messages
// and String output are deterministic.
func sortedKeys[L comparable](m map[L]float64) []L {
	keys := make([]L, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	return keys
}

func formatLabels[L comparable](labels []L) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = fmt.Sprint(l)
	}
	return out
}
