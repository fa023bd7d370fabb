package resample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

func TestCountClasses(t *testing.T) {
	counts := CountClasses([]string{"b", "a", "b", "c", "a", "b"})

	assert.Equal(t, []string{"b", "a", "c"}, counts.Labels)
	assert.Equal(t, map[string]int{"a": 2, "b": 3, "c": 1}, counts.Counts)
	assert.Equal(t, 3, counts.Len())
	assert.Equal(t, 6, counts.Total())

	label, n, ok := counts.Majority()
	require.True(t, ok)
	assert.Equal(t, "b", label)
	assert.Equal(t, 3, n)
}

func TestMajorityTieGoesToFirstAppearance(t *testing.T) {
	counts := CountClasses([]int{7, 3, 3, 7, 5})

	label, n, ok := counts.Majority()
	require.True(t, ok)
	assert.Equal(t, 7, label)
	assert.Equal(t, 2, n)

	_, _, ok = CountClasses([]int{}).Majority()
	assert.False(t, ok)
}

func TestRatioSpecValidate(t *testing.T) {
	tests := []struct {
		name      string
		spec      RatioSpec[int]
		wantParam string
	}{
		{name: "scalar zero", spec: Scalar[int](0.0)},
		{name: "scalar one", spec: Scalar[int](1.0)},
		{name: "scalar above one", spec: Scalar[int](1.5), wantParam: "ratio"},
		{name: "scalar negative", spec: Scalar[int](-0.01), wantParam: "ratio"},
		{name: "scalar NaN", spec: Scalar[int](math.NaN()), wantParam: "ratio"},
		{name: "per-class valid", spec: PerClass(map[int]float64{0: 1.0, 1: 0.5})},
		{name: "per-class empty", spec: PerClass(map[int]float64{})},
		{name: "per-class negative", spec: PerClass(map[int]float64{0: -0.1}), wantParam: "ratio[0]"},
		{name: "per-class above one", spec: PerClass(map[int]float64{0: 0.2, 3: 1.01}), wantParam: "ratio[3]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantParam == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *errors.InvalidConfigurationError
			require.True(t, errors.As(err, &cfgErr), "expected InvalidConfigurationError, got %v", err)
			assert.Equal(t, tt.wantParam, cfgErr.Param)
		})
	}
}

func TestRatioSpecCopiesMapping(t *testing.T) {
	src := map[string]float64{"a": 0.5}
	spec := PerClass(src)
	src["a"] = 0.9
	src["b"] = 1.0

	assert.Equal(t, map[string]float64{"a": 0.5}, spec.Ratios())
	assert.True(t, spec.IsPerClass())
	assert.Nil(t, Scalar[string](0.3).Ratios())
	assert.Equal(t, "{a: 0.5}", spec.String())
	assert.Equal(t, "0.3", Scalar[string](0.3).String())
}

func TestResolveRatios(t *testing.T) {
	counts := CountClasses(imbalancedLabels())

	t.Run("scalar applies to every class", func(t *testing.T) {
		resolved, err := ResolveRatios(Scalar[int](0.8), counts)
		require.NoError(t, err)
		assert.Equal(t, map[int]float64{0: 0.8, 1: 0.8, 2: 0.8}, resolved)
	})

	t.Run("per-class is restricted to present labels", func(t *testing.T) {
		resolved, err := ResolveRatios(PerClass(map[int]float64{0: 1.0, 1: 0.5, 9: 1.0}), counts)
		require.NoError(t, err)
		assert.Equal(t, map[int]float64{0: 1.0, 1: 0.5}, resolved)
		assert.Equal(t, []int{2}, UnratedClasses(PerClass(map[int]float64{0: 1.0, 1: 0.5}), counts))
	})

	t.Run("invalid spec fails", func(t *testing.T) {
		_, err := ResolveRatios(Scalar[int](2.0), counts)
		var cfgErr *errors.InvalidConfigurationError
		assert.True(t, errors.As(err, &cfgErr))
	})

	t.Run("counts are not modified", func(t *testing.T) {
		before := CountClasses(imbalancedLabels())
		_, err := ResolveRatios(Scalar[int](1.0), counts)
		require.NoError(t, err)
		assert.Equal(t, before, counts)
	})
}

func TestComputePlan(t *testing.T) {
	counts := CountClasses(imbalancedLabels())

	tests := []struct {
		name   string
		ratios map[int]float64
		want   []Deficit[int]
	}{
		{
			name:   "full balance",
			ratios: map[int]float64{0: 1.0, 1: 1.0, 2: 1.0},
			want:   []Deficit[int]{{Label: 1, Count: 13}, {Label: 2, Count: 17}},
		},
		{
			name:   "half ratio floors the target",
			ratios: map[int]float64{0: 0.5, 1: 0.5, 2: 0.5},
			want:   []Deficit[int]{{Label: 1, Count: 3}, {Label: 2, Count: 7}},
		},
		{
			name:   "target below current count",
			ratios: map[int]float64{1: 0.3, 2: 0.3},
			want:   []Deficit[int]{{Label: 2, Count: 3}},
		},
		{
			name:   "zero ratio",
			ratios: map[int]float64{0: 0, 1: 0, 2: 0},
			want:   nil,
		},
		{
			name:   "unrated classes are skipped",
			ratios: map[int]float64{1: 1.0},
			want:   []Deficit[int]{{Label: 1, Count: 13}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := ComputePlan(counts, tt.ratios)
			assert.Equal(t, tt.want, plan.Deficits)
			assert.Equal(t, 0, plan.MajorityLabel)
			assert.Equal(t, 20, plan.MajorityCount)
			for _, d := range plan.Deficits {
				assert.Positive(t, d.Count)
			}
		})
	}
}

func TestPlanHelpers(t *testing.T) {
	plan := Plan[int]{Deficits: []Deficit[int]{{Label: 1, Count: 13}, {Label: 2, Count: 17}}}

	assert.Equal(t, 30, plan.Total())
	assert.False(t, plan.Empty())
	assert.Equal(t, map[int]int{1: 13, 2: 17}, plan.AsMap())
	assert.Equal(t, "1:+13 2:+17", plan.String())
	assert.Equal(t, "{}", Plan[int]{}.String())
	assert.True(t, Plan[int]{}.Empty())
}

func TestRandomDuplicationStrict(t *testing.T) {
	var warnings []error
	defer captureWarnings(&warnings)()

	counts := CountClasses(imbalancedLabels())
	ratio := PerClass(map[int]float64{0: 1.0, 1: 0.5})

	lenient := &RandomDuplication[int]{Ratio: ratio}
	plan, err := lenient.ComputePlan(counts)
	require.NoError(t, err)
	assert.Equal(t, []Deficit[int]{{Label: 1, Count: 3}}, plan.Deficits)
	require.Len(t, warnings, 1)
	var w *errors.UnratedClassWarning
	require.True(t, errors.As(warnings[0], &w))
	assert.Equal(t, []string{"2"}, w.Labels)

	strict := &RandomDuplication[int]{Ratio: ratio, Strict: true}
	_, err = strict.ComputePlan(counts)
	var cfgErr *errors.InvalidConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}
