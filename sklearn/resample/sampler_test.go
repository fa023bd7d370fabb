package resample

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

func TestDrawDuplicates(t *testing.T) {
	y := imbalancedLabels()
	plan := ComputePlan(CountClasses(y), map[int]float64{0: 1, 1: 1, 2: 1})

	drawn, err := DrawDuplicates(arange(len(y)), y, plan, NewSource(1))
	require.NoError(t, err)
	require.Len(t, drawn, 30)

	// Duplicates are grouped by class in plan order.
	for i, idx := range drawn {
		if i < 13 {
			assert.Equal(t, 1, y[idx], "position %d", i)
		} else {
			assert.Equal(t, 2, y[idx], "position %d", i)
		}
	}
}

func TestDrawDuplicatesEmptyPlan(t *testing.T) {
	drawn, err := DrawDuplicates([]int{0, 1}, []int{0, 1}, Plan[int]{}, nil)
	assert.NoError(t, err)
	assert.Empty(t, drawn)
}

func TestDrawDuplicatesInvariantViolations(t *testing.T) {
	y := []int{0, 0, 1}

	t.Run("class without members", func(t *testing.T) {
		plan := Plan[int]{Deficits: []Deficit[int]{{Label: 5, Count: 2}}}
		_, err := DrawDuplicates(arange(len(y)), y, plan, NewSource(1))
		var invErr *errors.InternalInvariantError
		assert.True(t, errors.As(err, &invErr), "got %v", err)
	})

	t.Run("nil source", func(t *testing.T) {
		plan := Plan[int]{Deficits: []Deficit[int]{{Label: 1, Count: 1}}}
		_, err := DrawDuplicates(arange(len(y)), y, plan, nil)
		var invErr *errors.InternalInvariantError
		assert.True(t, errors.As(err, &invErr))
	})

	t.Run("index out of range", func(t *testing.T) {
		plan := Plan[int]{Deficits: []Deficit[int]{{Label: 1, Count: 1}}}
		_, err := DrawDuplicates([]int{0, 3}, y, plan, NewSource(1))
		var valErr *errors.ValueError
		assert.True(t, errors.As(err, &valErr))
	})
}

func TestSampleIndices(t *testing.T) {
	y := imbalancedLabels()
	plan := ComputePlan(CountClasses(y), map[int]float64{1: 1, 2: 1})
	indices := arange(len(y))

	t.Run("without shuffle originals keep their order", func(t *testing.T) {
		out, err := SampleIndices(indices, y, plan, NewSource(3), false)
		require.NoError(t, err)
		require.Len(t, out, 60)
		assert.Equal(t, indices, out[:30])
		assert.Equal(t, arange(30), indices, "input must not be modified")
	})

	t.Run("with shuffle every original appears", func(t *testing.T) {
		out, err := SampleIndices(indices, y, plan, NewSource(3), true)
		require.NoError(t, err)
		require.Len(t, out, 60)

		seen := make(map[int]int)
		for _, idx := range out {
			seen[idx]++
		}
		for i := range y {
			assert.GreaterOrEqual(t, seen[i], 1, "index %d missing", i)
		}
		for i := 0; i < 20; i++ {
			assert.Equal(t, 1, seen[i], "majority index %d must not be duplicated", i)
		}
	})

	t.Run("same seed same sequence", func(t *testing.T) {
		a, err := SampleIndices(indices, y, plan, NewSource(99), true)
		require.NoError(t, err)
		b, err := SampleIndices(indices, y, plan, NewSource(99), true)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("shuffle needs a source", func(t *testing.T) {
		_, err := SampleIndices(indices, y, Plan[int]{}, nil, true)
		var invErr *errors.InternalInvariantError
		assert.True(t, errors.As(err, &invErr))
	})
}

func TestLockedSourceConcurrent(t *testing.T) {
	src := NewSource(7)
	assert.Equal(t, uint64(7), src.Seed())

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				v := src.IntN(10)
				if v < 0 || v >= 10 {
					t.Errorf("IntN out of range: %d", v)
					return
				}
			}
			perm := arange(16)
			src.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		}()
	}
	wg.Wait()
}
