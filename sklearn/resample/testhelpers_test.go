package resample

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

// imbalancedLabels returns 20 zeros, 7 ones and 3 twos.
func imbalancedLabels() []int {
	y := make([]int, 0, 30)
	for i := 0; i < 20; i++ {
		y = append(y, 0)
	}
	for i := 0; i < 7; i++ {
		y = append(y, 1)
	}
	for i := 0; i < 3; i++ {
		y = append(y, 2)
	}
	return y
}

// rowIDFeatures builds an n x 2 matrix whose first column is the row index
// and second column is the row index times ten, so selected rows can be
// traced back to their origin.
func rowIDFeatures(n int) *DenseFeatures {
	data := make([]float64, 0, n*2)
	for i := 0; i < n; i++ {
		data = append(data, float64(i), float64(i*10))
	}
	return NewDenseFeatures(mat.NewDense(n, 2, data))
}

func countLabels[L comparable](y []L) map[L]int {
	m := make(map[L]int)
	for _, l := range y {
		m[l]++
	}
	return m
}

func captureWarnings(dst *[]error) func() {
	errors.SetWarningHandler(func(w error) {
		*dst = append(*dst, w)
	})
	return func() { errors.SetWarningHandler(nil) }
}
