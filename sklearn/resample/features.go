package resample

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/imbalance/core/model"
	"github.com/YuminosukeSato/imbalance/core/parallel"
	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

type (
	// Features is the row-addressable feature container.
	Features = model.Features
	// Column is an auxiliary per-sample property sequence.
	Column = model.Column
	// Properties maps property names to columns.
	Properties = model.Properties
)

// parallelRowThreshold is the selection size above which dense rows are
// copied by several goroutines.
const parallelRowThreshold = 4096

// checkIndices reports the first index outside [0, n).
func checkIndices(op string, indices []int, n int) error {
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return errors.NewValueError(op, fmt.Sprintf("index %d out of range [0, %d)", idx, n))
		}
	}
	return nil
}

// DenseFeatures adapts a gonum *mat.Dense, one sample per row.
type DenseFeatures struct {
	M *mat.Dense
}

// NewDenseFeatures wraps m. A nil m is an empty container.
func NewDenseFeatures(m *mat.Dense) *DenseFeatures {
	return &DenseFeatures{M: m}
}

// Len returns the number of rows.
func (d *DenseFeatures) Len() int {
	if d == nil || d.M == nil || d.M.IsEmpty() {
		return 0
	}
	r, _ := d.M.Dims()
	return r
}

// NumFeatures returns the number of columns.
func (d *DenseFeatures) NumFeatures() int {
	if d == nil || d.M == nil || d.M.IsEmpty() {
		return 0
	}
	_, c := d.M.Dims()
	return c
}

// Select gathers the rows at indices into a new matrix. The source is never
// aliased.
func (d *DenseFeatures) Select(indices []int) (Features, error) {
	if err := checkIndices("DenseFeatures.Select", indices, d.Len()); err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		return &DenseFeatures{M: &mat.Dense{}}, nil
	}

	c := d.NumFeatures()
	out := mat.NewDense(len(indices), c, nil)
	parallel.ParallelizeWithThreshold(len(indices), parallelRowThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			out.SetRow(i, d.M.RawRowView(indices[i]))
		}
	})
	return &DenseFeatures{M: out}, nil
}

// MatrixFeatures adapts any mat.Matrix. Selections are materialised as
// *DenseFeatures.
type MatrixFeatures struct {
	M mat.Matrix
}

// NewMatrixFeatures wraps m.
func NewMatrixFeatures(m mat.Matrix) *MatrixFeatures {
	return &MatrixFeatures{M: m}
}

// Len returns the number of rows.
func (m *MatrixFeatures) Len() int {
	if m == nil || m.M == nil {
		return 0
	}
	r, _ := m.M.Dims()
	return r
}

// Select gathers the rows at indices into a new dense matrix.
func (m *MatrixFeatures) Select(indices []int) (Features, error) {
	if err := checkIndices("MatrixFeatures.Select", indices, m.Len()); err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		return &DenseFeatures{M: &mat.Dense{}}, nil
	}

	_, c := m.M.Dims()
	out := mat.NewDense(len(indices), c, nil)
	for i, idx := range indices {
		for j := 0; j < c; j++ {
			out.Set(i, j, m.M.At(idx, j))
		}
	}
	return &DenseFeatures{M: out}, nil
}

// Dense returns a dense copy of the wrapped matrix.
func (m *MatrixFeatures) Dense() *DenseFeatures {
	if m.Len() == 0 {
		return &DenseFeatures{M: &mat.Dense{}}
	}
	return &DenseFeatures{M: mat.DenseCopyOf(m.M)}
}

// SliceFeatures holds one arbitrary value per sample, e.g. a row struct or
// a []float64 feature vector.
type SliceFeatures[T any] []T

// Len returns the number of samples.
func (s SliceFeatures[T]) Len() int { return len(s) }

// Select copies the elements at indices. Elements are copied by value.
func (s SliceFeatures[T]) Select(indices []int) (Features, error) {
	if err := checkIndices("SliceFeatures.Select", indices, len(s)); err != nil {
		return nil, err
	}
	out := make(SliceFeatures[T], len(indices))
	for i, idx := range indices {
		out[i] = s[idx]
	}
	return out, nil
}

// Values is a property column backed by a slice.
type Values[T any] []T

// Len returns the number of elements.
func (v Values[T]) Len() int { return len(v) }

// Select copies the elements at indices.
func (v Values[T]) Select(indices []int) (Column, error) {
	if err := checkIndices("Values.Select", indices, len(v)); err != nil {
		return nil, err
	}
	out := make(Values[T], len(indices))
	for i, idx := range indices {
		out[i] = v[idx]
	}
	return out, nil
}

// LabelsFromMatrix flattens a column (n x 1) or row (1 x n) vector into a
// label slice, the layout gonum based estimators use for y.
func LabelsFromMatrix(y mat.Matrix) ([]float64, error) {
	if y == nil {
		return nil, errors.NewValueError("LabelsFromMatrix", "y is nil")
	}
	r, c := y.Dims()
	switch {
	case c == 1:
		labels := make([]float64, r)
		for i := range labels {
			labels[i] = y.At(i, 0)
		}
		return labels, nil
	case r == 1:
		labels := make([]float64, c)
		for j := range labels {
			labels[j] = y.At(0, j)
		}
		return labels, nil
	default:
		return nil, errors.NewDimensionError("LabelsFromMatrix", 1, c, 1)
	}
}
