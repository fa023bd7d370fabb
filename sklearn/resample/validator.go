package resample

import (
	"fmt"
	"math"

	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

// Validator checks and coerces a dataset before resampling. Implementations
// must be side-effect free and signal problems with *errors.ValidationError;
// the resampler returns that error unchanged.
type Validator[L comparable] interface {
	Validate(ds Dataset[L]) (Dataset[L], error)
}

// DefaultValidator enforces the same rules as scikit-learn's check_X_y and
// check_consistent_length:
//
//   - X and y are non-empty (EmptyInput)
//   - y and every property have X.Len() elements (LengthMismatch)
//   - X, property columns and float labels hold supported values; NaN and
//     infinities are rejected unless AllowNonFinite is set (UnsupportedType)
//
// A *MatrixFeatures is coerced to *DenseFeatures.
type DefaultValidator[L comparable] struct {
	AllowNonFinite bool
}

// Validate implements Validator.
func (v DefaultValidator[L]) Validate(ds Dataset[L]) (Dataset[L], error) {
	if ds.X == nil {
		return Dataset[L]{}, errors.NewInputValidationError(errors.UnsupportedType, "X", "feature container is nil", nil)
	}

	n := ds.X.Len()
	if n == 0 {
		return Dataset[L]{}, errors.NewInputValidationError(errors.EmptyInput, "X", "must contain at least one sample", n)
	}
	if len(ds.Y) == 0 {
		return Dataset[L]{}, errors.NewInputValidationError(errors.EmptyInput, "y", "must contain at least one label", 0)
	}
	if len(ds.Y) != n {
		return Dataset[L]{}, errors.NewInputValidationError(errors.LengthMismatch, "y",
			fmt.Sprintf("must have the same length as X (%d)", n), len(ds.Y))
	}

	for _, name := range ds.PropertyNames() {
		col := ds.Props[name]
		param := "props[" + name + "]"
		if col == nil {
			return Dataset[L]{}, errors.NewInputValidationError(errors.UnsupportedType, param, "property column is nil", nil)
		}
		if col.Len() != n {
			return Dataset[L]{}, errors.NewInputValidationError(errors.LengthMismatch, param,
				fmt.Sprintf("must have the same length as X (%d)", n), col.Len())
		}
		if !v.AllowNonFinite {
			if err := checkFiniteColumn(param, col); err != nil {
				return Dataset[L]{}, err
			}
		}
	}

	if err := checkLabels(ds.Y); err != nil {
		return Dataset[L]{}, err
	}

	X := ds.X
	if m, ok := X.(*MatrixFeatures); ok {
		X = m.Dense()
	}
	if dense, ok := X.(*DenseFeatures); ok {
		if dense.NumFeatures() == 0 {
			return Dataset[L]{}, errors.NewInputValidationError(errors.EmptyInput, "X", "must contain at least one feature", 0)
		}
		if !v.AllowNonFinite {
			if err := checkFiniteDense(dense); err != nil {
				return Dataset[L]{}, err
			}
		}
	}

	return NewDataset(X, ds.Y, ds.Props), nil
}

func checkFiniteDense(d *DenseFeatures) error {
	r, _ := d.M.Dims()
	for i := 0; i < r; i++ {
		for j, val := range d.M.RawRowView(i) {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return errors.NewInputValidationError(errors.UnsupportedType, "X",
					fmt.Sprintf("contains NaN or infinity at (%d, %d)", i, j), val)
			}
		}
	}
	return nil
}

func checkFiniteColumn(param string, col Column) error {
	var values []float64
	switch c := col.(type) {
	case Values[float64]:
		values = c
	case Values[float32]:
		values = make([]float64, len(c))
		for i, v := range c {
			values[i] = float64(v)
		}
	default:
		return nil
	}
	for i, val := range values {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return errors.NewInputValidationError(errors.UnsupportedType, param,
				fmt.Sprintf("contains NaN or infinity at %d", i), val)
		}
	}
	return nil
}

// checkLabels rejects NaN labels: NaN != NaN, so every NaN would count as a
// class of its own.
func checkLabels[L comparable](y []L) error {
	for i, label := range y {
		var isNaN bool
		switch l := any(label).(type) {
		case float64:
			isNaN = math.IsNaN(l)
		case float32:
			isNaN = math.IsNaN(float64(l))
		}
		if isNaN {
			return errors.NewInputValidationError(errors.UnsupportedType, "y",
				fmt.Sprintf("label at %d is NaN", i), label)
		}
	}
	return nil
}
