package resample

import (
	"sort"

	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

// Dataset binds a feature container, a label vector and optional property
// columns that are index-aligned. It is a value type: Select returns a new
// Dataset and leaves the receiver untouched.
type Dataset[L comparable] struct {
	X     Features
	Y     []L
	Props Properties
}

// NewDataset builds a Dataset. An empty props map is normalised to nil so
// that "no properties" has a single representation.
func NewDataset[L comparable](X Features, y []L, props Properties) Dataset[L] {
	if len(props) == 0 {
		props = nil
	}
	return Dataset[L]{X: X, Y: y, Props: props}
}

// Len returns the number of samples, taken from the label vector.
func (d Dataset[L]) Len() int {
	return len(d.Y)
}

// PropertyNames returns the property names in sorted order.
func (d Dataset[L]) PropertyNames() []string {
	names := make([]string, 0, len(d.Props))
	for name := range d.Props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns a new Dataset holding the samples at indices, in that order,
// from X, y and every property. Indices may repeat.
func (d Dataset[L]) Select(indices []int) (Dataset[L], error) {
	if d.X == nil {
		return Dataset[L]{}, errors.NewValueError("Dataset.Select", "feature container is nil")
	}
	if err := checkIndices("Dataset.Select", indices, len(d.Y)); err != nil {
		return Dataset[L]{}, err
	}

	var X Features
	err := errors.SafeExecute("Features.Select", func() (err error) {
		X, err = d.X.Select(indices)
		return err
	})
	if err != nil {
		return Dataset[L]{}, errors.Wrap(err, "selecting features")
	}

	y := make([]L, len(indices))
	for i, idx := range indices {
		y[i] = d.Y[idx]
	}

	var props Properties
	if len(d.Props) > 0 {
		props = make(Properties, len(d.Props))
		for _, name := range d.PropertyNames() {
			col := d.Props[name]
			if col == nil {
				return Dataset[L]{}, errors.NewValueError("Dataset.Select", "property '"+name+"' is nil")
			}
			var selected Column
			err := errors.SafeExecute("Column.Select", func() (err error) {
				selected, err = col.Select(indices)
				return err
			})
			if err != nil {
				return Dataset[L]{}, errors.Wrapf(err, "selecting property %q", name)
			}
			props[name] = selected
		}
	}

	return Dataset[L]{X: X, Y: y, Props: props}, nil
}
