package csv

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

// Writer writes a Table in its Header column order.
type Writer struct {
	comma     rune
	hasHeader bool
}

// NewWriter creates a Writer. It accepts the Reader options that affect the
// file layout (WithHeader, WithComma); the others are ignored.
func NewWriter(opts ...Option) *Writer {
	r := NewReader(opts...)
	return &Writer{comma: r.comma, hasHeader: r.hasHeader}
}

// WriteFile writes t to filename, truncating it.
func (w *Writer) WriteFile(filename string, t *Table) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "closing %s", filename)
		}
	}()
	return w.Write(f, t)
}

// Write encodes t.
func (w *Writer) Write(out io.Writer, t *Table) error {
	n := t.Len()
	if t.X != nil && !t.X.IsEmpty() {
		if r, _ := t.X.Dims(); r != n {
			return errors.NewDimensionError("csv.Write", n, r, 0)
		}
	}
	for _, name := range t.PropertyNames {
		if got := len(t.Props[name]); got != n {
			return errors.NewDimensionError("csv.Write", n, got, 0)
		}
	}

	featureIndex := make(map[string]int, len(t.FeatureNames))
	for i, name := range t.FeatureNames {
		featureIndex[name] = i
	}
	props := make(map[string]bool, len(t.PropertyNames))
	for _, name := range t.PropertyNames {
		props[name] = true
	}

	cw := csv.NewWriter(out)
	cw.Comma = w.comma
	if w.hasHeader {
		if err := cw.Write(t.Header); err != nil {
			return errors.Wrap(err, "writing header")
		}
	}

	record := make([]string, len(t.Header))
	for i := 0; i < n; i++ {
		for j, name := range t.Header {
			switch {
			case name == t.LabelName:
				record[j] = t.Labels[i]
			case props[name]:
				record[j] = t.Props[name][i]
			default:
				record[j] = strconv.FormatFloat(t.X.At(i, featureIndex[name]), 'g', -1, 64)
			}
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "writing row %d", i)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing csv")
}
