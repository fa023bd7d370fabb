// Package csv reads and writes labelled tabular data: numeric feature
// columns, one label column and optional string property columns.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/imbalance/pkg/errors"
)

// Table is a CSV file split by column role. All columns are row-aligned.
type Table struct {
	// Header holds every column name in file order.
	Header        []string
	FeatureNames  []string
	LabelName     string
	PropertyNames []string

	X      *mat.Dense
	Labels []string
	Props  map[string][]string
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Labels)
}

// Reader reads a Table from CSV.
type Reader struct {
	hasHeader  bool
	label      string
	properties []string
	comma      rune
	skipX      bool
}

// Option configures a Reader or Writer.
type Option func(*Reader)

// WithHeader indicates the CSV has a header row (default true). Without one,
// columns are named col0, col1, ...
func WithHeader(has bool) Option {
	return func(r *Reader) {
		r.hasHeader = has
	}
}

// WithLabelColumn names the label column. The last column is used by default.
func WithLabelColumn(name string) Option {
	return func(r *Reader) {
		r.label = name
	}
}

// WithPropertyColumns names columns carried through as string properties
// instead of being parsed as features.
func WithPropertyColumns(names ...string) Option {
	return func(r *Reader) {
		r.properties = append([]string(nil), names...)
	}
}

// WithoutFeatures reads only the label and property columns. Feature
// columns are still named in FeatureNames but are not parsed, and X is nil.
func WithoutFeatures() Option {
	return func(r *Reader) {
		r.skipX = true
	}
}

// WithComma sets the field delimiter (default ',').
func WithComma(c rune) Option {
	return func(r *Reader) {
		r.comma = c
	}
}

// NewReader creates a Reader.
func NewReader(opts ...Option) *Reader {
	r := &Reader{hasHeader: true, comma: ','}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadFile reads the Table stored in filename.
func (r *Reader) ReadFile(filename string) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", filename)
	}
	defer f.Close()

	t, err := r.Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", filename)
	}
	return t, nil
}

// Read parses the whole input. Every feature cell must parse as a float;
// the first malformed cell is reported with its row and column.
func (r *Reader) Read(in io.Reader) (*Table, error) {
	cr := csv.NewReader(in)
	cr.Comma = r.comma

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parsing csv")
	}
	if len(records) == 0 {
		return nil, errors.ErrEmptyData
	}

	var header []string
	if r.hasHeader {
		header, records = records[0], records[1:]
	} else {
		header = make([]string, len(records[0]))
		for i := range header {
			header[i] = fmt.Sprintf("col%d", i)
		}
	}
	if len(records) == 0 {
		return nil, errors.ErrEmptyData
	}

	t, roles, err := r.layout(header)
	if err != nil {
		return nil, err
	}

	n := len(records)
	switch {
	case r.skipX:
	case len(t.FeatureNames) > 0:
		t.X = mat.NewDense(n, len(t.FeatureNames), nil)
	default:
		t.X = &mat.Dense{}
	}
	t.Labels = make([]string, n)
	for _, name := range t.PropertyNames {
		t.Props[name] = make([]string, n)
	}

	for i, record := range records {
		line := i + 1
		if r.hasHeader {
			line++
		}
		feature := 0
		for j, cell := range record {
			switch roles[j] {
			case roleLabel:
				t.Labels[i] = cell
			case roleProperty:
				t.Props[header[j]][i] = cell
			default:
				if r.skipX {
					continue
				}
				v, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return nil, errors.NewValueError("csv.Read",
						fmt.Sprintf("line %d column %q: %q is not a number", line, header[j], cell))
				}
				t.X.Set(i, feature, v)
				feature++
			}
		}
	}
	return t, nil
}

type role int

const (
	roleFeature role = iota
	roleLabel
	roleProperty
)

func (r *Reader) layout(header []string) (*Table, []role, error) {
	t := &Table{
		Header: append([]string(nil), header...),
		Props:  make(map[string][]string),
	}
	roles := make([]role, len(header))

	label := r.label
	if label == "" {
		label = header[len(header)-1]
	}
	props := make(map[string]bool, len(r.properties))
	for _, p := range r.properties {
		props[p] = true
	}

	found := false
	for j, name := range header {
		switch {
		case name == label && !found:
			roles[j] = roleLabel
			t.LabelName = name
			found = true
		case props[name]:
			roles[j] = roleProperty
			t.PropertyNames = append(t.PropertyNames, name)
			delete(props, name)
		default:
			roles[j] = roleFeature
			t.FeatureNames = append(t.FeatureNames, name)
		}
	}

	if !found {
		return nil, nil, errors.NewInvalidConfigurationError("label", "column not found in header", label)
	}
	for _, p := range r.properties {
		if props[p] {
			return nil, nil, errors.NewInvalidConfigurationError("props", "column not found in header", p)
		}
	}
	return t, roles, nil
}
