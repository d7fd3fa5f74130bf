// Package dataset holds the tabular dataset the analysis runs on.
//
// A Frame is a thin wrapper over a gota DataFrame. Column order follows the
// source header, types are inferred at load time and missing cells are gota NaN
// elements regardless of column type.
package dataset

import (
	"fmt"

	"gotrends/internal/errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// MissingTokens are the cell values treated as missing when loading.
var MissingTokens = []string{"", "NA", "N/A", "NaN", "nan", "null", "<nil>"}

// Frame is an ordered set of named, typed columns.
type Frame struct {
	df dataframe.DataFrame
}

// MissingCount is the number of missing cells of one column.
type MissingCount struct {
	Column string
	Count  int
}

func loadOptions() []dataframe.LoadOption {
	return []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(MissingTokens),
	}
}

func newFrame(df dataframe.DataFrame) (*Frame, error) {
	if df.Err != nil {
		return nil, errors.WithCode(errors.CodeInvalidInput, df.Err, "failed to build dataset")
	}
	return &Frame{df: df}, nil
}

// FromRecords builds a frame from string records, the first record being the header.
func FromRecords(records [][]string) (*Frame, error) {
	return newFrame(dataframe.LoadRecords(records, loadOptions()...))
}

// Nrow returns the number of rows
func (f *Frame) Nrow() int {
	return f.df.Nrow()
}

// Ncol returns the number of columns
func (f *Frame) Ncol() int {
	return f.df.Ncol()
}

// Names returns the column names in order
func (f *Frame) Names() []string {
	return f.df.Names()
}

// Types returns the inferred column types in order
func (f *Frame) Types() []series.Type {
	return f.df.Types()
}

// IsNumeric reports whether the named column exists and holds integers or floats.
func (f *Frame) IsNumeric(name string) bool {
	for i, n := range f.df.Names() {
		if n == name {
			return isNumericType(f.df.Types()[i])
		}
	}
	return false
}

func isNumericType(t series.Type) bool {
	return t == series.Int || t == series.Float
}

// NumericColumns returns the names of integer and float columns in original order.
func (f *Frame) NumericColumns() []string {
	names := f.df.Names()
	types := f.df.Types()
	var numeric []string
	for i, t := range types {
		if isNumericType(t) {
			numeric = append(numeric, names[i])
		}
	}
	return numeric
}

// Values returns the named numeric column as floats, missing cells as NaN.
func (f *Frame) Values(name string) ([]float64, error) {
	if !f.hasColumn(name) {
		return nil, errors.InvalidInput(fmt.Sprintf("column %q not found", name))
	}
	if !f.IsNumeric(name) {
		return nil, errors.InvalidInput(fmt.Sprintf("column %q is not numeric", name))
	}
	return f.df.Col(name).Float(), nil
}

func (f *Frame) hasColumn(name string) bool {
	for _, n := range f.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// MissingCounts returns the missing cell count of every column in order.
func (f *Frame) MissingCounts() []MissingCount {
	counts := make([]MissingCount, 0, f.df.Ncol())
	for _, name := range f.df.Names() {
		n := 0
		for _, isNaN := range f.df.Col(name).IsNaN() {
			if isNaN {
				n++
			}
		}
		counts = append(counts, MissingCount{Column: name, Count: n})
	}
	return counts
}

// HasMissing reports whether any cell of the frame is missing.
func (f *Frame) HasMissing() bool {
	for _, c := range f.MissingCounts() {
		if c.Count > 0 {
			return true
		}
	}
	return false
}

// DropMissing removes every row holding at least one missing cell. The receiver
// is returned untouched when nothing is missing. Dropping all rows is not an
// error; the result keeps the column names and types.
func (f *Frame) DropMissing() (*Frame, error) {
	nrow := f.df.Nrow()
	drop := make([]bool, nrow)
	for _, name := range f.df.Names() {
		for i, isNaN := range f.df.Col(name).IsNaN() {
			if isNaN {
				drop[i] = true
			}
		}
	}

	keep := make([]int, 0, nrow)
	for i, d := range drop {
		if !d {
			keep = append(keep, i)
		}
	}
	if len(keep) == nrow {
		return f, nil
	}

	columns := make([]series.Series, 0, f.df.Ncol())
	for _, name := range f.df.Names() {
		col := f.df.Col(name)
		if len(keep) == 0 {
			columns = append(columns, series.New([]string{}, col.Type(), name))
			continue
		}
		columns = append(columns, col.Subset(keep))
	}
	return newFrame(dataframe.New(columns...))
}

// Records returns the frame as string records with a header row.
func (f *Frame) Records() [][]string {
	return f.df.Records()
}
