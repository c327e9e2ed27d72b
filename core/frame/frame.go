package frame

import (
	"fmt"
	"math"
)

// Kind is the storage type of a column.
type Kind int

const (
	// Numeric columns hold float64 values.
	Numeric Kind = iota
	// Text columns hold strings.
	Text
)

// DType returns the pandas-style dtype name of the kind.
func (k Kind) DType() string {
	if k == Numeric {
		return "float64"
	}
	return "object"
}

// Column is one named column. Null marks missing cells for both kinds; numeric
// missing cells also hold NaN.
type Column struct {
	Name string
	Kind Kind
	Nums []float64
	Strs []string
	Null []bool
}

// Len returns the number of cells.
func (c *Column) Len() int {
	return len(c.Null)
}

// IsNull reports whether cell i is missing.
func (c *Column) IsNull(i int) bool {
	return c.Null[i]
}

// Value returns cell i as float64 or string, or nil when missing.
func (c *Column) Value(i int) any {
	if c.Null[i] {
		return nil
	}
	if c.Kind == Numeric {
		return c.Nums[i]
	}
	return c.Strs[i]
}

// String returns cell i formatted as it would be written to CSV.
func (c *Column) String(i int) string {
	if c.Null[i] {
		return ""
	}
	if c.Kind == Numeric {
		return formatFloat(c.Nums[i])
	}
	return c.Strs[i]
}

// SetNum stores a numeric value; NaN marks the cell missing.
func (c *Column) SetNum(i int, v float64) {
	c.Nums[i] = v
	c.Null[i] = math.IsNaN(v)
}

// SetStr stores a text value.
func (c *Column) SetStr(i int, v string) {
	c.Strs[i] = v
	c.Null[i] = false
}

// Valid returns the non-missing values of a numeric column.
func (c *Column) Valid() []float64 {
	if c.Kind != Numeric {
		return nil
	}
	out := make([]float64, 0, len(c.Nums))
	for i, v := range c.Nums {
		if !c.Null[i] {
			out = append(out, v)
		}
	}
	return out
}

// ValidStrings returns the non-missing values of a text column.
func (c *Column) ValidStrings() []string {
	if c.Kind != Text {
		return nil
	}
	out := make([]string, 0, len(c.Strs))
	for i, v := range c.Strs {
		if !c.Null[i] {
			out = append(out, v)
		}
	}
	return out
}

// NullCount returns the number of missing cells.
func (c *Column) NullCount() int {
	n := 0
	for _, null := range c.Null {
		if null {
			n++
		}
	}
	return n
}

func (c *Column) copy() *Column {
	out := &Column{Name: c.Name, Kind: c.Kind, Null: append([]bool(nil), c.Null...)}
	if c.Kind == Numeric {
		out.Nums = append([]float64(nil), c.Nums...)
	} else {
		out.Strs = append([]string(nil), c.Strs...)
	}
	return out
}

func (c *Column) take(rows []int) *Column {
	out := &Column{Name: c.Name, Kind: c.Kind, Null: make([]bool, len(rows))}
	if c.Kind == Numeric {
		out.Nums = make([]float64, len(rows))
	} else {
		out.Strs = make([]string, len(rows))
	}
	for j, i := range rows {
		out.Null[j] = c.Null[i]
		if c.Kind == Numeric {
			out.Nums[j] = c.Nums[i]
		} else {
			out.Strs[j] = c.Strs[i]
		}
	}
	return out
}

// NewNumeric builds a numeric column; NaN values are missing.
func NewNumeric(name string, values []float64) *Column {
	c := &Column{Name: name, Kind: Numeric, Nums: append([]float64(nil), values...), Null: make([]bool, len(values))}
	for i, v := range values {
		c.Null[i] = math.IsNaN(v)
	}
	return c
}

// NewText builds a text column; null may be nil when no cell is missing.
func NewText(name string, values []string, null []bool) *Column {
	c := &Column{Name: name, Kind: Text, Strs: append([]string(nil), values...), Null: make([]bool, len(values))}
	copy(c.Null, null)
	return c
}

// Frame is a table of equally long columns. Index holds the row labels, which
// survive row drops so callers can refer to original rows.
type Frame struct {
	Index   []int
	Columns []*Column
}

// New builds a frame with a 0..n-1 index.
func New(columns ...*Column) (*Frame, error) {
	n := 0
	if len(columns) > 0 {
		n = columns[0].Len()
	}
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if c.Len() != n {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", c.Name, c.Len(), n)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	return &Frame{Index: index, Columns: columns}, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.Index)
}

// Shape returns rows and columns.
func (f *Frame) Shape() (int, int) {
	return len(f.Index), len(f.Columns)
}

// Column returns a column by name.
func (f *Frame) Column(name string) (*Column, bool) {
	for _, c := range f.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.Columns))
	for i, c := range f.Columns {
		names[i] = c.Name
	}
	return names
}

// NumericColumns returns the names of the numeric columns.
func (f *Frame) NumericColumns() []string {
	var names []string
	for _, c := range f.Columns {
		if c.Kind == Numeric {
			names = append(names, c.Name)
		}
	}
	return names
}

// DTypes maps column names to pandas-style dtype names.
func (f *Frame) DTypes() map[string]string {
	out := make(map[string]string, len(f.Columns))
	for _, c := range f.Columns {
		out[c.Name] = c.Kind.DType()
	}
	return out
}

// MissingCounts maps column names to their number of missing cells.
func (f *Frame) MissingCounts() map[string]int {
	out := make(map[string]int, len(f.Columns))
	for _, c := range f.Columns {
		out[c.Name] = c.NullCount()
	}
	return out
}

// Copy returns a deep copy.
func (f *Frame) Copy() *Frame {
	out := &Frame{Index: append([]int(nil), f.Index...), Columns: make([]*Column, len(f.Columns))}
	for i, c := range f.Columns {
		out.Columns[i] = c.copy()
	}
	return out
}

// Take returns a new frame with the rows at the given positions.
func (f *Frame) Take(rows []int) *Frame {
	out := &Frame{Index: make([]int, len(rows)), Columns: make([]*Column, len(f.Columns))}
	for j, i := range rows {
		out.Index[j] = f.Index[i]
	}
	for i, c := range f.Columns {
		out.Columns[i] = c.take(rows)
	}
	return out
}

// Head returns the first n rows.
func (f *Frame) Head(n int) *Frame {
	if n > f.Len() {
		n = f.Len()
	}
	if n < 0 {
		n = 0
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return f.Take(rows)
}

// Drop returns a new frame without the rows carrying the given index labels.
// Unknown labels are ignored.
func (f *Frame) Drop(labels []int) *Frame {
	drop := make(map[int]struct{}, len(labels))
	for _, l := range labels {
		drop[l] = struct{}{}
	}
	rows := make([]int, 0, f.Len())
	for i, label := range f.Index {
		if _, ok := drop[label]; !ok {
			rows = append(rows, i)
		}
	}
	return f.Take(rows)
}

// Filter returns a new frame with the rows for which keep returns true.
func (f *Frame) Filter(keep func(row int) bool) *Frame {
	rows := make([]int, 0, f.Len())
	for i := range f.Index {
		if keep(i) {
			rows = append(rows, i)
		}
	}
	return f.Take(rows)
}

// Records returns one map per row; missing cells are nil.
func (f *Frame) Records() []map[string]any {
	out := make([]map[string]any, f.Len())
	for i := range out {
		rec := make(map[string]any, len(f.Columns))
		for _, c := range f.Columns {
			rec[c.Name] = c.Value(i)
		}
		out[i] = rec
	}
	return out
}
