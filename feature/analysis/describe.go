package analysis

import (
	"math"

	"data-studio/core/frame"
)

// ColumnSummary describes one column. Numeric statistics are nil for text
// columns and for columns without values.
type ColumnSummary struct {
	Name    string   `json:"name"`
	DType   string   `json:"dtype"`
	Count   int      `json:"count"`
	Missing int      `json:"missing"`
	Mean    *float64 `json:"mean,omitempty"`
	Std     *float64 `json:"std,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Q1      *float64 `json:"25%,omitempty"`
	Median  *float64 `json:"50%,omitempty"`
	Q3      *float64 `json:"75%,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Unique  *int     `json:"unique,omitempty"`
	Top     *string  `json:"top,omitempty"`
}

// Describe summarises every column of f in order.
func Describe(f *frame.Frame) []ColumnSummary {
	out := make([]ColumnSummary, 0, len(f.Columns))
	for _, col := range f.Columns {
		s := ColumnSummary{Name: col.Name, DType: col.Kind.DType(), Missing: col.NullCount()}
		s.Count = col.Len() - s.Missing

		if col.Kind == frame.Text {
			values := col.ValidStrings()
			unique := make(map[string]struct{}, len(values))
			for _, v := range values {
				unique[v] = struct{}{}
			}
			n := len(unique)
			s.Unique = &n
			if top, ok := frame.ModeString(values); ok {
				s.Top = &top
			}
			out = append(out, s)
			continue
		}

		valid := col.Valid()
		s.Mean = finite(frame.Mean(valid))
		s.Std = finite(frame.Std(valid))
		s.Min = finite(frame.Min(valid))
		s.Q1 = finite(frame.Quantile(valid, 0.25))
		s.Median = finite(frame.Median(valid))
		s.Q3 = finite(frame.Quantile(valid, 0.75))
		s.Max = finite(frame.Max(valid))
		out = append(out, s)
	}
	return out
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
