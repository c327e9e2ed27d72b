package analysis

import (
	"fmt"

	"data-studio/core/frame"
)

// NormalizeMethod selects the rescaling applied by Normalize.
type NormalizeMethod string

const (
	// NormalizeMinMax maps values to [0, 1].
	NormalizeMinMax NormalizeMethod = "minmax"
	// NormalizeZScore centres values on 0 with unit sample deviation.
	NormalizeZScore NormalizeMethod = "zscore"
)

// Normalize returns a copy of f with the numeric columns rescaled. Columns
// whose range (minmax) or deviation (zscore) is zero are left unchanged, as
// are missing cells.
func Normalize(f *frame.Frame, method NormalizeMethod, columns []string) (*frame.Frame, error) {
	if method != NormalizeMinMax && method != NormalizeZScore {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	if columns == nil {
		columns = f.NumericColumns()
	}

	out := f.Copy()
	for _, name := range columns {
		col, ok := out.Column(name)
		if !ok || col.Kind != frame.Numeric {
			continue
		}
		valid := col.Valid()
		var shift, scale float64
		switch method {
		case NormalizeMinMax:
			lo, hi := frame.Min(valid), frame.Max(valid)
			if !(hi > lo) {
				continue
			}
			shift, scale = lo, hi-lo
		case NormalizeZScore:
			std := frame.Std(valid)
			if !(std > 0) {
				continue
			}
			shift, scale = frame.Mean(valid), std
		}
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) {
				col.SetNum(i, (col.Nums[i]-shift)/scale)
			}
		}
	}
	return out, nil
}
