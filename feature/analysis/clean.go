package analysis

import (
	"errors"
	"fmt"

	"data-studio/core/frame"
	"data-studio/core/utils"
)

var (
	// ErrInvalidStrategy is returned for an unknown missing-value strategy.
	ErrInvalidStrategy = errors.New("invalid strategy")
	// ErrFillValueRequired is returned when the value strategy has no fill value.
	ErrFillValueRequired = errors.New("fill_value must be provided when strategy is value")
	// ErrInvalidMethod is returned for an unknown outlier or normalisation method.
	ErrInvalidMethod = errors.New("invalid method")
	// ErrUnknownColumn is returned when a referenced column does not exist.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrNotNumeric is returned when a column must be numeric but is not.
	ErrNotNumeric = errors.New("column is not numeric")
)

// Strategy selects how HandleMissing fills missing cells.
type Strategy string

const (
	StrategyDrop   Strategy = "drop"
	StrategyMean   Strategy = "mean"
	StrategyMedian Strategy = "median"
	StrategyMode   Strategy = "mode"
	StrategyValue  Strategy = "value"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyDrop, StrategyMean, StrategyMedian, StrategyMode, StrategyValue:
		return true
	}
	return false
}

// HandleMissing returns a copy of f with missing cells handled.
//
// With StrategyDrop, rows missing a value in any of columns are removed. The
// other strategies fill numeric columns with the column statistic, and text
// columns with fill (StrategyValue) or the column mode. A nil columns slice
// means every column; names that do not exist are skipped when filling.
func HandleMissing(f *frame.Frame, strategy Strategy, columns []string, fill any) (*frame.Frame, error) {
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStrategy, strategy)
	}
	if strategy == StrategyValue && fill == nil {
		return nil, ErrFillValueRequired
	}
	if columns == nil {
		columns = f.Names()
	}

	if strategy == StrategyDrop {
		subset := make([]*frame.Column, 0, len(columns))
		for _, name := range columns {
			col, ok := f.Column(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
			}
			subset = append(subset, col)
		}
		return f.Filter(func(row int) bool {
			for _, col := range subset {
				if col.IsNull(row) {
					return false
				}
			}
			return true
		}), nil
	}

	out := f.Copy()
	for _, name := range columns {
		col, ok := out.Column(name)
		if !ok {
			continue
		}
		if col.Kind == frame.Numeric {
			v, ok, err := numericFill(col, strategy, fill)
			if err != nil {
				return nil, err
			}
			if ok {
				fillNumeric(col, v)
			}
			continue
		}
		var v string
		if strategy == StrategyValue {
			v = utils.ToString(fill)
		} else if v, ok = frame.ModeString(col.ValidStrings()); !ok {
			continue
		}
		for i := 0; i < col.Len(); i++ {
			if col.IsNull(i) {
				col.SetStr(i, v)
			}
		}
	}
	return out, nil
}

// numericFill returns the value used to fill col. ok is false when the column
// has no value to fill with, such as the mean of an all-missing column.
func numericFill(col *frame.Column, strategy Strategy, fill any) (float64, bool, error) {
	valid := col.Valid()
	switch strategy {
	case StrategyMean:
		return frame.Mean(valid), len(valid) > 0, nil
	case StrategyMedian:
		return frame.Median(valid), len(valid) > 0, nil
	case StrategyMode:
		v, ok := frame.Mode(valid)
		return v, ok, nil
	default:
		v, ok := utils.ToFloat(fill)
		if !ok {
			return 0, false, fmt.Errorf("fill_value %v for numeric column %q: %w", fill, col.Name, ErrNotNumeric)
		}
		return v, true, nil
	}
}

func fillNumeric(col *frame.Column, v float64) {
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			col.SetNum(i, v)
		}
	}
}
