package analysis

import (
	"fmt"
	"math"
	"sort"

	"data-studio/core/frame"
)

// OutlierMethod selects how DetectOutliers flags values.
type OutlierMethod string

const (
	OutlierZScore OutlierMethod = "zscore"
	OutlierIQR    OutlierMethod = "iqr"
)

// DefaultThreshold is the z-score above which a value is an outlier.
const DefaultThreshold = 3.0

// Outliers maps column names to the index labels of their outlying rows.
type Outliers map[string][]int

// Labels returns the sorted union of all labels.
func (o Outliers) Labels() []int {
	seen := make(map[int]struct{})
	for _, labels := range o {
		for _, l := range labels {
			seen[l] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// DetectOutliers flags outlying values per numeric column.
//
// OutlierZScore flags |x-mean|/std > threshold using the sample deviation.
// OutlierIQR flags values outside [q1-1.5*iqr, q3+1.5*iqr] and ignores the
// threshold. A nil columns slice means every numeric column; text and unknown
// columns are skipped. Missing cells are never outliers.
func DetectOutliers(f *frame.Frame, method OutlierMethod, columns []string, threshold float64) (Outliers, error) {
	if method != OutlierZScore && method != OutlierIQR {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	if columns == nil {
		columns = f.NumericColumns()
	}

	out := make(Outliers, len(columns))
	for _, name := range columns {
		col, ok := f.Column(name)
		if !ok || col.Kind != frame.Numeric {
			continue
		}
		valid := col.Valid()
		var outside func(x float64) bool
		if method == OutlierZScore {
			mean, std := frame.Mean(valid), frame.Std(valid)
			outside = func(x float64) bool {
				return math.Abs((x-mean)/std) > threshold
			}
		} else {
			q1, q3 := frame.Quantile(valid, 0.25), frame.Quantile(valid, 0.75)
			iqr := q3 - q1
			lo, hi := q1-1.5*iqr, q3+1.5*iqr
			outside = func(x float64) bool {
				return x < lo || x > hi
			}
		}

		labels := []int{}
		for i := 0; i < col.Len(); i++ {
			if !col.IsNull(i) && outside(col.Nums[i]) {
				labels = append(labels, f.Index[i])
			}
		}
		out[name] = labels
	}
	return out, nil
}

// Removal summarises a RemoveOutliers call.
type Removal struct {
	Rows  int     `json:"rows"`
	Ratio float64 `json:"ratio"`
}

// RemoveOutliers drops every row whose label appears in outliers. Labels that
// are not in the frame are ignored.
func RemoveOutliers(f *frame.Frame, outliers Outliers) (*frame.Frame, Removal) {
	present := make(map[int]struct{}, f.Len())
	for _, l := range f.Index {
		present[l] = struct{}{}
	}
	var labels []int
	for _, l := range outliers.Labels() {
		if _, ok := present[l]; ok {
			labels = append(labels, l)
		}
	}

	removal := Removal{Rows: len(labels)}
	if f.Len() > 0 {
		removal.Ratio = float64(len(labels)) / float64(f.Len())
	}
	return f.Drop(labels), removal
}
