// Package frame is a small column-oriented table for CSV datasets.
//
// Columns are either numeric (float64, NaN for missing cells) or text; a null
// mask marks missing cells for both. Row labels (Index) survive row drops, so
// outlier reports can name the original rows. The statistics helpers skip
// missing values and follow the usual dataframe conventions: sample standard
// deviation and linearly interpolated quantiles.
package frame
