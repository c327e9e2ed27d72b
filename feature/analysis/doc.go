// Package analysis cleans and models tabular datasets.
//
// The functions operate on core/frame values and never modify their input:
// HandleMissing, DetectOutliers with RemoveOutliers, Normalize, Describe and
// LinearRegression. The HTTP handlers under /analysis/:filename load a stored
// dataset, run one of them, and can store the transformed frame as a new
// dataset when save_as is given.
package analysis
