package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"data-studio/core/frame"

	"gonum.org/v1/gonum/mat"
)

// epsilon is the float64 machine epsilon.
var epsilon = math.Nextafter(1, 2) - 1

const (
	// DefaultTestSize is the share of rows held out for evaluation.
	DefaultTestSize = 0.2
	// DefaultRandomState seeds the train/test shuffle.
	DefaultRandomState int64 = 42
)

var (
	// ErrNoFeatures is returned when a regression has no feature columns.
	ErrNoFeatures = errors.New("at least one feature is required")
	// ErrMissingValues is returned when regression input has missing cells.
	ErrMissingValues = errors.New("column has missing values")
	// ErrTestSize is returned for a test share outside (0, 1).
	ErrTestSize = errors.New("test_size must be between 0 and 1")
	// ErrTooFewRows is returned when the split leaves an empty side.
	ErrTooFewRows = errors.New("not enough rows to split into train and test sets")
)

// Metrics holds the fit quality on both splits.
type Metrics struct {
	TrainRMSE float64 `json:"train_rmse"`
	TestRMSE  float64 `json:"test_rmse"`
	TrainR2   float64 `json:"train_r2"`
	TestR2    float64 `json:"test_r2"`
}

// PlotSeries carries one feature's points for a scatter of the fit.
type PlotSeries struct {
	Feature     string    `json:"feature"`
	Coefficient float64   `json:"coefficient"`
	XTrain      []float64 `json:"x_train"`
	YTrain      []float64 `json:"y_train"`
	XTest       []float64 `json:"x_test"`
	YTest       []float64 `json:"y_test"`
}

// RegressionResult is the outcome of LinearRegression.
type RegressionResult struct {
	Features          []string           `json:"features"`
	Target            string             `json:"target"`
	Coefficients      map[string]float64 `json:"coefficients"`
	Intercept         float64            `json:"intercept"`
	Metrics           Metrics            `json:"metrics"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
	Equation          string             `json:"equation"`
	TrainSize         int                `json:"train_size"`
	TestSize          int                `json:"test_size"`
	PlotData          []PlotSeries       `json:"plot_data"`
}

// LinearRegression fits target on features by ordinary least squares with an
// intercept. Rows are shuffled with seed; the first ceil(n*testSize) rows of
// the permutation form the test set.
func LinearRegression(f *frame.Frame, features []string, target string, testSize float64, seed int64) (*RegressionResult, error) {
	if len(features) == 0 {
		return nil, ErrNoFeatures
	}
	if !(testSize > 0 && testSize < 1) {
		return nil, fmt.Errorf("%w: %v", ErrTestSize, testSize)
	}

	xs := make([][]float64, len(features))
	for j, name := range features {
		col, err := regressionColumn(f, name)
		if err != nil {
			return nil, err
		}
		xs[j] = col
	}
	y, err := regressionColumn(f, target)
	if err != nil {
		return nil, err
	}

	n := f.Len()
	nTest := int(math.Ceil(float64(n) * testSize))
	nTrain := n - nTest
	if nTest < 1 || nTrain < 1 {
		return nil, fmt.Errorf("%w: %d rows", ErrTooFewRows, n)
	}
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	testRows, trainRows := perm[:nTest], perm[nTest:]

	p := len(features)
	xMean := make([]float64, p)
	yMean := 0.0
	for _, row := range trainRows {
		for j := range features {
			xMean[j] += xs[j][row]
		}
		yMean += y[row]
	}
	for j := range xMean {
		xMean[j] /= float64(nTrain)
	}
	yMean /= float64(nTrain)

	// Centering removes the intercept column, so constant features get a zero coefficient.
	design := mat.NewDense(nTrain, p, nil)
	yTrain := make([]float64, nTrain)
	for i, row := range trainRows {
		for j := range features {
			design.Set(i, j, xs[j][row]-xMean[j])
		}
		yTrain[i] = y[row] - yMean
	}

	coef, err := leastSquares(design, yTrain)
	if err != nil {
		return nil, err
	}
	intercept := yMean
	for j := range features {
		intercept -= coef[j] * xMean[j]
	}

	predict := func(row int) float64 {
		v := intercept
		for j := range features {
			v += coef[j] * xs[j][row]
		}
		return v
	}

	res := &RegressionResult{
		Features:          append([]string(nil), features...),
		Target:            target,
		Coefficients:      make(map[string]float64, p),
		Intercept:         intercept,
		FeatureImportance: make(map[string]float64, p),
		TrainSize:         nTrain,
		TestSize:          nTest,
	}
	res.Metrics.TrainRMSE, res.Metrics.TrainR2 = score(trainRows, y, predict)
	res.Metrics.TestRMSE, res.Metrics.TestR2 = score(testRows, y, predict)

	terms := make([]string, p)
	for j, name := range features {
		res.Coefficients[name] = coef[j]
		res.FeatureImportance[name] = math.Abs(coef[j])
		terms[j] = fmt.Sprintf("%.4f * %s", coef[j], name)
		res.PlotData = append(res.PlotData, PlotSeries{
			Feature:     name,
			Coefficient: coef[j],
			XTrain:      pick(xs[j], trainRows),
			YTrain:      pick(y, trainRows),
			XTest:       pick(xs[j], testRows),
			YTest:       pick(y, testRows),
		})
	}
	res.Equation = fmt.Sprintf("%s = %s + %.4f", target, strings.Join(terms, " + "), res.Intercept)
	return res, nil
}

// leastSquares returns the minimum-norm solution of a·x ≈ b. Singular values
// below eps·max(rows, cols) of the largest are treated as zero, so collinear
// or constant columns share or drop their weight instead of failing.
func leastSquares(a *mat.Dense, b []float64) ([]float64, error) {
	rows, cols := a.Dims()
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, fmt.Errorf("failed to fit model: singular value decomposition did not converge")
	}
	rcond := epsilon * float64(max(rows, cols))
	rank := svd.Rank(rcond)
	if rank == 0 {
		return make([]float64, cols), nil
	}
	var x mat.VecDense
	svd.SolveVecTo(&x, mat.NewVecDense(rows, b), rank)
	return mat.Col(nil, 0, &x), nil
}

func regressionColumn(f *frame.Frame, name string) ([]float64, error) {
	col, ok := f.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	if col.Kind != frame.Numeric {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, name)
	}
	if col.NullCount() > 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingValues, name)
	}
	return col.Nums, nil
}

// score returns RMSE and R² over rows. A constant target yields R² of 1 for a
// perfect fit and 0 otherwise.
func score(rows []int, y []float64, predict func(int) float64) (rmse, r2 float64) {
	var mean float64
	for _, row := range rows {
		mean += y[row]
	}
	mean /= float64(len(rows))

	var ssRes, ssTot float64
	for _, row := range rows {
		d := y[row] - predict(row)
		ssRes += d * d
		t := y[row] - mean
		ssTot += t * t
	}
	rmse = math.Sqrt(ssRes / float64(len(rows)))
	switch {
	case ssTot > 0:
		r2 = 1 - ssRes/ssTot
	case ssRes == 0:
		r2 = 1
	}
	return rmse, r2
}

func pick(values []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = values[row]
	}
	return out
}
