package analysis

import (
	"context"
	"fmt"

	"data-studio/core/frame"
	"data-studio/feature/datasets/models"

	"go.uber.org/zap"
)

// PreviewRows is the number of rows returned with a transformed dataset.
const PreviewRows = 10

// Source loads and saves datasets.
type Source interface {
	Load(ctx context.Context, filename string) (*frame.Frame, error)
	Save(ctx context.Context, filename string, f *frame.Frame) (*models.Info, error)
}

// MissingRequest is the body of a missing-value request.
type MissingRequest struct {
	Strategy  Strategy `json:"strategy"`
	Columns   []string `json:"columns"`
	FillValue any      `json:"fill_value"`
	SaveAs    string   `json:"save_as"`
}

// OutlierRequest is the body of an outlier detection request.
type OutlierRequest struct {
	Method    OutlierMethod `json:"method"`
	Columns   []string      `json:"columns"`
	Threshold *float64      `json:"threshold"`
	SaveAs    string        `json:"save_as"`
}

// NormalizeRequest is the body of a normalisation request.
type NormalizeRequest struct {
	Method  NormalizeMethod `json:"method"`
	Columns []string        `json:"columns"`
	SaveAs  string          `json:"save_as"`
}

// RegressionRequest is the body of a regression request.
type RegressionRequest struct {
	Features    []string `json:"features"`
	Target      string   `json:"target"`
	TestSize    *float64 `json:"test_size"`
	RandomState *int64   `json:"random_state"`
}

// Result describes a transformed dataset.
type Result struct {
	Filename string           `json:"filename"`
	Rows     int              `json:"rows"`
	Columns  int              `json:"columns"`
	Missing  map[string]int   `json:"missing"`
	Preview  []map[string]any `json:"preview"`
	Removed  *Removal         `json:"removed,omitempty"`
	SavedAs  *models.Info     `json:"saved_as,omitempty"`
}

// OutlierReport lists outlying rows per column.
type OutlierReport struct {
	Filename string   `json:"filename"`
	Method   string   `json:"method"`
	Outliers Outliers `json:"outliers"`
	Total    int      `json:"total"`
}

// Service runs analyses over stored datasets.
type Service struct {
	source Source
	logger *zap.Logger
}

// NewService creates a new analysis service.
func NewService(source Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Summary describes every column of a dataset.
func (s *Service) Summary(ctx context.Context, filename string) ([]ColumnSummary, error) {
	f, err := s.source.Load(ctx, filename)
	if err != nil {
		return nil, err
	}
	return Describe(f), nil
}

// Missing handles missing values and optionally saves the result.
func (s *Service) Missing(ctx context.Context, filename string, req MissingRequest) (*Result, error) {
	f, err := s.source.Load(ctx, filename)
	if err != nil {
		return nil, err
	}
	out, err := HandleMissing(f, req.Strategy, req.Columns, req.FillValue)
	if err != nil {
		return nil, err
	}
	return s.finish(ctx, filename, out, req.SaveAs)
}

// Outliers detects outlying rows.
func (s *Service) Outliers(ctx context.Context, filename string, req OutlierRequest) (*OutlierReport, error) {
	f, err := s.source.Load(ctx, filename)
	if err != nil {
		return nil, err
	}
	method := outlierMethod(req.Method)
	found, err := DetectOutliers(f, method, req.Columns, threshold(req.Threshold))
	if err != nil {
		return nil, err
	}
	return &OutlierReport{Filename: filename, Method: string(method), Outliers: found, Total: len(found.Labels())}, nil
}

// RemoveOutliers detects outlying rows, drops them and optionally saves the result.
func (s *Service) RemoveOutliers(ctx context.Context, filename string, req OutlierRequest) (*Result, error) {
	f, err := s.source.Load(ctx, filename)
	if err != nil {
		return nil, err
	}
	found, err := DetectOutliers(f, outlierMethod(req.Method), req.Columns, threshold(req.Threshold))
	if err != nil {
		return nil, err
	}
	out, removal := RemoveOutliers(f, found)
	s.logger.Info("Removed outlier rows",
		zap.String("filename", filename),
		zap.Int("rows", removal.Rows),
		zap.String("ratio", fmt.Sprintf("%.1f%%", removal.Ratio*100)),
	)
	res, err := s.finish(ctx, filename, out, req.SaveAs)
	if err != nil {
		return nil, err
	}
	res.Removed = &removal
	return res, nil
}

// Normalize rescales numeric columns and optionally saves the result.
func (s *Service) Normalize(ctx context.Context, filename string, req NormalizeRequest) (*Result, error) {
	f, err := s.source.Load(ctx, filename)
	if err != nil {
		return nil, err
	}
	method := req.Method
	if method == "" {
		method = NormalizeMinMax
	}
	out, err := Normalize(f, method, req.Columns)
	if err != nil {
		return nil, err
	}
	return s.finish(ctx, filename, out, req.SaveAs)
}

// Regression fits a linear model.
func (s *Service) Regression(ctx context.Context, filename string, req RegressionRequest) (*RegressionResult, error) {
	f, err := s.source.Load(ctx, filename)
	if err != nil {
		return nil, err
	}
	testSize, seed := DefaultTestSize, DefaultRandomState
	if req.TestSize != nil {
		testSize = *req.TestSize
	}
	if req.RandomState != nil {
		seed = *req.RandomState
	}
	res, err := LinearRegression(f, req.Features, req.Target, testSize, seed)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Fitted linear regression",
		zap.String("filename", filename),
		zap.String("equation", res.Equation),
		zap.Float64("test_r2", res.Metrics.TestR2),
	)
	return res, nil
}

func (s *Service) finish(ctx context.Context, filename string, f *frame.Frame, saveAs string) (*Result, error) {
	rows, cols := f.Shape()
	res := &Result{
		Filename: filename,
		Rows:     rows,
		Columns:  cols,
		Missing:  f.MissingCounts(),
		Preview:  f.Head(PreviewRows).Records(),
	}
	if saveAs == "" {
		return res, nil
	}
	info, err := s.source.Save(ctx, saveAs, f)
	if err != nil {
		return nil, err
	}
	res.SavedAs = info
	return res, nil
}

func outlierMethod(m OutlierMethod) OutlierMethod {
	if m == "" {
		return OutlierZScore
	}
	return m
}

func threshold(t *float64) float64 {
	if t == nil {
		return DefaultThreshold
	}
	return *t
}
