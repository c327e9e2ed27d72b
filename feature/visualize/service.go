package visualize

import (
	"context"

	"data-studio/core/frame"

	"go.uber.org/zap"
)

// Source loads datasets.
type Source interface {
	Load(ctx context.Context, filename string) (*frame.Frame, error)
}

// ChartRequest is the body of a chart request. Line charts draw every column
// in YColumns; bar and scatter charts use YColumn, or the first of YColumns.
type ChartRequest struct {
	Options
	XColumn  string   `json:"x_column"`
	YColumn  string   `json:"y_column"`
	YColumns []string `json:"y_columns"`
}

func (r ChartRequest) series() []string {
	if r.YColumn != "" {
		return append([]string{r.YColumn}, r.YColumns...)
	}
	return r.YColumns
}

func (r ChartRequest) first() string {
	if s := r.series(); len(s) > 0 {
		return s[0]
	}
	return ""
}

// Service builds charts from stored datasets.
type Service struct {
	source Source
	logger *zap.Logger
}

// NewService creates a new chart service.
func NewService(source Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Line builds a line chart.
func (s *Service) Line(ctx context.Context, filename string, req ChartRequest) (*Figure, error) {
	f, err := s.source.Load(ctx, filename)
	if err != nil {
		return nil, err
	}
	return LineChart(f, req.XColumn, req.series(), req.Options)
}

// Bar builds a bar chart.
func (s *Service) Bar(ctx context.Context, filename string, req ChartRequest) (*Figure, error) {
	f, err := s.source.Load(ctx, filename)
	if err != nil {
		return nil, err
	}
	return BarChart(f, req.XColumn, req.first(), req.Options)
}

// Scatter builds a scatter plot.
func (s *Service) Scatter(ctx context.Context, filename string, req ChartRequest) (*Figure, error) {
	f, err := s.source.Load(ctx, filename)
	if err != nil {
		return nil, err
	}
	return ScatterPlot(f, req.XColumn, req.first(), req.Options)
}
