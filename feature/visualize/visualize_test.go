package visualize_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"data-studio/core/frame"
	"data-studio/feature/datasets"
	"data-studio/feature/visualize"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const salesCSV = "month,north,south\nJan,10,7\nFeb,,9\nMar,14,8\n"

type source map[string]string

func (s source) Load(_ context.Context, filename string) (*frame.Frame, error) {
	data, ok := s[filename]
	if !ok {
		return nil, &datasets.NotFoundError{Filename: filename}
	}
	return frame.ReadCSV(strings.NewReader(data))
}

func sales(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.ReadCSV(strings.NewReader(salesCSV))
	require.NoError(t, err)
	return f
}

func TestLineChart(t *testing.T) {
	fig, err := visualize.LineChart(sales(t), "month", []string{"north", "south"}, visualize.Options{})
	require.NoError(t, err)

	require.Len(t, fig.Data, 2)
	assert.Equal(t, "scatter", fig.Data[0].Type)
	assert.Equal(t, "lines+markers", fig.Data[0].Mode)
	assert.Equal(t, "north", fig.Data[0].Name)
	assert.Equal(t, []any{"Jan", "Feb", "Mar"}, fig.Data[0].X)
	assert.Equal(t, []any{10.0, nil, 14.0}, fig.Data[0].Y)

	assert.Equal(t, visualize.DefaultLineTitle, fig.Layout.Title.Text)
	assert.Equal(t, "X轴", fig.Layout.XAxis.Title.Text)
	assert.Equal(t, "Y轴", fig.Layout.YAxis.Title.Text)
	assert.Equal(t, "数据系列", fig.Layout.Legend.Title.Text)
	assert.Equal(t, "plotly_white", fig.Layout.Template)
}

func TestLineChartErrors(t *testing.T) {
	_, err := visualize.LineChart(sales(t), "month", nil, visualize.Options{})
	assert.ErrorIs(t, err, visualize.ErrNoSeries)

	_, err = visualize.LineChart(sales(t), "week", []string{"north"}, visualize.Options{})
	assert.ErrorIs(t, err, visualize.ErrUnknownColumn)

	_, err = visualize.LineChart(sales(t), "month", []string{"west"}, visualize.Options{})
	assert.ErrorIs(t, err, visualize.ErrUnknownColumn)
}

func TestBarAndScatter(t *testing.T) {
	bar, err := visualize.BarChart(sales(t), "month", "south", visualize.Options{Title: "南区", YAxisTitle: "销量"})
	require.NoError(t, err)
	assert.Equal(t, "bar", bar.Data[0].Type)
	assert.Empty(t, bar.Data[0].Mode)
	assert.Equal(t, "南区", bar.Layout.Title.Text)
	assert.Equal(t, "X轴", bar.Layout.XAxis.Title.Text)
	assert.Equal(t, "销量", bar.Layout.YAxis.Title.Text)

	scatter, err := visualize.ScatterPlot(sales(t), "north", "south", visualize.Options{})
	require.NoError(t, err)
	assert.Equal(t, "markers", scatter.Data[0].Mode)
	assert.Equal(t, visualize.DefaultScatterTitle, scatter.Layout.Title.Text)

	_, err = visualize.ScatterPlot(sales(t), "north", "", visualize.Options{})
	assert.ErrorIs(t, err, visualize.ErrNoSeries)
}

func TestHandlers(t *testing.T) {
	feature := visualize.NewFeature(source{"sales.csv": salesCSV}, zap.NewNop())
	assert.Equal(t, "visualize", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	require.NoError(t, feature.Load(app.Group("/api")))

	tests := []struct {
		path   string
		body   string
		status int
	}{
		{"/api/visualize/sales.csv/line", `{"x_column":"month","y_columns":["north","south"]}`, fiber.StatusOK},
		{"/api/visualize/sales.csv/bar", `{"x_column":"month","y_column":"north"}`, fiber.StatusOK},
		{"/api/visualize/sales.csv/scatter", `{"x_column":"north","y_columns":["south"]}`, fiber.StatusOK},
		{"/api/visualize/sales.csv/bar", `{"x_column":"month"}`, fiber.StatusBadRequest},
		{"/api/visualize/sales.csv/line", `{"x_column":"nope","y_columns":["north"]}`, fiber.StatusBadRequest},
		{"/api/visualize/other.csv/line", `{"x_column":"month","y_columns":["north"]}`, fiber.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("POST", tt.path, strings.NewReader(tt.body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, tt.status, resp.StatusCode, tt.path+" "+tt.body)
	}

	req := httptest.NewRequest("POST", "/api/visualize/sales.csv/bar", strings.NewReader(`{"x_column":"month","y_column":"north","title":"北区"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var fig visualize.Figure
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&fig))
	assert.Equal(t, "北区", fig.Layout.Title.Text)
	assert.Equal(t, []any{10.0, nil, 14.0}, fig.Data[0].Y)
}
