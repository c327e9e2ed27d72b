package visualize

import (
	"errors"
	"fmt"

	"data-studio/core/frame"
)

const (
	DefaultLineTitle    = "折线图"
	DefaultBarTitle     = "柱状图"
	DefaultScatterTitle = "散点图"
	DefaultXAxisTitle   = "X轴"
	DefaultYAxisTitle   = "Y轴"
	LegendTitle         = "数据系列"
	Template            = "plotly_white"
)

var (
	// ErrUnknownColumn is returned when a chart references a missing column.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrNoSeries is returned when a chart has no y column.
	ErrNoSeries = errors.New("at least one y column is required")
)

// Text is a plotly title object.
type Text struct {
	Text string `json:"text"`
}

// Axis is a plotly axis layout.
type Axis struct {
	Title Text `json:"title"`
}

// Legend is a plotly legend layout.
type Legend struct {
	Title Text `json:"title"`
}

// Layout is the plotly figure layout.
type Layout struct {
	Title    Text   `json:"title"`
	XAxis    Axis   `json:"xaxis"`
	YAxis    Axis   `json:"yaxis"`
	Legend   Legend `json:"legend"`
	Template string `json:"template"`
}

// Trace is one plotly data series. Missing cells are null.
type Trace struct {
	Type string `json:"type"`
	Mode string `json:"mode,omitempty"`
	Name string `json:"name"`
	X    []any  `json:"x"`
	Y    []any  `json:"y"`
}

// Figure is a plotly figure that plotly.js renders directly.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Options overrides chart titles; empty fields keep the chart's defaults.
type Options struct {
	Title      string `json:"title"`
	XAxisTitle string `json:"xaxis_title"`
	YAxisTitle string `json:"yaxis_title"`
}

func (o Options) layout(defaultTitle string) Layout {
	l := Layout{
		Title:    Text{Text: defaultTitle},
		XAxis:    Axis{Title: Text{Text: DefaultXAxisTitle}},
		YAxis:    Axis{Title: Text{Text: DefaultYAxisTitle}},
		Legend:   Legend{Title: Text{Text: LegendTitle}},
		Template: Template,
	}
	if o.Title != "" {
		l.Title.Text = o.Title
	}
	if o.XAxisTitle != "" {
		l.XAxis.Title.Text = o.XAxisTitle
	}
	if o.YAxisTitle != "" {
		l.YAxis.Title.Text = o.YAxisTitle
	}
	return l
}

// LineChart draws one lines+markers trace per y column against x.
func LineChart(f *frame.Frame, x string, ys []string, opts Options) (*Figure, error) {
	if len(ys) == 0 {
		return nil, ErrNoSeries
	}
	xs, err := values(f, x)
	if err != nil {
		return nil, err
	}
	fig := &Figure{Layout: opts.layout(DefaultLineTitle)}
	for _, y := range ys {
		vs, err := values(f, y)
		if err != nil {
			return nil, err
		}
		fig.Data = append(fig.Data, Trace{Type: "scatter", Mode: "lines+markers", Name: y, X: xs, Y: vs})
	}
	return fig, nil
}

// BarChart draws y against x as bars.
func BarChart(f *frame.Frame, x, y string, opts Options) (*Figure, error) {
	return single(f, x, y, Trace{Type: "bar"}, opts.layout(DefaultBarTitle))
}

// ScatterPlot draws y against x as markers.
func ScatterPlot(f *frame.Frame, x, y string, opts Options) (*Figure, error) {
	return single(f, x, y, Trace{Type: "scatter", Mode: "markers"}, opts.layout(DefaultScatterTitle))
}

func single(f *frame.Frame, x, y string, trace Trace, layout Layout) (*Figure, error) {
	if y == "" {
		return nil, ErrNoSeries
	}
	xs, err := values(f, x)
	if err != nil {
		return nil, err
	}
	ys, err := values(f, y)
	if err != nil {
		return nil, err
	}
	trace.Name, trace.X, trace.Y = y, xs, ys
	return &Figure{Data: []Trace{trace}, Layout: layout}, nil
}

func values(f *frame.Frame, name string) ([]any, error) {
	col, ok := f.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	out := make([]any, col.Len())
	for i := range out {
		out[i] = col.Value(i)
	}
	return out, nil
}
