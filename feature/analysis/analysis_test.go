package analysis

import (
	"strings"
	"testing"

	"data-studio/core/frame"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weatherCSV = "city,temp,rain\nA,10,1\nB,,2\n,30,\nA,40,4\n"

func read(t *testing.T, csv string) *frame.Frame {
	t.Helper()
	f, err := frame.ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	return f
}

func col(t *testing.T, f *frame.Frame, name string) *frame.Column {
	t.Helper()
	c, ok := f.Column(name)
	require.True(t, ok, name)
	return c
}

func TestHandleMissingDrop(t *testing.T) {
	f := read(t, weatherCSV)

	all, err := HandleMissing(f, StrategyDrop, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, all.Index)

	subset, err := HandleMissing(f, StrategyDrop, []string{"temp"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3}, subset.Index)

	_, err = HandleMissing(f, StrategyDrop, []string{"nope"}, nil)
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestHandleMissingFill(t *testing.T) {
	f := read(t, weatherCSV)

	tests := []struct {
		strategy Strategy
		temp     float64
		rain     float64
	}{
		{StrategyMean, 80.0 / 3, 7.0 / 3},
		{StrategyMedian, 30, 2},
		{StrategyMode, 10, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			out, err := HandleMissing(f, tt.strategy, nil, nil)
			require.NoError(t, err)
			assert.InDelta(t, tt.temp, col(t, out, "temp").Nums[1], 1e-9)
			assert.InDelta(t, tt.rain, col(t, out, "rain").Nums[2], 1e-9)
			assert.Equal(t, "A", col(t, out, "city").Strs[2])
			assert.Equal(t, map[string]int{"city": 0, "temp": 0, "rain": 0}, out.MissingCounts())
		})
	}

	// The input frame is never modified.
	assert.True(t, col(t, f, "temp").IsNull(1))
	assert.True(t, col(t, f, "city").IsNull(2))
}

func TestHandleMissingValue(t *testing.T) {
	f := read(t, weatherCSV)

	out, err := HandleMissing(f, StrategyValue, nil, 0.0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, col(t, out, "temp").Nums[1])
	assert.Equal(t, "0", col(t, out, "city").Strs[2])

	out, err = HandleMissing(f, StrategyValue, []string{"city", "missing"}, "unknown")
	require.NoError(t, err)
	assert.Equal(t, "unknown", col(t, out, "city").Strs[2])
	assert.True(t, col(t, out, "temp").IsNull(1))

	_, err = HandleMissing(f, StrategyValue, []string{"temp"}, "x")
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestHandleMissingErrors(t *testing.T) {
	f := read(t, weatherCSV)

	_, err := HandleMissing(f, "interpolate", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidStrategy)

	_, err = HandleMissing(f, StrategyValue, nil, nil)
	assert.ErrorIs(t, err, ErrFillValueRequired)
}

func TestHandleMissingAllMissingTextColumn(t *testing.T) {
	f, err := frame.New(
		frame.NewText("note", []string{"", ""}, []bool{true, true}),
	)
	require.NoError(t, err)

	out, err := HandleMissing(f, StrategyMode, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, col(t, out, "note").NullCount())
}
