package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spikeCSV = "x,label,gap\n1,a,1\n2,b,\n3,c,1\n4,d,1\n5,e,1\n100,f,1\n"

func TestDetectOutliersIQR(t *testing.T) {
	f := read(t, spikeCSV)

	found, err := DetectOutliers(f, OutlierIQR, nil, DefaultThreshold)
	require.NoError(t, err)
	assert.Equal(t, Outliers{"x": {5}, "gap": {}}, found)
}

func TestDetectOutliersZScore(t *testing.T) {
	f := read(t, spikeCSV)

	// |100-19.17|/39.63 is about 2.04.
	found, err := DetectOutliers(f, OutlierZScore, []string{"x"}, DefaultThreshold)
	require.NoError(t, err)
	assert.Empty(t, found["x"])

	found, err = DetectOutliers(f, OutlierZScore, []string{"x", "label", "nope"}, 2)
	require.NoError(t, err)
	assert.Equal(t, Outliers{"x": {5}}, found)
}

func TestDetectOutliersInvalidMethod(t *testing.T) {
	_, err := DetectOutliers(read(t, spikeCSV), "dbscan", nil, 3)
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestOutliersLabels(t *testing.T) {
	o := Outliers{"a": {3, 1}, "b": {1, 2}}
	assert.Equal(t, []int{1, 2, 3}, o.Labels())
}

func TestRemoveOutliers(t *testing.T) {
	f := read(t, spikeCSV)

	out, removal := RemoveOutliers(f, Outliers{"x": {5}, "gap": {5, 99}})
	assert.Equal(t, 1, removal.Rows)
	assert.InDelta(t, 1.0/6, removal.Ratio, 1e-12)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, out.Index)
	assert.Equal(t, 6, f.Len())

	// Labels survive the drop, so removing an already removed row is a no-op.
	again, removal := RemoveOutliers(out, Outliers{"x": {5, 0}})
	assert.Equal(t, 1, removal.Rows)
	assert.Equal(t, []int{1, 2, 3, 4}, again.Index)
}

func TestNormalize(t *testing.T) {
	f := read(t, "x,c,name\n1,7,a\n2,7,b\n,7,c\n100,7,d\n")

	out, err := Normalize(f, NormalizeMinMax, nil)
	require.NoError(t, err)
	x := col(t, out, "x")
	assert.Equal(t, 0.0, x.Nums[0])
	assert.InDelta(t, 1.0/99, x.Nums[1], 1e-12)
	assert.True(t, x.IsNull(2))
	assert.Equal(t, 1.0, x.Nums[3])
	assert.Equal(t, []float64{7, 7, 7, 7}, col(t, out, "c").Nums)

	out, err = Normalize(f, NormalizeZScore, []string{"x", "name"})
	require.NoError(t, err)
	x = col(t, out, "x")
	valid := x.Valid()
	var sum float64
	for _, v := range valid {
		sum += v
	}
	assert.InDelta(t, 0, sum, 1e-9)
	assert.Equal(t, "a", col(t, out, "name").Strs[0])
	assert.Equal(t, 1.0, col(t, f, "x").Nums[0])

	_, err = Normalize(f, "log", nil)
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestDescribe(t *testing.T) {
	summary := Describe(read(t, weatherCSV))
	require.Len(t, summary, 3)

	city := summary[0]
	assert.Equal(t, "object", city.DType)
	assert.Equal(t, 3, city.Count)
	assert.Equal(t, 1, city.Missing)
	require.NotNil(t, city.Top)
	assert.Equal(t, "A", *city.Top)
	assert.Equal(t, 2, *city.Unique)
	assert.Nil(t, city.Mean)

	temp := summary[1]
	assert.Equal(t, "float64", temp.DType)
	assert.Equal(t, 3, temp.Count)
	assert.InDelta(t, 80.0/3, *temp.Mean, 1e-9)
	assert.Equal(t, 30.0, *temp.Median)
	assert.Equal(t, 10.0, *temp.Min)
	assert.Equal(t, 40.0, *temp.Max)
	assert.Equal(t, 20.0, *temp.Q1)
	assert.Equal(t, 35.0, *temp.Q3)
}
