package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearFit(t *testing.T) {
	slope, intercept := linearFit([]float64{100, 200})
	assert.InDelta(t, 100.0, slope, 1e-9)
	assert.InDelta(t, 100.0, intercept, 1e-9)
}

func TestFitAndForecast_TwoPointTrend(t *testing.T) {
	series := DailySeries{
		{Date: day(2024, time.January, 1), TotalRevenue: 100},
		{Date: day(2024, time.January, 2), TotalRevenue: 200},
	}
	points, err := FitAndForecast(series, 1)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, day(2024, time.January, 3), points[0].Date)
	assert.InDelta(t, 300.0, points[0].PredictedRevenue, 1e-9)
}

func TestFitAndForecast_ClampsNegativePredictions(t *testing.T) {
	series := DailySeries{
		{Date: day(2024, time.January, 1), TotalRevenue: 200},
		{Date: day(2024, time.January, 2), TotalRevenue: 100},
		{Date: day(2024, time.January, 3), TotalRevenue: 0},
	}
	points, err := FitAndForecast(series, 30)
	require.NoError(t, err)
	require.Len(t, points, 30)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.PredictedRevenue, 0.0)
	}
	// A steep downtrend bottoms out at zero instead of going negative.
	assert.Equal(t, 0.0, points[len(points)-1].PredictedRevenue)
}

func TestFitAndForecast_ContiguousDates(t *testing.T) {
	series := DailySeries{
		{Date: day(2024, time.January, 9), TotalRevenue: 100},
		{Date: day(2024, time.January, 10), TotalRevenue: 110},
	}
	points, err := FitAndForecast(series, 5)
	require.NoError(t, err)
	require.Len(t, points, 5)
	want := day(2024, time.January, 11)
	for _, p := range points {
		assert.Equal(t, want, p.Date)
		want = want.AddDate(0, 0, 1)
	}
	assert.Equal(t, day(2024, time.January, 15), points[4].Date)
}

func TestFitAndForecast_CrossesMonthBoundary(t *testing.T) {
	series := DailySeries{
		{Date: day(2024, time.January, 30), TotalRevenue: 100},
		{Date: day(2024, time.January, 31), TotalRevenue: 100},
	}
	points, err := FitAndForecast(series, 3)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, day(2024, time.February, 1), points[0].Date)
	assert.Equal(t, day(2024, time.February, 3), points[2].Date)
}

func TestFitAndForecast_FlatSeries(t *testing.T) {
	series := DailySeries{
		{Date: day(2024, time.January, 1), TotalRevenue: 100},
		{Date: day(2024, time.January, 2), TotalRevenue: 100},
		{Date: day(2024, time.January, 3), TotalRevenue: 100},
	}
	points, err := FitAndForecast(series, 7)
	require.NoError(t, err)
	for _, p := range points {
		assert.InDelta(t, 100.0, p.PredictedRevenue, 1e-9)
	}
}

func TestFitAndForecast_InsufficientHistory(t *testing.T) {
	_, err := FitAndForecast(nil, 7)
	assert.ErrorIs(t, err, ErrInsufficientHistory)

	single := DailySeries{{Date: day(2024, time.January, 1), TotalRevenue: 100}}
	_, err = FitAndForecast(single, 7)
	assert.ErrorIs(t, err, ErrInsufficientHistory)
}
