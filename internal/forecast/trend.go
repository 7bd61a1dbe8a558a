package forecast

import (
	"errors"
	"math"
)

// ErrInsufficientHistory is returned when a series is too short to fit a
// trend line: ordinary least squares needs at least two points.
var ErrInsufficientHistory = errors.New("insufficient history: need at least 2 daily points")

// linearFit runs ordinary least squares of y against its 0-based index and
// returns the slope and intercept. Callers must guarantee len(y) >= 2.
func linearFit(y []float64) (slope, intercept float64) {
	n := float64(len(y))
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}

// FitAndForecast fits a linear trend over the daily series and projects it
// horizonDays forward. The regressor is the 0-based position in the series,
// not the raw date: the zero-filled grid guarantees one trend step per
// calendar day, zero-activity days included. Forecast dates continue day by
// day after the last series date with no calendar skipping. Predicted
// revenue is clamped to zero from below and rounded to 2 decimals.
//
// Horizon bounds are enforced at the ForecastConfig boundary, not here.
func FitAndForecast(series DailySeries, horizonDays int) ([]ForecastPoint, error) {
	if len(series) < 2 {
		return nil, ErrInsufficientHistory
	}

	y := make([]float64, len(series))
	for i, p := range series {
		y[i] = p.TotalRevenue
	}
	slope, intercept := linearFit(y)

	lastDate := series[len(series)-1].Date
	points := make([]ForecastPoint, 0, horizonDays)
	for k := 0; k < horizonDays; k++ {
		x := float64(len(series) + k)
		predicted := intercept + slope*x
		if predicted < 0 {
			predicted = 0
		}
		points = append(points, ForecastPoint{
			Date:             lastDate.AddDate(0, 0, k+1),
			PredictedRevenue: math.Round(predicted*100) / 100,
		})
	}
	return points, nil
}
