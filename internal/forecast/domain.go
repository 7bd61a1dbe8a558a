package forecast

import (
	"fmt"
	"time"
)

// SaleRecord represents one cleaned transaction line item. Records are
// immutable after parsing; revenue is always derived from quantity and unit
// price, never stored.
type SaleRecord struct {
	Timestamp   time.Time `json:"timestamp"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Country     string    `json:"country"`
	Description string    `json:"description"`
}

// Revenue is quantity × unit price. Quantity may be negative (returns), so
// revenue may be negative too.
func (r SaleRecord) Revenue() float64 {
	return float64(r.Quantity) * r.UnitPrice
}

// DailyPoint is one calendar day of aggregated activity.
type DailyPoint struct {
	Date         time.Time `json:"date"`
	TotalRevenue float64   `json:"total_revenue"`
	TotalUnits   int       `json:"total_units"`
}

// DailySeries is a gap-free run of daily points, strictly increasing by
// date. The 0-based slice position doubles as the day index the trend model
// regresses against.
type DailySeries []DailyPoint

// UnitsPoint is one calendar day of aggregated units sold.
type UnitsPoint struct {
	Date       time.Time `json:"date"`
	TotalUnits int       `json:"total_units"`
}

// UnitsSeries returns the parallel units view of the series.
func (s DailySeries) UnitsSeries() []UnitsPoint {
	units := make([]UnitsPoint, 0, len(s))
	for _, p := range s {
		units = append(units, UnitsPoint{Date: p.Date, TotalUnits: p.TotalUnits})
	}
	return units
}

// ForecastPoint is one projected day of revenue. PredictedRevenue is never
// negative.
type ForecastPoint struct {
	Date             time.Time `json:"date"`
	PredictedRevenue float64   `json:"predicted_revenue"`
}

// Allowed forecast horizon bounds, in days.
const (
	MinHorizonDays = 7
	MaxHorizonDays = 90
)

// ForecastConfig selects the country and horizon for one pipeline run.
type ForecastConfig struct {
	Country     string `json:"country"`
	HorizonDays int    `json:"horizon_days"`
}

// Validate enforces the horizon bounds. The country value is the caller's
// responsibility: it must be drawn from DistinctCountries.
func (c ForecastConfig) Validate() error {
	if c.HorizonDays < MinHorizonDays || c.HorizonDays > MaxHorizonDays {
		return fmt.Errorf("%w: %d days, allowed range is [%d, %d]",
			ErrInvalidHorizon, c.HorizonDays, MinHorizonDays, MaxHorizonDays)
	}
	return nil
}

// Summary holds the headline scalars for one country's daily series.
type Summary struct {
	TotalRevenue        float64 `json:"total_revenue"`
	AverageDailyRevenue float64 `json:"average_daily_revenue"`
	TotalUnits          int     `json:"total_units"`
}

// ProductRevenue is one entry of the product revenue ranking.
type ProductRevenue struct {
	Description string  `json:"description"`
	Revenue     float64 `json:"revenue"`
}

// PipelineResult is everything the presentation layer needs to render one
// country's analysis: the historical series, the forecast, the summary
// scalars and the product ranking. Values are raw numbers; formatting is the
// renderer's job.
type PipelineResult struct {
	Country     string           `json:"country"`
	DailySeries DailySeries      `json:"daily_series"`
	UnitsSeries []UnitsPoint     `json:"units_series"`
	Forecast    []ForecastPoint  `json:"forecast"`
	Summary     Summary          `json:"summary"`
	TopProducts []ProductRevenue `json:"top_products"`
}

// Dataset is one uploaded, cleaned record set held in the registry.
type Dataset struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Records     []SaleRecord `json:"-"`
	RowsDropped int          `json:"rows_dropped"`
	CreatedAt   time.Time    `json:"created_at"`
}
