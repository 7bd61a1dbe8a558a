package forecast

import (
	"sort"
	"time"
)

// FilterByCountry returns the records whose country matches exactly
// (case-sensitive). The input slice is never mutated, so repeated queries
// can share one cleaned dataset.
func FilterByCountry(records []SaleRecord, country string) []SaleRecord {
	filtered := make([]SaleRecord, 0)
	for _, r := range records {
		if r.Country == country {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// DistinctCountries returns the sorted set of countries present in the
// cleaned records. This is the value set country selectors must offer.
func DistinctCountries(records []SaleRecord) []string {
	seen := make(map[string]struct{})
	countries := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Country]; ok {
			continue
		}
		seen[r.Country] = struct{}{}
		countries = append(countries, r.Country)
	}
	sort.Strings(countries)
	return countries
}

// Aggregate filters records by country and sums revenue and units per
// calendar day (time-of-day is discarded). The emitted series covers every
// day from the earliest to the latest transaction date inclusive; days
// without transactions carry zeros. The gap-free grid is what lets the trend
// model use the slice position as its day regressor. Output is deterministic
// regardless of input row order.
func Aggregate(records []SaleRecord, country string) DailySeries {
	filtered := FilterByCountry(records, country)
	if len(filtered) == 0 {
		return nil
	}

	type bucket struct {
		revenue float64
		units   int
	}
	byDay := make(map[time.Time]*bucket)
	var minDay, maxDay time.Time
	for i, r := range filtered {
		day := truncateToDay(r.Timestamp)
		b, ok := byDay[day]
		if !ok {
			b = &bucket{}
			byDay[day] = b
		}
		b.revenue += r.Revenue()
		b.units += r.Quantity
		if i == 0 || day.Before(minDay) {
			minDay = day
		}
		if i == 0 || day.After(maxDay) {
			maxDay = day
		}
	}

	series := make(DailySeries, 0, len(byDay))
	for day := minDay; !day.After(maxDay); day = day.AddDate(0, 0, 1) {
		point := DailyPoint{Date: day}
		if b, ok := byDay[day]; ok {
			point.TotalRevenue = b.revenue
			point.TotalUnits = b.units
		}
		series = append(series, point)
	}
	return series
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
