package forecast

import "sort"

// Summarize computes the headline scalars over the daily grid. The average
// divides by every grid day, zero-fill days included, so quiet stretches
// pull it down.
func Summarize(series DailySeries) Summary {
	var summary Summary
	for _, p := range series {
		summary.TotalRevenue += p.TotalRevenue
		summary.TotalUnits += p.TotalUnits
	}
	if len(series) > 0 {
		summary.AverageDailyRevenue = summary.TotalRevenue / float64(len(series))
	}
	return summary
}

// TopProducts ranks products by summed revenue, descending. Records are
// expected to be country-filtered already. Ties keep the order in which the
// descriptions were first encountered; fewer than n distinct products simply
// returns them all.
func TopProducts(records []SaleRecord, n int) []ProductRevenue {
	if n <= 0 {
		return nil
	}

	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, r := range records {
		if _, ok := totals[r.Description]; !ok {
			order = append(order, r.Description)
		}
		totals[r.Description] += r.Revenue()
	}

	ranked := make([]ProductRevenue, 0, len(order))
	for _, description := range order {
		ranked = append(ranked, ProductRevenue{
			Description: description,
			Revenue:     totals[description],
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
