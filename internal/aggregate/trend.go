package aggregate

import (
	"sort"
	"strconv"

	"fieldmap/internal/model"
)

// TrendPoint is one labelled bucket of a trend series.
type TrendPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// YearTrend sums spec amount per distinct year over the full (unfiltered)
// record set, sorted ascending by year. Records with an unknown year (the 0
// sentinel) carry no date and are left out of the series.
func YearTrend(all []*model.CanonicalRecord) []TrendPoint {
	totals := make(map[int]float64)
	for _, r := range all {
		if r.Year == model.YearAll {
			continue
		}
		totals[r.Year] += r.SpecAmount
	}

	years := make([]int, 0, len(totals))
	for year := range totals {
		years = append(years, year)
	}
	sort.Ints(years)

	points := make([]TrendPoint, 0, len(years))
	for _, year := range years {
		points = append(points, TrendPoint{Label: strconv.Itoa(year), Value: totals[year]})
	}
	return points
}

// MonthTrend sums spec amount per month (1–12, zero-filled) for one reference
// year: the active filter year when set, else the maximum year present in the
// full set.
func MonthTrend(all []*model.CanonicalRecord, filterYear int) []TrendPoint {
	refYear := filterYear
	if refYear == model.YearAll {
		for _, r := range all {
			if r.Year > refYear {
				refYear = r.Year
			}
		}
	}

	var totals [13]float64
	for _, r := range all {
		if r.Year != refYear {
			continue
		}
		if r.Month < 1 || r.Month > 12 {
			continue
		}
		totals[r.Month] += r.SpecAmount
	}

	points := make([]TrendPoint, 0, 12)
	for m := 1; m <= 12; m++ {
		points = append(points, TrendPoint{Label: strconv.Itoa(m), Value: totals[m]})
	}
	return points
}

// DesignerTrend sums spec amount per designer over the filtered set, ranked
// and truncated the same way as the leaderboards.
func DesignerTrend(filtered []*model.CanonicalRecord) []TrendPoint {
	entries := rankBy(filtered, func(r *model.CanonicalRecord) string { return r.Designer })
	points := make([]TrendPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, TrendPoint{Label: e.Name, Value: e.Amount})
	}
	return points
}
