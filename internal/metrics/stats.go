package metrics

import (
	"fmt"
	"time"
)

// applyPeriodStats fills in the per-day, per-week and per-month extreme and
// average aggregates. Day extremes are bounded by zero: with only losing days
// MaxProfitDay stays 0, and vice versa. Week and month buckets sum P&L per
// key; the extremes over the bucket sums carry the same zero bound.
func applyPeriodStats(r *Report, sorted []Entry) {
	if len(sorted) == 0 {
		return
	}

	for _, e := range sorted {
		if e.PnL > r.MaxProfitDay {
			r.MaxProfitDay = e.PnL
		}
		if e.PnL < r.MaxLossDay {
			r.MaxLossDay = e.PnL
		}
	}

	weekly := make(map[string]float64)
	monthly := make(map[string]float64)
	for _, e := range sorted {
		weekly[weekKey(e.Date)] += e.PnL
		y, m, _ := e.Date.Date()
		monthly[fmt.Sprintf("%d-%d", y, int(m))] += e.PnL
	}

	r.MaxProfitWeek, r.MaxLossWeek, r.AvgProfitWeek = bucketStats(weekly)
	r.MaxProfitMonth, r.MaxLossMonth, r.AvgProfitMonth = bucketStats(monthly)
}

// weekKey buckets a date into a year-week key. It deliberately keeps the
// week formula of the reference dashboard rather than ISO-8601 numbering:
// the week index is derived from the ordinal day of year offset by the
// weekday of January 1st, so a week never spans a year boundary.
func weekKey(d time.Time) string {
	year := d.Year()
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, d.Location())
	pastDays := d.YearDay() - 1
	week := (pastDays + int(jan1.Weekday()) + 1 + 6) / 7
	return fmt.Sprintf("%d-W%d", year, week)
}

func bucketStats(buckets map[string]float64) (maxProfit, maxLoss, avg float64) {
	if len(buckets) == 0 {
		return 0, 0, 0
	}
	sum := 0.0
	for _, v := range buckets {
		if v > maxProfit {
			maxProfit = v
		}
		if v < maxLoss {
			maxLoss = v
		}
		sum += v
	}
	return maxProfit, maxLoss, sum / float64(len(buckets))
}
