package metrics

import "sort"

// YearStats holds the intra-year drawdown statistics for one calendar year.
// The underlying equity run starts at zero, so the drawdown measures the
// year's own swing rather than a capital-relative shortfall.
type YearStats struct {
	MaxDrawdown     float64 `json:"maxDrawdown"`
	MaxDrawdownDays int     `json:"maxDrawdownDays"`
}

// YearlyReport groups P&L by calendar year and month for the monthly report
// table. Month keys are 0-based (January = 0); months without entries have
// no cell. Years are ordered most recent first.
type YearlyReport struct {
	Years       []int                   `json:"years"`
	MonthTotals map[int]map[int]float64 `json:"monthTotals"`
	YearStats   map[int]YearStats       `json:"yearStats"`
}

// AggregateByYear folds the entries into per-year-per-month P&L totals and
// computes each year's intra-year max drawdown and drawdown duration. The
// per-year drawdown run uses the same duration state machine as Compute,
// scoped to the year's entries sorted ascending, with equity and peak
// starting at zero.
func AggregateByYear(entries []Entry) YearlyReport {
	report := YearlyReport{
		Years:       []int{},
		MonthTotals: make(map[int]map[int]float64),
		YearStats:   make(map[int]YearStats),
	}
	if len(entries) == 0 {
		return report
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	byYear := make(map[int][]Entry)
	for _, e := range sorted {
		year, month, _ := e.Date.Date()
		if _, ok := report.MonthTotals[year]; !ok {
			report.MonthTotals[year] = make(map[int]float64)
			report.Years = append(report.Years, year)
		}
		report.MonthTotals[year][int(month)-1] += e.PnL
		byYear[year] = append(byYear[year], e)
	}

	for year, yearEntries := range byYear {
		report.YearStats[year] = yearDrawdown(yearEntries)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(report.Years)))
	return report
}

// yearDrawdown runs the drawdown state machine over one year's entries
// (already sorted ascending) with equity starting at zero.
func yearDrawdown(yearEntries []Entry) YearStats {
	equity := 0.0
	peak := 0.0
	maxDD := 0.0
	state := outOfDrawdown
	currentDays := 0
	maxDays := 0

	for _, e := range yearEntries {
		equity += e.PnL
		priorPeak := peak
		if equity > peak {
			peak = equity
		}
		dd := peak - equity

		switch state {
		case inDrawdown:
			if equity > priorPeak {
				if currentDays > maxDays {
					maxDays = currentDays
				}
				currentDays = 0
				state = outOfDrawdown
			} else {
				currentDays++
			}
		case outOfDrawdown:
			if dd > 0 {
				state = inDrawdown
				currentDays = 1
			}
		}

		if dd > maxDD {
			maxDD = dd
		}
	}
	if state == inDrawdown && currentDays > maxDays {
		maxDays = currentDays
	}

	return YearStats{MaxDrawdown: maxDD, MaxDrawdownDays: maxDays}
}
