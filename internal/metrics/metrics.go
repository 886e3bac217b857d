package metrics

import (
	"math"
	"sort"
	"time"
)

// tradingDaysPerYear is the annualization factor used by the Calmar ratio.
const tradingDaysPerYear = 252

// drawdown duration tracking states.
type drawdownState int

const (
	outOfDrawdown drawdownState = iota
	inDrawdown
)

// Compute derives the full metrics report from a series of daily entries and
// the initial capital baseline. The series does not need to be sorted; a copy
// is sorted ascending by date before processing. refDate supplies "today" for
// the today/current-month metrics (compared at calendar-date granularity).
//
// initialCapital must be positive; the engine does not validate this and
// percentage metrics are undefined otherwise.
func Compute(entries []Entry, initialCapital float64, refDate time.Time) Report {
	if len(entries) == 0 {
		return emptyReport()
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	// Equity curve: single forward pass.
	equityCurve := make([]EquityPoint, len(sorted))
	runningEquity := initialCapital
	for i, e := range sorted {
		runningEquity += e.PnL
		equityCurve[i] = EquityPoint{
			Date:          e.Date,
			Equity:        runningEquity,
			PnL:           e.PnL,
			PercentChange: (runningEquity - initialCapital) / initialCapital * 100,
		}
	}
	currentEquity := runningEquity

	// Drawdown curve, second pass over the equity curve. The peak is updated
	// before a point's drawdown is computed, so a point that sets a new peak
	// has zero drawdown. Duration tracking is a two-state machine: a point
	// strictly below the prior peak enters drawdown (counting as day one),
	// a point above the prior peak exits it without counting, and the open
	// streak is flushed when the series ends still in drawdown.
	drawdownCurve := make([]DrawdownPoint, len(equityCurve))
	peakEquity := initialCapital
	maxDrawdown := 0.0
	maxDrawdownPercent := 0.0
	state := outOfDrawdown
	currentDrawdownDays := 0
	maxDrawdownDays := 0

	for i, point := range equityCurve {
		priorPeak := peakEquity
		if point.Equity > peakEquity {
			peakEquity = point.Equity
		}

		drawdown := peakEquity - point.Equity
		drawdownPercent := 0.0
		if peakEquity > 0 {
			drawdownPercent = drawdown / peakEquity * 100
		}

		switch state {
		case inDrawdown:
			if point.Equity > priorPeak {
				if currentDrawdownDays > maxDrawdownDays {
					maxDrawdownDays = currentDrawdownDays
				}
				currentDrawdownDays = 0
				state = outOfDrawdown
			} else {
				currentDrawdownDays++
			}
		case outOfDrawdown:
			if drawdown > 0 {
				state = inDrawdown
				currentDrawdownDays = 1
			}
		}

		if drawdown > maxDrawdown {
			maxDrawdown = drawdown
			maxDrawdownPercent = drawdownPercent
		}

		drawdownCurve[i] = DrawdownPoint{
			Date:            point.Date,
			Drawdown:        drawdown,
			DrawdownPercent: drawdownPercent,
		}
	}
	if state == inDrawdown && currentDrawdownDays > maxDrawdownDays {
		maxDrawdownDays = currentDrawdownDays
	}

	currentDrawdown := peakEquity - currentEquity
	currentDrawdownPercent := 0.0
	if peakEquity > 0 {
		currentDrawdownPercent = currentDrawdown / peakEquity * 100
	}
	currentDaysInDrawdown := 0
	if state == inDrawdown {
		currentDaysInDrawdown = currentDrawdownDays
	}

	overallProfit := currentEquity - initialCapital
	overallProfitPercent := overallProfit / initialCapital * 100

	// Today and current-month profit, relative to the injected reference date.
	refYear, refMonth, refDay := refDate.Date()
	todayProfit := 0.0
	for _, e := range sorted {
		y, m, d := e.Date.Date()
		if y == refYear && m == refMonth && d == refDay {
			todayProfit = e.PnL
			break
		}
	}
	currentMonthProfit := 0.0
	currentMonthWinDays := 0
	for _, e := range sorted {
		y, m, _ := e.Date.Date()
		if y == refYear && m == refMonth {
			currentMonthProfit += e.PnL
			if e.PnL > 0 {
				currentMonthWinDays++
			}
		}
	}

	// Win/loss classification. Zero-P&L days are no-trade days: excluded
	// from both counts and from the active-day denominator.
	totalWinDays := 0
	totalLossDays := 0
	totalWinAmount := 0.0
	totalLossAmount := 0.0
	for _, e := range sorted {
		switch {
		case e.PnL > 0:
			totalWinDays++
			totalWinAmount += e.PnL
		case e.PnL < 0:
			totalLossDays++
			totalLossAmount += -e.PnL
		}
	}
	totalActiveDays := totalWinDays + totalLossDays

	winRate := 0.0
	avgDailyProfit := 0.0
	if totalActiveDays > 0 {
		winRate = float64(totalWinDays) / float64(totalActiveDays) * 100
		avgDailyProfit = overallProfit / float64(totalActiveDays)
	}
	avgWin := 0.0
	if totalWinDays > 0 {
		avgWin = totalWinAmount / float64(totalWinDays)
	}
	avgLoss := 0.0
	if totalLossDays > 0 {
		avgLoss = totalLossAmount / float64(totalLossDays)
	}

	riskRewardRatio := safeRatio(avgWin, avgLoss)
	profitFactor := safeRatio(totalWinAmount, totalLossAmount)

	expectancy := 0.0
	if totalActiveDays > 0 {
		expectancy = (winRate/100)*avgWin - ((100-winRate)/100)*avgLoss
	}

	recoveryFactor := safeRatio(overallProfit, maxDrawdown)

	annualizedReturn := 0.0
	if totalActiveDays > 0 {
		annualizedReturn = overallProfitPercent / float64(totalActiveDays) * tradingDaysPerYear
	}
	calmarRatio := 0.0
	if maxDrawdownPercent > 0 {
		calmarRatio = annualizedReturn / maxDrawdownPercent
	}

	currentStreak, maxWinStreak, maxLosingStreak := streaks(sorted)

	report := Report{
		EquityCurve:   equityCurve,
		CurrentEquity: currentEquity,

		OverallProfit:             overallProfit,
		OverallProfitPercent:      overallProfitPercent,
		TodayProfit:               todayProfit,
		TodayProfitPercent:        todayProfit / initialCapital * 100,
		CurrentMonthProfit:        currentMonthProfit,
		CurrentMonthProfitPercent: currentMonthProfit / initialCapital * 100,

		TotalWinDays:        totalWinDays,
		TotalLossDays:       totalLossDays,
		TotalActiveDays:     totalActiveDays,
		WinRate:             winRate,
		CurrentMonthWinDays: currentMonthWinDays,

		AvgDailyProfit:        avgDailyProfit,
		AvgDailyProfitPercent: avgDailyProfit / initialCapital * 100,
		AvgWin:                avgWin,
		AvgWinPercent:         avgWin / initialCapital * 100,
		AvgLoss:               avgLoss,
		AvgLossPercent:        avgLoss / initialCapital * 100,

		RiskRewardRatio:   riskRewardRatio,
		ProfitFactor:      profitFactor,
		Expectancy:        expectancy,
		ExpectancyPercent: expectancy / initialCapital * 100,

		PeakEquity:             peakEquity,
		CurrentDrawdown:        currentDrawdown,
		CurrentDrawdownPercent: currentDrawdownPercent,
		MaxDrawdown:            maxDrawdown,
		MaxDrawdownPercent:     maxDrawdownPercent,
		CurrentDaysInDrawdown:  currentDaysInDrawdown,
		MaxDaysInDrawdown:      maxDrawdownDays,
		DrawdownCurve:          drawdownCurve,

		RecoveryFactor: recoveryFactor,
		CalmarRatio:    calmarRatio,

		MaxWinStreak:    maxWinStreak,
		CurrentStreak:   currentStreak,
		MaxLosingStreak: maxLosingStreak,
	}
	applyPeriodStats(&report, sorted)

	return report
}

// safeRatio divides numerator by denominator with the zero special cases
// shared by the risk/reward, profit factor and recovery factor metrics:
// +Inf when only the denominator is zero, 0 when both are, never NaN.
func safeRatio(numerator, denominator float64) float64 {
	if denominator > 0 {
		return numerator / denominator
	}
	if numerator > 0 {
		return math.Inf(1)
	}
	return 0
}

// streaks computes the signed current streak (backward walk from the most
// recent entry) and the maximum win/loss streaks (forward scan). A zero-P&L
// entry breaks every streak: it stops the backward walk and resets both
// forward counters.
func streaks(sorted []Entry) (current, maxWin, maxLoss int) {
	switch last := sorted[len(sorted)-1].PnL; {
	case last > 0:
		current = 1
	case last < 0:
		current = -1
	}
	for i := len(sorted) - 2; i >= 0 && current != 0; i-- {
		pnl := sorted[i].PnL
		if current > 0 && pnl > 0 {
			current++
		} else if current < 0 && pnl < 0 {
			current--
		} else {
			break
		}
	}

	winRun, lossRun := 0, 0
	for _, e := range sorted {
		switch {
		case e.PnL > 0:
			winRun++
			lossRun = 0
			if winRun > maxWin {
				maxWin = winRun
			}
		case e.PnL < 0:
			lossRun++
			winRun = 0
			if lossRun > maxLoss {
				maxLoss = lossRun
			}
		default:
			winRun = 0
			lossRun = 0
		}
	}
	return current, maxWin, maxLoss
}
