// Package metrics derives trading performance metrics from a series of daily
// profit-and-loss entries and an initial capital baseline.
//
// The package is pure: Compute performs no I/O, never mutates its input and
// is safe to call concurrently. All time-dependent metrics (today's profit,
// current-month profit) are relative to an injected reference date rather
// than the wall clock.
package metrics

import "time"

// Entry is a single daily P&L record. Date carries day-level granularity
// (midnight UTC); PnL is the signed profit or loss for that day. A PnL of
// zero marks a no-trade day: it contributes a zero-delta point to the equity
// curve but is excluded from win/loss and streak statistics.
type Entry struct {
	Date time.Time
	PnL  float64
}

// EquityPoint is one point of the equity curve.
type EquityPoint struct {
	Date          time.Time `json:"date"`
	Equity        float64   `json:"equity"`
	PnL           float64   `json:"pnl"`
	PercentChange float64   `json:"percentChange"`
}

// DrawdownPoint is one point of the drawdown curve, index-aligned with the
// equity curve.
type DrawdownPoint struct {
	Date            time.Time `json:"date"`
	Drawdown        float64   `json:"drawdown"`
	DrawdownPercent float64   `json:"drawdownPercent"`
}

// Report is the full set of derived metrics. Ratio fields
// (RiskRewardRatio, ProfitFactor, RecoveryFactor) are +Inf when the
// denominator is zero but the numerator is positive; formatting of
// infinities is a presentation concern.
type Report struct {
	EquityCurve   []EquityPoint `json:"equityCurve"`
	CurrentEquity float64       `json:"currentEquity"`

	OverallProfit              float64 `json:"overallProfit"`
	OverallProfitPercent       float64 `json:"overallProfitPercent"`
	TodayProfit                float64 `json:"todayProfit"`
	TodayProfitPercent         float64 `json:"todayProfitPercent"`
	CurrentMonthProfit         float64 `json:"currentMonthProfit"`
	CurrentMonthProfitPercent  float64 `json:"currentMonthProfitPercent"`

	TotalWinDays        int     `json:"totalWinDays"`
	TotalLossDays       int     `json:"totalLossDays"`
	TotalActiveDays     int     `json:"totalActiveDays"`
	WinRate             float64 `json:"winRate"`
	CurrentMonthWinDays int     `json:"currentMonthWinDays"`

	AvgDailyProfit        float64 `json:"avgDailyProfit"`
	AvgDailyProfitPercent float64 `json:"avgDailyProfitPercent"`
	AvgWin                float64 `json:"avgWin"`
	AvgWinPercent         float64 `json:"avgWinPercent"`
	AvgLoss               float64 `json:"avgLoss"`
	AvgLossPercent        float64 `json:"avgLossPercent"`

	RiskRewardRatio   float64 `json:"riskRewardRatio"`
	ProfitFactor      float64 `json:"profitFactor"`
	Expectancy        float64 `json:"expectancy"`
	ExpectancyPercent float64 `json:"expectancyPercent"`

	PeakEquity             float64         `json:"peakEquity"`
	CurrentDrawdown        float64         `json:"currentDrawdown"`
	CurrentDrawdownPercent float64         `json:"currentDrawdownPercent"`
	MaxDrawdown            float64         `json:"maxDrawdown"`
	MaxDrawdownPercent     float64         `json:"maxDrawdownPercent"`
	CurrentDaysInDrawdown  int             `json:"currentDaysInDrawdown"`
	MaxDaysInDrawdown      int             `json:"maxDaysInDrawdown"`
	DrawdownCurve          []DrawdownPoint `json:"drawdownCurve"`

	RecoveryFactor float64 `json:"recoveryFactor"`
	CalmarRatio    float64 `json:"calmarRatio"`

	MaxWinStreak    int `json:"maxWinStreak"`
	CurrentStreak   int `json:"currentStreak"`
	MaxLosingStreak int `json:"maxLosingStreak"`

	MaxProfitDay   float64 `json:"maxProfitDay"`
	MaxLossDay     float64 `json:"maxLossDay"`
	MaxProfitWeek  float64 `json:"maxProfitWeek"`
	MaxLossWeek    float64 `json:"maxLossWeek"`
	MaxProfitMonth float64 `json:"maxProfitMonth"`
	MaxLossMonth   float64 `json:"maxLossMonth"`
	AvgProfitWeek  float64 `json:"avgProfitWeek"`
	AvgProfitMonth float64 `json:"avgProfitMonth"`
}

// emptyReport is the canonical report for an empty series: every scalar is
// zero and both curves are empty (non-nil, so they encode as [] not null).
func emptyReport() Report {
	return Report{
		EquityCurve:   []EquityPoint{},
		DrawdownCurve: []DrawdownPoint{},
	}
}
