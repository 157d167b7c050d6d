package internal

import (
	"math"
	"strconv"
)

// Summary holds the display strings for the totals screen.
type Summary struct {
	Today       string
	DailyGoal   string  // "1.2 / 3 mi"
	Percentage  string  // "40%"
	ProgressBar float64 // Fraction of the goal reached, rounded to hundredths.

	Week    string
	Month   string
	Year    string
	AllTime string

	WeekAverage  string
	MonthAverage string
	YearAverage  string
}

// NewSummary formats result for display. goal is the daily goal in the same unit; it
// only affects the goal and percentage strings.
func NewSummary(result AggregationResult, unit DisplayUnit, goal float64) Summary {
	s := Summary{
		Today:   FormatDistance(result.TodayTotal, unit),
		Week:    FormatDistance(round2(result.WeekTotal), unit),
		Month:   FormatDistance(round2(result.MonthTotal), unit),
		Year:    FormatDistance(round2(result.YearTotal), unit),
		AllTime: FormatDistance(round2(result.AllTimeTotal), unit),

		WeekAverage:  FormatDistance(result.WeekDailyAverage, unit),
		MonthAverage: FormatDistance(round2(result.MonthDailyAverage), unit),
		YearAverage:  FormatDistance(result.YearDailyAverage, unit),
	}

	s.DailyGoal = FormatNumber(result.TodayTotal) + " / " + FormatDistance(round2(goal), unit)

	if goal > 0 {
		s.ProgressBar = round2(result.TodayTotal / goal)
	}
	s.Percentage = strconv.Itoa(int(math.Round(s.ProgressBar*100))) + "%"
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
