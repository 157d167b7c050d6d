package internal

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"
)

// NoEntryTimeLabel is shown when nothing was recorded today.
const NoEntryTimeLabel = "--:--"

// Sample is a single distance measurement, in meters.
type Sample struct {
	Time   time.Time
	Meters float64
}

// AggregationResult holds the totals and histories behind the summary and the charts.
// All distances are in the display unit the aggregation was run with.
type AggregationResult struct {
	TodayTotal   float64
	WeekTotal    float64
	MonthTotal   float64
	YearTotal    float64
	AllTimeTotal float64

	// Calendar window total divided by the days elapsed in the window.
	WeekDailyAverage  float64
	MonthDailyAverage float64
	YearDailyAverage  float64

	DayHistory   []float64
	WeekHistory  []float64
	MonthHistory []float64
	YearHistory  []float64 // Daily average within each month.

	// Mean of the matching history.
	WeekAverage  float64
	MonthAverage float64
	YearAverage  float64

	LatestSampleTimeLabel string
}

// History returns the history backing the given window.
func (r AggregationResult) History(w BucketWindow) []float64 {
	switch w {
	case WindowDay:
		return r.DayHistory
	case WindowWeek:
		return r.WeekHistory
	case WindowMonth:
		return r.MonthHistory
	case WindowYear:
		return r.YearHistory
	}
	return nil
}

// Average returns the history mean for the window; the day window has none.
func (r AggregationResult) Average(w BucketWindow) float64 {
	switch w {
	case WindowWeek:
		return r.WeekAverage
	case WindowMonth:
		return r.MonthAverage
	case WindowYear:
		return r.YearAverage
	}
	return 0
}

// Total returns the calendar total for the window.
func (r AggregationResult) Total(w BucketWindow) float64 {
	switch w {
	case WindowDay:
		return r.TodayTotal
	case WindowWeek:
		return r.WeekTotal
	case WindowMonth:
		return r.MonthTotal
	case WindowYear:
		return r.YearTotal
	case WindowAllTime:
		return r.AllTimeTotal
	}
	return 0
}

// Aggregator turns raw samples into an AggregationResult. It never reads the wall clock;
// the caller passes "now" so every window is computed against the same instant.
type Aggregator struct {
	clock Clock
}

func NewAggregator(clock Clock) *Aggregator {
	return &Aggregator{clock: clock}
}

// windowBounds holds every window start for a single "now".
type windowBounds struct {
	now       time.Time
	day       time.Time
	week      time.Time
	month     time.Time
	year      time.Time
	allTime   time.Time
	weekHist  time.Time // 6 days before today.
	monthHist time.Time // 30 days before today.
	yearHist  time.Time // 11 months before the start of this month.
}

func boundsFor(now time.Time) windowBounds {
	day := startOfDay(now)
	return windowBounds{
		now:       now,
		day:       day,
		week:      startOfWeek(now),
		month:     startOfMonth(now),
		year:      startOfYear(now),
		allTime:   beginningOfTime(now),
		weekHist:  addDays(day, -6),
		monthHist: addDays(day, -30),
		yearHist:  addMonths(now, -11),
	}
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// Aggregate computes totals, averages and histories for the samples as of now.
func (a *Aggregator) Aggregate(samples []Sample, now time.Time, unit DisplayUnit) (AggregationResult, error) {
	var result AggregationResult
	if !unit.Valid() {
		return result, &ConfigurationError{Field: "unit", Value: unit.String()}
	}

	b := boundsFor(now)
	loc := now.Location()

	result.DayHistory = make([]float64, WindowDay.BucketCount())
	result.WeekHistory = make([]float64, WindowWeek.BucketCount())
	result.MonthHistory = make([]float64, WindowMonth.BucketCount())
	result.YearHistory = make([]float64, WindowYear.BucketCount())
	result.LatestSampleTimeLabel = NoEntryTimeLabel

	var latest time.Time
	for _, s := range samples {
		t := s.Time.In(loc)
		if t.After(now) || t.Before(b.allTime) {
			continue
		}
		v, err := unit.FromBase(s.Meters)
		if err != nil {
			return result, err
		}

		result.AllTimeTotal += v
		if within(t, b.year, now) {
			result.YearTotal += v
		}
		if within(t, b.month, now) {
			result.MonthTotal += v
		}
		if within(t, b.week, now) {
			result.WeekTotal += v
		}
		if within(t, b.day, now) {
			result.TodayTotal += v
			result.DayHistory[t.Hour()] += v
			if latest.IsZero() || t.After(latest) {
				latest = t
			}
		}
		if within(t, b.weekHist, now) {
			result.WeekHistory[daysBetween(b.weekHist, t)] += v
		}
		if within(t, b.monthHist, now) {
			result.MonthHistory[daysBetween(b.monthHist, t)] += v
		}
		if within(t, b.yearHist, now) {
			result.YearHistory[monthsBetween(b.yearHist, t)] += v
		}
	}

	// Turn monthly totals into daily averages so months of different lengths compare.
	for i := range result.YearHistory {
		month := addMonths(b.yearHist, i)
		days := daysInMonth(month)
		if i == len(result.YearHistory)-1 {
			days = now.Day()
		}
		result.YearHistory[i] /= float64(days)
	}

	if !latest.IsZero() {
		result.LatestSampleTimeLabel = a.clock.TimeOfDay(latest)
	}

	result.WeekDailyAverage = result.WeekTotal / elapsedDays(b.week, now)
	result.MonthDailyAverage = result.MonthTotal / elapsedDays(b.month, now)
	result.YearDailyAverage = result.YearTotal / elapsedDays(b.year, now)

	result.WeekAverage = mean(result.WeekHistory)
	result.MonthAverage = mean(result.MonthHistory)
	result.YearAverage = mean(result.YearHistory)

	return result, nil
}

// elapsedDays counts started days since start, never less than one.
func elapsedDays(start, now time.Time) float64 {
	days := math.Ceil(now.Sub(start).Seconds() / 86400)
	return math.Max(days, 1)
}

// mean of a fixed-length history; histories are never empty.
func mean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}
