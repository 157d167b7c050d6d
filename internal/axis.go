package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Populated slots per window. The rest stay empty so that labels line up with the
// points without crowding a narrow axis.
var (
	dayLabelSlots   = []int{0, 12, 23}
	monthLabelSlots = []int{2, 9, 16, 23, 30}
	yearLabelSlots  = []int{2, 5, 8, 11}
)

// AxisLabeler builds the x-axis labels for a window. It does not look at the data.
type AxisLabeler struct {
	Clock Clock
}

// Labels returns BucketCount() strings, oldest to newest, most of them empty.
func (l AxisLabeler) Labels(window BucketWindow, now time.Time) []string {
	switch window {
	case WindowDay:
		return l.dayLabels()
	case WindowWeek:
		return weekLabels(now)
	case WindowMonth:
		return monthLabels(now)
	case WindowYear:
		return yearLabels(now)
	}
	return nil
}

func (l AxisLabeler) dayLabels() []string {
	texts := []string{"12 AM", "12 PM", "11 PM"}
	if l.Clock == Clock24Hour {
		texts = []string{"0", "12", "23"}
	}
	labels := make([]string, WindowDay.BucketCount())
	for i, slot := range dayLabelSlots {
		labels[slot] = texts[i]
	}
	return labels
}

func monthAbbrev(m time.Month) string {
	return strings.ToUpper(m.String()[:3])
}

func weekLabels(now time.Time) []string {
	n := WindowWeek.BucketCount()
	labels := make([]string, n)
	for i := range labels {
		day := now.AddDate(0, 0, i-(n-1))
		labels[i] = strconv.Itoa(day.Day())
		if day.Day() == 1 || i == n-1 {
			labels[i] = fmt.Sprintf("%s %d", monthAbbrev(day.Month()), day.Day())
		}
	}
	return labels
}

func monthLabels(now time.Time) []string {
	n := WindowMonth.BucketCount()
	labels := make([]string, n)
	for _, slot := range monthLabelSlots {
		day := now.AddDate(0, 0, slot-(n-1))
		labels[slot] = strconv.Itoa(day.Day())
		if day.Day() <= 7 || slot == n-1 {
			labels[slot] = fmt.Sprintf("%s %d", monthAbbrev(day.Month()), day.Day())
		}
	}
	return labels
}

func yearLabels(now time.Time) []string {
	n := WindowYear.BucketCount()
	labels := make([]string, n)
	for _, slot := range yearLabelSlots {
		month := addMonths(now, slot-(n-1))
		labels[slot] = monthAbbrev(month.Month())
		if month.Month() <= time.March || slot == n-1 {
			labels[slot] = fmt.Sprintf("%s %d", monthAbbrev(month.Month()), month.Year())
		}
	}
	return labels
}
