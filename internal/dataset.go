package internal

import "slices"

// ChartDataset is everything the renderer needs for one chart. The renderer never
// modifies it.
type ChartDataset struct {
	Points []float64
	Window BucketWindow

	Title            string // Top left, large.
	Subtitle         string // Top left, small.
	LeadingLabel     string // Top right, large.
	LeadingLabelTime string // Top right, small.
}

// NewDataset builds the chart for window from an aggregation in the given unit.
func NewDataset(result AggregationResult, window BucketWindow, unit DisplayUnit) (ChartDataset, error) {
	if !unit.Valid() {
		return ChartDataset{}, &ConfigurationError{Field: "unit", Value: unit.String()}
	}
	history := result.History(window)
	if history == nil {
		return ChartDataset{}, &ConfigurationError{Field: "window", Value: window.String()}
	}

	ds := ChartDataset{
		Points:           slices.Clone(history),
		Window:           window,
		Title:            "Distance",
		LeadingLabel:     FormatDistance(result.TodayTotal, unit),
		LeadingLabelTime: "Today",
	}
	if window != WindowDay {
		ds.Subtitle = "Daily Average: " + FormatNumber(result.Average(window))
	}
	if result.LatestSampleTimeLabel != NoEntryTimeLabel && result.LatestSampleTimeLabel != "" {
		ds.LeadingLabelTime = "Today, " + result.LatestSampleTimeLabel
	}
	return ds, nil
}
