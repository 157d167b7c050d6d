package internal

import (
	"html/template"
	"math"
)

// Header holds information for the header section of the screen.
// The loader func should be used to populate the data.
type Header struct {
	Title template.HTML

	Today       string
	DailyGoal   string
	Percentage  string
	ProgressBar float64
	LatestEntry string // "0.4 mi at 3:04 PM", or empty when nothing was recorded today.

	loader func(*Header) error
}

// Load populates the Header by calling its loader function.
func (h *Header) Load() error {
	if h.loader != nil {
		return h.loader(h)
	}
	return nil
}

// NewHeader creates a new Header from the shared report.
func NewHeader(display DisplayOptions, getReport ReportLoader) Header {
	return Header{
		loader: func(h *Header) error {
			report, err := getReport()
			if err != nil {
				return err
			}

			s := NewSummary(report.Result, display.Unit, display.DailyGoal)
			h.Title = template.HTML(report.Now.Format("Monday 2 January"))
			h.Today = s.Today
			h.DailyGoal = s.DailyGoal
			h.Percentage = s.Percentage
			h.ProgressBar = s.ProgressBar

			h.LatestEntry = ""
			if report.Latest != nil {
				meters, err := display.Unit.FromBase(report.Latest.Meters)
				if err != nil {
					return err
				}
				h.LatestEntry = FormatDistance(meters, display.Unit) + " at " + display.Clock.TimeOfDay(report.Latest.Time.In(report.Now.Location()))
			}
			return nil
		},
	}
}

// ProgressWidth is the goal progress as a whole percentage capped at 100, for the progress bar.
func (h *Header) ProgressWidth() int {
	return int(math.Round(math.Min(h.ProgressBar, 1) * 100))
}
