package internal

import (
	"html/template"
)

// CardType represents the type of content a Card holds.
type CardType int

const (
	CardTypeUnknown CardType = iota
	CardTypeText             // Supports title, body, and footer.
	CardTypeList             // Supports title, list, and footer.
	CardTypeChart            // Supports title, chart, and footer.
)

// Card represents a single information card to be displayed on the screen.
type Card struct {
	Title  template.HTML
	Footer template.HTML
	Type   CardType

	// For CardTypeText
	Body template.HTML

	// For CardTypeList
	Items []string

	// For CardTypeChart
	Chart      template.HTML // Inline SVG.
	Primitives []DrawPrimitive

	loader func(*Card) error
}

// Load invokes the loader function to populate the Card's dynamic content.
func (c *Card) Load() error {
	if c.loader != nil {
		return c.loader(c)
	}
	return nil
}

// Returns whether a card is valid and should be displayed.
func (c Card) Valid() bool {
	switch c.Type {
	case CardTypeText:
		return len(c.Body) > 0
	case CardTypeList:
		return len(c.Items) > 0
	case CardTypeChart:
		return len(c.Primitives) > 0
	}
	return false
}

// ReportLoader returns the aggregation shared by every card on the screen.
type ReportLoader func() (Report, error)

// NewChartCard creates the card holding the distance chart for the configured window.
func NewChartCard(display DisplayOptions, chart ChartOptions, getReport ReportLoader) Card {
	renderer := NewRenderer(display.Clock)
	return Card{
		Title:  template.HTML(display.Window.String()),
		Type:   CardTypeChart,
		loader: func(c *Card) error {
			c.Chart, c.Primitives, c.Footer = "", nil, ""
			report, err := getReport()
			if err != nil {
				return err
			}

			ds, err := NewDataset(report.Result, display.Window, display.Unit)
			if err != nil {
				return err
			}
			primitives, err := renderer.Render(ds, chart.Style, chart.Surface, report.Now)
			if err != nil {
				return err
			}
			c.Primitives = primitives
			c.Chart = SVG(primitives, chart.Surface)
			c.Footer = "No entry today"
			if report.Result.LatestSampleTimeLabel != NoEntryTimeLabel {
				c.Footer = template.HTML("Last entry at " + template.HTMLEscapeString(report.Result.LatestSampleTimeLabel))
			}
			return nil
		},
	}
}

// NewGoalCard creates the card telling how far today is from the daily goal.
func NewGoalCard(display DisplayOptions, getReport ReportLoader) Card {
	return Card{
		Title:  "Daily goal",
		Type:   CardTypeText,
		loader: func(c *Card) error {
			c.Body, c.Footer = "", ""
			if display.DailyGoal <= 0 {
				return nil
			}
			report, err := getReport()
			if err != nil {
				return err
			}
			s := NewSummary(report.Result, display.Unit, display.DailyGoal)
			left := round2(display.DailyGoal - report.Result.TodayTotal)
			if left > 0 {
				c.Body = template.HTML(template.HTMLEscapeString(FormatDistance(left, display.Unit) + " to go"))
			} else {
				c.Body = "Goal reached"
			}
			c.Footer = template.HTML(template.HTMLEscapeString(s.DailyGoal + " (" + s.Percentage + ")"))
			return nil
		},
	}
}

// NewTotalsCards creates the cards listing totals and daily averages.
func NewTotalsCards(display DisplayOptions, getReport ReportLoader) []Card {
	return []Card{
		{
			Title:  "Totals",
			Type:   CardTypeList,
			loader: func(c *Card) error {
				c.Items = nil
				report, err := getReport()
				if err != nil {
					return err
				}
				s := NewSummary(report.Result, display.Unit, display.DailyGoal)
				c.Items = []string{
					"This week: " + s.Week,
					"This month: " + s.Month,
					"This year: " + s.Year,
					"All time: " + s.AllTime,
				}
				return nil
			},
		},
		{
			Title:  "Daily averages",
			Type:   CardTypeList,
			loader: func(c *Card) error {
				c.Items = nil
				report, err := getReport()
				if err != nil {
					return err
				}
				s := NewSummary(report.Result, display.Unit, display.DailyGoal)
				c.Items = []string{
					"This week: " + s.WeekAverage,
					"This month: " + s.MonthAverage,
					"This year: " + s.YearAverage,
				}
				return nil
			},
		},
	}
}
