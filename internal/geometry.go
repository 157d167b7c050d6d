package internal

// Axis labels always use this margin, independently of the chart style.
const labelMargin = 20.0

// Geometry maps series indexes and values onto a drawing surface.
// All methods are pure; the zero value is a zero-sized surface.
type Geometry struct {
	Width        float64
	Height       float64
	Margin       float64 // Left and right.
	TopBorder    float64 // Reserved for the titles.
	BottomBorder float64 // Reserved for the axis labels.
}

// PlotHeight is the vertical space left for the graph itself.
func (g Geometry) PlotHeight() float64 {
	return g.Height - g.TopBorder - g.BottomBorder
}

// Floor is the y of the zero line.
func (g Geometry) Floor() float64 {
	return g.Height - g.BottomBorder
}

// MidLine is the y halfway between the top border and the floor.
func (g Geometry) MidLine() float64 {
	return g.PlotHeight()/2 + g.TopBorder
}

func columnX(i, count int, width, margin, origin float64) (float64, error) {
	if count < 2 {
		return 0, &InsufficientDataError{Points: count}
	}
	spacer := (width - margin*2 - 40) / float64(count-1)
	return float64(i)*spacer + origin + 10, nil
}

// ColumnX returns the x of point i out of count.
func (g Geometry) ColumnX(i, count int) (float64, error) {
	return columnX(i, count, g.Width, g.Margin, g.Margin)
}

// LabelX returns the x of the center of axis label i out of count. It spaces slots over
// the label count with a fixed margin, not over the points.
func (g Geometry) LabelX(i, count int) (float64, error) {
	return columnX(i, count, g.Width, labelMargin, g.Margin)
}

// ColumnY returns the y of value v when peak sits on the top border. The caller must not
// pass peak <= 0.
func (g Geometry) ColumnY(v, peak float64) float64 {
	return g.PlotHeight() + g.TopBorder - v/peak*g.PlotHeight()
}
