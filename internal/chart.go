package internal

import (
	"image/color"
	"time"

	"github.com/montanaflynn/stats"
)

// NoDataLabel replaces the max label when every point is zero.
const NoDataLabel = "No Data"

const (
	titleFontSize = 17
	smallFontSize = 10
	pointDiameter = 5.0
	barWidth      = 4.0
	lineWidth     = 2.0
	guideWidth    = 1.0
)

// ChartStyle controls how a dataset is drawn.
type ChartStyle struct {
	Bar bool // Bars when true, a line with a filled area when false.

	Rounded      bool
	CornerRadius float64

	GradientTop    color.NRGBA
	GradientBottom color.NRGBA
	LineColor      color.NRGBA // Guide lines.
	DataColor      color.NRGBA // Bars, graph line and points.
	FontColor      color.NRGBA

	Margin       float64
	TopBorder    float64
	BottomBorder float64
}

func DefaultChartStyle() ChartStyle {
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	return ChartStyle{
		Bar:            true,
		CornerRadius:   8,
		GradientTop:    color.NRGBA{R: 0x63, G: 0x63, B: 0x63, A: 0xff},
		GradientBottom: color.NRGBA{A: 0xff},
		LineColor:      white,
		DataColor:      white,
		FontColor:      white,
		Margin:         20,
		TopBorder:      60,
		BottomBorder:   50,
	}
}

func (s ChartStyle) geometry(surface Size) Geometry {
	return Geometry{
		Width:        surface.Width,
		Height:       surface.Height,
		Margin:       s.Margin,
		TopBorder:    s.TopBorder,
		BottomBorder: s.BottomBorder,
	}
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(alpha*255 + 0.5)
	return c
}

// Renderer turns a ChartDataset into draw primitives.
type Renderer struct {
	Measurer TextMeasurer
	Labeler  AxisLabeler
}

func NewRenderer(clock Clock) Renderer {
	return Renderer{
		Measurer: NewFaceMeasurer(),
		Labeler:  AxisLabeler{Clock: clock},
	}
}

// Render lays out ds on a surface of the given size. now anchors the axis labels.
// Datasets with fewer than two points return an *InsufficientDataError.
func (r Renderer) Render(ds ChartDataset, style ChartStyle, surface Size, now time.Time) ([]DrawPrimitive, error) {
	g := style.geometry(surface)
	n := len(ds.Points)
	if n < 2 {
		return nil, &InsufficientDataError{Points: n}
	}

	xs := make([]float64, n)
	for i := range xs {
		x, err := g.ColumnX(i, n)
		if err != nil {
			return nil, err
		}
		xs[i] = x
	}

	peak, err := stats.Max(ds.Points)
	if err != nil {
		return nil, err
	}
	hasData := peak > 0

	var out []DrawPrimitive
	if style.Rounded {
		out = append(out, Clip{
			Rect:   Rect{W: surface.Width, H: surface.Height},
			Radius: style.CornerRadius,
		})
	}

	out = append(out, Gradient{
		Top:    style.GradientTop,
		Bottom: style.GradientBottom,
		Rect:   Rect{W: surface.Width, H: surface.Height},
	})

	if hasData {
		if style.Bar {
			out = append(out, barBody(ds.Points, xs, peak, g, style)...)
		} else {
			out = append(out, lineBody(ds.Points, xs, peak, g, style)...)
		}
	}

	out = append(out, guideLines(g, style)...)

	if hasData {
		for i, v := range ds.Points {
			if v == 0 {
				continue
			}
			out = append(out, Circle{
				Center: Point{X: xs[i], Y: g.ColumnY(v, peak)},
				Radius: pointDiameter / 2,
				Color:  style.DataColor,
			})
		}
	}

	out = append(out, r.titles(ds, g, style)...)
	out = append(out, r.extremaLabels(peak, hasData, g, style)...)

	labels, err := r.axisLabels(ds.Window, now, g, style)
	if err != nil {
		return nil, err
	}
	return append(out, labels...), nil
}

func barBody(points, xs []float64, peak float64, g Geometry, style ChartStyle) []DrawPrimitive {
	out := make([]DrawPrimitive, 0, len(points))
	for i, v := range points {
		out = append(out, Bar{
			X:       xs[i],
			YTop:    g.ColumnY(v, peak),
			YBottom: g.Floor(),
			Color:   withAlpha(style.DataColor, 0.5),
			Width:   barWidth,
		})
	}
	return out
}

// lineBody joins the non-zero points only; zeros mean "nothing recorded" and leave a gap.
func lineBody(points, xs []float64, peak float64, g Geometry, style ChartStyle) []DrawPrimitive {
	var path []Point
	for i, v := range points {
		if v == 0 {
			continue
		}
		path = append(path, Point{X: xs[i], Y: g.ColumnY(v, peak)})
	}

	fill := make([]Point, 0, len(path)+2)
	fill = append(fill, path...)
	fill = append(fill,
		Point{X: xs[len(xs)-1], Y: g.Height},
		Point{X: xs[0], Y: g.Height},
	)

	top := g.ColumnY(peak, peak)
	return []DrawPrimitive{
		Gradient{
			Top:    style.GradientTop,
			Bottom: style.GradientBottom,
			Rect:   Rect{X: 0, Y: top, W: g.Width, H: g.Floor() - top},
			Path:   fill,
		},
		Line{
			Points: path,
			Color:  withAlpha(style.DataColor, 0.5),
			Width:  lineWidth,
		},
	}
}

func guideLines(g Geometry, style ChartStyle) []DrawPrimitive {
	c := withAlpha(style.LineColor, 0.3)
	var out []DrawPrimitive
	for _, y := range []float64{g.TopBorder, g.MidLine(), g.Floor()} {
		out = append(out, Line{
			Points: []Point{{X: g.Margin, Y: y}, {X: g.Width - g.Margin, Y: y}},
			Color:  c,
			Width:  guideWidth,
		})
	}
	return out
}

func (r Renderer) text(s string, x, y, size float64, style ChartStyle) Text {
	sz := r.Measurer.Measure(s, size)
	return Text{
		Text:  s,
		Rect:  Rect{X: x, Y: y, W: sz.Width, H: sz.Height},
		Color: style.FontColor,
		Size:  size,
	}
}

// rightAligned places s so that it ends at the right margin.
func (r Renderer) rightAligned(s string, y, size float64, g Geometry, style ChartStyle) Text {
	w := r.Measurer.Measure(s, size).Width
	return r.text(s, g.Width-g.Margin-w, y, size, style)
}

func (r Renderer) titles(ds ChartDataset, g Geometry, style ChartStyle) []DrawPrimitive {
	return []DrawPrimitive{
		r.text(ds.Title, g.Margin, g.TopBorder-50, titleFontSize, style),
		r.text(ds.Subtitle, g.Margin, g.TopBorder-30, smallFontSize, style),
		r.rightAligned(ds.LeadingLabel, g.TopBorder-50, titleFontSize, g, style),
		r.rightAligned(ds.LeadingLabelTime, g.TopBorder-30, smallFontSize, g, style),
	}
}

func (r Renderer) extremaLabels(peak float64, hasData bool, g Geometry, style ChartStyle) []DrawPrimitive {
	maxLabel := NoDataLabel
	if hasData {
		maxLabel = FormatNumber(peak)
	}
	return []DrawPrimitive{
		r.rightAligned(maxLabel, g.TopBorder+2, smallFontSize, g, style),
		r.rightAligned("0", g.Floor()-14, smallFontSize, g, style),
	}
}

func (r Renderer) axisLabels(window BucketWindow, now time.Time, g Geometry, style ChartStyle) ([]DrawPrimitive, error) {
	labels := r.Labeler.Labels(window, now)
	var out []DrawPrimitive
	for i, label := range labels {
		if label == "" {
			continue
		}
		x, err := g.LabelX(i, len(labels))
		if err != nil {
			return nil, err
		}
		w := r.Measurer.Measure(label, smallFontSize).Width
		out = append(out, r.text(label, x-w/2, g.Floor()+5, smallFontSize, style))
	}
	return out, nil
}
