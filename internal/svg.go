package internal

import (
	"fmt"
	"html/template"
	"image/color"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// SVG serializes primitives into an inline <svg> element for the HTML screen.
func SVG(primitives []DrawPrimitive, surface Size) template.HTML {
	var b strings.Builder
	canvas := svg.New(&b)
	canvas.Start(surface.Width, surface.Height)

	// A clip applies to everything drawn after it, so groups are closed at the end.
	groups := 0
	for i, p := range primitives {
		switch p := p.(type) {
		case Clip:
			id := fmt.Sprintf("clip%d", i)
			canvas.ClipPath(`id="` + id + `"`)
			canvas.Roundrect(p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H, p.Radius, p.Radius)
			canvas.ClipEnd()
			canvas.Group(`clip-path="url(#` + id + `)"`)
			groups++
		case Gradient:
			grad := fmt.Sprintf("grad%d", i)
			canvas.Def()
			// Percentages are relative to the rect, which spans the gradient.
			canvas.LinearGradient(grad, 0, 0, 0, 100, []svg.Offcolor{
				{Offset: 0, Color: rgb(p.Top), Opacity: opacity(p.Top)},
				{Offset: 100, Color: rgb(p.Bottom), Opacity: opacity(p.Bottom)},
			})
			attrs := []string{`fill="url(#` + grad + `)"`}
			if len(p.Path) > 0 {
				fill := fmt.Sprintf("fill%d", i)
				canvas.ClipPath(`id="` + fill + `"`)
				xs, ys := coords(p.Path)
				canvas.Polygon(xs, ys)
				canvas.ClipEnd()
				attrs = append(attrs, `clip-path="url(#`+fill+`)"`)
			}
			canvas.DefEnd()
			canvas.Rect(p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H, attrs...)
		case Line:
			xs, ys := coords(p.Points)
			canvas.Polyline(xs, ys, `fill="none"`, paint("stroke", p.Color), fmt.Sprintf(`stroke-width="%g"`, p.Width))
		case Bar:
			canvas.Line(p.X, p.YTop, p.X, p.YBottom, paint("stroke", p.Color), fmt.Sprintf(`stroke-width="%g"`, p.Width))
		case Circle:
			canvas.Circle(p.Center.X, p.Center.Y, p.Radius, paint("fill", p.Color))
		case Text:
			if p.Text == "" {
				continue
			}
			canvas.Text(p.Rect.X, p.Rect.Y, p.Text,
				fmt.Sprintf(`font-size="%g"`, p.Size),
				`font-family="sans-serif"`,
				`dominant-baseline="hanging"`,
				paint("fill", p.Color),
			)
		}
	}
	for range groups {
		canvas.Gend()
	}
	canvas.End()
	return template.HTML(b.String())
}

func coords(points []Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

func rgb(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

func paint(attr string, c color.NRGBA) string {
	return fmt.Sprintf(`%s="%s" %s-opacity="%.3g"`, attr, rgb(c), attr, opacity(c))
}
