package internal

import (
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// DrawPNG executes primitives on an in-memory raster and writes it as a PNG.
func DrawPNG(w io.Writer, primitives []DrawPrimitive, surface Size) error {
	dc := gg.NewContext(int(surface.Width), int(surface.Height))
	dc.SetFontFace(basicfont.Face7x13)

	for _, p := range primitives {
		switch p := p.(type) {
		case Clip:
			dc.DrawRoundedRectangle(p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H, p.Radius)
			dc.Clip()
		case Gradient:
			grad := gg.NewLinearGradient(0, p.Rect.Y, 0, p.Rect.Y+p.Rect.H)
			grad.AddColorStop(0, p.Top)
			grad.AddColorStop(1, p.Bottom)

			dc.Push()
			if len(p.Path) > 0 {
				tracePath(dc, p.Path)
				dc.ClosePath()
				dc.Clip()
			}
			dc.DrawRectangle(p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H)
			dc.SetFillStyle(grad)
			dc.Fill()
			dc.Pop()
		case Line:
			if len(p.Points) == 0 {
				continue
			}
			tracePath(dc, p.Points)
			dc.SetColor(p.Color)
			dc.SetLineWidth(p.Width)
			dc.Stroke()
		case Bar:
			dc.DrawLine(p.X, p.YTop, p.X, p.YBottom)
			dc.SetColor(p.Color)
			dc.SetLineWidth(p.Width)
			dc.Stroke()
		case Circle:
			dc.DrawCircle(p.Center.X, p.Center.Y, p.Radius)
			dc.SetColor(p.Color)
			dc.Fill()
		case Text:
			if p.Text == "" {
				continue
			}
			// The basic font has a single size; anchor it at the top-left of its box.
			dc.SetColor(p.Color)
			dc.DrawStringAnchored(p.Text, p.Rect.X, p.Rect.Y, 0, 1)
		}
	}

	return dc.EncodePNG(w)
}

func tracePath(dc *gg.Context, points []Point) {
	dc.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		dc.LineTo(pt.X, pt.Y)
	}
}
