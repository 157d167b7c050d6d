package internal

import "image/color"

type Point struct {
	X, Y float64
}

type Rect struct {
	X, Y, W, H float64
}

type Size struct {
	Width, Height float64
}

// PrimitiveKind tags a DrawPrimitive.
type PrimitiveKind int

const (
	KindClip PrimitiveKind = iota
	KindGradient
	KindLine
	KindBar
	KindCircle
	KindText
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindClip:
		return "clip"
	case KindGradient:
		return "gradient"
	case KindLine:
		return "line"
	case KindBar:
		return "bar"
	case KindCircle:
		return "circle"
	case KindText:
		return "text"
	}
	return "unknown"
}

// DrawPrimitive is one drawing instruction. Surfaces must execute them in order;
// later primitives paint over earlier ones.
type DrawPrimitive interface {
	Kind() PrimitiveKind
}

// Clip restricts everything after it to a rounded rectangle.
type Clip struct {
	Rect   Rect
	Radius float64
}

// Gradient fills Rect with a vertical gradient from Top (at Rect.Y) to Bottom.
// When Path is set the fill is restricted to that closed polygon.
type Gradient struct {
	Top    color.NRGBA
	Bottom color.NRGBA
	Rect   Rect
	Path   []Point
}

// Line strokes a polyline.
type Line struct {
	Points []Point
	Color  color.NRGBA
	Width  float64
}

// Bar is a vertical segment from YTop down to YBottom.
type Bar struct {
	X       float64
	YTop    float64
	YBottom float64
	Color   color.NRGBA
	Width   float64
}

type Circle struct {
	Center Point
	Radius float64
	Color  color.NRGBA
}

// Text draws a string with its top-left corner at Rect.X, Rect.Y.
type Text struct {
	Text  string
	Rect  Rect
	Color color.NRGBA
	Size  float64
}

func (Clip) Kind() PrimitiveKind     { return KindClip }
func (Gradient) Kind() PrimitiveKind { return KindGradient }
func (Line) Kind() PrimitiveKind     { return KindLine }
func (Bar) Kind() PrimitiveKind      { return KindBar }
func (Circle) Kind() PrimitiveKind   { return KindCircle }
func (Text) Kind() PrimitiveKind     { return KindText }
