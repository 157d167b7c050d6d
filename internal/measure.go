package internal

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextMeasurer reports the size of a string drawn at a font size in points.
type TextMeasurer interface {
	Measure(text string, size float64) Size
}

// FaceMeasurer measures text with a fixed font face, scaling linearly to the requested size.
type FaceMeasurer struct {
	Face font.Face
}

// NewFaceMeasurer returns a measurer backed by the 7x13 basic font.
func NewFaceMeasurer() FaceMeasurer {
	return FaceMeasurer{Face: basicfont.Face7x13}
}

func (m FaceMeasurer) Measure(text string, size float64) Size {
	if text == "" {
		return Size{}
	}
	face := m.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	height := float64(face.Metrics().Height.Ceil())
	width := float64(font.MeasureString(face, text).Ceil())
	scale := size / height
	return Size{Width: width * scale, Height: size}
}
