package vpath

import (
	"image/color"
)

// JoinStyle is the shape used where two curves of a stroked path meet.
type JoinStyle int

// see JoinStyle
const (
	MiterJoin JoinStyle = iota
	RoundJoin
	BevelJoin
)

func (j JoinStyle) String() string {
	switch j {
	case MiterJoin:
		return "miter"
	case RoundJoin:
		return "round"
	case BevelJoin:
		return "bevel"
	}
	return "unknown"
}

// CapStyle is the shape used at the ends of an open stroked path.
type CapStyle int

// see CapStyle
const (
	ButtCap CapStyle = iota
	RoundCap
	SquareCap
)

func (c CapStyle) String() string {
	switch c {
	case ButtCap:
		return "butt"
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	}
	return "unknown"
}

// Style is the fill and stroke style of a path. A nil color disables filling or stroking.
type Style struct {
	FillColor   color.Color
	StrokeColor color.Color
	StrokeWidth float64
	StrokeJoin  JoinStyle
	StrokeCap   CapStyle
	MiterLimit  float64
	Dashes      []float64
	DashOffset  float64
}

// DefaultStyle is the style of new paths: no fill, no stroke, a stroke width of one and miter joins limited at ten times the half width.
var DefaultStyle = Style{
	StrokeWidth: 1.0,
	StrokeJoin:  MiterJoin,
	StrokeCap:   ButtCap,
	MiterLimit:  10.0,
}

// HasFill returns true if the path is filled.
func (s Style) HasFill() bool {
	return s.FillColor != nil
}

// HasStroke returns true if the path is stroked with a non-zero width.
func (s Style) HasStroke() bool {
	return s.StrokeColor != nil && 0.0 < s.StrokeWidth
}

// IsDashed returns true if the dash pattern draws gaps.
func (s Style) IsDashed() bool {
	sum := 0.0
	for _, d := range s.Dashes {
		if d < 0.0 {
			return false
		}
		sum += d
	}
	return 0.0 < sum
}

// SetFillColor sets the fill color, nil disables filling.
func (p *Path) SetFillColor(c color.Color) {
	p.style.FillColor = c
}

// SetStrokeColor sets the stroke color, nil disables stroking.
func (p *Path) SetStrokeColor(c color.Color) {
	p.style.StrokeColor = c
	p.changed(strokeChanged)
}

// SetStrokeWidth sets the stroke width.
func (p *Path) SetStrokeWidth(width float64) {
	p.style.StrokeWidth = width
	p.changed(strokeChanged)
}

// SetStrokeJoin sets the join style.
func (p *Path) SetStrokeJoin(join JoinStyle) {
	p.style.StrokeJoin = join
	p.changed(strokeChanged)
}

// SetStrokeCap sets the cap style.
func (p *Path) SetStrokeCap(cap CapStyle) {
	p.style.StrokeCap = cap
	p.changed(strokeChanged)
}

// SetMiterLimit sets the miter limit as a ratio of the miter length to the half stroke width.
func (p *Path) SetMiterLimit(limit float64) {
	p.style.MiterLimit = limit
	p.changed(strokeChanged)
}

// SetDashes sets the dash pattern and offset.
func (p *Path) SetDashes(offset float64, dashes ...float64) {
	p.style.DashOffset = offset
	p.style.Dashes = dashes
}
