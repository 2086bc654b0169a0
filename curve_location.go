package vpath

import (
	"fmt"
)

// CurveLocation is an immutable position on a curve given by the curve and its parameter.
type CurveLocation struct {
	curve     *Curve
	parameter float64
}

// Curve returns the curve of the location.
func (l *CurveLocation) Curve() *Curve {
	return l.curve
}

// Parameter returns the curve parameter in [0,1].
func (l *CurveLocation) Parameter() float64 {
	return l.parameter
}

// Path returns the path of the curve or nil.
func (l *CurveLocation) Path() *Path {
	return l.curve.path
}

// Index returns the curve index within its path, or -1.
func (l *CurveLocation) Index() int {
	return l.curve.Index()
}

// Segment returns the curve's segment closest to the location.
func (l *CurveLocation) Segment() *Segment {
	if l.parameter < 0.5 {
		return l.curve.segment1
	}
	return l.curve.segment2
}

// Point returns the point on the curve.
func (l *CurveLocation) Point() Point {
	return l.curve.PointAt(l.parameter)
}

// Tangent returns the normalized tangent.
func (l *CurveLocation) Tangent() Point {
	return l.curve.TangentAt(l.parameter)
}

// Normal returns the normalized normal.
func (l *CurveLocation) Normal() Point {
	return l.curve.NormalAt(l.parameter)
}

// Curvature returns the signed curvature.
func (l *CurveLocation) Curvature() float64 {
	return l.curve.CurvatureAt(l.parameter)
}

// CurveOffset returns the arc length from the start of the curve.
func (l *CurveLocation) CurveOffset() float64 {
	return l.curve.PartLength(0.0, l.parameter)
}

// Offset returns the arc length from the start of the path, or the curve offset for curves without path.
func (l *CurveLocation) Offset() float64 {
	offset := l.CurveOffset()
	if index := l.curve.Index(); 0 < index {
		curves := l.curve.path.Curves()
		for _, c := range curves[:min(index, len(curves))] {
			offset += c.Length()
		}
	}
	return offset
}

func (l *CurveLocation) String() string {
	return fmt.Sprintf("{index: %d, parameter: %g, point: %v}", l.Index(), l.parameter, l.Point())
}
