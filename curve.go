package vpath

import (
	"fmt"
	"math"
)

// Curve is a cubic Bezier between two adjacent segments. Curves owned by a path are derived views, they are replaced or re-pointed when the segments of the path change.
type Curve struct {
	path               *Path
	segment1, segment2 *Segment
}

// NewCurve returns a curve between two segments that is not part of a path.
func NewCurve(segment1, segment2 *Segment) *Curve {
	return &Curve{
		segment1: segment1,
		segment2: segment2,
	}
}

// Segment1 returns the start segment.
func (c *Curve) Segment1() *Segment {
	return c.segment1
}

// Segment2 returns the end segment.
func (c *Curve) Segment2() *Segment {
	return c.segment2
}

// Path returns the owning path or nil.
func (c *Curve) Path() *Path {
	return c.path
}

// Index returns the position of the curve within its path, or -1.
func (c *Curve) Index() int {
	if c.path == nil {
		return -1
	}
	return c.segment1.index
}

// Next returns the following curve of the path, wrapping around for closed paths.
func (c *Curve) Next() *Curve {
	if c.path == nil {
		return nil
	}
	curves := c.path.Curves()
	i := c.Index() + 1
	if i < len(curves) {
		return curves[i]
	} else if c.path.closed && 0 < len(curves) {
		return curves[0]
	}
	return nil
}

// Previous returns the preceding curve of the path, wrapping around for closed paths.
func (c *Curve) Previous() *Curve {
	if c.path == nil {
		return nil
	}
	curves := c.path.Curves()
	i := c.Index() - 1
	if 0 <= i && i < len(curves) {
		return curves[i]
	} else if c.path.closed && 0 < len(curves) {
		return curves[len(curves)-1]
	}
	return nil
}

// Points returns the start point, the two control points and the end point in absolute coordinates.
func (c *Curve) Points() (Point, Point, Point, Point) {
	p0 := c.segment1.point
	p3 := c.segment2.point
	return p0, p0.Add(c.segment1.handleOut), p3.Add(c.segment2.handleIn), p3
}

// IsLinear returns true if both handles of the curve are zero.
func (c *Curve) IsLinear() bool {
	return c.segment1.handleOut.IsZero() && c.segment2.handleIn.IsZero()
}

// PointAt returns the point at curve parameter t in [0,1].
func (c *Curve) PointAt(t float64) Point {
	p0, p1, p2, p3 := c.Points()
	return cubicBezierPos(p0, p1, p2, p3, t)
}

// TangentAt returns the normalized direction at curve parameter t.
func (c *Curve) TangentAt(t float64) Point {
	p0, p1, p2, p3 := c.Points()
	return cubicBezierTangent(p0, p1, p2, p3, t).Norm(1.0)
}

// NormalAt returns the normalized normal at curve parameter t, which is the tangent rotated by 90 degrees.
func (c *Curve) NormalAt(t float64) Point {
	return c.TangentAt(t).Rot90CW()
}

// CurvatureAt returns the signed curvature at curve parameter t.
func (c *Curve) CurvatureAt(t float64) float64 {
	p0, p1, p2, p3 := c.Points()
	d := cubicBezierDeriv(p0, p1, p2, p3, t)
	dd := cubicBezierDeriv2(p0, p1, p2, p3, t)
	l := d.Length()
	if equal(l, 0.0) {
		return 0.0
	}
	return d.PerpDot(dd) / (l * l * l)
}

func (c *Curve) speed() func(float64) float64 {
	p0, p1, p2, p3 := c.Points()
	return func(t float64) float64 {
		return cubicBezierDeriv(p0, p1, p2, p3, t).Length()
	}
}

// Length returns the arc length of the curve. Straight curves return the exact distance between their end points.
func (c *Curve) Length() float64 {
	if c.IsLinear() {
		return c.segment2.point.Sub(c.segment1.point).Length()
	}
	return c.PartLength(0.0, 1.0)
}

// PartLength returns the arc length between the curve parameters a and b.
func (c *Curve) PartLength(a, b float64) float64 {
	if a == b {
		return 0.0
	} else if b < a {
		return -c.PartLength(b, a)
	}
	n := int(math.Ceil((b - a) * 16.0))
	return compositeGaussLegendre(c.speed(), a, b, n)
}

// ParameterAt returns the curve parameter at arc length offset from the start. Offsets outside of [0,length] are clamped.
func (c *Curve) ParameterAt(offset float64) float64 {
	length := c.Length()
	if offset <= 0.0 {
		return 0.0
	} else if length <= offset {
		return 1.0
	}

	// Newton iteration safeguarded by bisection, the arc length is increasing in t
	speed := c.speed()
	tolerance := LengthTolerance * math.Max(1.0, length)
	a, b := 0.0, 1.0
	t := offset / length
	for i := 0; i < 64; i++ {
		f := c.PartLength(0.0, t) - offset
		if math.Abs(f) < tolerance {
			break
		} else if 0.0 < f {
			b = t
		} else {
			a = t
		}

		tNext := math.NaN()
		if v := speed(t); Epsilon < v {
			tNext = t - f/v
		}
		if !(a < tNext && tNext < b) {
			tNext = (a + b) / 2.0
		}
		t = tNext
	}
	return t
}

// LocationAt returns the location at arc length offset from the start of the curve, or nil when offset is outside the curve.
func (c *Curve) LocationAt(offset float64) *CurveLocation {
	length := c.Length()
	if offset < 0.0 || length+LengthTolerance*math.Max(1.0, length) < offset {
		return nil
	}
	return &CurveLocation{curve: c, parameter: c.ParameterAt(offset)}
}

// LocationAtParameter returns the location at curve parameter t, or nil if t is outside [0,1].
func (c *Curve) LocationAtParameter(t float64) *CurveLocation {
	if t < 0.0 || 1.0 < t {
		return nil
	}
	return &CurveLocation{curve: c, parameter: t}
}

// Bounds returns the tight bounding box of the curve.
func (c *Curve) Bounds() Rect {
	p0, p1, p2, p3 := c.Points()
	r := RectFromPoint(p0).AddPoint(p3)
	for _, t := range cubicBezierExtremaPoints(p0, p1, p2, p3) {
		r = r.AddPoint(cubicBezierPos(p0, p1, p2, p3, t))
	}
	return r
}

func cubicBezierExtremaPoints(p0, p1, p2, p3 Point) []float64 {
	ts := make([]float64, 0, 4)
	tx1, tx2 := cubicBezierExtrema(p0.X, p1.X, p2.X, p3.X)
	ty1, ty2 := cubicBezierExtrema(p0.Y, p1.Y, p2.Y, p3.Y)
	for _, t := range []float64{tx1, tx2, ty1, ty2} {
		if !math.IsNaN(t) {
			ts = append(ts, t)
		}
	}
	return ts
}

// Divide splits the curve at parameter t by inserting a new segment and returns the second part. It returns nil if t is not within (0,1).
//
// If the curve belongs to a path, the segment is inserted into the path and the receiver becomes the second part, the first part is a new curve at the original index. Without a path the receiver becomes the first part.
func (c *Curve) Divide(t float64) *Curve {
	if !(CurveTimeEpsilon < t && t < 1.0-CurveTimeEpsilon) {
		return nil
	}

	p0, p1, p2, p3 := c.Points()
	q0, q1, q2, q3, r0, r1, r2, r3 := splitCubicBezier(p0, p1, p2, p3, t)
	if c.IsLinear() {
		// keep straight halves straight
		q1, q2, r1, r2 = q0, q3, r0, r3
	}
	seg := NewSegment(q3, q2.Sub(q3), r1.Sub(r0))

	seg1, seg2 := c.segment1, c.segment2
	seg1.handleOut = q1.Sub(q0)
	seg2.handleIn = r2.Sub(r3)
	if c.path == nil {
		c.segment2 = seg
		return NewCurve(seg, seg2)
	}

	p := c.path
	index := seg1.index + 1
	p.Insert(index, seg)
	return p.Curves()[index]
}

// Reversed returns a standalone curve running in the opposite direction.
func (c *Curve) Reversed() *Curve {
	seg1 := NewSegment(c.segment2.point, Point{}, c.segment2.handleIn)
	seg2 := NewSegment(c.segment1.point, c.segment1.handleOut, Point{})
	return NewCurve(seg1, seg2)
}

func (c *Curve) String() string {
	p0, p1, p2, p3 := c.Points()
	return fmt.Sprintf("{%v %v %v %v}", p0, p1, p2, p3)
}
