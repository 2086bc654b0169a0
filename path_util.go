package vpath

import (
	"math"
)

func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul(1.0 - 3.0*t + 3.0*t*t - t*t*t)
	p1 = p1.Mul(3.0*t - 6.0*t*t + 3.0*t*t*t)
	p2 = p2.Mul(3.0*t*t - 3.0*t*t*t)
	p3 = p3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func cubicBezierDeriv(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul(-3.0 + 6.0*t - 3.0*t*t)
	p1 = p1.Mul(3.0 - 12.0*t + 9.0*t*t)
	p2 = p2.Mul(6.0*t - 9.0*t*t)
	p3 = p3.Mul(3.0 * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

func cubicBezierDeriv2(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul(6.0 - 6.0*t)
	p1 = p1.Mul(18.0*t - 12.0)
	p2 = p2.Mul(6.0 - 18.0*t)
	p3 = p3.Mul(6.0 * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

// cubicBezierTangent returns the (unnormalized) direction of the curve at t. At the end points a vanishing derivative falls back to the direction of the next distinct control point.
func cubicBezierTangent(p0, p1, p2, p3 Point, t float64) Point {
	d := cubicBezierDeriv(p0, p1, p2, p3, t)
	if !d.Equals(Point{}) {
		return d
	}
	if t <= 0.5 {
		if d = p2.Sub(p0); !d.Equals(Point{}) {
			return d
		}
		return p3.Sub(p0)
	}
	if d = p3.Sub(p1); !d.Equals(Point{}) {
		return d
	}
	return p3.Sub(p0)
}

func splitCubicBezier(p0, p1, p2, p3 Point, t float64) (Point, Point, Point, Point, Point, Point, Point, Point) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}

// quadraticToCubicBezier raises the degree of a quadratic Bezier by placing the cubic control points at one third towards the quadratic control point.
func quadraticToCubicBezier(p0, p1, p2 Point) (Point, Point) {
	c1 := p1.Add(p0.Sub(p1).Mul(1.0 / 3.0))
	c2 := p1.Add(p2.Sub(p1).Mul(1.0 / 3.0))
	return c1, c2
}

// cubicBezierIsFlat returns true if both control points lie within tolerance of the chord.
func cubicBezierIsFlat(p0, p1, p2, p3 Point, tolerance float64) bool {
	chord := p3.Sub(p0)
	d := chord.Length()
	if d < Epsilon {
		return p1.Sub(p0).Length() <= tolerance && p2.Sub(p0).Length() <= tolerance
	}
	d1 := math.Abs(chord.PerpDot(p1.Sub(p0))) / d
	d2 := math.Abs(chord.PerpDot(p2.Sub(p0))) / d
	return d1 <= tolerance && d2 <= tolerance
}

// cubicBezierExtrema returns the curve parameters where the derivative along one axis vanishes, given the axis values v0..v3. Results outside (CurveTimeEpsilon,1-CurveTimeEpsilon) are NaN.
func cubicBezierExtrema(v0, v1, v2, v3 float64) (float64, float64) {
	a := 3.0*(v1-v2) - v0 + v3
	b := 2.0*(v0+v2) - 4.0*v1
	c := v1 - v0
	t1, t2 := solveQuadraticFormula(a, b, c)
	if !(CurveTimeEpsilon < t1 && t1 < 1.0-CurveTimeEpsilon) {
		t1 = math.NaN()
	}
	if !(CurveTimeEpsilon < t2 && t2 < 1.0-CurveTimeEpsilon) {
		t2 = math.NaN()
	}
	return t1, t2
}

func cubicBezierAxis(v0, v1, v2, v3, t float64) float64 {
	u := 1.0 - t
	return u*u*u*v0 + 3.0*u*u*t*v1 + 3.0*u*t*t*v2 + t*t*t*v3
}

////////////////////////////////////////////////////////////////

// arcToCenter changes between the SVG arc format to the center and angles format
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64, float64, float64) {
	if x1 == x2 && y1 == y2 {
		return x1, y1, rx, ry, 0.0, 0.0
	}

	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(x1-x2)/2.0 + sinphi*(y1-y2)/2.0
	y1p := -sinphi*(x1-x2)/2.0 + cosphi*(y1-y2)/2.0

	// scale up radii when the end point cannot be reached
	lambda := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if lambda > 1.0 {
		rx *= math.Sqrt(lambda)
		ry *= math.Sqrt(lambda)
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	u := Point{(x1p - cxp) / rx, (y1p - cyp) / ry}
	v := Point{-(x1p + cxp) / rx, -(y1p + cyp) / ry}
	theta := u.Angle()
	delta := u.AngleBetween(v)
	if !sweep && delta > 0.0 {
		delta -= 2.0 * math.Pi
	} else if sweep && delta < 0.0 {
		delta += 2.0 * math.Pi
	}
	return cx, cy, rx, ry, theta, theta + delta
}

// ellipseToCubicBeziers approximates the elliptical arc from theta0 to theta1 by cubic Beziers of at most 90 degrees each. It returns the control points and end point of each piece.
func ellipseToCubicBeziers(cx, cy, rx, ry, phi, theta0, theta1 float64) [][3]Point {
	delta := theta1 - theta0
	n := int(math.Ceil(math.Abs(delta)/(math.Pi/2.0) - Epsilon))
	if n < 1 {
		n = 1
	}
	inc := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(inc/4.0)

	sinphi, cosphi := math.Sincos(phi)
	pos := func(theta float64) Point {
		sintheta, costheta := math.Sincos(theta)
		return Point{
			cx + rx*cosphi*costheta - ry*sinphi*sintheta,
			cy + rx*sinphi*costheta + ry*cosphi*sintheta,
		}
	}
	deriv := func(theta float64) Point {
		sintheta, costheta := math.Sincos(theta)
		return Point{
			-rx*cosphi*sintheta - ry*sinphi*costheta,
			-rx*sinphi*sintheta + ry*cosphi*costheta,
		}
	}

	beziers := make([][3]Point, 0, n)
	for i := 0; i < n; i++ {
		t0 := theta0 + float64(i)*inc
		t1 := t0 + inc
		p0, p3 := pos(t0), pos(t1)
		p1 := p0.Add(deriv(t0).Mul(k))
		p2 := p3.Sub(deriv(t1).Mul(k))
		beziers = append(beziers, [3]Point{p1, p2, p3})
	}
	return beziers
}
