package vpath

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoCurrentSegment is returned by drawing commands that continue from the last segment of an empty path.
var ErrNoCurrentSegment = errors.New("vpath: no current segment, use MoveTo first")

// ErrCurveParameter is returned by CurveToAt when no curve can pass through the given point at the given parameter.
var ErrCurveParameter = errors.New("vpath: cannot put a curve through the point at this parameter")

func (p *Path) currentSegment() (*Segment, error) {
	if len(p.segments) == 0 {
		return nil, ErrNoCurrentSegment
	}
	return p.segments[len(p.segments)-1], nil
}

// MoveTo starts the path at (x,y). It has no effect when the path already has segments.
func (p *Path) MoveTo(x, y float64) {
	if len(p.segments) == 0 {
		p.Add(NewSegmentAt(x, y))
	}
}

// LineTo adds a straight line to (x,y). On an empty path it adds the first point.
func (p *Path) LineTo(x, y float64) {
	p.Add(NewSegmentAt(x, y))
}

// LineBy adds a straight line to the current point plus (dx,dy).
func (p *Path) LineBy(dx, dy float64) error {
	cur, err := p.currentSegment()
	if err != nil {
		return err
	}
	p.LineTo(cur.point.X+dx, cur.point.Y+dy)
	return nil
}

// CubicCurveTo adds a cubic Bezier with absolute control points (x1,y1) and (x2,y2) ending at (x,y).
func (p *Path) CubicCurveTo(x1, y1, x2, y2, x, y float64) error {
	cur, err := p.currentSegment()
	if err != nil {
		return err
	}
	cur.SetHandleOut(Point{x1, y1}.Sub(cur.point))
	p.Add(NewSegment(Point{x, y}, Point{x2 - x, y2 - y}, Point{}))
	return nil
}

// QuadraticCurveTo adds a quadratic Bezier with control point (cpx,cpy) ending at (x,y), which is raised to a cubic Bezier.
func (p *Path) QuadraticCurveTo(cpx, cpy, x, y float64) error {
	cur, err := p.currentSegment()
	if err != nil {
		return err
	}
	c1, c2 := quadraticToCubicBezier(cur.point, Point{cpx, cpy}, Point{x, y})
	return p.CubicCurveTo(c1.X, c1.Y, c2.X, c2.Y, x, y)
}

// CurveTo adds a curve that passes through (tx,ty) halfway and ends at (x,y).
func (p *Path) CurveTo(tx, ty, x, y float64) error {
	return p.CurveToAt(tx, ty, x, y, 0.5)
}

// CurveToAt adds a quadratic curve that passes through (tx,ty) at curve parameter t and ends at (x,y). It returns ErrCurveParameter when t is 0 or 1 and no such curve exists.
func (p *Path) CurveToAt(tx, ty, x, y, t float64) error {
	cur, err := p.currentSegment()
	if err != nil {
		return err
	}

	// invert B(t) = (1-t)^2*P0 + 2*(1-t)*t*C + t^2*P2 for C
	t1 := 1.0 - t
	through, to := Point{tx, ty}, Point{x, y}
	handle := through.Sub(cur.point.Mul(t1 * t1)).Sub(to.Mul(t * t)).Div(2.0 * t * t1)
	if !handle.IsFinite() {
		return fmt.Errorf("%w: t=%g", ErrCurveParameter, t)
	}
	return p.QuadraticCurveTo(handle.X, handle.Y, x, y)
}

// ArcTo adds a circular arc to (x,y). The arc is a half circle bulging to the left of the chord when clockwise is false, and to the right when it is true, in a y-down coordinate system.
func (p *Path) ArcTo(x, y float64, clockwise bool) error {
	cur, err := p.currentSegment()
	if err != nil {
		return err
	}

	// the through point is the middle of the chord rotated by 90 degrees around its center
	from, to := cur.point, Point{x, y}
	middle := from.Add(to).Div(2.0)
	d := middle.Sub(from)
	var through Point
	if clockwise {
		through = middle.Add(Point{d.Y, -d.X})
	} else {
		through = middle.Add(Point{-d.Y, d.X})
	}
	return p.ArcThrough(through.X, through.Y, x, y)
}

// ArcThrough adds a circular arc that passes through (tx,ty) and ends at (x,y). When the three points are collinear the circle degenerates and a straight line is added instead.
func (p *Path) ArcThrough(tx, ty, x, y float64) error {
	cur, err := p.currentSegment()
	if err != nil {
		return err
	}

	from, through, to := cur.point, Point{tx, ty}, Point{x, y}
	center, ok := circumcenter(from, through, to)
	if !ok {
		Logger().Debug("arc through collinear points, adding line", "from", from, "through", through, "to", to)
		p.LineTo(x, y)
		return nil
	}

	// signed sweep from the start angle to the end angle passing the through angle
	radius := from.Sub(center).Length()
	theta0 := from.Sub(center).Angle()
	thetaMid := angleNorm(through.Sub(center).Angle() - theta0)
	extent := angleNorm(to.Sub(center).Angle() - theta0)
	if equal(extent, 0.0) || equal(extent, 2.0*math.Pi) {
		extent = 2.0 * math.Pi // end point coincides with the start, full circle
	} else if extent < thetaMid {
		extent -= 2.0 * math.Pi
	}

	n := int(math.Ceil(math.Abs(extent)/(math.Pi/2.0) - Epsilon))
	if n < 1 {
		n = 1
	} else if 4 < n {
		n = 4
	}
	inc := extent / float64(n)
	k := 4.0 / 3.0 * math.Tan(inc/4.0) * radius

	segments := make([]*Segment, 0, n)
	for i := 0; i <= n; i++ {
		theta := theta0 + float64(i)*inc
		sintheta, costheta := math.Sincos(theta)
		dir := Point{-sintheta, costheta} // tangent in the direction of increasing angle
		if i == 0 {
			cur.SetHandleOut(dir.Mul(k))
			continue
		}
		pt := center.Add(Point{costheta * radius, sintheta * radius})
		handleOut := dir.Mul(k)
		if i == n {
			pt, handleOut = to, Point{}
		}
		segments = append(segments, NewSegment(pt, dir.Mul(-k), handleOut))
	}
	p.AddSegments(segments)
	return nil
}

// circumcenter returns the center of the circle through three points, it is false if the points are collinear.
func circumcenter(a, b, c Point) (Point, bool) {
	b, c = b.Sub(a), c.Sub(a)
	d := 2.0 * b.PerpDot(c)
	scale := math.Max(b.Length(), c.Length())
	if math.Abs(d) <= Epsilon*math.Max(1.0, scale*scale) {
		return Point{}, false
	}
	b2 := b.Dot(b)
	c2 := c.Dot(c)
	return a.Add(Point{
		(c.Y*b2 - b.Y*c2) / d,
		(b.X*c2 - c.X*b2) / d,
	}), true
}

// ClosePath closes the path by connecting the last segment back to the first.
func (p *Path) ClosePath() {
	p.SetClosed(true)
}
