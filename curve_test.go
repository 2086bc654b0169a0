package vpath

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestCurveLinear(t *testing.T) {
	c := NewCurve(NewSegmentAt(0.0, 0.0), NewSegmentAt(10.0, 0.0))
	test.That(t, c.IsLinear())
	test.T(t, c.Index(), -1)
	test.That(t, c.Path() == nil && c.Next() == nil && c.Previous() == nil)
	test.T(t, c.Length(), 10.0)
	test.T(t, c.PointAt(0.5), Point{5.0, 0.0})
	test.T(t, c.TangentAt(0.0), Point{1.0, 0.0})
	test.T(t, c.NormalAt(0.0), Point{0.0, -1.0})
	test.T(t, c.CurvatureAt(0.5), 0.0)
	test.T(t, c.Bounds(), Rect{0.0, 0.0, 10.0, 0.0})
	test.Float(t, c.ParameterAt(5.0), 0.5)
	test.T(t, c.ParameterAt(-1.0), 0.0)
	test.T(t, c.ParameterAt(11.0), 1.0)
}

func TestCurveLength(t *testing.T) {
	c := Circle(0.0, 0.0, 10.0).FirstCurve()
	test.That(t, !c.IsLinear())
	test.That(t, near(c.Length(), 5.0*math.Pi, 0.01), c.Length())
	test.That(t, near(math.Abs(c.CurvatureAt(0.5)), 0.1, 0.001), c.CurvatureAt(0.5))
	test.Float(t, c.PartLength(0.0, 0.5), c.Length()/2.0)
	test.Float(t, c.PartLength(0.5, 0.0), -c.Length()/2.0)
	test.T(t, c.PartLength(0.3, 0.3), 0.0)

	// parameter and arc length are inverse
	for _, offset := range []float64{1.0, 5.0, 10.0, 15.0} {
		u := c.ParameterAt(offset)
		test.That(t, near(c.PartLength(0.0, u), offset, 1e-6), offset)
	}
}

func TestCurveBounds(t *testing.T) {
	c := NewCurve(NewSegment(Point{0.0, 0.0}, Point{}, Point{0.0, 10.0}), NewSegment(Point{10.0, 0.0}, Point{0.0, 10.0}, Point{}))
	test.T(t, c.Bounds(), Rect{0.0, 0.0, 10.0, 7.5})

	bounds := Circle(0.0, 0.0, 10.0).FirstCurve().Bounds()
	test.T(t, bounds, Rect{-10.0, -10.0, 0.0, 0.0})
}

func TestCurveDivide(t *testing.T) {
	p := Circle(0.0, 0.0, 10.0)
	c := p.FirstCurve()
	mid := c.PointAt(0.25)
	end := c.PointAt(0.75)
	test.That(t, c.Divide(0.0) == nil)
	test.That(t, c.Divide(1.0) == nil)

	// the receiver becomes the second part
	c2 := c.Divide(0.5)
	test.Error(t, p.Validate())
	test.T(t, p.Len(), 5)
	test.That(t, c2 == c)
	test.T(t, c2.Index(), 1)
	first := c2.Previous()
	test.T(t, first.Index(), 0)
	test.That(t, first == p.FirstCurve())
	test.T(t, first.PointAt(0.5), mid)
	test.T(t, c2.PointAt(0.5), end)
	test.T(t, c2.Segment1().HandleIn(), c2.Segment1().HandleOut().Neg())
	test.That(t, p.IsClockwise())

	// straight curves stay straight
	q := Line(0.0, 0.0, 10.0, 0.0)
	q.FirstCurve().Divide(0.5)
	test.T(t, q.String(), "M0 0L5 0L10 0")
	test.That(t, q.Curves()[0].IsLinear() && q.Curves()[1].IsLinear())

	// curves without path
	free := NewCurve(NewSegmentAt(0.0, 0.0), NewSegment(Point{10.0, 0.0}, Point{0.0, 5.0}, Point{}))
	second := free.Divide(0.5)
	test.That(t, free.Segment2() == second.Segment1())
	test.T(t, second.Segment2().Point(), Point{10.0, 0.0})
}

func TestCurveReversed(t *testing.T) {
	c := NewCurve(NewSegment(Point{0.0, 0.0}, Point{}, Point{1.0, 1.0}), NewSegment(Point{10.0, 0.0}, Point{-1.0, 1.0}, Point{}))
	r := c.Reversed()
	p0, p1, p2, p3 := c.Points()
	q0, q1, q2, q3 := r.Points()
	test.T(t, q0, p3)
	test.T(t, q1, p2)
	test.T(t, q2, p1)
	test.T(t, q3, p0)
	test.T(t, r.PointAt(0.25), c.PointAt(0.75))
	test.T(t, c.String(), "{(0,0) (1,1) (9,1) (10,0)}")
}

func TestCurveLocation(t *testing.T) {
	p := MustParseSVG("M0 0L10 0L10 10")
	loc := p.LocationAt(15.0)
	test.That(t, loc != nil)
	test.T(t, loc.Index(), 1)
	test.That(t, loc.Path() == p)
	test.That(t, loc.Curve() == p.Curves()[1])
	test.That(t, nearPoint(loc.Point(), Point{10.0, 5.0}, 1e-6), loc.Point())
	test.That(t, near(loc.Offset(), 15.0, 1e-6), loc.Offset())
	test.That(t, near(loc.CurveOffset(), 5.0, 1e-6), loc.CurveOffset())
	test.T(t, loc.Tangent(), Point{0.0, 1.0})
	test.T(t, loc.Normal(), Point{1.0, 0.0})
	test.That(t, near(loc.Curvature(), 0.0, 1e-9))
	test.That(t, loc.Segment() == p.Segment(2))

	loc = p.Curves()[0].LocationAtParameter(0.25)
	test.That(t, loc.Segment() == p.Segment(0))
	test.T(t, loc.Parameter(), 0.25)
	test.That(t, p.Curves()[0].LocationAtParameter(1.5) == nil)
	test.That(t, p.Curves()[0].LocationAt(11.0) == nil)
	test.That(t, p.Curves()[0].LocationAt(-1.0) == nil)
	test.T(t, p.Curves()[0].LocationAt(10.0).Parameter(), 1.0)
}

func TestCurveDetached(t *testing.T) {
	p := MustParseSVG("M0 0L10 0L10 10L0 10")
	c := p.Curves()[1]
	p.SetClosed(true)
	test.That(t, c.Path() == nil)
	test.T(t, c.Index(), -1)
	p.RemoveSegment(1)
	test.Error(t, p.Validate())

	loc := c.LocationAtParameter(0.5)
	test.That(t, near(loc.Offset(), 5.0, 1e-6), loc.Offset())
	test.T(t, loc.Index(), -1)

	q := MustParseSVG("M0 0L10 0L10 10")
	c = q.Curves()[1]
	q.Reverse()
	test.That(t, c.Path() == nil)
	q.RemoveSegment(0)
	test.That(t, near(c.LocationAtParameter(0.5).Offset(), 5.0, 1e-6))
	test.T(t, len(q.Curves()), 1)
}
