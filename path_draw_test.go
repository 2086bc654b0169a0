package vpath

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathDrawNoCurrentSegment(t *testing.T) {
	var tts = []func(p *Path) error{
		func(p *Path) error { return p.LineBy(1.0, 1.0) },
		func(p *Path) error { return p.CubicCurveTo(1.0, 1.0, 2.0, 2.0, 3.0, 3.0) },
		func(p *Path) error { return p.QuadraticCurveTo(1.0, 1.0, 2.0, 2.0) },
		func(p *Path) error { return p.CurveTo(1.0, 1.0, 2.0, 2.0) },
		func(p *Path) error { return p.CurveToAt(1.0, 1.0, 2.0, 2.0, 0.3) },
		func(p *Path) error { return p.ArcTo(1.0, 1.0, true) },
		func(p *Path) error { return p.ArcThrough(1.0, 1.0, 2.0, 0.0) },
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p := NewPath()
			err := tt(p)
			test.That(t, errors.Is(err, ErrNoCurrentSegment), err)
			test.That(t, p.Empty())
		})
	}
}

func TestPathLineTo(t *testing.T) {
	p := NewPath()
	p.LineTo(5.0, 5.0)
	test.T(t, p.Len(), 1)
	p.LineTo(10.0, 5.0)
	test.Error(t, p.LineBy(0.0, 5.0))
	test.T(t, p.String(), "M5 5L10 5L10 10")
	p.ClosePath()
	test.T(t, p.String(), "M5 5L10 5L10 10z")
}

func TestPathCubicCurveTo(t *testing.T) {
	p := NewPath()
	p.MoveTo(0.0, 0.0)
	test.Error(t, p.CubicCurveTo(0.0, 10.0, 10.0, 10.0, 10.0, 0.0))
	test.T(t, p.String(), "M0 0C0 10 10 10 10 0")
	test.T(t, p.Segment(0).HandleOut(), Point{0.0, 10.0})
	test.T(t, p.Segment(1).HandleIn(), Point{0.0, 10.0})
}

func TestPathQuadraticCurveTo(t *testing.T) {
	p := NewPath()
	p.MoveTo(0.0, 0.0)
	test.Error(t, p.QuadraticCurveTo(5.0, 10.0, 10.0, 0.0))
	c := p.FirstCurve()
	_, cp1, cp2, _ := c.Points()
	test.T(t, cp1, Point{10.0 / 3.0, 20.0 / 3.0})
	test.T(t, cp2, Point{20.0 / 3.0, 20.0 / 3.0})
	test.T(t, c.PointAt(0.5), Point{5.0, 5.0})
}

func TestPathCurveTo(t *testing.T) {
	p := NewPath()
	p.MoveTo(0.0, 0.0)
	test.Error(t, p.CurveTo(5.0, 5.0, 10.0, 0.0))
	test.T(t, p.FirstCurve().PointAt(0.5), Point{5.0, 5.0})
	test.T(t, p.LastSegment().Point(), Point{10.0, 0.0})

	test.Error(t, p.CurveToAt(15.0, 2.0, 20.0, 0.0, 0.25))
	test.T(t, p.LastCurve().PointAt(0.25), Point{15.0, 2.0})

	for _, tt := range []float64{0.0, 1.0} {
		err := p.CurveToAt(25.0, 5.0, 30.0, 0.0, tt)
		test.That(t, errors.Is(err, ErrCurveParameter), err)
	}
	test.T(t, p.Len(), 3)
}

func TestPathArcTo(t *testing.T) {
	p := NewPath()
	p.MoveTo(0.0, 0.0)
	test.Error(t, p.ArcTo(100.0, 0.0, true))
	test.T(t, p.Len(), 3)
	test.T(t, p.LastSegment().Point(), Point{100.0, 0.0})
	test.That(t, nearPoint(p.Segment(1).Point(), Point{50.0, -50.0}, 1e-9), p.Segment(1))
	bounds, _ := p.Bounds()
	test.That(t, nearRect(bounds, Rect{0.0, -50.0, 100.0, 0.0}, 1e-9), bounds)
	p.ClosePath()
	test.That(t, p.IsClockwise())
	test.That(t, near(p.Length(), 50.0*math.Pi+100.0, 0.05), p.Length())

	p = NewPath()
	p.MoveTo(0.0, 0.0)
	test.Error(t, p.ArcTo(100.0, 0.0, false))
	bounds, _ = p.Bounds()
	test.That(t, nearRect(bounds, Rect{0.0, 0.0, 100.0, 50.0}, 1e-9), bounds)
	p.ClosePath()
	test.That(t, !p.IsClockwise())
}

func TestPathArcThrough(t *testing.T) {
	p := NewPath()
	p.MoveTo(0.0, 0.0)
	test.Error(t, p.ArcThrough(50.0, 50.0, 100.0, 0.0))
	test.T(t, p.Len(), 3)
	test.That(t, nearPoint(p.Segment(1).Point(), Point{50.0, 50.0}, 1e-9), p.Segment(1))
	bounds, _ := p.Bounds()
	test.That(t, nearRect(bounds, Rect{0.0, 0.0, 100.0, 50.0}, 1e-9), bounds)

	// three quarters of a circle
	p = NewPath()
	p.MoveTo(0.0, 0.0)
	test.Error(t, p.ArcThrough(10.0, 10.0, 10.0, -10.0))
	test.T(t, p.Len(), 4)
	test.T(t, p.LastSegment().Point(), Point{10.0, -10.0})
	test.That(t, near(p.Length(), 15.0*math.Pi, 0.05), p.Length())

	// collinear points give a line
	p = NewPath()
	p.MoveTo(0.0, 0.0)
	test.Error(t, p.ArcThrough(5.0, 0.0, 10.0, 0.0))
	test.T(t, p.String(), "M0 0L10 0")
}

func TestCircumcenter(t *testing.T) {
	c, ok := circumcenter(Point{0.0, 0.0}, Point{50.0, 50.0}, Point{100.0, 0.0})
	test.That(t, ok)
	test.T(t, c, Point{50.0, 0.0})

	c, ok = circumcenter(Point{1000.0, 1000.0}, Point{1001.0, 1000.0}, Point{1000.0, 1001.0})
	test.That(t, ok)
	test.T(t, c, Point{1000.5, 1000.5})

	_, ok = circumcenter(Point{0.0, 0.0}, Point{1.0, 1.0}, Point{2.0, 2.0})
	test.That(t, !ok)
}
