package vpath

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathLength(t *testing.T) {
	var tts = []struct {
		p      *Path
		length float64
	}{
		{NewPath(), 0.0},
		{NewPath(NewSegmentAt(5.0, 5.0)), 0.0},
		{Line(0.0, 0.0, 3.0, 4.0), 5.0},
		{Rectangle(0.0, 0.0, 100.0, 100.0), 400.0},
		{MustParseSVG("M0 0L10 0L10 10"), 20.0},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.Float(t, tt.p.Length(), tt.length)
		})
	}

	// approximated circle
	test.That(t, near(Circle(0.0, 0.0, 10.0).Length(), 20.0*math.Pi, 0.05))
}

func TestPathPointAt(t *testing.T) {
	p := Rectangle(0.0, 0.0, 100.0, 100.0)
	pt, ok := p.PointAt(200.0)
	test.That(t, ok)
	test.That(t, nearPoint(pt, Point{100.0, 100.0}, 1e-6), pt)

	pt, ok = p.PointAt(350.0)
	test.That(t, ok)
	test.That(t, nearPoint(pt, Point{0.0, 50.0}, 1e-6), pt)

	pt, ok = p.PointAt(0.0)
	test.That(t, ok)
	test.T(t, pt, Point{0.0, 0.0})

	// the end resolves within tolerance
	pt, ok = p.PointAt(400.0 + 1e-9)
	test.That(t, ok)
	test.T(t, pt, Point{0.0, 0.0})

	_, ok = p.PointAt(-1.0)
	test.That(t, !ok)
	_, ok = p.PointAt(401.0)
	test.That(t, !ok)
	_, ok = NewPath().PointAt(0.0)
	test.That(t, !ok)
}

func TestPathTangentNormalAt(t *testing.T) {
	p := Rectangle(0.0, 0.0, 100.0, 100.0)
	tangent, ok := p.TangentAt(50.0)
	test.That(t, ok)
	test.T(t, tangent, Point{1.0, 0.0})
	tangent, _ = p.TangentAt(150.0)
	test.T(t, tangent, Point{0.0, 1.0})

	normal, ok := p.NormalAt(150.0)
	test.That(t, ok)
	test.T(t, normal, Point{1.0, 0.0})

	_, ok = p.TangentAt(500.0)
	test.That(t, !ok)
	_, ok = p.NormalAt(-1.0)
	test.That(t, !ok)
}

func TestPathLocationAtParameter(t *testing.T) {
	p := MustParseSVG("M0 0L10 0L10 10")
	loc := p.LocationAtParameter(1.5)
	test.T(t, loc.Index(), 1)
	test.T(t, loc.Parameter(), 0.5)
	test.T(t, loc.Point(), Point{10.0, 5.0})

	loc = p.LocationAtParameter(2.0)
	test.T(t, loc.Index(), 1)
	test.T(t, loc.Point(), Point{10.0, 10.0})

	test.That(t, p.LocationAtParameter(2.5) == nil)
	test.That(t, p.LocationAtParameter(-0.5) == nil)
	test.That(t, p.LocationAtParameter(math.NaN()) == nil)
	test.That(t, NewPath().LocationAtParameter(0.0) == nil)
}
