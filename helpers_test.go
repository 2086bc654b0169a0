package vpath

import (
	"math"
	"math/rand/v2"
)

func RandomPath(n int, closed bool) *Path {
	p := NewPath()
	for i := 0; i < n; i++ {
		seg := NewSegmentAt(rand.NormFloat64(), rand.NormFloat64())
		if rand.IntN(2) == 0 {
			seg.SetHandleIn(Point{rand.NormFloat64(), rand.NormFloat64()})
			seg.SetHandleOut(Point{rand.NormFloat64(), rand.NormFloat64()})
		}
		p.Add(seg)
	}
	p.SetClosed(closed)
	return p
}

func near(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func nearPoint(p, q Point, tolerance float64) bool {
	return p.Sub(q).Length() <= tolerance
}

func nearRect(r, q Rect, tolerance float64) bool {
	return near(r.X0, q.X0, tolerance) && near(r.Y0, q.Y0, tolerance) && near(r.X1, q.X1, tolerance) && near(r.Y1, q.Y1, tolerance)
}
