package vpath

import (
	"math"
)

// kappa is the handle length of a quarter circle of unit radius approximated by a cubic Bezier.
const kappa = 0.5522847498307936

// Line returns a straight line from (x1,y1) to (x2,y2).
func Line(x1, y1, x2, y2 float64) *Path {
	return NewPath(NewSegmentAt(x1, y1), NewSegmentAt(x2, y2))
}

// Rectangle returns a closed rectangle with its top-left corner at (x,y) of width w and height h. It runs clockwise when w and h are positive.
func Rectangle(x, y, w, h float64) *Path {
	p := NewPath(
		NewSegmentAt(x, y),
		NewSegmentAt(x+w, y),
		NewSegmentAt(x+w, y+h),
		NewSegmentAt(x, y+h),
	)
	p.ClosePath()
	return p
}

// RoundedRectangle returns a rectangle with its top-left corner at (x,y) of width w and height h with rounded corners of radius r. The radius is limited to half the width and height.
func RoundedRectangle(x, y, w, h, r float64) *Path {
	r = math.Min(math.Abs(r), math.Min(math.Abs(w), math.Abs(h))/2.0)
	if equal(r, 0.0) {
		return Rectangle(x, y, w, h)
	}
	rx := math.Copysign(r, w)
	ry := math.Copysign(r, h)
	kx, ky := rx*kappa, ry*kappa

	p := NewPath(
		NewSegment(Point{x + rx, y}, Point{-kx, 0.0}, Point{}),
		NewSegment(Point{x + w - rx, y}, Point{}, Point{kx, 0.0}),
		NewSegment(Point{x + w, y + ry}, Point{0.0, -ky}, Point{}),
		NewSegment(Point{x + w, y + h - ry}, Point{}, Point{0.0, ky}),
		NewSegment(Point{x + w - rx, y + h}, Point{kx, 0.0}, Point{}),
		NewSegment(Point{x + rx, y + h}, Point{}, Point{-kx, 0.0}),
		NewSegment(Point{x, y + h - ry}, Point{0.0, ky}, Point{}),
		NewSegment(Point{x, y + ry}, Point{}, Point{0.0, -ky}),
	)
	p.ClosePath()
	return p
}

// BeveledRectangle returns a rectangle with its top-left corner at (x,y) of width w and height h with its corners cut off at distance r from the corner.
func BeveledRectangle(x, y, w, h, r float64) *Path {
	r = math.Min(math.Abs(r), math.Min(math.Abs(w), math.Abs(h))/2.0)
	if equal(r, 0.0) {
		return Rectangle(x, y, w, h)
	}
	rx := math.Copysign(r, w)
	ry := math.Copysign(r, h)

	p := NewPath(
		NewSegmentAt(x+rx, y),
		NewSegmentAt(x+w-rx, y),
		NewSegmentAt(x+w, y+ry),
		NewSegmentAt(x+w, y+h-ry),
		NewSegmentAt(x+w-rx, y+h),
		NewSegmentAt(x+rx, y+h),
		NewSegmentAt(x, y+h-ry),
		NewSegmentAt(x, y+ry),
	)
	p.ClosePath()
	return p
}

// Circle returns a closed circle centered at (cx,cy) with radius r, made of four segments.
func Circle(cx, cy, r float64) *Path {
	return Ellipse(cx, cy, r, r)
}

// Ellipse returns a closed ellipse centered at (cx,cy) with radii rx and ry, made of four segments starting at the left and running clockwise.
func Ellipse(cx, cy, rx, ry float64) *Path {
	kx, ky := rx*kappa, ry*kappa
	p := NewPath(
		NewSegment(Point{cx - rx, cy}, Point{0.0, ky}, Point{0.0, -ky}),
		NewSegment(Point{cx, cy - ry}, Point{-kx, 0.0}, Point{kx, 0.0}),
		NewSegment(Point{cx + rx, cy}, Point{0.0, -ky}, Point{0.0, ky}),
		NewSegment(Point{cx, cy + ry}, Point{kx, 0.0}, Point{-kx, 0.0}),
	)
	p.ClosePath()
	return p
}

// Arc returns an open circular arc centered at (cx,cy) with radius r from angle theta0 to theta1 in degrees. Angles increase clockwise in a y-down coordinate system.
func Arc(cx, cy, r, theta0, theta1 float64) *Path {
	return EllipticalArc(cx, cy, r, r, 0.0, theta0, theta1)
}

// EllipticalArc returns an open elliptical arc centered at (cx,cy) with radii rx and ry, rotated by rot degrees, from angle theta0 to theta1 in degrees. The arc is approximated by cubic Beziers spanning at most 90 degrees each.
func EllipticalArc(cx, cy, rx, ry, rot, theta0, theta1 float64) *Path {
	phi := rot * math.Pi / 180.0
	theta0 *= math.Pi / 180.0
	theta1 *= math.Pi / 180.0

	sinphi, cosphi := math.Sincos(phi)
	sintheta, costheta := math.Sincos(theta0)
	start := Point{
		cx + rx*cosphi*costheta - ry*sinphi*sintheta,
		cy + rx*sinphi*costheta + ry*cosphi*sintheta,
	}

	p := NewPath(NewSegment(start, Point{}, Point{}))
	for _, b := range ellipseToCubicBeziers(cx, cy, rx, ry, phi, theta0, theta1) {
		_ = p.CubicCurveTo(b[0].X, b[0].Y, b[1].X, b[1].Y, b[2].X, b[2].Y)
	}
	return p
}

// RegularPolygon returns a closed regular polygon centered at (cx,cy) with n vertices at radius r. The up boolean defines whether the first vertex points up.
func RegularPolygon(cx, cy float64, n int, r float64, up bool) *Path {
	return RegularStarPolygon(cx, cy, n, 1, r, up)
}

// RegularStarPolygon returns a closed regular star polygon centered at (cx,cy) with n vertices of density d at radius r. For n and d not coprime a polygon with multiple windings is returned. It returns an empty path for n < 3, d < 1 or n = 2d.
func RegularStarPolygon(cx, cy float64, n, d int, r float64, up bool) *Path {
	p := NewPath()
	if n < 3 || d < 1 || n == d*2 {
		return p
	}

	dtheta := 2.0 * math.Pi / float64(n)
	theta0 := -0.5 * math.Pi
	if !up {
		theta0 += dtheta / 2.0
	}
	for i := 0; i == 0 || i%n != 0; i += d {
		sintheta, costheta := math.Sincos(theta0 + float64(i)*dtheta)
		p.LineTo(cx+r*costheta, cy+r*sintheta)
	}
	p.ClosePath()
	return p
}

// StarPolygon returns a closed star polygon centered at (cx,cy) of n points with alternating radius R and r. The up boolean defines whether the first point of radius R points up.
func StarPolygon(cx, cy float64, n int, R, r float64, up bool) *Path {
	p := NewPath()
	if n < 3 {
		return p
	}

	n *= 2
	dtheta := 2.0 * math.Pi / float64(n)
	theta0 := -0.5 * math.Pi
	if !up {
		theta0 += dtheta
	}
	for i := 0; i < n; i++ {
		sintheta, costheta := math.Sincos(theta0 + float64(i)*dtheta)
		radius := R
		if i%2 == 1 {
			radius = r
		}
		p.LineTo(cx+radius*costheta, cy+radius*sintheta)
	}
	p.ClosePath()
	return p
}
