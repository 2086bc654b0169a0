package vpath

import (
	"math"
)

// Fitter approximates a sequence of points by cubic Bezier curves.
type Fitter interface {
	// Fit returns the segments of a path that passes within tolerance of the points. For closed input the returned segments form a closed path.
	Fit(points []Point, closed bool, tolerance float64) []*Segment
}

// SchneiderFitter fits curves by least squares with Newton reparameterization, splitting at the point of maximum error when the tolerance is not met.
//
// See P.J. Schneider, An Algorithm for Automatically Fitting Digitized Curves, Graphics Gems, 1990.
type SchneiderFitter struct {
	// MaxIterations is the number of reparameterization steps before splitting.
	MaxIterations int
}

// DefaultFitter is used by paths that have no fitter set.
var DefaultFitter Fitter = SchneiderFitter{MaxIterations: 4}

// Fitter returns the fitter of the path, or DefaultFitter.
func (p *Path) Fitter() Fitter {
	if p.fitter == nil {
		return DefaultFitter
	}
	return p.fitter
}

// SetFitter sets the fitter used by PointsToCurves, nil restores DefaultFitter.
func (p *Path) SetFitter(f Fitter) {
	p.fitter = f
}

type schneiderFit struct {
	points        []Point
	tolerance     float64
	maxIterations int
	segments      []*Segment
}

// Fit implements Fitter.
func (f SchneiderFitter) Fit(points []Point, closed bool, tolerance float64) []*Segment {
	// drop consecutive duplicates
	pts := make([]Point, 0, len(points))
	for _, pt := range points {
		if len(pts) == 0 || !pts[len(pts)-1].Equals(pt) {
			pts = append(pts, pt)
		}
	}
	if closed && 1 < len(pts) && pts[0].Equals(pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	closed = closed && 2 < len(pts)

	n := len(pts)
	var tan1, tan2 Point
	if closed {
		// run back to the first point with a shared tangent so that the closing point is smooth
		tan1 = pts[1].Sub(pts[n-1]).Norm(1.0)
		tan2 = tan1.Neg()
		pts = append(pts, pts[0])
		n++
	} else if 1 < n {
		tan1 = pts[1].Sub(pts[0]).Norm(1.0)
		tan2 = pts[n-2].Sub(pts[n-1]).Norm(1.0)
	}

	fit := &schneiderFit{
		points:        pts,
		tolerance:     tolerance,
		maxIterations: f.MaxIterations,
	}
	if fit.maxIterations <= 0 {
		fit.maxIterations = 4
	}
	if 0 < n {
		fit.segments = append(fit.segments, NewSegment(pts[0], Point{}, Point{}))
	}
	if 1 < n {
		fit.fitCubic(0, n-1, tan1, tan2)
	}

	segments := fit.segments
	if closed {
		// the last segment duplicates the first
		last := segments[len(segments)-1]
		segments[0].handleIn = last.handleIn
		segments = segments[:len(segments)-1]
	}
	Logger().Debug("fitted curves", "points", len(points), "segments", len(segments))
	return segments
}

func (f *schneiderFit) fitCubic(first, last int, tan1, tan2 Point) {
	if last-first == 1 {
		pt1, pt2 := f.points[first], f.points[last]
		dist := pt1.Sub(pt2).Length() / 3.0
		f.addCurve(pt1, pt1.Add(tan1.Norm(dist)), pt2.Add(tan2.Norm(dist)), pt2)
		return
	}

	// errors are squared distances, reparameterization is only tried when the fit is close
	tolerance2 := f.tolerance * f.tolerance
	maxError := 4.0 * tolerance2
	u := f.chordLengthParameterize(first, last)
	split := (first + last + 1) / 2
	for i := 0; i <= f.maxIterations; i++ {
		curve := f.generateBezier(first, last, u, tan1, tan2)
		errDist, index := f.findMaxError(first, last, curve, u)
		if errDist < tolerance2 {
			f.addCurve(curve[0], curve[1], curve[2], curve[3])
			return
		}
		split = index
		if maxError <= errDist {
			break
		}
		f.reparameterize(first, last, u, curve)
		maxError = errDist
	}

	// split at the point of maximum error and fit both halves with a shared tangent
	v1 := f.points[split-1].Sub(f.points[split])
	v2 := f.points[split].Sub(f.points[split+1])
	tanCenter := v1.Add(v2).Div(2.0).Norm(1.0)
	f.fitCubic(first, split, tan1, tanCenter)
	f.fitCubic(split, last, tanCenter.Neg(), tan2)
}

func (f *schneiderFit) addCurve(p0, p1, p2, p3 Point) {
	prev := f.segments[len(f.segments)-1]
	prev.handleOut = p1.Sub(p0)
	f.segments = append(f.segments, NewSegment(p3, p2.Sub(p3), Point{}))
}

// generateBezier finds the control point distances along the end tangents by least squares.
func (f *schneiderFit) generateBezier(first, last int, u []float64, tan1, tan2 Point) [4]Point {
	const eps = 1e-12
	pt1, pt2 := f.points[first], f.points[last]

	var c [2][2]float64
	var x [2]float64
	for i := 0; i <= last-first; i++ {
		t := u[i]
		s := 1.0 - t
		b := 3.0 * t * s
		b0 := s * s * s
		b1 := b * s
		b2 := b * t
		b3 := t * t * t
		a1 := tan1.Norm(b1)
		a2 := tan2.Norm(b2)
		tmp := f.points[first+i].Sub(pt1.Mul(b0 + b1)).Sub(pt2.Mul(b2 + b3))
		c[0][0] += a1.Dot(a1)
		c[0][1] += a1.Dot(a2)
		c[1][0] = c[0][1]
		c[1][1] += a2.Dot(a2)
		x[0] += a1.Dot(tmp)
		x[1] += a2.Dot(tmp)
	}

	var alpha1, alpha2 float64
	det := c[0][0]*c[1][1] - c[1][0]*c[0][1]
	if eps < math.Abs(det) {
		alpha1 = (x[0]*c[1][1] - x[1]*c[0][1]) / det
		alpha2 = (c[0][0]*x[1] - c[1][0]*x[0]) / det
	} else {
		c0 := c[0][0] + c[0][1]
		c1 := c[1][0] + c[1][1]
		if eps < math.Abs(c0) {
			alpha1, alpha2 = x[0]/c0, x[0]/c0
		} else if eps < math.Abs(c1) {
			alpha1, alpha2 = x[1]/c1, x[1]/c1
		}
	}

	// fall back to the Wu/Barsky heuristic when the least squares solution degenerates
	segLength := pt2.Sub(pt1).Length()
	if alpha1 < eps*segLength || alpha2 < eps*segLength {
		alpha1 = segLength / 3.0
		alpha2 = alpha1
	}
	return [4]Point{pt1, pt1.Add(tan1.Norm(alpha1)), pt2.Add(tan2.Norm(alpha2)), pt2}
}

func (f *schneiderFit) reparameterize(first, last int, u []float64, curve [4]Point) {
	for i := first; i <= last; i++ {
		u[i-first] = findRootNewton(curve, f.points[i], u[i-first])
	}
}

// findRootNewton improves the parameter t of point on curve by one Newton-Raphson step.
func findRootNewton(curve [4]Point, point Point, t float64) float64 {
	pt := cubicBezierPos(curve[0], curve[1], curve[2], curve[3], t)
	d1 := cubicBezierDeriv(curve[0], curve[1], curve[2], curve[3], t)
	d2 := cubicBezierDeriv2(curve[0], curve[1], curve[2], curve[3], t)
	diff := pt.Sub(point)
	df := d1.Dot(d1) + diff.Dot(d2)
	if math.Abs(df) < Epsilon {
		return t
	}
	return t - diff.Dot(d1)/df
}

func (f *schneiderFit) chordLengthParameterize(first, last int) []float64 {
	u := make([]float64, last-first+1)
	for i := first + 1; i <= last; i++ {
		u[i-first] = u[i-first-1] + f.points[i].Sub(f.points[i-1]).Length()
	}
	m := last - first
	for i := 1; i <= m; i++ {
		u[i] /= u[m]
	}
	return u
}

// findMaxError returns the maximum squared distance of the points to the curve and the index where it occurs.
func (f *schneiderFit) findMaxError(first, last int, curve [4]Point, u []float64) (float64, int) {
	index := (first + last + 1) / 2
	maxDist := 0.0
	for i := first + 1; i < last; i++ {
		pt := cubicBezierPos(curve[0], curve[1], curve[2], curve[3], u[i-first])
		v := pt.Sub(f.points[i])
		if dist := v.Dot(v); maxDist <= dist {
			maxDist = dist
			index = i
		}
	}
	return maxDist, index
}
