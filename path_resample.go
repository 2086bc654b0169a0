package vpath

import (
	"math"
)

// CurvesToPoints replaces the curves by evenly spaced points along the path, no more than maxDistance apart. The result consists of straight segments only. It has no effect for a non-positive maxDistance or a path without length.
func (p *Path) CurvesToPoints(maxDistance float64) {
	if maxDistance <= 0.0 || len(p.segments) < 2 {
		return
	}
	flat := p.Flattener().Flatten(p, Tolerance)
	length := flat.Length()
	if length <= Epsilon {
		return
	}

	step := length / math.Ceil(length/maxDistance)
	end := length + step/2.0
	if p.closed {
		end = length - step/2.0 // the last point coincides with the first
	}

	segments := []*Segment{}
	for pos := 0.0; pos <= end; pos += step {
		pt := flat.PointAt(math.Min(pos, length))
		segments = append(segments, NewSegment(pt, Point{}, Point{}))
	}
	Logger().Debug("resampled path", "length", length, "step", step, "points", len(segments))
	p.SetSegments(segments)
}

// PointsToCurves replaces the segments by fewer curves that pass within tolerance of the anchor points, using the fitter of the path.
func (p *Path) PointsToCurves(tolerance float64) {
	if len(p.segments) < 2 {
		return
	}
	points := make([]Point, len(p.segments))
	for i, seg := range p.segments {
		points[i] = seg.point
	}
	p.SetSegments(p.Fitter().Fit(points, p.closed, tolerance))
}
