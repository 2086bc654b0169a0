package vpath

import (
	"math"
)

// Bounds returns the tight bounding box of the geometry, it is false for an empty path.
func (p *Path) Bounds() (Rect, bool) {
	if len(p.segments) == 0 {
		return Rect{}, false
	}
	if !p.boundsValid {
		p.bounds = geometryBounds(p.segments, p.closed, Identity, 0.0, 0.0)
		p.boundsValid = true
	}
	return p.bounds, true
}

// TransformedBounds returns the bounding box of the geometry after applying m, it is not cached.
func (p *Path) TransformedBounds(m Matrix) (Rect, bool) {
	if len(p.segments) == 0 {
		return Rect{}, false
	}
	return geometryBounds(p.segments, p.closed, m, 0.0, 0.0), true
}

// StrokeBounds returns the bounding box of the stroked path, including joins and caps. Without stroke it equals the geometry bounds.
func (p *Path) StrokeBounds() (Rect, bool) {
	if len(p.segments) == 0 {
		return Rect{}, false
	} else if !p.style.HasStroke() {
		return p.Bounds()
	}
	if !p.strokeBoundsValid {
		p.strokeBounds = p.computeStrokeBounds(Identity)
		p.strokeBoundsValid = true
	}
	return p.strokeBounds, true
}

// TransformedStrokeBounds returns the bounding box of the stroked path after applying m, the pen is transformed along. It is not cached.
func (p *Path) TransformedStrokeBounds(m Matrix) (Rect, bool) {
	if len(p.segments) == 0 {
		return Rect{}, false
	} else if !p.style.HasStroke() {
		return p.TransformedBounds(m)
	}
	return p.computeStrokeBounds(m), true
}

// geometryBounds returns the bounding box of the curves through the segments after transformation m. Anchors are added exactly, extrema within the curves are padded by padX and padY.
func geometryBounds(segments []*Segment, closed bool, m Matrix, padX, padY float64) Rect {
	r := RectFromPoint(m.Dot(segments[0].point))
	addCurve := func(seg1, seg2 *Segment) {
		p0 := m.Dot(seg1.point)
		p1 := m.Dot(seg1.point.Add(seg1.handleOut))
		p2 := m.Dot(seg2.point.Add(seg2.handleIn))
		p3 := m.Dot(seg2.point)
		r = r.AddPoint(p3)

		tx1, tx2 := cubicBezierExtrema(p0.X, p1.X, p2.X, p3.X)
		for _, t := range []float64{tx1, tx2} {
			if !math.IsNaN(t) {
				x := cubicBezierAxis(p0.X, p1.X, p2.X, p3.X, t)
				r.X0 = math.Min(r.X0, x-padX)
				r.X1 = math.Max(r.X1, x+padX)
			}
		}
		ty1, ty2 := cubicBezierExtrema(p0.Y, p1.Y, p2.Y, p3.Y)
		for _, t := range []float64{ty1, ty2} {
			if !math.IsNaN(t) {
				y := cubicBezierAxis(p0.Y, p1.Y, p2.Y, p3.Y, t)
				r.Y0 = math.Min(r.Y0, y-padY)
				r.Y1 = math.Max(r.Y1, y+padY)
			}
		}
	}

	for i := 1; i < len(segments); i++ {
		addCurve(segments[i-1], segments[i])
	}
	if closed && 1 < len(segments) {
		addCurve(segments[len(segments)-1], segments[0])
	}
	return r
}

func (p *Path) computeStrokeBounds(m Matrix) Rect {
	style := p.style
	hw := style.StrokeWidth / 2.0
	padX, padY := m.penPadding(hw)
	sb := strokeBounder{
		m:          m,
		halfWidth:  hw,
		padX:       padX,
		padY:       padY,
		miterLimit: style.MiterLimit * hw,
		bounds:     geometryBounds(p.segments, p.closed, m, padX, padY),
	}

	curves := p.Curves()
	for i := 1; i < len(curves); i++ {
		sb.join(curves[i-1], curves[i], style.StrokeJoin)
	}
	if p.closed {
		if 1 < len(curves) {
			sb.join(curves[len(curves)-1], curves[0], style.StrokeJoin)
		}
	} else if 0 < len(curves) {
		sb.cap(curves[0], true, style.StrokeCap)
		sb.cap(curves[len(curves)-1], false, style.StrokeCap)
	}
	if len(curves) == 0 && style.StrokeCap != ButtCap {
		// a lone segment is drawn as a dot without direction
		sb.addRound(p.segments[0].point)
	}
	return sb.bounds
}
