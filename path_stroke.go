package vpath

import (
	"math"
)

// strokeBounder extends bounds by the outline of joins and caps. Points are computed in path coordinates and transformed by m, the pen padding is already transformed.
type strokeBounder struct {
	m          Matrix
	halfWidth  float64
	padX, padY float64
	miterLimit float64
	bounds     Rect
}

func (sb *strokeBounder) add(p Point) {
	sb.bounds = sb.bounds.AddPoint(sb.m.Dot(p))
}

// addRound adds the bounds of the pen centered at p.
func (sb *strokeBounder) addRound(p Point) {
	c := sb.m.Dot(p)
	sb.bounds = sb.bounds.Add(Rect{c.X - sb.padX, c.Y - sb.padY, c.X + sb.padX, c.Y + sb.padY})
}

// join adds the join between the end of c0 and the start of c1. Segments with both handles set are treated as round joins.
func (sb *strokeBounder) join(c0, c1 *Curve, join JoinStyle) {
	seg := c1.segment1
	if join == RoundJoin || !seg.handleIn.IsZero() && !seg.handleOut.IsZero() {
		sb.addRound(seg.point)
		return
	}

	pivot := seg.point
	t0 := c0.TangentAt(1.0)
	t1 := c1.TangentAt(0.0)
	n0 := t0.Rot90CW().Mul(sb.halfWidth)
	n1 := t1.Rot90CW().Mul(sb.halfWidth)

	// bevel
	sb.add(pivot.Add(n0))
	sb.add(pivot.Sub(n0))
	sb.add(pivot.Add(n1))
	sb.add(pivot.Sub(n1))

	if join == MiterJoin {
		cross := t0.PerpDot(t1)
		if math.Abs(cross) < Epsilon {
			return // parallel, no miter
		}
		if cross < 0.0 {
			// outer side is left of the path
			n0, n1 = n0.Neg(), n1.Neg()
		}

		// intersect the offset lines through pivot+n0 along t0 and pivot+n1 along t1
		a, b := pivot.Add(n0), pivot.Add(n1)
		s := b.Sub(a).PerpDot(t1) / cross
		corner := a.Add(t0.Mul(s))
		if corner.Sub(pivot).Length() <= sb.miterLimit {
			sb.add(corner)
		}
	}
}

// cap adds the cap at the start of c if start is true, or else at the end of c.
func (sb *strokeBounder) cap(c *Curve, start bool, cap CapStyle) {
	seg, t := c.segment2, 1.0
	if start {
		seg, t = c.segment1, 0.0
	}
	if cap == RoundCap {
		sb.addRound(seg.point)
		return
	}

	pivot := seg.point
	tangent := c.TangentAt(t)
	n := tangent.Rot90CW().Mul(sb.halfWidth)
	if cap == SquareCap {
		if start {
			tangent = tangent.Neg()
		}
		pivot = pivot.Add(tangent.Mul(sb.halfWidth))
	}
	sb.add(pivot.Add(n))
	sb.add(pivot.Sub(n))
}
