package vpath

import (
	"math"
)

// Renderer is a drawing backend. Geometry is accumulated between calls to BeginPath, Fill and Stroke paint the accumulated geometry with the style and Clip restricts subsequent painting to it.
type Renderer interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64)
	Close()

	Fill(style Style)
	Stroke(style Style)
	Clip()
}

// Draw emits the geometry to the renderer and fills and strokes it with the path style. Dashed strokes are drawn along the flattened path.
func (p *Path) Draw(r Renderer) {
	if len(p.segments) == 0 {
		return
	}
	style := p.style
	r.BeginPath()
	p.DrawGeometry(r)
	if style.HasFill() {
		r.Fill(style)
	}
	if style.HasStroke() {
		if style.IsDashed() {
			r.BeginPath()
			p.drawDashes(r, style)
		}
		r.Stroke(style)
	}
}

// Clip emits the geometry to the renderer and uses it as clipping region.
func (p *Path) Clip(r Renderer) {
	r.BeginPath()
	p.DrawGeometry(r)
	r.Clip()
}

// DrawGeometry emits the segments as lines where both adjoining handles are zero and as cubic Beziers otherwise, followed by Close for closed paths. A straight closing curve is left to Close.
func (p *Path) DrawGeometry(r Renderer) {
	if len(p.segments) == 0 {
		return
	}
	first := p.segments[0].point
	r.MoveTo(first.X, first.Y)
	curves := p.Curves()
	for i, c := range curves {
		if c.IsLinear() {
			if p.closed && i == len(curves)-1 {
				break // implied by Close
			}
			end := c.segment2.point
			r.LineTo(end.X, end.Y)
		} else {
			_, cp1, cp2, end := c.Points()
			r.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
		}
	}
	if p.closed {
		r.Close()
	}
}

// dashRanges returns the [from,to) arc length ranges of the dashes over a path of given length.
func dashRanges(length, offset float64, dashes []float64) [][2]float64 {
	if len(dashes)%2 == 1 {
		dashes = append(dashes, dashes...)
	}
	period := 0.0
	for _, d := range dashes {
		period += d
	}
	if period <= 0.0 || length <= 0.0 {
		return nil
	}

	// find the dash that is active at the start
	offset = math.Mod(offset, period)
	if offset < 0.0 {
		offset += period
	}
	i := 0
	for dashes[i] <= offset {
		offset -= dashes[i]
		i = (i + 1) % len(dashes)
	}

	ranges := [][2]float64{}
	pos := -offset
	for pos < length {
		end := pos + dashes[i]
		if i%2 == 0 && 0.0 < end && Epsilon < dashes[i] {
			ranges = append(ranges, [2]float64{math.Max(pos, 0.0), math.Min(end, length)})
		}
		pos = end
		i = (i + 1) % len(dashes)
	}
	return ranges
}

func (p *Path) drawDashes(r Renderer, style Style) {
	flat := p.Flattener().Flatten(p, Tolerance)
	for _, dash := range dashRanges(flat.Length(), style.DashOffset, style.Dashes) {
		flat.DrawPart(r, dash[0], dash[1])
	}
}
