package vpath

// IsClockwise returns true if the path runs clockwise in a y-down coordinate system. The orientation is the sign of the shoelace sum over the control polygon, always including the closing curve.
func (p *Path) IsClockwise() bool {
	if !p.clockwiseValid {
		p.clockwise = isClockwise(p.segments)
		p.clockwiseValid = true
	}
	return p.clockwise
}

func isClockwise(segments []*Segment) bool {
	n := len(segments)
	sum := 0.0
	for i, seg1 := range segments {
		seg2 := segments[(i+1)%n]
		v := [4]Point{
			seg1.point,
			seg1.point.Add(seg1.handleOut),
			seg2.point.Add(seg2.handleIn),
			seg2.point,
		}
		for j := 0; j < 3; j++ {
			sum += (v[j].X - v[j+1].X) * (v[j].Y + v[j+1].Y)
		}
	}
	return 0.0 < sum
}

// SetClockwise reverses the path if its orientation differs.
func (p *Path) SetClockwise(clockwise bool) {
	if p.IsClockwise() != clockwise {
		p.Reverse()
	}
}

// Reverse reverses the order of the segments and swaps their handles. A known orientation is flipped instead of being recomputed.
func (p *Path) Reverse() {
	n := len(p.segments)
	for i := 0; i < n/2; i++ {
		p.segments[i], p.segments[n-1-i] = p.segments[n-1-i], p.segments[i]
	}
	for i, seg := range p.segments {
		seg.handleIn, seg.handleOut = seg.handleOut, seg.handleIn
		seg.index = i
	}
	p.detachCurves()

	clockwise, known := p.clockwise, p.clockwiseValid
	p.changed(geometryChanged)
	if known {
		p.clockwise = !clockwise
		p.clockwiseValid = true
	}
}

// Join appends other to the path where their end points coincide, reversing other if needed. Handles at the shared points are transferred and the duplicated segment dropped, the path is closed if both ends meet. The segments are moved out of other, which is left empty. It returns false if other is nil or the path itself.
func (p *Path) Join(other *Path) bool {
	if other == nil || other == p {
		return false
	}

	if 0 < len(p.segments) && 0 < len(other.segments) {
		last1 := p.LastSegment()
		if last1.point.Equals(other.LastSegment().point) {
			other.Reverse()
		}
		first2 := other.FirstSegment()
		if last1.point.Equals(first2.point) {
			last1.SetHandleOut(first2.handleOut)
			segs := other.Clear()
			p.AddSegments(segs[1:])
		} else {
			first1 := p.FirstSegment()
			if first1.point.Equals(first2.point) {
				other.Reverse()
			}
			last2 := other.LastSegment()
			if first1.point.Equals(last2.point) {
				first1.SetHandleIn(last2.handleIn)
				segs := other.Clear()
				p.InsertSegments(0, segs[:len(segs)-1])
			} else {
				p.AddSegments(other.Clear())
			}
		}
	} else {
		p.AddSegments(other.Clear())
	}

	if 1 < len(p.segments) {
		first, last := p.FirstSegment(), p.LastSegment()
		if last.point.Equals(first.point) {
			first.SetHandleIn(last.handleIn)
			p.RemoveSegment(len(p.segments) - 1)
			p.SetClosed(true)
		}
	}
	Logger().Debug("joined paths", "segments", len(p.segments), "closed", p.closed)
	return true
}
