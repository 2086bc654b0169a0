package vpath

import (
	"fmt"
)

// SelectionState is a set of flags marking which parts of a segment are selected.
type SelectionState uint8

// see SelectionState
const (
	SelectedPoint SelectionState = 1 << iota
	SelectedHandleIn
	SelectedHandleOut

	SelectionNone SelectionState = 0
)

func (s SelectionState) String() string {
	if s == SelectionNone {
		return "None"
	}
	str := ""
	for _, flag := range []struct {
		state SelectionState
		name  string
	}{{SelectedPoint, "Point"}, {SelectedHandleIn, "HandleIn"}, {SelectedHandleOut, "HandleOut"}} {
		if s&flag.state != 0 {
			if str != "" {
				str += "|"
			}
			str += flag.name
		}
	}
	return str
}

// Segment is an anchor point of a path with an incoming and an outgoing control handle. The handles are relative to the anchor, a zero handle means the adjoining curve is straight at this end.
type Segment struct {
	point, handleIn, handleOut Point

	path      *Path
	index     int
	selection SelectionState
}

// NewSegment returns a segment at point with the given relative handles.
func NewSegment(point, handleIn, handleOut Point) *Segment {
	return &Segment{
		point:     point,
		handleIn:  handleIn,
		handleOut: handleOut,
		index:     -1,
	}
}

// NewSegmentAt returns a segment at (x,y) without handles.
func NewSegmentAt(x, y float64) *Segment {
	return NewSegment(Point{x, y}, Point{}, Point{})
}

// Point returns the anchor point.
func (s *Segment) Point() Point {
	return s.point
}

// HandleIn returns the incoming handle relative to the anchor.
func (s *Segment) HandleIn() Point {
	return s.handleIn
}

// HandleOut returns the outgoing handle relative to the anchor.
func (s *Segment) HandleOut() Point {
	return s.handleOut
}

// SetPoint moves the anchor, the handles move along.
func (s *Segment) SetPoint(p Point) {
	s.point = p
	s.changed()
}

// SetHandleIn sets the incoming handle relative to the anchor.
func (s *Segment) SetHandleIn(h Point) {
	s.handleIn = h
	s.changed()
}

// SetHandleOut sets the outgoing handle relative to the anchor.
func (s *Segment) SetHandleOut(h Point) {
	s.handleOut = h
	s.changed()
}

// HasHandles returns true if any of the handles is non-zero.
func (s *Segment) HasHandles() bool {
	return !s.handleIn.IsZero() || !s.handleOut.IsZero()
}

// ClearHandles sets both handles to zero.
func (s *Segment) ClearHandles() {
	s.handleIn = Point{}
	s.handleOut = Point{}
	s.changed()
}

// Path returns the owning path or nil.
func (s *Segment) Path() *Path {
	return s.path
}

// Index returns the position within the owning path, or -1 if the segment is not part of a path.
func (s *Segment) Index() int {
	if s.path == nil {
		return -1
	}
	return s.index
}

// Next returns the following segment, wrapping around for closed paths.
func (s *Segment) Next() *Segment {
	if s.path == nil {
		return nil
	}
	segs := s.path.segments
	if s.index+1 < len(segs) {
		return segs[s.index+1]
	} else if s.path.closed && 1 < len(segs) {
		return segs[0]
	}
	return nil
}

// Previous returns the preceding segment, wrapping around for closed paths.
func (s *Segment) Previous() *Segment {
	if s.path == nil {
		return nil
	}
	segs := s.path.segments
	if 0 < s.index {
		return segs[s.index-1]
	} else if s.path.closed && 1 < len(segs) {
		return segs[len(segs)-1]
	}
	return nil
}

// Curve returns the curve that starts at this segment, or nil.
func (s *Segment) Curve() *Curve {
	if s.path == nil {
		return nil
	}
	curves := s.path.Curves()
	if s.index < len(curves) {
		return curves[s.index]
	}
	return nil
}

// Selection returns the selection flags.
func (s *Segment) Selection() SelectionState {
	return s.selection
}

// SetSelection replaces the selection flags and updates the selection count of the owning path.
func (s *Segment) SetSelection(state SelectionState) {
	old := s.selection
	if old == state {
		return
	}
	s.selection = state
	if s.path != nil {
		s.path.updateSelection(old, state)
	}
}

// IsSelected returns true if the anchor point is selected.
func (s *Segment) IsSelected() bool {
	return s.selection&SelectedPoint != 0
}

// SetSelected selects or deselects the anchor point, keeping the handle flags.
func (s *Segment) SetSelected(selected bool) {
	if selected {
		s.SetSelection(s.selection | SelectedPoint)
	} else {
		s.SetSelection(s.selection &^ SelectedPoint)
	}
}

// Reverse swaps the incoming and outgoing handles.
func (s *Segment) Reverse() {
	s.handleIn, s.handleOut = s.handleOut, s.handleIn
	s.changed()
}

// Clone returns a copy that does not belong to any path.
func (s *Segment) Clone() *Segment {
	seg := NewSegment(s.point, s.handleIn, s.handleOut)
	seg.selection = s.selection
	return seg
}

// Transform applies the affine transformation, handles are transformed without translation.
func (s *Segment) Transform(m Matrix) {
	s.point = m.Dot(s.point)
	s.handleIn = m.DotVector(s.handleIn)
	s.handleOut = m.DotVector(s.handleOut)
	s.changed()
}

// Remove removes the segment from its path.
func (s *Segment) Remove() bool {
	if s.path == nil {
		return false
	}
	s.path.RemoveSegment(s.index)
	return true
}

func (s *Segment) changed() {
	if s.path != nil {
		s.path.changed(geometryChanged)
	}
}

func (s *Segment) String() string {
	if s.HasHandles() {
		return fmt.Sprintf("{point: %v, handleIn: %v, handleOut: %v}", s.point, s.handleIn, s.handleOut)
	}
	return fmt.Sprintf("{point: %v}", s.point)
}
