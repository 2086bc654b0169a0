package vpath

import (
	"fmt"
)

type changeFlag int

const (
	geometryChanged changeFlag = 1 << iota
	strokeChanged
)

// SelectionNotifier is informed when a path transitions between having no selected segments and having at least one.
type SelectionNotifier interface {
	SelectionChanged(p *Path, selected bool)
}

// Path is an ordered chain of segments connected by cubic Bezier curves, optionally closed. The curves are derived lazily from the segments and kept in sync with edits, as are the cached length, bounds and orientation.
//
// A path and its segments must not be used concurrently.
type Path struct {
	segments []*Segment
	closed   bool
	curves   []*Curve // nil when not yet derived

	style                Style
	selectedSegmentCount int
	notifier             SelectionNotifier
	flattener            Flattener
	fitter               Fitter

	// caches
	length            float64
	lengthValid       bool
	bounds            Rect
	boundsValid       bool
	strokeBounds      Rect
	strokeBoundsValid bool
	position          Point
	positionValid     bool
	clockwise         bool
	clockwiseValid    bool
}

// NewPath returns an open path with the given segments. Segments that belong to another path are cloned.
func NewPath(segments ...*Segment) *Path {
	p := &Path{style: DefaultStyle}
	p.AddSegments(segments)
	return p
}

// Copy returns a deep copy without selection notifier.
func (p *Path) Copy() *Path {
	q := &Path{
		closed:    p.closed,
		style:     p.style,
		flattener: p.flattener,
		fitter:    p.fitter,
	}
	segments := make([]*Segment, len(p.segments))
	for i, seg := range p.segments {
		segments[i] = seg.Clone()
	}
	q.AddSegments(segments)
	return q
}

// Empty returns true if the path has no segments.
func (p *Path) Empty() bool {
	return len(p.segments) == 0
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// Segments returns the segments of the path. The returned slice must not be modified.
func (p *Path) Segments() []*Segment {
	return p.segments
}

// Segment returns the segment at index i.
func (p *Path) Segment(i int) *Segment {
	return p.segments[i]
}

// FirstSegment returns the first segment or nil.
func (p *Path) FirstSegment() *Segment {
	if len(p.segments) == 0 {
		return nil
	}
	return p.segments[0]
}

// LastSegment returns the last segment or nil.
func (p *Path) LastSegment() *Segment {
	if len(p.segments) == 0 {
		return nil
	}
	return p.segments[len(p.segments)-1]
}

// Closed returns true if the last segment connects back to the first.
func (p *Path) Closed() bool {
	return p.closed
}

// SetClosed opens or closes the path, this drops the derived curves.
func (p *Path) SetClosed(closed bool) {
	if p.closed == closed {
		return
	}
	p.closed = closed
	p.detachCurves()
	p.changed(geometryChanged)
}

// detachCurves drops the derived curves, curves held by callers no longer belong to the path.
func (p *Path) detachCurves() {
	for _, c := range p.curves {
		c.path = nil
	}
	p.curves = nil
}

// countCurves returns the number of curves derived from the segments.
func (p *Path) countCurves() int {
	n := len(p.segments)
	if n < 2 {
		return 0
	} else if p.closed {
		return n
	}
	return n - 1
}

// Curves returns the curves of the path, derived on first use. The returned slice must not be modified.
func (p *Path) Curves() []*Curve {
	if p.curves == nil {
		n := p.countCurves()
		p.curves = make([]*Curve, n)
		for i := range p.curves {
			p.curves[i] = &Curve{path: p}
		}
		p.adjustCurves(0, n-1)
	}
	return p.curves
}

// FirstCurve returns the first curve or nil.
func (p *Path) FirstCurve() *Curve {
	curves := p.Curves()
	if len(curves) == 0 {
		return nil
	}
	return curves[0]
}

// LastCurve returns the last curve or nil.
func (p *Path) LastCurve() *Curve {
	curves := p.Curves()
	if len(curves) == 0 {
		return nil
	}
	return curves[len(curves)-1]
}

// adjustCurves re-points the curves in [from,to] to their segments, as well as the closing curve.
func (p *Path) adjustCurves(from, to int) {
	n := len(p.segments)
	if from < 0 {
		from = 0
	}
	if len(p.curves) <= to {
		to = len(p.curves) - 1
	}
	for i := from; i <= to; i++ {
		c := p.curves[i]
		c.path = p
		c.segment1 = p.segments[i]
		c.segment2 = p.segments[(i+1)%n]
	}
	if p.closed && 0 < len(p.curves) {
		c := p.curves[len(p.curves)-1]
		c.path = p
		c.segment1 = p.segments[n-1]
		c.segment2 = p.segments[0]
	}
}

////////////////////////////////////////////////////////////////

// Add appends segments and returns the inserted segments, which are clones for segments that belonged to another path.
func (p *Path) Add(segments ...*Segment) []*Segment {
	return p.InsertSegments(len(p.segments), segments)
}

// Insert inserts segments at index and returns the inserted segments. It panics if index is out of range.
func (p *Path) Insert(index int, segments ...*Segment) []*Segment {
	return p.InsertSegments(index, segments)
}

// AddSegments appends the list of segments, see Add.
func (p *Path) AddSegments(segments []*Segment) []*Segment {
	return p.InsertSegments(len(p.segments), segments)
}

// InsertSegments inserts the list of segments at index, see Insert.
func (p *Path) InsertSegments(index int, segments []*Segment) []*Segment {
	if index < 0 || len(p.segments) < index {
		panic(fmt.Sprintf("vpath: segment index %d out of range [0,%d]", index, len(p.segments)))
	} else if len(segments) == 0 {
		return nil
	}

	inserted := make([]*Segment, len(segments))
	for i, seg := range segments {
		if seg.path != nil {
			seg = seg.Clone()
		}
		seg.path = p
		seg.index = index + i
		if seg.selection != SelectionNone {
			p.updateSelection(SelectionNone, seg.selection)
		}
		inserted[i] = seg
	}

	p.segments = append(p.segments[:index], append(inserted, p.segments[index:]...)...)
	for i := index + len(inserted); i < len(p.segments); i++ {
		p.segments[i].index = i
	}

	if p.curves != nil {
		// splice new curves in before the insertion point and re-point the neighbours
		at := index - 1
		if at < 0 {
			at = 0
		}
		if len(p.curves) < at {
			at = len(p.curves)
		}
		added := p.countCurves() - len(p.curves)
		curves := make([]*Curve, added)
		for i := range curves {
			curves[i] = &Curve{path: p}
		}
		p.curves = append(p.curves[:at], append(curves, p.curves[at:]...)...)
		p.adjustCurves(at-1, at+added)
	}
	p.changed(geometryChanged)
	return inserted
}

// RemoveSegment removes and returns the segment at index.
func (p *Path) RemoveSegment(index int) *Segment {
	removed := p.RemoveSegments(index, index+1)
	if len(removed) == 0 {
		return nil
	}
	return removed[0]
}

// RemoveSegments removes and returns the segments in [from,to). It panics if the range is invalid.
func (p *Path) RemoveSegments(from, to int) []*Segment {
	if from < 0 || to < from || len(p.segments) < to {
		panic(fmt.Sprintf("vpath: segment range [%d,%d) out of range [0,%d)", from, to, len(p.segments)))
	} else if from == to {
		return nil
	}

	removed := make([]*Segment, to-from)
	copy(removed, p.segments[from:to])
	p.segments = append(p.segments[:from], p.segments[to:]...)
	for _, seg := range removed {
		if seg.selection != SelectionNone {
			p.updateSelection(seg.selection, SelectionNone)
		}
		seg.path = nil
		seg.index = -1
	}
	for i := from; i < len(p.segments); i++ {
		p.segments[i].index = i
	}

	if p.curves != nil {
		// drop the curves touching removed segments, and bridge the gap with the remaining neighbour
		amount := len(p.curves) - p.countCurves()
		at := from
		if len(p.curves) < at+amount {
			at = len(p.curves) - amount
		}
		for _, c := range p.curves[at : at+amount] {
			c.path = nil
		}
		p.curves = append(p.curves[:at], p.curves[at+amount:]...)
		p.adjustCurves(at-1, at)
	}
	p.changed(geometryChanged)
	return removed
}

// SetSegments replaces all segments.
func (p *Path) SetSegments(segments []*Segment) {
	p.Clear()
	p.AddSegments(segments)
}

// Clear removes all segments.
func (p *Path) Clear() []*Segment {
	return p.RemoveSegments(0, len(p.segments))
}

////////////////////////////////////////////////////////////////

// SelectedSegmentCount returns the number of segments with any selection flag set.
func (p *Path) SelectedSegmentCount() int {
	return p.selectedSegmentCount
}

// SetSelectionNotifier sets the receiver of selection transitions, nil disables notifications.
func (p *Path) SetSelectionNotifier(n SelectionNotifier) {
	p.notifier = n
}

// IsFullySelected returns true if all segments are selected.
func (p *Path) IsFullySelected() bool {
	return 0 < len(p.segments) && p.selectedSegmentCount == len(p.segments)
}

// SetFullySelected selects or deselects the anchor points of all segments and recounts the selection.
func (p *Path) SetFullySelected(selected bool) {
	was := 0 < p.selectedSegmentCount
	count := 0
	for _, seg := range p.segments {
		if selected {
			seg.selection |= SelectedPoint
		} else {
			seg.selection = SelectionNone
		}
		if seg.selection != SelectionNone {
			count++
		}
	}
	p.selectedSegmentCount = count
	if is := 0 < count; was != is && p.notifier != nil {
		p.notifier.SelectionChanged(p, is)
	}
}

func (p *Path) updateSelection(old, state SelectionState) {
	was := 0 < p.selectedSegmentCount
	if old == SelectionNone && state != SelectionNone {
		p.selectedSegmentCount++
	} else if old != SelectionNone && state == SelectionNone {
		p.selectedSegmentCount--
	}
	if is := 0 < p.selectedSegmentCount; was != is && p.notifier != nil {
		p.notifier.SelectionChanged(p, is)
	}
}

////////////////////////////////////////////////////////////////

// Style returns the path style.
func (p *Path) Style() Style {
	return p.style
}

// SetStyle sets the path style, which invalidates the stroke bounds.
func (p *Path) SetStyle(style Style) {
	p.style = style
	p.changed(strokeChanged)
}

// changed invalidates the caches affected by the change.
func (p *Path) changed(flags changeFlag) {
	if flags&geometryChanged != 0 {
		p.lengthValid = false
		p.boundsValid = false
		p.positionValid = false
		p.clockwiseValid = false
	}
	if flags&(geometryChanged|strokeChanged) != 0 {
		p.strokeBoundsValid = false
	}
}

// Validate checks the structural invariants between segments, curves and the selection count.
func (p *Path) Validate() error {
	count := 0
	for i, seg := range p.segments {
		if seg.path != p {
			return fmt.Errorf("vpath: segment %d belongs to another path", i)
		} else if seg.index != i {
			return fmt.Errorf("vpath: segment %d has index %d", i, seg.index)
		}
		if seg.selection != SelectionNone {
			count++
		}
	}
	if count != p.selectedSegmentCount {
		return fmt.Errorf("vpath: selected segment count %d, expected %d", p.selectedSegmentCount, count)
	}

	if p.curves != nil {
		if len(p.curves) != p.countCurves() {
			return fmt.Errorf("vpath: %d curves for %d segments", len(p.curves), len(p.segments))
		}
		n := len(p.segments)
		for i, c := range p.curves {
			if c.path != p || c.segment1 != p.segments[i] || c.segment2 != p.segments[(i+1)%n] {
				return fmt.Errorf("vpath: curve %d does not connect segments %d and %d", i, i, (i+1)%n)
			}
		}
	}
	return nil
}

// Transform applies an affine transformation to all segments.
func (p *Path) Transform(m Matrix) {
	for _, seg := range p.segments {
		seg.point = m.Dot(seg.point)
		seg.handleIn = m.DotVector(seg.handleIn)
		seg.handleOut = m.DotVector(seg.handleOut)
	}
	p.changed(geometryChanged)
}

// Translate moves the path by (x,y).
func (p *Path) Translate(x, y float64) {
	p.Transform(Identity.Translate(x, y))
}

// Position returns the center of the bounds.
func (p *Path) Position() Point {
	if !p.positionValid {
		bounds, _ := p.Bounds()
		p.position = bounds.Center()
		p.positionValid = true
	}
	return p.position
}

func (p *Path) String() string {
	return p.ToSVG()
}
