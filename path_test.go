package vpath

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

func TestPathEmpty(t *testing.T) {
	p := NewPath()
	test.That(t, p.Empty())
	test.T(t, p.Len(), 0)
	test.That(t, p.FirstSegment() == nil)
	test.That(t, p.LastSegment() == nil)
	test.That(t, p.FirstCurve() == nil)
	test.T(t, len(p.Curves()), 0)
	test.T(t, p.String(), "")

	p.MoveTo(5.0, 2.0)
	test.That(t, !p.Empty())
	test.T(t, len(p.Curves()), 0)

	p.MoveTo(6.0, 2.0) // ignored
	test.T(t, p.Len(), 1)
	test.T(t, p.FirstSegment().Point(), Point{5.0, 2.0})
}

func TestPathCurveCount(t *testing.T) {
	var tts = []struct {
		n      int
		closed bool
		curves int
	}{
		{0, false, 0},
		{1, false, 0},
		{1, true, 0},
		{2, false, 1},
		{2, true, 2},
		{5, false, 4},
		{5, true, 5},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p := RandomPath(tt.n, tt.closed)
			test.T(t, len(p.Curves()), tt.curves)
			test.Error(t, p.Validate())
		})
	}
}

func TestPathAdd(t *testing.T) {
	p := NewPath(NewSegmentAt(0.0, 0.0), NewSegmentAt(10.0, 0.0))
	test.T(t, p.Segment(1).Index(), 1)
	test.That(t, p.Segment(1).Path() == p)

	// segments of another path are cloned
	seg := p.Segment(1)
	q := NewPath()
	added := q.Add(seg)
	test.That(t, added[0] != seg)
	test.That(t, seg.Path() == p)
	test.That(t, added[0].Path() == q)
	test.T(t, added[0].Point(), seg.Point())

	test.T(t, NewSegmentAt(1.0, 1.0).Index(), -1)
	test.That(t, p.Add() == nil)
}

func TestPathInsertKeepsCurves(t *testing.T) {
	p := MustParseSVG("M0 0L10 0L20 0L30 0")
	curves := append([]*Curve{}, p.Curves()...)
	test.T(t, len(curves), 3)

	p.Insert(2, NewSegmentAt(15.0, 5.0))
	test.Error(t, p.Validate())
	test.T(t, len(p.Curves()), 4)
	test.That(t, p.Curves()[0] == curves[0], "untouched curve must be kept")
	test.That(t, p.Curves()[3] == curves[2], "untouched curve must be kept")
	test.T(t, p.Curves()[3].Index(), 3)
	test.T(t, p.Curves()[1].Segment2().Point(), Point{15.0, 5.0})
	test.T(t, p.String(), "M0 0L10 0L15 5L20 0L30 0")

	p.Insert(0, NewSegmentAt(-10.0, 0.0))
	test.Error(t, p.Validate())
	test.That(t, p.Curves()[1] == curves[0])

	p.Add(NewSegmentAt(40.0, 0.0), NewSegmentAt(50.0, 0.0))
	test.Error(t, p.Validate())
	test.T(t, len(p.Curves()), 7)
}

func TestPathInsertClosed(t *testing.T) {
	p := MustParseSVG("M0 0L10 0L10 10z")
	test.T(t, len(p.Curves()), 3)

	p.Add(NewSegmentAt(0.0, 10.0))
	test.Error(t, p.Validate())
	test.T(t, len(p.Curves()), 4)
	test.T(t, p.LastCurve().Segment1().Point(), Point{0.0, 10.0})
	test.T(t, p.LastCurve().Segment2().Point(), Point{0.0, 0.0})

	p.Insert(0, NewSegmentAt(-5.0, 5.0))
	test.Error(t, p.Validate())
	test.T(t, p.LastCurve().Segment2().Point(), Point{-5.0, 5.0})
}

func TestPathRemove(t *testing.T) {
	p := MustParseSVG("M0 0L10 0L20 0L30 0")
	p.Curves()
	seg := p.RemoveSegment(1)
	test.T(t, seg.Point(), Point{10.0, 0.0})
	test.That(t, seg.Path() == nil)
	test.T(t, seg.Index(), -1)
	test.Error(t, p.Validate())
	test.T(t, p.String(), "M0 0L20 0L30 0")

	test.That(t, p.LastSegment().Remove())
	test.Error(t, p.Validate())
	test.T(t, p.String(), "M0 0L20 0")
	test.That(t, !seg.Remove())

	removed := p.Clear()
	test.T(t, len(removed), 2)
	test.That(t, p.Empty())
	test.Error(t, p.Validate())
	test.That(t, p.RemoveSegments(0, 0) == nil)

	q := MustParseSVG("M0 0L10 0L10 10L0 10z")
	q.Curves()
	q.RemoveSegments(1, 3)
	test.Error(t, q.Validate())
	test.T(t, len(q.Curves()), 2)
	test.T(t, q.String(), "M0 0L0 10z")
}

func TestPathIndexPanics(t *testing.T) {
	p := Line(0.0, 0.0, 1.0, 1.0)
	panics := func(f func()) (ok bool) {
		defer func() { ok = recover() != nil }()
		f()
		return false
	}
	test.That(t, panics(func() { p.Insert(3, NewSegmentAt(0.0, 0.0)) }))
	test.That(t, panics(func() { p.Insert(-1, NewSegmentAt(0.0, 0.0)) }))
	test.That(t, panics(func() { p.RemoveSegments(1, 0) }))
	test.That(t, panics(func() { p.RemoveSegment(2) }))
	test.T(t, p.Len(), 2)
}

func TestPathRandomEdits(t *testing.T) {
	for i := 0; i < 20; i++ {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p := RandomPath(1+rand.IntN(6), i%2 == 0)
			p.Curves()
			for j := 0; j < 50; j++ {
				if rand.IntN(2) == 0 || p.Len() == 0 {
					p.Insert(rand.IntN(p.Len()+1), NewSegmentAt(rand.NormFloat64(), rand.NormFloat64()))
				} else {
					from := rand.IntN(p.Len())
					p.RemoveSegments(from, from+1+rand.IntN(p.Len()-from))
				}
				test.Error(t, p.Validate())
				test.T(t, len(p.Curves()), p.countCurves())
			}
		})
	}
}

func TestPathSetClosed(t *testing.T) {
	p := MustParseSVG("M0 0L10 0L10 10")
	test.T(t, len(p.Curves()), 2)
	length := p.Length()

	p.SetClosed(true)
	test.T(t, len(p.Curves()), 3)
	test.Float(t, p.Length(), length+10.0*math.Sqrt2)
	test.Error(t, p.Validate())

	p.SetClosed(false)
	test.T(t, len(p.Curves()), 2)
	test.Float(t, p.Length(), length)
}

func TestSegmentNavigation(t *testing.T) {
	p := MustParseSVG("M0 0L10 0L10 10")
	s0, s1, s2 := p.Segment(0), p.Segment(1), p.Segment(2)
	test.That(t, s0.Next() == s1)
	test.That(t, s2.Next() == nil)
	test.That(t, s0.Previous() == nil)
	test.That(t, s0.Curve() == p.Curves()[0])
	test.That(t, s2.Curve() == nil)

	p.ClosePath()
	test.That(t, s2.Next() == s0)
	test.That(t, s0.Previous() == s2)
	test.That(t, s2.Curve() == p.LastCurve())
	test.That(t, p.FirstCurve().Previous() == p.LastCurve())
	test.That(t, p.LastCurve().Next() == p.FirstCurve())

	seg := NewSegmentAt(0.0, 0.0)
	test.That(t, seg.Next() == nil && seg.Previous() == nil && seg.Curve() == nil)
}

type selectionRecorder struct {
	events []bool
}

func (r *selectionRecorder) SelectionChanged(p *Path, selected bool) {
	r.events = append(r.events, selected)
}

func TestPathSelection(t *testing.T) {
	rec := &selectionRecorder{}
	p := MustParseSVG("M0 0L10 0L10 10")
	p.SetSelectionNotifier(rec)

	p.Segment(0).SetSelected(true)
	p.Segment(1).SetSelection(SelectedHandleIn)
	test.T(t, p.SelectedSegmentCount(), 2)
	test.That(t, p.Segment(0).IsSelected())
	test.That(t, !p.Segment(1).IsSelected())
	test.That(t, !p.IsFullySelected())
	test.T(t, rec.events, []bool{true})

	p.Segment(1).SetSelected(true)
	test.T(t, p.Segment(1).Selection(), SelectedPoint|SelectedHandleIn)
	test.T(t, p.Segment(1).Selection().String(), "Point|HandleIn")
	test.T(t, p.SelectedSegmentCount(), 2)

	// removing and inserting selected segments updates the count
	seg := p.RemoveSegment(0)
	test.T(t, p.SelectedSegmentCount(), 1)
	p.Insert(0, seg)
	test.T(t, p.SelectedSegmentCount(), 2)
	test.Error(t, p.Validate())

	p.SetFullySelected(true)
	test.That(t, p.IsFullySelected())
	test.T(t, p.SelectedSegmentCount(), 3)

	p.SetFullySelected(false)
	test.T(t, p.SelectedSegmentCount(), 0)
	test.T(t, SelectionNone.String(), "None")
	test.T(t, rec.events, []bool{true, false})
	test.Error(t, p.Validate())
}

func TestPathCopy(t *testing.T) {
	p := MustParseSVG("M0 0C0 10 10 10 10 0z")
	p.SetStrokeWidth(3.0)
	p.Segment(0).SetSelected(true)

	q := p.Copy()
	test.T(t, q.String(), p.String())
	test.That(t, q.Closed())
	test.T(t, q.Style().StrokeWidth, 3.0)
	test.T(t, q.SelectedSegmentCount(), 1)
	test.That(t, q.Segment(0) != p.Segment(0))
	test.Error(t, q.Validate())

	q.Segment(0).SetPoint(Point{5.0, 5.0})
	test.T(t, p.Segment(0).Point(), Point{0.0, 0.0})
}

func TestPathTransform(t *testing.T) {
	p := MustParseSVG("M0 0C0 10 10 10 10 0")
	p.Transform(Identity.Translate(5.0, 0.0).Scale(2.0, 1.0))
	test.T(t, p.String(), "M5 0C5 10 25 10 25 0")
	test.T(t, p.Segment(0).HandleOut(), Point{0.0, 10.0})

	p.Translate(0.0, -5.0)
	test.T(t, p.String(), "M5 -5C5 5 25 5 25 -5")
	test.T(t, p.Position(), Point{15.0, -5.0 + 7.5/2.0})

	seg := NewSegment(Point{1.0, 1.0}, Point{-1.0, 0.0}, Point{1.0, 0.0})
	seg.Transform(Identity.Rotate(90.0))
	test.T(t, seg.Point(), Point{-1.0, 1.0})
	test.T(t, seg.HandleIn(), Point{0.0, -1.0})
	test.T(t, seg.HandleOut(), Point{0.0, 1.0})
}

func TestPathCaches(t *testing.T) {
	p := Line(0.0, 0.0, 10.0, 0.0)
	test.T(t, p.Length(), 10.0)
	bounds, _ := p.Bounds()
	test.T(t, bounds, Rect{0.0, 0.0, 10.0, 0.0})

	p.Segment(1).SetPoint(Point{20.0, 0.0})
	test.T(t, p.Length(), 20.0)
	bounds, _ = p.Bounds()
	test.T(t, bounds, Rect{0.0, 0.0, 20.0, 0.0})
	test.T(t, p.Position(), Point{10.0, 0.0})

	p.Segment(1).SetHandleIn(Point{0.0, 10.0})
	bounds, _ = p.Bounds()
	test.That(t, 0.0 < bounds.Y1)
	test.That(t, 20.0 < p.Length())

	p.Segment(1).ClearHandles()
	test.T(t, p.Length(), 20.0)
	test.That(t, !p.Segment(1).HasHandles())
}

func TestSegmentString(t *testing.T) {
	test.T(t, NewSegmentAt(1.0, 2.0).String(), "{point: (1,2)}")
	test.T(t, NewSegment(Point{1.0, 2.0}, Point{-1.0, 0.0}, Point{}).String(), "{point: (1,2), handleIn: (-1,0), handleOut: (0,0)}")

	seg := NewSegment(Point{}, Point{1.0, 0.0}, Point{0.0, 1.0})
	seg.Reverse()
	test.T(t, seg.HandleIn(), Point{0.0, 1.0})
	test.T(t, seg.HandleOut(), Point{1.0, 0.0})
}
