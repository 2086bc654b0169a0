package vpath

import (
	"math"
	"sort"
)

// Tolerance is the maximum deviation from the original path when flattening, used for dashing and by the renderers.
var Tolerance = 0.01

// Flattener approximates a path by a polyline.
type Flattener interface {
	Flatten(p *Path, tolerance float64) FlatPath
}

// FlatPath is a flattened path that answers arc length queries and draws parts of itself.
type FlatPath interface {
	Length() float64
	PointAt(offset float64) Point
	TangentAt(offset float64) Point
	DrawPart(r Renderer, from, to float64)
}

// PolylineFlattener flattens paths by recursive subdivision until each part deviates less than the tolerance from its chord.
type PolylineFlattener struct {
	// MaxDepth limits the recursion per curve.
	MaxDepth int
}

// DefaultFlattener is used by paths that have no flattener set.
var DefaultFlattener Flattener = PolylineFlattener{MaxDepth: 16}

// Flattener returns the flattener of the path, or DefaultFlattener.
func (p *Path) Flattener() Flattener {
	if p.flattener == nil {
		return DefaultFlattener
	}
	return p.flattener
}

// SetFlattener sets the flattener used for dashing and resampling, nil restores DefaultFlattener.
func (p *Path) SetFlattener(f Flattener) {
	p.flattener = f
}

// Flatten returns the polyline of the path.
func (f PolylineFlattener) Flatten(p *Path, tolerance float64) FlatPath {
	return PolylineFromPath(p, tolerance, f.MaxDepth)
}

type polylineVertex struct {
	point  Point
	offset float64 // arc length of the polyline up to this vertex
	curve  int
	t      float64
}

// Polyline defines a list of points in 2D space that form a polyline, each point remembers the curve and curve parameter it was sampled at so that positions can be evaluated on the original curves.
type Polyline struct {
	curves   []*Curve
	vertices []polylineVertex
	closed   bool
}

// PolylineFromPath returns a polyline from the given path by approximating it by linear line segments, i.e. by flattening.
func PolylineFromPath(p *Path, tolerance float64, maxDepth int) *Polyline {
	if maxDepth <= 0 {
		maxDepth = 16
	}
	curves := p.Curves()
	pl := &Polyline{
		curves: curves,
		closed: p.closed,
	}
	if len(p.segments) == 0 {
		return pl
	}
	pl.add(p.segments[0].point, 0, 0.0)
	for i, c := range curves {
		p0, p1, p2, p3 := c.Points()
		pl.flattenCurve(i, p0, p1, p2, p3, 0.0, 1.0, tolerance, maxDepth)
	}
	return pl
}

func (pl *Polyline) add(p Point, curve int, t float64) {
	offset := 0.0
	if n := len(pl.vertices); 0 < n {
		offset = pl.vertices[n-1].offset + p.Sub(pl.vertices[n-1].point).Length()
	}
	pl.vertices = append(pl.vertices, polylineVertex{p, offset, curve, t})
}

func (pl *Polyline) flattenCurve(curve int, p0, p1, p2, p3 Point, t0, t1, tolerance float64, depth int) {
	if depth == 0 || cubicBezierIsFlat(p0, p1, p2, p3, tolerance) {
		pl.add(p3, curve, t1)
		return
	}
	q0, q1, q2, q3, r0, r1, r2, r3 := splitCubicBezier(p0, p1, p2, p3, 0.5)
	tm := (t0 + t1) / 2.0
	pl.flattenCurve(curve, q0, q1, q2, q3, t0, tm, tolerance, depth-1)
	pl.flattenCurve(curve, r0, r1, r2, r3, tm, t1, tolerance, depth-1)
}

// Len returns the number of points.
func (pl *Polyline) Len() int {
	return len(pl.vertices)
}

// Coords returns the list of coordinates of the polyline. For closed paths the last point equals the first.
func (pl *Polyline) Coords() []Point {
	coords := make([]Point, len(pl.vertices))
	for i, v := range pl.vertices {
		coords[i] = v.point
	}
	return coords
}

// Closed returns true if the polyline was flattened from a closed path.
func (pl *Polyline) Closed() bool {
	return pl.closed
}

// Length returns the length of the polyline.
func (pl *Polyline) Length() float64 {
	if len(pl.vertices) == 0 {
		return 0.0
	}
	return pl.vertices[len(pl.vertices)-1].offset
}

// Area returns the signed area of the polyline in a y-up coordinate system, ie. positive for counter clockwise.
func (pl *Polyline) Area() float64 {
	area := 0.0
	n := len(pl.vertices)
	for i := 0; i < n; i++ {
		a, b := pl.vertices[i].point, pl.vertices[(i+1)%n].point
		area += a.PerpDot(b)
	}
	return area / 2.0
}

// locate returns the curve and curve parameter at the polyline offset, by interpolating the parameters of the enclosing vertices. It also returns the point on the polyline.
func (pl *Polyline) locate(offset float64) (int, float64, Point, bool) {
	n := len(pl.vertices)
	if n < 2 {
		return 0, 0.0, Point{}, false
	}
	offset = math.Max(0.0, math.Min(offset, pl.Length()))
	i := sort.Search(n, func(i int) bool { return offset <= pl.vertices[i].offset })
	if i == 0 {
		i = 1
	} else if i == n {
		i = n - 1
	}
	v0, v1 := pl.vertices[i-1], pl.vertices[i]
	curve, t0 := v1.curve, v0.t
	if v0.curve != v1.curve {
		t0 = 0.0 // v0 ends the previous curve
	}
	u := 0.0
	if d := v1.offset - v0.offset; Epsilon < d {
		u = (offset - v0.offset) / d
	}
	return curve, t0 + u*(v1.t-t0), v0.point.Interpolate(v1.point, u), true
}

// PointAt returns the point on the original curves at the polyline offset. On straight curves it is the exact point at that distance.
func (pl *Polyline) PointAt(offset float64) Point {
	curve, t, q, ok := pl.locate(offset)
	if !ok {
		if 0 < len(pl.vertices) {
			return pl.vertices[0].point
		}
		return Point{}
	} else if pl.curves[curve].IsLinear() {
		return q
	}
	return pl.curves[curve].PointAt(t)
}

// TangentAt returns the tangent on the original curves at the polyline offset.
func (pl *Polyline) TangentAt(offset float64) Point {
	curve, t, _, ok := pl.locate(offset)
	if !ok {
		return Point{}
	}
	return pl.curves[curve].TangentAt(t)
}

// DrawPart emits the part of the polyline between the offsets from and to as lines.
func (pl *Polyline) DrawPart(r Renderer, from, to float64) {
	if len(pl.vertices) < 2 || to < from {
		return
	}
	start := pl.PointAt(from)
	r.MoveTo(start.X, start.Y)
	for _, v := range pl.vertices {
		if from < v.offset && v.offset < to {
			r.LineTo(v.point.X, v.point.Y)
		}
	}
	end := pl.PointAt(to)
	r.LineTo(end.X, end.Y)
}

// ToPath converts the polyline to a path of straight segments, closed if the polyline was.
func (pl *Polyline) ToPath() *Path {
	p := &Path{style: DefaultStyle}
	coords := pl.Coords()
	if pl.closed && 1 < len(coords) {
		coords = coords[:len(coords)-1]
	}
	for _, c := range coords {
		p.LineTo(c.X, c.Y)
	}
	if pl.closed {
		p.ClosePath()
	}
	return p
}
