// Package orbconv converts between paths and github.com/paulmach/orb geometries. Curves are flattened within a tolerance, orb geometries become paths of straight segments.
package orbconv

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/tdewolff/vpath"
)

func coords(p *vpath.Path, tolerance float64) []orb.Point {
	pl := vpath.PolylineFromPath(p, tolerance, 0)
	pts := make([]orb.Point, 0, pl.Len())
	for _, c := range pl.Coords() {
		pts = append(pts, orb.Point{c.X, c.Y})
	}
	return pts
}

// LineString returns the flattened path as a line string. For closed paths the last point equals the first.
func LineString(p *vpath.Path, tolerance float64) orb.LineString {
	return orb.LineString(coords(p, tolerance))
}

// Ring returns the flattened path as a closed ring, also for open paths. A path that is clockwise in a y-down coordinate system gives a ring with orb.CCW orientation.
func Ring(p *vpath.Path, tolerance float64) orb.Ring {
	pts := coords(p, tolerance)
	if 0 < len(pts) && !pts[0].Equal(pts[len(pts)-1]) {
		pts = append(pts, pts[0])
	}
	return orb.Ring(pts)
}

// Bound returns the geometric bounds of the path.
func Bound(p *vpath.Path) orb.Bound {
	r, _ := p.Bounds()
	return orb.Bound{Min: orb.Point{r.X0, r.Y0}, Max: orb.Point{r.X1, r.Y1}}
}

// FromLineString returns an open path through the points of the line string.
func FromLineString(ls orb.LineString) *vpath.Path {
	p := vpath.NewPath()
	for _, pt := range ls {
		p.LineTo(pt[0], pt[1])
	}
	return p
}

// FromRing returns a closed path through the points of the ring, the closing point is dropped.
func FromRing(r orb.Ring) *vpath.Path {
	if 1 < len(r) && r.Closed() {
		r = r[:len(r)-1]
	}
	p := FromLineString(orb.LineString(r))
	p.ClosePath()
	return p
}

// FromGeometry returns the paths of a line string, ring, polygon or their multi variants. Every ring and line string becomes a separate path.
func FromGeometry(g orb.Geometry) ([]*vpath.Path, error) {
	paths := []*vpath.Path{}
	switch g := g.(type) {
	case orb.LineString:
		if 1 < len(g) {
			paths = append(paths, FromLineString(g))
		}
	case orb.MultiLineString:
		for _, ls := range g {
			if 1 < len(ls) {
				paths = append(paths, FromLineString(ls))
			}
		}
	case orb.Ring:
		if 0 < len(g) {
			paths = append(paths, FromRing(g))
		}
	case orb.Polygon:
		for _, ring := range g {
			if 0 < len(ring) {
				paths = append(paths, FromRing(ring))
			}
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, ring := range poly {
				if 0 < len(ring) {
					paths = append(paths, FromRing(ring))
				}
			}
		}
	default:
		return nil, fmt.Errorf("orbconv: unsupported geometry %s", g.GeoJSONType())
	}
	return paths, nil
}
