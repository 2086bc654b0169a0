package vpath

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

// ErrMultipleSubpaths is returned when SVG path data contains more than one subpath.
var ErrMultipleSubpaths = errors.New("vpath: multiple subpaths are not supported")

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// MustParseSVG parses an SVG path data string into a path and panics if it fails.
func MustParseSVG(s string) *Path {
	p, err := ParseSVG(s)
	if err != nil {
		panic(err)
	}
	return p
}

type pathParser struct {
	path []byte
	i    int
}

func (pp *pathParser) num() (float64, error) {
	pp.i += skipCommaWhitespace(pp.path[pp.i:])
	f, n := strconv.ParseFloat(pp.path[pp.i:])
	if n == 0 {
		return 0.0, fmt.Errorf("vpath: bad number at position %d", pp.i)
	}
	pp.i += n
	return f, nil
}

func (pp *pathParser) flag() (bool, error) {
	pp.i += skipCommaWhitespace(pp.path[pp.i:])
	if pp.i < len(pp.path) && (pp.path[pp.i] == '0' || pp.path[pp.i] == '1') {
		pp.i++
		return pp.path[pp.i-1] == '1', nil
	}
	return false, fmt.Errorf("vpath: bad flag at position %d", pp.i)
}

func (pp *pathParser) nums(fs ...*float64) error {
	for _, f := range fs {
		var err error
		if *f, err = pp.num(); err != nil {
			return err
		}
	}
	return nil
}

// ParseSVG parses an SVG path data string of a single subpath into a path. Quadratic Beziers and elliptical arcs are converted to cubic Beziers.
func ParseSVG(s string) (*Path, error) {
	pp := &pathParser{path: []byte(s)}
	p := &Path{style: DefaultStyle}

	var prevCmd byte
	var cp Point // reflected control point for S and T
	var cur Point
	for {
		pp.i += skipCommaWhitespace(pp.path[pp.i:])
		if len(pp.path) <= pp.i {
			break
		}

		cmd := prevCmd
		if c := pp.path[pp.i]; 'A' <= c && c != 'e' && c != 'E' {
			cmd = c
			pp.i++
		} else if prevCmd == 0 {
			return nil, fmt.Errorf("vpath: path must start with a command at position %d", pp.i)
		}
		rel := 'a' <= cmd
		if 0 < len(p.segments) {
			cur = p.LastSegment().point
		}
		var origin Point
		if rel {
			origin = cur
		}

		if p.closed && cmd != 'Z' && cmd != 'z' {
			return nil, ErrMultipleSubpaths
		}

		var err error
		switch cmd {
		case 'M', 'm':
			var x, y float64
			if err = pp.nums(&x, &y); err != nil {
				return nil, err
			}
			if 0 < len(p.segments) && prevCmd != 0 {
				return nil, ErrMultipleSubpaths
			}
			p.MoveTo(origin.X+x, origin.Y+y)
			cmd = cmd - 'M' + 'L' // subsequent pairs are lines
		case 'Z', 'z':
			if 0 < len(p.segments) {
				first, last := p.FirstSegment(), p.LastSegment()
				if 1 < len(p.segments) && first.point.Equals(last.point) {
					first.SetHandleIn(last.handleIn)
					p.RemoveSegment(len(p.segments) - 1)
				}
			}
			p.ClosePath()
		case 'L', 'l':
			var x, y float64
			if err = pp.nums(&x, &y); err != nil {
				return nil, err
			}
			p.LineTo(origin.X+x, origin.Y+y)
		case 'H', 'h':
			var x float64
			if err = pp.nums(&x); err != nil {
				return nil, err
			}
			if !rel {
				origin.X = 0.0
			}
			p.LineTo(origin.X+x, cur.Y)
		case 'V', 'v':
			var y float64
			if err = pp.nums(&y); err != nil {
				return nil, err
			}
			if !rel {
				origin.Y = 0.0
			}
			p.LineTo(cur.X, origin.Y+y)
		case 'C', 'c':
			var x1, y1, x2, y2, x, y float64
			if err = pp.nums(&x1, &y1, &x2, &y2, &x, &y); err != nil {
				return nil, err
			}
			cp = Point{origin.X + x2, origin.Y + y2}
			err = p.CubicCurveTo(origin.X+x1, origin.Y+y1, cp.X, cp.Y, origin.X+x, origin.Y+y)
		case 'S', 's':
			var x2, y2, x, y float64
			if err = pp.nums(&x2, &y2, &x, &y); err != nil {
				return nil, err
			}
			c1 := cur
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				c1 = cur.Mul(2.0).Sub(cp)
			}
			cp = Point{origin.X + x2, origin.Y + y2}
			err = p.CubicCurveTo(c1.X, c1.Y, cp.X, cp.Y, origin.X+x, origin.Y+y)
		case 'Q', 'q':
			var x1, y1, x, y float64
			if err = pp.nums(&x1, &y1, &x, &y); err != nil {
				return nil, err
			}
			cp = Point{origin.X + x1, origin.Y + y1}
			err = p.QuadraticCurveTo(cp.X, cp.Y, origin.X+x, origin.Y+y)
		case 'T', 't':
			var x, y float64
			if err = pp.nums(&x, &y); err != nil {
				return nil, err
			}
			c := cur
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				c = cur.Mul(2.0).Sub(cp)
			}
			cp = c
			err = p.QuadraticCurveTo(cp.X, cp.Y, origin.X+x, origin.Y+y)
		case 'A', 'a':
			var rx, ry, rot, x, y float64
			var large, sweep bool
			if err = pp.nums(&rx, &ry, &rot); err != nil {
				return nil, err
			} else if large, err = pp.flag(); err != nil {
				return nil, err
			} else if sweep, err = pp.flag(); err != nil {
				return nil, err
			} else if err = pp.nums(&x, &y); err != nil {
				return nil, err
			}
			err = p.ellipticalArcTo(rx, ry, rot, large, sweep, origin.X+x, origin.Y+y)
		default:
			return nil, fmt.Errorf("vpath: unknown command '%c' at position %d", cmd, pp.i-1)
		}
		if err != nil {
			return nil, fmt.Errorf("command '%c': %w", cmd, err)
		}
		prevCmd = cmd
	}
	return p, nil
}

// ellipticalArcTo adds an SVG elliptical arc to (x,y) as cubic Beziers, rot is in degrees.
func (p *Path) ellipticalArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) error {
	cur, err := p.currentSegment()
	if err != nil {
		return err
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if equal(rx, 0.0) || equal(ry, 0.0) || cur.point.Equals(Point{x, y}) {
		p.LineTo(x, y)
		return nil
	}

	phi := rot * math.Pi / 180.0
	cx, cy, rx, ry, theta0, theta1 := arcToCenter(cur.point.X, cur.point.Y, rx, ry, phi, large, sweep, x, y)
	beziers := ellipseToCubicBeziers(cx, cy, rx, ry, phi, theta0, theta1)
	for i, b := range beziers {
		end := b[2]
		if i == len(beziers)-1 {
			end = Point{x, y}
		}
		if err := p.CubicCurveTo(b[0].X, b[0].Y, b[1].X, b[1].Y, end.X, end.Y); err != nil {
			return err
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, float64(f))
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

// ToSVG returns the path as SVG path data, straight curves are written as lines.
func (p *Path) ToSVG() string {
	if len(p.segments) == 0 {
		return ""
	}
	sb := strings.Builder{}
	first := p.segments[0].point
	fmt.Fprintf(&sb, "M%v %v", num(first.X), num(first.Y))
	curves := p.Curves()
	for i, c := range curves {
		if c.IsLinear() {
			if p.closed && i == len(curves)-1 {
				break
			}
			end := c.segment2.point
			fmt.Fprintf(&sb, "L%v %v", num(end.X), num(end.Y))
		} else {
			_, cp1, cp2, end := c.Points()
			fmt.Fprintf(&sb, "C%v %v %v %v %v %v", num(cp1.X), num(cp1.Y), num(cp2.X), num(cp2.Y), num(end.X), num(end.Y))
		}
	}
	if p.closed {
		sb.WriteString("z")
	}
	return sb.String()
}
