package gonumplot

import (
	"github.com/tdewolff/vpath"
	"gonum.org/v1/plot/vg"
)

// GonumPlot is a renderer that draws paths on a gonum.org/v1/plot/vg canvas. Stroke joins and caps are left to the canvas, which has no means to set them.
type GonumPlot struct {
	c       vg.Canvas
	m       vpath.Matrix
	path    vg.Path
	clipped bool
}

// New returns a renderer that draws on c, geometry is transformed by the view matrix m into canvas coordinates.
func New(c vg.Canvas, m vpath.Matrix) *GonumPlot {
	return &GonumPlot{
		c: c,
		m: m,
	}
}

func (r *GonumPlot) point(x, y float64) vg.Point {
	p := r.m.Dot(vpath.Pt(x, y))
	return vg.Point{X: vg.Length(p.X), Y: vg.Length(p.Y)}
}

// BeginPath discards the accumulated geometry.
func (r *GonumPlot) BeginPath() {
	r.path = vg.Path{}
}

// MoveTo starts a new subpath.
func (r *GonumPlot) MoveTo(x, y float64) {
	r.path.Move(r.point(x, y))
}

// LineTo adds a line to the current subpath.
func (r *GonumPlot) LineTo(x, y float64) {
	r.path.Line(r.point(x, y))
}

// CubeTo adds a cubic Bezier to the current subpath.
func (r *GonumPlot) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	r.path.CubeTo(r.point(cpx1, cpy1), r.point(cpx2, cpy2), r.point(x, y))
}

// Close closes the current subpath.
func (r *GonumPlot) Close() {
	r.path.Close()
}

// Fill fills the accumulated geometry with the fill color.
func (r *GonumPlot) Fill(style vpath.Style) {
	if !style.HasFill() || len(r.path) == 0 {
		return
	}
	r.c.SetColor(style.FillColor)
	r.c.Fill(r.path)
}

// Stroke strokes the accumulated geometry with the stroke color and width. Dashes are expected to be applied to the geometry already.
func (r *GonumPlot) Stroke(style vpath.Style) {
	if !style.HasStroke() || len(r.path) == 0 {
		return
	}
	r.c.SetColor(style.StrokeColor)
	r.c.SetLineWidth(vg.Length(style.StrokeWidth))
	r.c.SetLineDash(nil, 0)
	r.c.Stroke(r.path)
}

// Clip is not supported by vg.Canvas and is ignored.
func (r *GonumPlot) Clip() {
	if !r.clipped {
		vpath.Logger().Warn("gonumplot: clipping is not supported, ignoring clip path")
		r.clipped = true
	}
}
