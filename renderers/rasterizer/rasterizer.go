package rasterizer

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"github.com/tdewolff/vpath"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

type command struct {
	op  byte // 'M', 'L', 'C' or 'z'
	pts [3]vpath.Point
}

// Rasterizer is a renderer that paints paths on an image. Fills are rasterized with golang.org/x/image/vector and strokes with rasterx, both as coverage masks that are composited onto the image.
type Rasterizer struct {
	img  draw.Image
	m    vpath.Matrix
	cmds []command
	clip *image.Alpha
}

// New returns a renderer that draws to img, geometry is transformed by the view matrix m into pixel coordinates relative to the top-left of the image.
func New(img draw.Image, m vpath.Matrix) *Rasterizer {
	return &Rasterizer{
		img: img,
		m:   m,
	}
}

// Draw draws the paths on a new image of the given size, filled with background first unless it is nil.
func Draw(width, height int, m vpath.Matrix, background color.Color, paths ...*vpath.Path) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}
	r := New(img, m)
	for _, p := range paths {
		p.Draw(r)
	}
	return img
}

// Image returns the destination image.
func (r *Rasterizer) Image() draw.Image {
	return r.img
}

func (r *Rasterizer) size() image.Point {
	return r.img.Bounds().Size()
}

// BeginPath discards the accumulated geometry.
func (r *Rasterizer) BeginPath() {
	r.cmds = r.cmds[:0]
}

// MoveTo starts a new subpath.
func (r *Rasterizer) MoveTo(x, y float64) {
	r.cmds = append(r.cmds, command{op: 'M', pts: [3]vpath.Point{r.m.Dot(vpath.Pt(x, y))}})
}

// LineTo adds a line to the current subpath.
func (r *Rasterizer) LineTo(x, y float64) {
	r.cmds = append(r.cmds, command{op: 'L', pts: [3]vpath.Point{r.m.Dot(vpath.Pt(x, y))}})
}

// CubeTo adds a cubic Bezier to the current subpath.
func (r *Rasterizer) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	r.cmds = append(r.cmds, command{op: 'C', pts: [3]vpath.Point{
		r.m.Dot(vpath.Pt(cpx1, cpy1)),
		r.m.Dot(vpath.Pt(cpx2, cpy2)),
		r.m.Dot(vpath.Pt(x, y)),
	}})
}

// Close closes the current subpath.
func (r *Rasterizer) Close() {
	r.cmds = append(r.cmds, command{op: 'z'})
}

// Fill paints the interior of the accumulated geometry with the fill color, open subpaths are closed implicitly.
func (r *Rasterizer) Fill(style vpath.Style) {
	if !style.HasFill() || len(r.cmds) == 0 {
		return
	}
	r.paint(r.fillMask(), style.FillColor)
}

// Stroke paints the outline of the accumulated geometry with the stroke color. Dashes are expected to be applied to the geometry already.
func (r *Rasterizer) Stroke(style vpath.Style) {
	if !style.HasStroke() || len(r.cmds) == 0 {
		return
	}
	r.paint(r.strokeMask(style), style.StrokeColor)
}

// Clip intersects the clipping region with the interior of the accumulated geometry.
func (r *Rasterizer) Clip() {
	mask := r.fillMask()
	if r.clip == nil {
		r.clip = mask
	} else {
		intersectMask(r.clip, mask)
	}
}

// ResetClip removes the clipping region.
func (r *Rasterizer) ResetClip() {
	r.clip = nil
}

func (r *Rasterizer) fillMask() *image.Alpha {
	size := r.size()
	ras := vector.NewRasterizer(size.X, size.Y)
	open := false
	for _, cmd := range r.cmds {
		switch cmd.op {
		case 'M':
			if open {
				ras.ClosePath()
			}
			ras.MoveTo(float32(cmd.pts[0].X), float32(cmd.pts[0].Y))
			open = true
		case 'L':
			ras.LineTo(float32(cmd.pts[0].X), float32(cmd.pts[0].Y))
		case 'C':
			ras.CubeTo(float32(cmd.pts[0].X), float32(cmd.pts[0].Y), float32(cmd.pts[1].X), float32(cmd.pts[1].Y), float32(cmd.pts[2].X), float32(cmd.pts[2].Y))
		case 'z':
			ras.ClosePath()
			open = false
		}
	}
	if open {
		ras.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, size.X, size.Y))
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func (r *Rasterizer) strokeMask(style vpath.Style) *image.Alpha {
	size := r.size()
	mask := image.NewAlpha(image.Rect(0, 0, size.X, size.Y))
	scanner := rasterx.NewScannerGV(size.X, size.Y, mask, mask.Bounds())
	stroker := rasterx.NewStroker(size.X, size.Y, scanner)

	// line widths scale with the mean scale factor of the view
	width := style.StrokeWidth * math.Sqrt(math.Abs(r.m.Det()))
	capper := capFunc(style.StrokeCap)
	stroker.SetStroke(toFixed(width), toFixed(style.MiterLimit), capper, capper, rasterx.RoundGap, joinMode(style.StrokeJoin))

	started := false
	for _, cmd := range r.cmds {
		switch cmd.op {
		case 'M':
			if started {
				stroker.Stop(false)
			}
			stroker.Start(toFixedPoint(cmd.pts[0]))
			started = true
		case 'L':
			stroker.Line(toFixedPoint(cmd.pts[0]))
		case 'C':
			stroker.CubeBezier(toFixedPoint(cmd.pts[0]), toFixedPoint(cmd.pts[1]), toFixedPoint(cmd.pts[2]))
		case 'z':
			stroker.Stop(true)
			started = false
		}
	}
	if started {
		stroker.Stop(false)
	}

	stroker.SetColor(color.Opaque)
	stroker.Draw()
	vpath.Logger().Debug("stroked path", "width", width, "join", style.StrokeJoin, "cap", style.StrokeCap)
	return mask
}

func (r *Rasterizer) paint(mask *image.Alpha, c color.Color) {
	if r.clip != nil {
		intersectMask(mask, r.clip)
	}
	bounds := r.img.Bounds()
	draw.DrawMask(r.img, bounds, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

func capFunc(c vpath.CapStyle) rasterx.CapFunc {
	switch c {
	case vpath.RoundCap:
		return rasterx.RoundCap
	case vpath.SquareCap:
		return rasterx.SquareCap
	}
	return rasterx.ButtCap
}

func joinMode(j vpath.JoinStyle) rasterx.JoinMode {
	switch j {
	case vpath.RoundJoin:
		return rasterx.Round
	case vpath.BevelJoin:
		return rasterx.Bevel
	}
	return rasterx.Miter
}

func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64.0))
}

func toFixedPoint(p vpath.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}
