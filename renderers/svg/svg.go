package svg

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
	"github.com/tdewolff/vpath"
)

// Options are the options of the SVG renderer.
type Options struct {
	// Minify runs the document through the SVG minifier on Flush.
	Minify bool
}

// DefaultOptions are the options used when none are given.
var DefaultOptions = Options{}

// SVG is a scalable vector graphics renderer. Elements are buffered and written on Flush.
type SVG struct {
	w             io.Writer
	buf           *bytes.Buffer
	width, height float64
	opts          *Options

	d      strings.Builder // geometry of the current path
	fill   string          // pending fill attributes of the current path
	filled bool
	clipID int
	groups int
}

// New returns a scalable vector graphics (SVG) renderer with a view box of the given size.
func New(w io.Writer, width, height float64, opts *Options) *SVG {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, dec(width), dec(height), dec(width), dec(height))
	return &SVG{
		w:      w,
		buf:    buf,
		width:  width,
		height: height,
		opts:   opts,
	}
}

// Size returns the size of the view box.
func (r *SVG) Size() (float64, float64) {
	return r.width, r.height
}

// Flush finishes the document and writes it to the writer.
func (r *SVG) Flush() error {
	r.flushFill()
	for ; 0 < r.groups; r.groups-- {
		r.buf.WriteString("</g>")
	}
	r.buf.WriteString("</svg>")

	if r.opts.Minify {
		m := minify.New()
		m.AddFunc("image/svg+xml", minifySVG.Minify)
		if err := m.Minify("image/svg+xml", r.w, r.buf); err != nil {
			return fmt.Errorf("svg: minify: %w", err)
		}
		return nil
	}
	_, err := r.buf.WriteTo(r.w)
	return err
}

// BeginPath discards the accumulated geometry.
func (r *SVG) BeginPath() {
	r.flushFill()
	r.d.Reset()
}

// MoveTo starts a new subpath.
func (r *SVG) MoveTo(x, y float64) {
	fmt.Fprintf(&r.d, "M%v %v", num(x), num(y))
}

// LineTo adds a line to the current subpath.
func (r *SVG) LineTo(x, y float64) {
	fmt.Fprintf(&r.d, "L%v %v", num(x), num(y))
}

// CubeTo adds a cubic Bezier to the current subpath.
func (r *SVG) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	fmt.Fprintf(&r.d, "C%v %v %v %v %v %v", num(cpx1), num(cpy1), num(cpx2), num(cpy2), num(x), num(y))
}

// Close closes the current subpath.
func (r *SVG) Close() {
	r.d.WriteString("z")
}

// Fill writes the geometry as a filled path. A stroke of the same geometry that follows is merged into the same element.
func (r *SVG) Fill(style vpath.Style) {
	r.flushFill()
	if !style.HasFill() || r.d.Len() == 0 {
		return
	}
	b := &strings.Builder{}
	hex, opacity := hexColor(style.FillColor)
	if hex != "#000000" {
		fmt.Fprintf(b, ` fill="%s"`, hex)
	}
	if opacity != 1.0 {
		fmt.Fprintf(b, ` fill-opacity="%v"`, dec(opacity))
	}
	r.fill = b.String()
	r.filled = true
}

// Stroke writes the geometry as a stroked path.
func (r *SVG) Stroke(style vpath.Style) {
	if !style.HasStroke() || r.d.Len() == 0 {
		r.flushFill()
		return
	}
	b := &strings.Builder{}
	if r.filled {
		b.WriteString(r.fill)
	} else {
		b.WriteString(` fill="none"`)
	}
	r.filled = false

	hex, opacity := hexColor(style.StrokeColor)
	fmt.Fprintf(b, ` stroke="%s"`, hex)
	if opacity != 1.0 {
		fmt.Fprintf(b, ` stroke-opacity="%v"`, dec(opacity))
	}
	if style.StrokeWidth != 1.0 {
		fmt.Fprintf(b, ` stroke-width="%v"`, dec(style.StrokeWidth))
	}
	if style.StrokeCap != vpath.ButtCap {
		fmt.Fprintf(b, ` stroke-linecap="%v"`, style.StrokeCap)
	}
	if style.StrokeJoin != vpath.MiterJoin {
		fmt.Fprintf(b, ` stroke-linejoin="%v"`, style.StrokeJoin)
	} else if style.MiterLimit != 4.0 {
		fmt.Fprintf(b, ` stroke-miterlimit="%v"`, dec(style.MiterLimit))
	}
	r.writePath(b.String())
}

// Clip opens a group that is clipped by the geometry, it is closed on Flush.
func (r *SVG) Clip() {
	r.flushFill()
	r.clipID++
	fmt.Fprintf(r.buf, `<clipPath id="clip%d"><path d="%s"/></clipPath><g clip-path="url(#clip%d)">`, r.clipID, r.d.String(), r.clipID)
	r.groups++
}

func (r *SVG) flushFill() {
	if r.filled {
		r.filled = false
		r.writePath(r.fill)
	}
}

func (r *SVG) writePath(attrs string) {
	fmt.Fprintf(r.buf, `<path d="%s"%s/>`, r.d.String(), attrs)
}
