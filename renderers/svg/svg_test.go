package svg

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/tdewolff/test"
	"github.com/tdewolff/vpath"
)

const header = `<svg version="1.1" width="20" height="20" viewBox="0 0 20 20" xmlns="http://www.w3.org/2000/svg">`

func render(opts *Options, fn func(r *SVG)) string {
	buf := &bytes.Buffer{}
	r := New(buf, 20.0, 20.0, opts)
	fn(r)
	if err := r.Flush(); err != nil {
		panic(err)
	}
	return buf.String()
}

func TestSVGFill(t *testing.T) {
	p := vpath.Rectangle(0.0, 0.0, 10.0, 10.0)
	p.SetFillColor(color.RGBA{255, 0, 0, 255})
	out := render(nil, func(r *SVG) { p.Draw(r) })
	test.T(t, out, header+`<path d="M0 0L10 0L10 10L0 10z" fill="#ff0000"/></svg>`)
}

func TestSVGStroke(t *testing.T) {
	p := vpath.Line(0.0, 0.0, 10.0, 0.0)
	p.SetStrokeColor(color.Black)
	p.SetStrokeWidth(2.0)
	p.SetStrokeCap(vpath.RoundCap)
	out := render(nil, func(r *SVG) { p.Draw(r) })
	test.T(t, out, header+`<path d="M0 0L10 0" fill="none" stroke="#000000" stroke-width="2" stroke-linecap="round" stroke-miterlimit="10"/></svg>`)

	p.SetStrokeJoin(vpath.BevelJoin)
	out = render(nil, func(r *SVG) { p.Draw(r) })
	test.That(t, strings.Contains(out, `stroke-linejoin="bevel"`), out)
	test.That(t, !strings.Contains(out, `stroke-miterlimit`), out)
}

func TestSVGFillAndStroke(t *testing.T) {
	p := vpath.Rectangle(0.0, 0.0, 10.0, 10.0)
	p.SetFillColor(color.RGBA{255, 0, 0, 255})
	p.SetStrokeColor(color.NRGBA{0, 0, 255, 128})
	out := render(nil, func(r *SVG) { p.Draw(r) })
	test.That(t, strings.HasPrefix(out, header+`<path d="M0 0L10 0L10 10L0 10z" fill="#ff0000" stroke="#0000ff" stroke-opacity="`), out)
	test.T(t, strings.Count(out, "<path"), 1)
}

func TestSVGDashes(t *testing.T) {
	p := vpath.Line(0.0, 0.0, 10.0, 0.0)
	p.SetStrokeColor(color.Black)
	p.SetDashes(0.0, 2.0, 3.0)
	out := render(nil, func(r *SVG) { p.Draw(r) })
	test.T(t, out, header+`<path d="M0 0L2 0M5 0L7 0" fill="none" stroke="#000000" stroke-miterlimit="10"/></svg>`)
}

func TestSVGClip(t *testing.T) {
	p := vpath.Rectangle(0.0, 0.0, 10.0, 10.0)
	p.SetFillColor(color.Black)
	out := render(nil, func(r *SVG) {
		vpath.Rectangle(0.0, 0.0, 5.0, 5.0).Clip(r)
		p.Draw(r)
	})
	test.T(t, out, header+`<clipPath id="clip1"><path d="M0 0L5 0L5 5L0 5z"/></clipPath><g clip-path="url(#clip1)"><path d="M0 0L10 0L10 10L0 10z"/></g></svg>`)
}

func TestSVGMinify(t *testing.T) {
	p := vpath.Circle(10.0, 10.0, 5.0)
	p.SetFillColor(color.RGBA{255, 0, 0, 255})
	full := render(nil, func(r *SVG) { p.Draw(r) })
	min := render(&Options{Minify: true}, func(r *SVG) { p.Draw(r) })
	test.That(t, len(min) < len(full), min)
	test.That(t, strings.Contains(min, "<path"), min)
}

func TestNum(t *testing.T) {
	test.T(t, num(1.0).String(), "1")
	test.T(t, num(0.5).String(), ".5")
	test.T(t, num(-2.25).String(), "-2.25")
	test.T(t, dec(20.0).String(), "20")
}
