package svg

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/vpath"
)

////////////////////////////////////////////////////////////////

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", vpath.Precision, float64(f))
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), vpath.Precision))
}

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", vpath.Precision, float64(f))
	s = string(minify.Decimal([]byte(s), vpath.Precision))
	if dec(math.MaxInt32) < f || f < dec(math.MinInt32) {
		if i := strings.IndexByte(s, '.'); i == -1 {
			s += ".0"
		}
	}
	return s
}

// hexColor returns the non-premultiplied color as #rrggbb and its opacity.
func hexColor(c color.Color) (string, float64) {
	rgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B), float64(rgba.A) / 255.0
}
