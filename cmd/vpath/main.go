package main

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/vpath"
	"github.com/tdewolff/vpath/renderers/rasterizer"
	"github.com/tdewolff/vpath/renderers/svg"
)

type Info struct {
	Data    string `short:"d" desc:"SVG path data, instead of an input file"`
	Verbose bool   `short:"v" desc:"Log debug messages"`
	Input   string `index:"0" desc:"Input file with SVG path data, - for stdin"`
}

type Smooth struct {
	Data    string `short:"d" desc:"SVG path data, instead of an input file"`
	Verbose bool   `short:"v" desc:"Log debug messages"`
	Input   string `index:"0" desc:"Input file with SVG path data, - for stdin"`
}

type Simplify struct {
	Tolerance float64 `short:"t" default:"2.5" desc:"Maximum distance of the curves to the points"`
	Data      string  `short:"d" desc:"SVG path data, instead of an input file"`
	Verbose   bool    `short:"v" desc:"Log debug messages"`
	Input     string  `index:"0" desc:"Input file with SVG path data, - for stdin"`
}

type Flatten struct {
	Distance float64 `short:"m" default:"1" desc:"Maximum distance between points"`
	Data     string  `short:"d" desc:"SVG path data, instead of an input file"`
	Verbose  bool    `short:"v" desc:"Log debug messages"`
	Input    string  `index:"0" desc:"Input file with SVG path data, - for stdin"`
}

type Render struct {
	Width       int     `short:"W" default:"256" desc:"Image width"`
	Height      int     `short:"H" default:"256" desc:"Image height"`
	Scale       float64 `short:"s" default:"1" desc:"Scale of the path"`
	Fill        string  `default:"" desc:"Fill color as #rrggbb or #rrggbbaa"`
	Stroke      string  `default:"#000000" desc:"Stroke color as #rrggbb or #rrggbbaa"`
	StrokeWidth float64 `short:"w" default:"1" desc:"Stroke width"`
	Join        string  `default:"miter" desc:"Stroke join: miter, round or bevel"`
	Cap         string  `default:"butt" desc:"Stroke cap: butt, round or square"`
	Background  string  `short:"b" default:"" desc:"Background color of raster images"`
	Output      string  `short:"o" desc:"Output file, the extension selects svg, png, jpg, gif or tiff"`
	Data        string  `short:"d" desc:"SVG path data, instead of an input file"`
	Verbose     bool    `short:"v" desc:"Log debug messages"`
	Input       string  `index:"0" desc:"Input file with SVG path data, - for stdin"`
}

func main() {
	root := argp.NewCmd(&Info{}, "Vector path toolkit: inspect, smooth, simplify, flatten and render SVG path data")
	root.AddCmd(&Smooth{}, "smooth", "Smooth the path through its anchor points")
	root.AddCmd(&Simplify{}, "simplify", "Fit curves through the anchor points of the path")
	root.AddCmd(&Flatten{}, "flatten", "Replace curves by evenly spaced points")
	root.AddCmd(&Render{}, "render", "Render the path to an image")
	root.Parse()
	root.PrintHelp()
}

func setVerbose(verbose bool) {
	if verbose {
		vpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
}

// readPath reads SVG path data from the data option, the input file or stdin.
func readPath(data, input string) (*vpath.Path, error) {
	if data == "" {
		if input == "" {
			return nil, argp.ShowUsage
		}
		var b []byte
		var err error
		if input == "-" {
			b, err = io.ReadAll(os.Stdin)
		} else {
			b, err = os.ReadFile(input)
		}
		if err != nil {
			return nil, err
		}
		data = string(b)
	}
	p, err := vpath.ParseSVG(strings.TrimSpace(data))
	if err != nil {
		return nil, fmt.Errorf("parse path: %w", err)
	}
	return p, nil
}

func (cmd *Info) Run() error {
	setVerbose(cmd.Verbose)
	p, err := readPath(cmd.Data, cmd.Input)
	if err != nil {
		return err
	}

	bounds, _ := p.Bounds()
	fmt.Println("Segments:", p.Len())
	fmt.Println("Curves:", len(p.Curves()))
	fmt.Println("Closed:", p.Closed())
	fmt.Println("Clockwise:", p.IsClockwise())
	fmt.Printf("Length: %.6g\n", p.Length())
	fmt.Println("Bounds:", bounds)
	fmt.Println("Position:", p.Position())
	return nil
}

func (cmd *Smooth) Run() error {
	setVerbose(cmd.Verbose)
	p, err := readPath(cmd.Data, cmd.Input)
	if err != nil {
		return err
	}
	p.Smooth()
	fmt.Println(p)
	return nil
}

func (cmd *Simplify) Run() error {
	setVerbose(cmd.Verbose)
	p, err := readPath(cmd.Data, cmd.Input)
	if err != nil {
		return err
	}
	p.PointsToCurves(cmd.Tolerance)
	fmt.Println(p)
	return nil
}

func (cmd *Flatten) Run() error {
	setVerbose(cmd.Verbose)
	p, err := readPath(cmd.Data, cmd.Input)
	if err != nil {
		return err
	}
	p.CurvesToPoints(cmd.Distance)
	fmt.Println(p)
	return nil
}

func (cmd *Render) Run() error {
	setVerbose(cmd.Verbose)
	if cmd.Output == "" {
		fmt.Println("ERROR: must specify output filename")
		return argp.ShowUsage
	}
	p, err := readPath(cmd.Data, cmd.Input)
	if err != nil {
		return err
	}

	style := p.Style()
	if style.FillColor, err = parseColor(cmd.Fill); err != nil {
		return err
	} else if style.StrokeColor, err = parseColor(cmd.Stroke); err != nil {
		return err
	}
	style.StrokeWidth = cmd.StrokeWidth
	if style.StrokeJoin, err = parseJoin(cmd.Join); err != nil {
		return err
	} else if style.StrokeCap, err = parseCap(cmd.Cap); err != nil {
		return err
	}
	p.SetStyle(style)

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	m := vpath.Identity.Scale(cmd.Scale, cmd.Scale)
	ext := filepath.Ext(cmd.Output)
	if strings.EqualFold(ext, ".svg") {
		p.Transform(m)
		style.StrokeWidth *= cmd.Scale
		p.SetStyle(style)

		r := svg.New(f, float64(cmd.Width), float64(cmd.Height), nil)
		p.Draw(r)
		return r.Flush()
	}

	background, err := parseColor(cmd.Background)
	if err != nil {
		return err
	}
	img := rasterizer.Draw(cmd.Width, cmd.Height, m, background, p)
	return rasterizer.Encode(f, img, ext)
}

// parseColor parses #rrggbb or #rrggbbaa, an empty string is no color.
func parseColor(s string) (color.Color, error) {
	if s == "" || s == "none" {
		return nil, nil
	}
	b, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || !strings.HasPrefix(s, "#") || len(b) != 3 && len(b) != 4 {
		return nil, fmt.Errorf("bad color %q", s)
	}
	c := color.NRGBA{b[0], b[1], b[2], 255}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

func parseJoin(s string) (vpath.JoinStyle, error) {
	for _, join := range []vpath.JoinStyle{vpath.MiterJoin, vpath.RoundJoin, vpath.BevelJoin} {
		if join.String() == s {
			return join, nil
		}
	}
	return vpath.MiterJoin, fmt.Errorf("bad stroke join %q", s)
}

func parseCap(s string) (vpath.CapStyle, error) {
	for _, c := range []vpath.CapStyle{vpath.ButtCap, vpath.RoundCap, vpath.SquareCap} {
		if c.String() == s {
			return c, nil
		}
	}
	return vpath.ButtCap, fmt.Errorf("bad stroke cap %q", s)
}
