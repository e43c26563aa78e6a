// Command outline draws hulls and splines around groups of points.
//
// Usage:
//
//	outline [flags] hull [--style=rounded|padded] [--padding=N] [--convex] INPUT
//	outline [flags] spline [--closed] INPUT
//
// INPUT is either a YAML document listing groups of points or an SVG file,
// whose polygons and polylines become groups. See readYAML and readSVG for
// the details. The padding defaults to $OUTLINE_PADDING and the hull style
// to $OUTLINE_STYLE.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"honnef.co/go/outline"
)

type config struct {
	command string
	input   string
	format  string
	output  string
	imgcat  bool
	size    int
	debug   bool

	// hull
	style   string
	padding float64
	convex  bool

	// spline
	closed bool
}

func newApp(cfg *config) *kingpin.Application {
	app := kingpin.New("outline", "Draw smooth outlines around groups of points.")
	app.Flag("format", "Output format.").Short('f').Default("path").EnumVar(&cfg.format, "path", "svg", "png")
	app.Flag("output", "Output file. Defaults to standard output; required for png.").Short('o').StringVar(&cfg.output)
	app.Flag("imgcat", "Show png output in the terminal.").BoolVar(&cfg.imgcat)
	app.Flag("size", "Width and height of png output in pixels.").Default("512").IntVar(&cfg.size)
	app.Flag("debug", "Log degenerate input to standard error.").BoolVar(&cfg.debug)

	hull := app.Command("hull", "Outline each group at a distance.")
	hull.Flag("style", "Outline style.").Default("rounded").Envar("OUTLINE_STYLE").EnumVar(&cfg.style, "rounded", "padded")
	hull.Flag("padding", "Distance between points and outline.").Default("10").Envar("OUTLINE_PADDING").Float64Var(&cfg.padding)
	hull.Flag("convex", "Use the convex hull of each group instead of its points in order.").BoolVar(&cfg.convex)
	hull.Arg("input", "YAML or SVG file.").Required().ExistingFileVar(&cfg.input)

	spline := app.Command("spline", "Draw a smooth curve through each group.")
	spline.Flag("closed", "Close the curve.").BoolVar(&cfg.closed)
	spline.Arg("input", "YAML or SVG file.").Required().ExistingFileVar(&cfg.input)
	return app
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red("outline:").Bold(), err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var cfg config
	cmd, err := newApp(&cfg).Parse(args)
	if err != nil {
		return err
	}
	cfg.command = cmd

	if cfg.format == "png" && cfg.output == "" {
		return errors.New("png output needs --output")
	}
	if cfg.imgcat && cfg.format != "png" {
		return errors.New("--imgcat needs --format=png")
	}
	if cfg.debug {
		outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer outline.SetLogger(nil)
	}

	groups, err := readInput(cfg.input)
	if err != nil {
		return err
	}
	shapes := make([]shape, 0, len(groups))
	for _, g := range groups {
		p, err := buildShape(&cfg, g)
		if err != nil {
			return errors.Wrapf(err, "group %q", g.name)
		}
		if p.IsNaN() || p.IsInf() {
			return errors.Errorf("group %q: outline has non-finite coordinates", g.name)
		}
		shapes = append(shapes, shape{name: g.name, points: g.points, path: p})
	}
	return writeOutput(&cfg, stdout, shapes)
}

func buildShape(cfg *config, g group) (outline.Path, error) {
	switch cfg.command {
	case "hull":
		var pts []outline.Point
		if cfg.convex {
			pts = outline.ConvexHull(g.points)
		} else {
			pts = outline.Dedup(g.points)
		}
		padding := cfg.padding
		if g.padding != nil {
			padding = *g.padding
		}
		if cfg.style == "padded" {
			o, err := outline.PaddedHull(pts, padding)
			if err != nil {
				return nil, err
			}
			return o.Smooth()
		}
		return outline.RoundedHull(pts, padding)
	case "spline":
		if cfg.closed {
			return outline.ClosedSpline(g.points)
		}
		return outline.Spline(g.points)
	default:
		panic(fmt.Sprintf("unhandled command %q", cfg.command))
	}
}

func writeOutput(cfg *config, stdout io.Writer, shapes []shape) (err error) {
	if cfg.format == "png" {
		if err := renderPNG(cfg.output, shapes, cfg.size); err != nil {
			return err
		}
		if cfg.imgcat {
			return errors.WithStack(imgcat.CatFile(cfg.output, stdout))
		}
		return nil
	}

	w := stdout
	if cfg.output != "" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return errors.WithStack(err)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = errors.WithStack(cerr)
			}
		}()
		w = f
	}
	if cfg.format == "svg" {
		return writeDocument(w, shapes)
	}
	return writePaths(w, shapes)
}
