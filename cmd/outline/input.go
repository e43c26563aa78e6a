package main

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"honnef.co/go/outline"
)

// group is a named set of points to be outlined together. A nil padding
// means the command line default applies.
type group struct {
	name    string
	padding *float64
	points  []outline.Point
}

type yamlDocument struct {
	Groups []yamlGroup `yaml:"groups"`
}

type yamlGroup struct {
	Name    string      `yaml:"name"`
	Padding *float64    `yaml:"padding"`
	Points  [][]float64 `yaml:"points"`
}

// readInput reads groups from a YAML or, for files ending in .svg, an SVG
// document.
func readInput(name string) ([]group, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	var groups []group
	if strings.EqualFold(filepath.Ext(name), ".svg") {
		groups, err = readSVG(f)
	} else {
		groups, err = readYAML(f)
	}
	if err == nil {
		err = checkFinite(groups)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return groups, nil
}

func checkFinite(groups []group) error {
	for _, g := range groups {
		for i, pt := range g.points {
			if pt.IsNaN() || pt.IsInf() {
				return errors.Errorf("group %q: point %d is %s", g.name, i+1, pt)
			}
		}
	}
	return nil
}

// readYAML reads documents of the form
//
//	groups:
//	  - name: servers
//	    padding: 12
//	    points: [[0, 0], [40, 10], [20, 30]]
func readYAML(r io.Reader) ([]group, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}
	groups := make([]group, 0, len(doc.Groups))
	for i, g := range doc.Groups {
		name := g.Name
		if name == "" {
			name = "group" + strconv.Itoa(i+1)
		}
		pts := make([]outline.Point, 0, len(g.Points))
		for j, xy := range g.Points {
			if len(xy) != 2 {
				return nil, errors.Errorf("group %q: point %d has %d coordinates, want 2", name, j+1, len(xy))
			}
			pts = append(pts, outline.Pt(xy[0], xy[1]))
		}
		groups = append(groups, group{name: name, padding: g.Padding, points: pts})
	}
	return groups, nil
}

// readSVG turns every polygon and polyline into a group, named after its id.
// Circles make up one more group called "nodes", one point per center. An
// element's data-padding attribute overrides the default padding.
func readSVG(r io.Reader) ([]group, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var groups []group
	for _, tag := range []string{"polygon", "polyline"} {
		for i, el := range root.FindAll(tag) {
			name := el.Attributes["id"]
			if name == "" {
				name = tag + strconv.Itoa(i+1)
			}
			pts, err := parsePoints(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "%s %q", tag, name)
			}
			padding, err := parsePadding(el.Attributes["data-padding"])
			if err != nil {
				return nil, errors.Wrapf(err, "%s %q", tag, name)
			}
			groups = append(groups, group{name: name, padding: padding, points: pts})
		}
	}

	if circles := root.FindAll("circle"); len(circles) > 0 {
		nodes := group{name: "nodes"}
		for _, el := range circles {
			x, err := parseAttr(el, "cx")
			if err != nil {
				return nil, err
			}
			y, err := parseAttr(el, "cy")
			if err != nil {
				return nil, err
			}
			nodes.points = append(nodes.points, outline.Pt(x, y))
		}
		groups = append(groups, nodes)
	}
	return groups, nil
}

// parsePoints parses the points attribute of polygons and polylines, a list
// of numbers separated by whitespace and commas.
func parsePoints(s string) ([]outline.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	pts := make([]outline.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		pts = append(pts, outline.Pt(x, y))
	}
	return pts, nil
}

func parsePadding(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.Wrap(err, "data-padding")
	}
	return &v, nil
}

// Missing coordinates default to zero, as in SVG.
func parseAttr(el *svgparser.Element, name string) (float64, error) {
	s := el.Attributes[name]
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "circle attribute %s", name)
	}
	return v, nil
}
