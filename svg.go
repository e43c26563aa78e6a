package outline

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// SVG converts the path to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer].
func (p Path) SVG() string {
	sb := &strings.Builder{}
	WriteSVG(sb, p)
	return sb.String()
}

func formatFloat(n float64) string {
	if n == 0 {
		// Avoid printing negative zero.
		n = 0
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func formatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// WriteSVG converts a path to SVG path data and writes it to w.
//
// Commands are absolute and separated by single spaces, numbers within a
// command by commas: "M0,-5 A5,5,0,0,0,0,5". Coordinates use the shortest
// representation that round-trips; no precision is dropped. Arc radii are
// written as absolute values, which is how SVG user agents interpret negative
// radii anyway.
func WriteSVG(w io.Writer, p Path) error {
	var err error
	write := func(s ...string) {
		for _, ss := range s {
			if err != nil {
				return
			}
			_, err = io.WriteString(w, ss)
		}
	}
	pt := func(pt Point) string {
		return formatFloat(pt.X) + "," + formatFloat(pt.Y)
	}
	for i, el := range p {
		if err != nil {
			return err
		}
		if i > 0 {
			write(" ")
		}
		switch el.Kind {
		case MoveToKind:
			write("M", pt(el.P0))
		case LineToKind:
			write("L", pt(el.P0))
		case CubicToKind:
			write("C", pt(el.P0), ",", pt(el.P1), ",", pt(el.P2))
		case SmoothCubicToKind:
			write("S", pt(el.P0), ",", pt(el.P1))
		case ArcToKind:
			write("A",
				formatFloat(math.Abs(el.Radii.X)), ",",
				formatFloat(math.Abs(el.Radii.Y)), ",",
				formatFloat(el.Rotation), ",",
				formatFlag(el.LargeArc), ",",
				formatFlag(el.Sweep), ",",
				pt(el.P0))
		case ClosePathKind:
			write("Z")
		default:
			panic("unreachable")
		}
	}
	return err
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

var svgArgCounts = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'A': 7,
}

// ParseSVG parses SVG path data consisting of M, L, H, V, C, S, A and Z
// commands, absolute or relative. Relative commands are converted to absolute
// ones and H and V become LineTo. Quadratic commands are not supported.
func ParseSVG(s string) (Path, error) {
	path := []byte(s)
	i := skipCommaWhitespace(path)
	if i == len(path) {
		return nil, nil
	}
	if c := path[i]; c != 'M' && c != 'm' {
		return nil, errors.Errorf("bad path: path should start with a move command, got %q", c)
	}

	var p Path
	var f [7]float64
	var cur, start Point
	prevCmd := byte(0)
	for {
		i += skipCommaWhitespace(path[i:])
		if i >= len(path) {
			break
		}

		cmd := prevCmd
		c := path[i]
		if !(c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+') {
			cmd = c
			i++
			i += skipCommaWhitespace(path[i:])
		} else if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			return nil, errors.Errorf("bad path: number without command at position %d", i+1)
		}

		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		n, ok := svgArgCounts[upper]
		if !ok {
			return nil, errors.Errorf("bad path: unsupported command %q at position %d", cmd, i)
		}
		for j := 0; j < n; j++ {
			if upper == 'A' && (j == 3 || j == 4) {
				if i < len(path) && (path[i] == '0' || path[i] == '1') {
					f[j] = float64(path[i] - '0')
					i++
				} else {
					return nil, errors.Errorf("bad path: arc flags must be 0 or 1 at position %d", i+1)
				}
			} else {
				num, k := pstrconv.ParseFloat(path[i:])
				if k == 0 {
					return nil, errors.Errorf("bad path: command %q needs %d numbers at position %d", cmd, n, i+1)
				}
				f[j] = num
				i += k
			}
			i += skipCommaWhitespace(path[i:])
		}

		rel := cmd != upper
		abs := func(x, y float64) Point {
			if rel {
				return Point{cur.X + x, cur.Y + y}
			}
			return Point{x, y}
		}
		switch upper {
		case 'M':
			cur = abs(f[0], f[1])
			start = cur
			p.MoveTo(cur)
			// Subsequent coordinate pairs are implicit line commands.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			cur = abs(f[0], f[1])
			p.LineTo(cur)
		case 'H':
			if rel {
				cur.X += f[0]
			} else {
				cur.X = f[0]
			}
			p.LineTo(cur)
		case 'V':
			if rel {
				cur.Y += f[0]
			} else {
				cur.Y = f[0]
			}
			p.LineTo(cur)
		case 'C':
			c1, c2, end := abs(f[0], f[1]), abs(f[2], f[3]), abs(f[4], f[5])
			p.CubicTo(c1, c2, end)
			cur = end
		case 'S':
			c2, end := abs(f[0], f[1]), abs(f[2], f[3])
			p.SmoothCubicTo(c2, end)
			cur = end
		case 'A':
			end := abs(f[5], f[6])
			p.ArcTo(Vec(f[0], f[1]), f[2], f[3] == 1, f[4] == 1, end)
			cur = end
		case 'Z':
			p.ClosePath()
			cur = start
		}
		prevCmd = cmd
	}
	return p, nil
}
