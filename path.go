package strokegrid

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment represents a single command run in a stroke path.
//
// KanjiVG stroke paths are built from absolute moveto (M), cubic Bézier (C)
// and smooth cubic Bézier (S) commands, plus their relative lowercase forms.
// A run groups every curve that shares one command letter (the poly-Bézier
// shorthand), so translating and re-serializing a path preserves the exact
// command structure of the input.
type Segment interface {
	isSegment()
}

// MoveTo is an absolute moveto (M). It is the first segment of every stroke
// path and its point, after translation, is where a stroke's marker circle
// is placed.
type MoveTo struct {
	Point Point
}

func (MoveTo) isSegment() {}

// RelMoveTo is a relative moveto (m).
type RelMoveTo struct {
	Offset Point
}

func (RelMoveTo) isSegment() {}

// Cubic is a single cubic Bézier curve: two control points and an end point.
type Cubic struct {
	Control1, Control2, Point Point
}

// CubicTo is a run of absolute cubic Bézier curves sharing one C command.
type CubicTo struct {
	Curves []Cubic
}

func (CubicTo) isSegment() {}

// RelCubicTo is a run of relative cubic Bézier curves sharing one c command.
// Its coordinates are offsets from the current point, so a canvas translation
// leaves it untouched.
type RelCubicTo struct {
	Curves []Cubic
}

func (RelCubicTo) isSegment() {}

// Smooth is a smooth cubic Bézier continuation: the first control point is
// implied by reflecting the previous curve's second control point.
type Smooth struct {
	Control2, Point Point
}

// SmoothTo is a run of absolute smooth cubic curves sharing one S command.
type SmoothTo struct {
	Curves []Smooth
}

func (SmoothTo) isSegment() {}

// RelSmoothTo is a run of relative smooth cubic curves sharing one s command.
type RelSmoothTo struct {
	Curves []Smooth
}

func (RelSmoothTo) isSegment() {}

// Path is an ordered list of command runs parsed from a stroke path's "d"
// attribute. Paths are immutable; Translate returns a new Path.
type Path struct {
	segments []Segment
}

// Segments returns the path's command runs in order.
func (p *Path) Segments() []Segment {
	return p.segments
}

// ParsePath parses a stroke path data string into typed segments.
//
// The first command must be an absolute moveto. Command letters other than
// M, m, C, c, S and s, and numeric payloads whose length does not match the
// command (2 for moveto, a positive multiple of 6 for cubic, a positive
// multiple of 4 for smooth), are reported as a *MalformedPathError.
func ParsePath(d string) (*Path, error) {
	var segments []Segment
	i := 0
	for i < len(d) {
		c := d[i]
		if isPathSpace(c) {
			i++
			continue
		}
		if !isCommandLetter(c) {
			return nil, &MalformedPathError{D: d, Reason: fmt.Sprintf("expected a command letter, found %q", c)}
		}
		if len(segments) == 0 && c != 'M' {
			return nil, &MalformedPathError{Command: c, D: d, Reason: "path must begin with an absolute moveto"}
		}
		j := i + 1
		for j < len(d) && !isRunBoundary(d, j) {
			j++
		}
		seg, err := parseRun(c, d[i+1:j], d)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
		i = j
	}
	if len(segments) == 0 {
		return nil, &MalformedPathError{D: d, Reason: "empty path data"}
	}
	return &Path{segments: segments}, nil
}

// Translate returns a copy of the path with (dx, dy) added to every
// coordinate of every absolute segment. Relative segments are offsets from
// the current point and are carried over unchanged. Segment order, command
// grouping and curve counts are preserved.
func (p *Path) Translate(dx, dy float64) *Path {
	off := Point{X: dx, Y: dy}
	segments := make([]Segment, len(p.segments))
	for i, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			segments[i] = MoveTo{Point: s.Point.Add(off)}
		case CubicTo:
			segments[i] = CubicTo{Curves: translateCubics(s.Curves, off)}
		case SmoothTo:
			segments[i] = SmoothTo{Curves: translateSmooths(s.Curves, off)}
		default:
			segments[i] = seg
		}
	}
	return &Path{segments: segments}
}

// Start returns the point of the first absolute moveto. The second return
// is false for paths without one; ParsePath never produces such a path.
func (p *Path) Start() (Point, bool) {
	for _, seg := range p.segments {
		if m, ok := seg.(MoveTo); ok {
			return m.Point, true
		}
	}
	return Point{}, false
}

// String serializes the path back to a command string: one left-to-right
// pass over the segments in their original order.
//
// Moveto coordinates use the shortest float form that round-trips. Curve
// values are fixed to two decimals, except the end-point y of a smooth run,
// which uses three; that asymmetry matches the output of the established
// diagram generators so regenerated collections stay diffable.
func (p *Path) String() string {
	var b strings.Builder
	for _, seg := range p.segments {
		switch s := seg.(type) {
		case MoveTo:
			writeMove(&b, 'M', s.Point)
		case RelMoveTo:
			writeMove(&b, 'm', s.Offset)
		case CubicTo:
			writeCubics(&b, 'C', s.Curves)
		case RelCubicTo:
			writeCubics(&b, 'c', s.Curves)
		case SmoothTo:
			writeSmooths(&b, 'S', s.Curves)
		case RelSmoothTo:
			writeSmooths(&b, 's', s.Curves)
		}
	}
	return b.String()
}

// TranslatePath rewrites a stroke path data string so that the stroke is
// drawn (dx, dy) away from its original position, and reports the translated
// starting point for marker placement.
func TranslatePath(d string, dx, dy float64) (string, Point, error) {
	p, err := ParsePath(d)
	if err != nil {
		return "", Point{}, err
	}
	t := p.Translate(dx, dy)
	start, _ := t.Start() // ParsePath guarantees a leading absolute moveto
	return t.String(), start, nil
}

func translateCubics(curves []Cubic, off Point) []Cubic {
	out := make([]Cubic, len(curves))
	for i, c := range curves {
		out[i] = Cubic{
			Control1: c.Control1.Add(off),
			Control2: c.Control2.Add(off),
			Point:    c.Point.Add(off),
		}
	}
	return out
}

func translateSmooths(curves []Smooth, off Point) []Smooth {
	out := make([]Smooth, len(curves))
	for i, c := range curves {
		out[i] = Smooth{
			Control2: c.Control2.Add(off),
			Point:    c.Point.Add(off),
		}
	}
	return out
}

// parseRun builds one typed segment from a command letter and its numeric
// payload. d is the full path string, carried for error reporting only.
func parseRun(letter byte, payload, d string) (Segment, error) {
	values, err := scanNumbers(payload)
	if err != nil {
		return nil, &MalformedPathError{Command: letter, D: d, Reason: err.Error()}
	}
	switch letter {
	case 'M', 'm':
		if len(values) != 2 {
			return nil, &MalformedPathError{Command: letter, D: d,
				Reason: fmt.Sprintf("moveto takes exactly 2 values, got %d", len(values))}
		}
		pt := Point{X: values[0], Y: values[1]}
		if letter == 'M' {
			return MoveTo{Point: pt}, nil
		}
		return RelMoveTo{Offset: pt}, nil
	case 'C', 'c':
		if len(values) == 0 || len(values)%6 != 0 {
			return nil, &MalformedPathError{Command: letter, D: d,
				Reason: fmt.Sprintf("cubic payload must be a positive multiple of 6 values, got %d", len(values))}
		}
		curves := make([]Cubic, 0, len(values)/6)
		for i := 0; i < len(values); i += 6 {
			curves = append(curves, Cubic{
				Control1: Point{X: values[i], Y: values[i+1]},
				Control2: Point{X: values[i+2], Y: values[i+3]},
				Point:    Point{X: values[i+4], Y: values[i+5]},
			})
		}
		if letter == 'C' {
			return CubicTo{Curves: curves}, nil
		}
		return RelCubicTo{Curves: curves}, nil
	case 'S', 's':
		if len(values) == 0 || len(values)%4 != 0 {
			return nil, &MalformedPathError{Command: letter, D: d,
				Reason: fmt.Sprintf("smooth cubic payload must be a positive multiple of 4 values, got %d", len(values))}
		}
		curves := make([]Smooth, 0, len(values)/4)
		for i := 0; i < len(values); i += 4 {
			curves = append(curves, Smooth{
				Control2: Point{X: values[i], Y: values[i+1]},
				Point:    Point{X: values[i+2], Y: values[i+3]},
			})
		}
		if letter == 'S' {
			return SmoothTo{Curves: curves}, nil
		}
		return RelSmoothTo{Curves: curves}, nil
	default:
		return nil, &MalformedPathError{Command: letter, D: d, Reason: "unsupported command"}
	}
}

// scanNumbers splits a command payload into floats. Values are separated by
// commas or whitespace; a sign also starts a new value, so KanjiVG's packed
// "10.01-1.01" form parses as two numbers. An exponent's sign does not split.
func scanNumbers(payload string) ([]float64, error) {
	var values []float64
	i := 0
	for i < len(payload) {
		c := payload[i]
		if isPathSpace(c) || c == ',' {
			i++
			continue
		}
		j := i
		if c == '+' || c == '-' {
			j++
		}
		for j < len(payload) {
			c = payload[j]
			if c >= '0' && c <= '9' || c == '.' {
				j++
				continue
			}
			if (c == 'e' || c == 'E') && j+1 < len(payload) {
				next := payload[j+1]
				if next >= '0' && next <= '9' || next == '+' || next == '-' {
					j += 2
					continue
				}
			}
			break
		}
		if j == i || (j == i+1 && (payload[i] == '+' || payload[i] == '-')) {
			return nil, fmt.Errorf("invalid number at %q", payload[i:])
		}
		v, err := strconv.ParseFloat(payload[i:j], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", payload[i:j])
		}
		values = append(values, v)
		i = j
	}
	return values, nil
}

func writeMove(b *strings.Builder, letter byte, pt Point) {
	b.WriteByte(letter)
	b.WriteString(formatCoord(pt.X))
	b.WriteByte(',')
	b.WriteString(formatCoord(pt.Y))
}

func writeCubics(b *strings.Builder, letter byte, curves []Cubic) {
	b.WriteByte(letter)
	for i, c := range curves {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatFixed(c.Control1.X, 2))
		b.WriteByte(',')
		b.WriteString(formatFixed(c.Control1.Y, 2))
		b.WriteByte(',')
		b.WriteString(formatFixed(c.Control2.X, 2))
		b.WriteByte(',')
		b.WriteString(formatFixed(c.Control2.Y, 2))
		b.WriteByte(',')
		b.WriteString(formatFixed(c.Point.X, 2))
		b.WriteByte(',')
		b.WriteString(formatFixed(c.Point.Y, 2))
	}
}

func writeSmooths(b *strings.Builder, letter byte, curves []Smooth) {
	b.WriteByte(letter)
	for i, c := range curves {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatFixed(c.Control2.X, 2))
		b.WriteByte(',')
		b.WriteString(formatFixed(c.Control2.Y, 2))
		b.WriteByte(',')
		b.WriteString(formatFixed(c.Point.X, 2))
		b.WriteByte(',')
		b.WriteString(formatFixed(c.Point.Y, 3))
	}
}

// formatCoord renders a coordinate in the shortest form that round-trips.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatFixed renders a coordinate with a fixed number of decimals.
func formatFixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func isPathSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isCommandLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

// isRunBoundary reports whether d[j] starts a new command run. Letters end
// the current run except an exponent marker inside a number ("1e5", "1E-5").
func isRunBoundary(d string, j int) bool {
	c := d[j]
	if !isCommandLetter(c) {
		return false
	}
	if c != 'e' && c != 'E' {
		return true
	}
	if j == 0 {
		return true
	}
	prev := d[j-1]
	if !(prev >= '0' && prev <= '9' || prev == '.') {
		return true
	}
	if j+1 >= len(d) {
		return true
	}
	next := d[j+1]
	return !(next >= '0' && next <= '9' || next == '+' || next == '-')
}
