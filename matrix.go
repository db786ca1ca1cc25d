package strokegrid

import (
	"fmt"
	"strings"
)

// Matrix is a 2D affine transformation in SVG attribute order,
// matrix(a b c d e f):
//
//	| A  C  E |
//	| B  D  F |
//
// This represents the transformation:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// E and F are the translation components. KanjiVG stroke-number labels are
// positioned with pure translations, matrix(1 0 0 1 e f).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1, E: 0, F: 0}
}

// ParseMatrix parses an SVG transform attribute of the matrix(a b c d e f)
// form. The values may be separated by whitespace, commas or both. At least
// six are required; extras are ignored. Anything else, including the other
// SVG transform functions, is reported as a *MalformedTransformError.
func ParseMatrix(s string) (Matrix, error) {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "matrix") {
		return Matrix{}, &MalformedTransformError{Transform: s, Reason: "not a matrix transform"}
	}
	t = strings.TrimSpace(t[len("matrix"):])
	if len(t) < 2 || t[0] != '(' || t[len(t)-1] != ')' {
		return Matrix{}, &MalformedTransformError{Transform: s, Reason: "missing parenthesized value list"}
	}
	values, err := scanNumbers(t[1 : len(t)-1])
	if err != nil {
		return Matrix{}, &MalformedTransformError{Transform: s, Reason: err.Error()}
	}
	if len(values) < 6 {
		return Matrix{}, &MalformedTransformError{Transform: s,
			Reason: fmt.Sprintf("matrix takes at least 6 values, got %d", len(values))}
	}
	return Matrix{
		A: values[0], B: values[1], C: values[2],
		D: values[3], E: values[4], F: values[5],
	}, nil
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Translate returns the matrix with (dx, dy) added to its translation
// components and the linear part normalized to the identity. Stroke-number
// labels only ever carry pure translations, so the normalization changes
// nothing for well-formed input while guaranteeing a canonical output form.
func (m Matrix) Translate(dx, dy float64) Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1, E: m.E + dx, F: m.F + dy}
}

// String serializes the matrix as an SVG transform attribute value. The
// linear part uses the shortest form that round-trips; the translation
// components are fixed to two decimals, matching the output of the
// established diagram generators.
func (m Matrix) String() string {
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		formatCoord(m.A), formatCoord(m.B), formatCoord(m.C), formatCoord(m.D),
		formatFixed(m.E, 2), formatFixed(m.F, 2))
}

// TranslateTransform rewrites a matrix transform attribute with (dx, dy)
// added to its translation components. The result is always of the
// normalized matrix(1 0 0 1 e f) form; see [Matrix.Translate].
func TranslateTransform(s string, dx, dy float64) (string, error) {
	m, err := ParseMatrix(s)
	if err != nil {
		return "", err
	}
	return m.Translate(dx, dy).String(), nil
}
