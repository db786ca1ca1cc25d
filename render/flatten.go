package render

import (
	"math"

	"github.com/strokegrid/strokegrid"
)

// flattenTolerance is the maximum deviation from the true curve, in device
// pixels.
const flattenTolerance = 0.1

// flattenPath expands a parsed stroke path into polylines, one per subpath,
// with all coordinates scaled to device pixels.
//
// Relative runs resolve against the current point, and smooth curves recover
// their first control point by reflecting the previous curve's second
// control point, per SVG path semantics.
func flattenPath(p *strokegrid.Path, scale float64) [][]point {
	var polys [][]point
	var poly []point
	var current, prevControl2 point
	prevWasCurve := false

	flush := func() {
		if len(poly) > 0 {
			polys = append(polys, poly)
			poly = nil
		}
	}
	moveTo := func(pt point) {
		flush()
		current = pt
		poly = append(poly, current.Mul(scale))
		prevWasCurve = false
	}
	curveTo := func(c1, c2, end point) {
		poly = appendFlattenedCubic(poly,
			current.Mul(scale), c1.Mul(scale), c2.Mul(scale), end.Mul(scale),
			flattenTolerance)
		current = end
		prevControl2 = c2
		prevWasCurve = true
	}
	reflected := func() point {
		if !prevWasCurve {
			return current
		}
		return current.Mul(2).Sub(prevControl2)
	}

	for _, seg := range p.Segments() {
		switch s := seg.(type) {
		case strokegrid.MoveTo:
			moveTo(s.Point)
		case strokegrid.RelMoveTo:
			moveTo(current.Add(s.Offset))
		case strokegrid.CubicTo:
			for _, c := range s.Curves {
				curveTo(c.Control1, c.Control2, c.Point)
			}
		case strokegrid.RelCubicTo:
			for _, c := range s.Curves {
				curveTo(current.Add(c.Control1), current.Add(c.Control2), current.Add(c.Point))
			}
		case strokegrid.SmoothTo:
			for _, c := range s.Curves {
				curveTo(reflected(), c.Control2, c.Point)
			}
		case strokegrid.RelSmoothTo:
			for _, c := range s.Curves {
				curveTo(reflected(), current.Add(c.Control2), current.Add(c.Point))
			}
		}
	}
	flush()
	return polys
}

// appendFlattenedCubic appends points approximating one cubic curve with
// line segments, recursively subdividing with de Casteljau's algorithm
// until both control points are within tolerance of the chord.
func appendFlattenedCubic(dst []point, p0, p1, p2, p3 point, tolerance float64) []point {
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	if math.Max(d1, d2) < tolerance {
		return append(dst, p3)
	}

	// Subdivide the curve at t = 0.5.
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	dst = appendFlattenedCubic(dst, p0, q0, r0, s, tolerance)
	return appendFlattenedCubic(dst, s, r1, q2, p3, tolerance)
}

// distanceToLine calculates the perpendicular distance from point p to the
// line segment (a, b).
func distanceToLine(p, a, b point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}

	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
