package render

import "golang.org/x/image/vector"

// circleKappa is the control-point distance for approximating a quarter
// circle with one cubic Bézier.
const circleKappa = 0.5522847498307933

// strokePolyline adds the stroke outline of a polyline to the rasterizer:
// one quad per segment plus a disc at every vertex, which yields round caps
// and round joins. The contours all wind the same way, so overlaps merge
// under the rasterizer's winding rule. half is half the stroke width in
// device pixels.
func strokePolyline(r *vector.Rasterizer, poly []point, half float64) {
	if len(poly) == 0 || half <= 0 {
		return
	}
	for _, pt := range poly {
		appendCircle(r, pt, half)
	}
	for i := 1; i < len(poly); i++ {
		appendSegmentQuad(r, poly[i-1], poly[i], half)
	}
}

// appendSegmentQuad adds the rectangle covering one stroked line segment.
func appendSegmentQuad(r *vector.Rasterizer, a, b point, half float64) {
	dir := b.Sub(a)
	if dir.Length() < 1e-9 {
		return
	}
	// Emitted in the same orientation as appendCircle's arcs: the
	// rasterizer takes the absolute winding sum, so an opposite-signed
	// overlap would cancel to a hole instead of merging.
	n := dir.Normalize().Perp().Mul(half)
	moveTo(r, a.Sub(n))
	lineTo(r, b.Sub(n))
	lineTo(r, b.Add(n))
	lineTo(r, a.Add(n))
	r.ClosePath()
}

// appendCircle adds a circle as four cubic arcs.
func appendCircle(r *vector.Rasterizer, c point, radius float64) {
	if radius <= 0 {
		return
	}
	k := radius * circleKappa
	moveTo(r, point{X: c.X + radius, Y: c.Y})
	cubeTo(r,
		point{X: c.X + radius, Y: c.Y + k},
		point{X: c.X + k, Y: c.Y + radius},
		point{X: c.X, Y: c.Y + radius})
	cubeTo(r,
		point{X: c.X - k, Y: c.Y + radius},
		point{X: c.X - radius, Y: c.Y + k},
		point{X: c.X - radius, Y: c.Y})
	cubeTo(r,
		point{X: c.X - radius, Y: c.Y - k},
		point{X: c.X - k, Y: c.Y - radius},
		point{X: c.X, Y: c.Y - radius})
	cubeTo(r,
		point{X: c.X + k, Y: c.Y - radius},
		point{X: c.X + radius, Y: c.Y - k},
		point{X: c.X + radius, Y: c.Y})
	r.ClosePath()
}

func moveTo(r *vector.Rasterizer, p point) { r.MoveTo(float32(p.X), float32(p.Y)) }

func lineTo(r *vector.Rasterizer, p point) { r.LineTo(float32(p.X), float32(p.Y)) }

func cubeTo(r *vector.Rasterizer, c1, c2, p point) {
	r.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(p.X), float32(p.Y))
}
