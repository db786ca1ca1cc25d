// Package render rasterizes composed stroke-progression diagrams to raster
// images, for quick visual inspection of batch output without an SVG viewer.
//
// The renderer handles exactly the element set diagrams contain: stroked
// glyph paths, marker circles and stroke-number labels. Path and label
// styling is mined from the inline style attributes carried over from the
// source glyph.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/strokegrid/strokegrid"
)

type point = strokegrid.Point

// defaults when a style attribute is absent or unparseable, matching the
// KanjiVG stroke and label styling.
var (
	defaultStrokeColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
	defaultLabelColor  = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

const defaultStrokeWidth = 3

// Render rasterizes a diagram at the given scale factor. A scale of 0 or
// less means 1, i.e. one pixel per diagram unit.
func Render(d *strokegrid.Diagram, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(d.Width * scale))
	h := int(math.Ceil(d.Height * scale))
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("render: empty canvas %gx%g", d.Width, d.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	strokeColor := defaultStrokeColor
	if v, ok := styleValue(d.PathStyle, "stroke"); ok {
		if c, ok := parseColor(v); ok {
			strokeColor = c
		}
	}
	strokeWidth := float64(defaultStrokeWidth)
	if v, ok := styleValue(d.PathStyle, "stroke-width"); ok {
		if sw, err := parseNumber(v); err == nil && sw > 0 {
			strokeWidth = sw
		}
	}

	sr := vector.NewRasterizer(w, h)
	for _, panel := range d.Panels {
		for _, sp := range panel.Paths {
			p, err := strokegrid.ParsePath(sp.D)
			if err != nil {
				return nil, err
			}
			for _, poly := range flattenPath(p, scale) {
				strokePolyline(sr, poly, strokeWidth*scale/2)
			}
		}
	}
	sr.Draw(img, img.Bounds(), image.NewUniform(strokeColor), image.Point{})

	if markerColor, ok := parseColor(d.MarkerFill); ok && d.MarkerRadius > 0 {
		mr := vector.NewRasterizer(w, h)
		for _, panel := range d.Panels {
			appendCircle(mr, panel.Marker.Mul(scale), d.MarkerRadius*scale)
		}
		mr.Draw(img, img.Bounds(), image.NewUniform(markerColor), image.Point{})
	}

	labelColor := defaultLabelColor
	if v, ok := styleValue(d.LabelStyle, "fill"); ok {
		if c, ok := parseColor(v); ok {
			labelColor = c
		}
	}
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
	}
	for _, panel := range d.Panels {
		for _, l := range panel.Labels {
			m, err := strokegrid.ParseMatrix(l.Transform)
			if err != nil {
				return nil, err
			}
			at := m.TransformPoint(point{}).Mul(scale)
			drawer.Dot = fixed.Point26_6{
				X: fixed.Int26_6(math.Round(at.X * 64)),
				Y: fixed.Int26_6(math.Round(at.Y * 64)),
			}
			drawer.DrawString(l.Text)
		}
	}
	return img, nil
}

// WritePNG renders the diagram and writes it to path as a PNG file.
func WritePNG(path string, d *strokegrid.Diagram, scale float64) error {
	img, err := Render(d, scale)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
