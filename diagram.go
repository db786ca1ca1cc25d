package strokegrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Diagram is a composed stroke-progression chart: one panel per stroke,
// panel i showing strokes 0 through i with a marker at the start of stroke
// i. It is built fresh by Compose; the parsed input glyph is never mutated.
type Diagram struct {
	// Width and Height are the canvas dimensions. The viewBox spans
	// "0 0 Width Height"; the scale factor is 1.
	Width, Height float64

	// License is emitted as a comment before any other child.
	License string

	// Group attributes carried over from the source glyph.
	PathGroupID  string
	PathStyle    string
	GlyphID      string
	LabelGroupID string
	LabelStyle   string

	// Marker styling shared by every panel's circle.
	MarkerRadius      float64
	MarkerStrokeWidth float64
	MarkerFill        string

	Panels []Panel
}

// Panel is one grid cell: the translated copies of strokes 0..i, their
// labels, and the start marker for the newest stroke.
type Panel struct {
	Row, Col int
	Paths    []PanelPath
	Labels   []PanelLabel
	Marker   Point
}

// PanelPath is a translated stroke copy with its synthesized id.
type PanelPath struct {
	ID string
	D  string
}

// PanelLabel is a repositioned stroke-number label.
type PanelLabel struct {
	Transform string
	Text      string
}

// PathCount returns the number of stroke-path elements across all panels.
// For an N-stroke glyph this is N*(N+1)/2.
func (d *Diagram) PathCount() int {
	n := 0
	for _, p := range d.Panels {
		n += len(p.Paths)
	}
	return n
}

// MarkerCount returns the number of marker circles, one per panel.
func (d *Diagram) MarkerCount() int {
	return len(d.Panels)
}

var (
	xmlAttrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	xmlTextEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// xmlAttr renders one attribute, or nothing when the value is empty.
func xmlAttr(name, value string) string {
	if value == "" {
		return ""
	}
	return " " + name + `="` + xmlAttrEscaper.Replace(value) + `"`
}

// WriteSVG serializes the diagram as an indented SVG document.
//
// The element layout mirrors the source glyph format: the stroke-paths
// group wraps the inner glyph group, which holds each panel's paths
// followed by its marker circle; the stroke-numbers group holds every
// panel's labels.
func (d *Diagram) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(bw, "<svg xmlns=\"%s\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		svgNamespace,
		formatCoord(d.Width), formatCoord(d.Height),
		formatCoord(d.Width), formatCoord(d.Height))
	if d.License != "" {
		// "--" is not allowed inside an XML comment.
		fmt.Fprintf(bw, "<!--%s-->\n", strings.ReplaceAll(d.License, "--", "- -"))
	}

	fmt.Fprintf(bw, "  <g%s%s>\n", xmlAttr("id", d.PathGroupID), xmlAttr("style", d.PathStyle))
	fmt.Fprintf(bw, "    <g%s>\n", xmlAttr("id", d.GlyphID))
	for _, p := range d.Panels {
		for _, sp := range p.Paths {
			fmt.Fprintf(bw, "      <path%s%s/>\n", xmlAttr("id", sp.ID), xmlAttr("d", sp.D))
		}
		fmt.Fprintf(bw, "      <circle cx=\"%s\" cy=\"%s\" r=\"%s\" stroke-width=\"%s\" fill=\"%s\"/>\n",
			formatCoord(p.Marker.X), formatCoord(p.Marker.Y),
			formatCoord(d.MarkerRadius), formatCoord(d.MarkerStrokeWidth),
			xmlAttrEscaper.Replace(d.MarkerFill))
	}
	fmt.Fprintf(bw, "    </g>\n")
	fmt.Fprintf(bw, "  </g>\n")

	fmt.Fprintf(bw, "  <g%s%s>\n", xmlAttr("id", d.LabelGroupID), xmlAttr("style", d.LabelStyle))
	for _, p := range d.Panels {
		for _, l := range p.Labels {
			fmt.Fprintf(bw, "    <text%s>%s</text>\n", xmlAttr("transform", l.Transform), xmlTextEscaper.Replace(l.Text))
		}
	}
	fmt.Fprintf(bw, "  </g>\n")

	fmt.Fprintf(bw, "</svg>\n")
	return bw.Flush()
}
