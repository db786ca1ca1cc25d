package strokegrid

import (
	"fmt"
	"strconv"
)

// Compose builds the stroke-progression diagram for one glyph.
//
// An N-stroke glyph yields N panels laid out left to right, top to bottom,
// opts.BoxesPerLine panels per row. Panel i holds translated copies of
// strokes 0..i, their repositioned number labels, and a marker at the
// translated start of stroke i. Every copy is derived directly from the
// source path data, so panels are self-contained and rounding never
// accumulates across panels.
//
// The canvas is sized by the last panel: a single-row diagram is exactly as
// wide as its panels, a multi-row diagram is a full BoxesPerLine wide, and
// the height covers the last occupied row.
//
// Compose fails with *MalformedGlyphError when the glyph has no strokes or
// the stroke and label counts differ, and propagates *MalformedPathError
// and *MalformedTransformError from the per-element rewrites. On any
// failure no diagram is returned; a glyph is composed whole or not at all.
func Compose(g *Glyph, opts Options) (*Diagram, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(g.Strokes) == 0 {
		return nil, &MalformedGlyphError{Reason: "glyph has no strokes"}
	}
	if len(g.Strokes) != len(g.Labels) {
		return nil, &MalformedGlyphError{
			Reason: fmt.Sprintf("stroke count %d does not match label count %d", len(g.Strokes), len(g.Labels)),
		}
	}

	d := &Diagram{
		License:           opts.License,
		PathGroupID:       g.PathGroupID,
		PathStyle:         g.PathStyle,
		GlyphID:           g.ID,
		LabelGroupID:      g.LabelGroupID,
		LabelStyle:        g.LabelStyle,
		MarkerRadius:      opts.MarkerRadius,
		MarkerStrokeWidth: opts.MarkerStrokeWidth,
		MarkerFill:        opts.MarkerFill,
		Panels:            make([]Panel, 0, len(g.Strokes)),
	}

	for i := range g.Strokes {
		row := i / opts.BoxesPerLine
		col := i % opts.BoxesPerLine
		dx := float64(col) * opts.CellWidth
		dy := float64(row) * opts.CellHeight

		panel := Panel{
			Row:    row,
			Col:    col,
			Paths:  make([]PanelPath, 0, i+1),
			Labels: make([]PanelLabel, 0, i+1),
		}
		for j := 0; j <= i; j++ {
			nd, start, err := TranslatePath(g.Strokes[j].D, dx, dy)
			if err != nil {
				return nil, err
			}
			panel.Paths = append(panel.Paths, PanelPath{
				ID: fmt.Sprintf("%s-s%d-%d-%d", g.ID, j, row, col),
				D:  nd,
			})

			nt, err := TranslateTransform(g.Labels[j].Transform, dx, dy)
			if err != nil {
				return nil, err
			}
			panel.Labels = append(panel.Labels, PanelLabel{
				Transform: nt,
				Text:      strconv.Itoa(j),
			})

			if j == i {
				panel.Marker = start
			}
		}
		d.Panels = append(d.Panels, panel)
	}

	last := d.Panels[len(d.Panels)-1]
	if last.Row == 0 {
		d.Width = opts.CellWidth * float64(last.Col+1)
	} else {
		d.Width = opts.CellWidth * float64(opts.BoxesPerLine)
	}
	d.Height = opts.CellHeight * float64(last.Row+1)
	return d, nil
}

// ComposeFile loads a glyph document and composes its diagram.
func ComposeFile(path string, opts Options) (*Diagram, error) {
	g, err := LoadGlyph(path)
	if err != nil {
		return nil, err
	}
	return Compose(g, opts)
}
