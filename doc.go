// Package strokegrid composes stroke-order diagrams from KanjiVG glyph files.
//
// # Overview
//
// A KanjiVG file describes one character as an ordered list of stroke paths
// plus one stroke-number label per stroke. strokegrid turns such a file into
// a single "stroke progression" SVG: a grid of panels where panel i shows the
// glyph drawn up through stroke i, with a marker circle at the point where
// stroke i begins.
//
// # Quick Start
//
//	import "github.com/strokegrid/strokegrid"
//
//	glyph, err := strokegrid.LoadGlyph("kanji/04e09.svg")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	diagram, err := strokegrid.Compose(glyph, strokegrid.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	f, _ := os.Create("04e09-strokes.svg")
//	defer f.Close()
//	diagram.WriteSVG(f)
//
// Whole directories are handled by Runner, which mirrors the layout of a
// KanjiVG "kanji" directory into an output directory of diagrams, skipping
// (and reporting) malformed files. The cmd/strokegrid binary is a thin
// wrapper around Runner.
//
// # Architecture
//
// The library is organized into:
//   - Path engine: Path, Segment and the M/C/S command parser (path.go)
//   - Label transforms: Matrix and the matrix(...) rewriter (matrix.go)
//   - Glyph model: Glyph, ParseGlyph, LoadGlyph (glyph.go)
//   - Composition: Compose, Diagram, WriteSVG (compose.go, diagram.go)
//   - Batch: Runner and its worker pool (batch.go, internal/parallel)
//   - Preview: render, a raster preview of composed diagrams (render/)
//
// # Coordinate System
//
// Uses SVG coordinates: origin (0,0) at top-left, X increases right,
// Y increases down. All panels share one canvas; a stroke is placed in its
// panel by adding the panel's cell offset to every coordinate of its path.
//
// # Input Format
//
// Only the structural subset emitted by KanjiVG is accepted: two top-level
// groups (stroke paths, then stroke numbers), M/C/S path commands in either
// case, and matrix(a b c d e f) label transforms. Anything else is reported
// as a malformed glyph rather than guessed at; this package is not a general
// SVG parser.
package strokegrid
