package strokegrid

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testGlyphDoc mimics a KanjiVG file: two top-level groups, the stroke
// paths nested one radical group deep, kvg-namespaced metadata attributes.
const testGlyphDoc = `<?xml version="1.0" encoding="UTF-8"?>
<!-- source attribution comment -->
<svg xmlns="http://www.w3.org/2000/svg" xmlns:kvg="http://kanjivg.tagaini.net" width="109" height="109" viewBox="0 0 109 109">
<g id="kvg:StrokePaths_04e09" style="fill:none;stroke:#000000;stroke-width:3;stroke-linecap:round;stroke-linejoin:round;">
<g id="kvg:04e09" kvg:element="&#19977;">
	<path id="kvg:04e09-s1" kvg:type="&#12832;" d="M24.75,23.01C27.12,23.74,29.88,23.62,32.04,23.33"/>
	<g id="kvg:04e09-g1" kvg:element="&#20108;">
		<path id="kvg:04e09-s2" kvg:type="&#12832;" d="M16.25,51.75C19.5,52.5,22.5,52.25,25.25,52"/>
		<path id="kvg:04e09-s3" kvg:type="&#12832;" d="M11,80.25C14.19,80.82,17.58,80.68,20.77,80.39"/>
	</g>
</g>
</g>
<g id="kvg:StrokeNumbers_04e09" style="font-size:8;fill:#808080">
	<text transform="matrix(1 0 0 1 17.25 22.5)">1</text>
	<text transform="matrix(1 0 0 1 9.5 49.63)">2</text>
	<text transform="matrix(1 0 0 1 4.25 80.5)">3</text>
</g>
</svg>`

func TestParseGlyph(t *testing.T) {
	g, err := ParseGlyph(strings.NewReader(testGlyphDoc))
	if err != nil {
		t.Fatalf("ParseGlyph error: %v", err)
	}
	want := &Glyph{
		ID: "kvg:04e09",
		Strokes: []Stroke{
			{ID: "kvg:04e09-s1", D: "M24.75,23.01C27.12,23.74,29.88,23.62,32.04,23.33"},
			{ID: "kvg:04e09-s2", D: "M16.25,51.75C19.5,52.5,22.5,52.25,25.25,52"},
			{ID: "kvg:04e09-s3", D: "M11,80.25C14.19,80.82,17.58,80.68,20.77,80.39"},
		},
		Labels: []Label{
			{Transform: "matrix(1 0 0 1 17.25 22.5)", Text: "1"},
			{Transform: "matrix(1 0 0 1 9.5 49.63)", Text: "2"},
			{Transform: "matrix(1 0 0 1 4.25 80.5)", Text: "3"},
		},
		PathGroupID:  "kvg:StrokePaths_04e09",
		PathStyle:    "fill:none;stroke:#000000;stroke-width:3;stroke-linecap:round;stroke-linejoin:round;",
		LabelGroupID: "kvg:StrokeNumbers_04e09",
		LabelStyle:   "font-size:8;fill:#808080",
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("glyph mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGlyphMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "not xml",
			doc:  "this is not a glyph",
		},
		{
			name: "unterminated document",
			doc:  `<svg><g id="a">`,
		},
		{
			name: "wrong root element",
			doc:  `<html><g id="a"/><g id="b"/></html>`,
		},
		{
			name: "single top-level group",
			doc:  `<svg><g id="only"><g id="kvg:x"/></g></svg>`,
		},
		{
			name: "no inner glyph group",
			doc:  `<svg><g id="paths"/><g id="numbers"/></svg>`,
		},
		{
			name: "inner glyph group without id",
			doc:  `<svg><g id="paths"><g><path d="M1,2"/></g></g><g id="numbers"/></svg>`,
		},
		{
			name: "stroke path without d",
			doc:  `<svg><g id="paths"><g id="kvg:x"><path id="kvg:x-s1"/></g></g><g id="numbers"/></svg>`,
		},
		{
			name: "label without transform",
			doc:  `<svg><g id="paths"><g id="kvg:x"><path d="M1,2"/></g></g><g id="numbers"><text>1</text></g></svg>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGlyph(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatalf("ParseGlyph succeeded, want error")
			}
			var gerr *MalformedGlyphError
			if !errors.As(err, &gerr) {
				t.Errorf("error type = %T, want *MalformedGlyphError", err)
			}
		})
	}
}

func TestParseGlyphEmptyGroups(t *testing.T) {
	// Structure is present but there are no strokes: parsing is lenient,
	// composition rejects it.
	doc := `<svg><g id="paths"><g id="kvg:x"/></g><g id="numbers"/></svg>`
	g, err := ParseGlyph(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseGlyph error: %v", err)
	}
	if len(g.Strokes) != 0 || len(g.Labels) != 0 {
		t.Errorf("got %d strokes and %d labels, want none", len(g.Strokes), len(g.Labels))
	}
}

func TestParseGlyphDeclaredEncoding(t *testing.T) {
	doc := `<?xml version="1.0" encoding="ISO-8859-1"?>` +
		`<svg><g id="paths"><g id="kvg:x"><path d="M1,2"/></g></g>` +
		`<g id="numbers"><text transform="matrix(1 0 0 1 5 6)">1</text></g></svg>`
	g, err := ParseGlyph(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseGlyph error: %v", err)
	}
	if g.ID != "kvg:x" || len(g.Strokes) != 1 {
		t.Errorf("got id %q with %d strokes, want kvg:x with 1", g.ID, len(g.Strokes))
	}
}

func TestLoadGlyph(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "04e09.svg")
	if err := os.WriteFile(path, []byte(testGlyphDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadGlyph(path)
	if err != nil {
		t.Fatalf("LoadGlyph error: %v", err)
	}
	if g.ID != "kvg:04e09" {
		t.Errorf("ID = %q, want kvg:04e09", g.ID)
	}

	if _, err := LoadGlyph(filepath.Join(dir, "missing.svg")); err == nil {
		t.Error("LoadGlyph succeeded on a missing file")
	}
}
