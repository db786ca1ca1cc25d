package strokegrid

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTranslatePath(t *testing.T) {
	tests := []struct {
		name      string
		d         string
		dx, dy    float64
		want      string
		wantStart Point
	}{
		{
			name:      "moveto only",
			d:         "M10,20",
			dx:        5,
			dy:        7,
			want:      "M15,27",
			wantStart: Point{X: 15, Y: 27},
		},
		{
			name:      "moveto with cubic run",
			d:         "M10,20C30,40,50,60,70,80",
			dx:        5,
			dy:        7,
			want:      "M15,27C35.00,47.00,55.00,67.00,75.00,87.00",
			wantStart: Point{X: 15, Y: 27},
		},
		{
			name:      "smooth keeps three decimals on the final y",
			d:         "M10,20S30,40,50,60",
			dx:        0,
			dy:        0,
			want:      "M10,20S30.00,40.00,50.00,60.000",
			wantStart: Point{X: 10, Y: 20},
		},
		{
			name:      "poly cubic groups stay comma joined",
			d:         "M0,0C1,2,3,4,5,6,7,8,9,10,11,12",
			dx:        100,
			dy:        0,
			want:      "M100,0C101.00,2.00,103.00,4.00,105.00,6.00,107.00,8.00,109.00,10.00,111.00,12.00",
			wantStart: Point{X: 100, Y: 0},
		},
		{
			name:      "relative run passes through untranslated",
			d:         "M11,54.25c3.19,0.57,6.58,0.43,9.77,0.14",
			dx:        109,
			dy:        218,
			want:      "M120,272.25c3.19,0.57,6.58,0.43,9.77,0.14",
			wantStart: Point{X: 120, Y: 272.25},
		},
		{
			name:      "packed negative separators",
			d:         "M10,20c4.92,0.51,10.01-1.01,14.93-1.62",
			dx:        0,
			dy:        0,
			want:      "M10,20c4.92,0.51,10.01,-1.01,14.93,-1.62",
			wantStart: Point{X: 10, Y: 20},
		},
		{
			name:      "only the first moveto sets the start point",
			d:         "M10,20C1,2,3,4,5,6M30,40C1,2,3,4,5,6",
			dx:        5,
			dy:        7,
			want:      "M15,27C6.00,9.00,8.00,11.00,10.00,13.00M35,47C6.00,9.00,8.00,11.00,10.00,13.00",
			wantStart: Point{X: 15, Y: 27},
		},
		{
			name:      "whitespace separated payload",
			d:         "M 10 20",
			dx:        0,
			dy:        0,
			want:      "M10,20",
			wantStart: Point{X: 10, Y: 20},
		},
		{
			name:      "exponent notation",
			d:         "M1e2,2E-1",
			dx:        0,
			dy:        0,
			want:      "M100,0.2",
			wantStart: Point{X: 100, Y: 0.2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, start, err := TranslatePath(tt.d, tt.dx, tt.dy)
			if err != nil {
				t.Fatalf("TranslatePath(%q, %v, %v) error: %v", tt.d, tt.dx, tt.dy, err)
			}
			if got != tt.want {
				t.Errorf("TranslatePath(%q) = %q, want %q", tt.d, got, tt.want)
			}
			if start != tt.wantStart {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
		})
	}
}

func TestParsePathMalformed(t *testing.T) {
	tests := []struct {
		name string
		d    string
	}{
		{"unsupported leading command", "Z10,20"},
		{"unsupported command mid path", "M10,20Z"},
		{"lowercase line command", "M10,20l5,5"},
		{"cubic payload not a multiple of 6", "M10,20C1,2,3,4,5"},
		{"empty cubic payload", "M10,20C"},
		{"smooth payload not a multiple of 4", "M10,20S1,2,3"},
		{"moveto with one value", "M10"},
		{"moveto with three values", "M10,20,30"},
		{"missing leading moveto", "C1,2,3,4,5,6"},
		{"relative leading moveto", "m10,20"},
		{"no command letter", "10,20"},
		{"empty string", ""},
		{"bare sign", "M10,20C1,2,3,4,5,-"},
		{"double dot number", "M1..5,2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePath(tt.d)
			if err == nil {
				t.Fatalf("ParsePath(%q) succeeded, want error", tt.d)
			}
			var perr *MalformedPathError
			if !errors.As(err, &perr) {
				t.Errorf("ParsePath(%q) error type = %T, want *MalformedPathError", tt.d, err)
			}
		})
	}
}

func TestParsePathSegments(t *testing.T) {
	p, err := ParsePath("M10,20C1,2,3,4,5,6,7,8,9,10,11,12S13,14,15,16c1,1,2,2,3,3")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	want := []Segment{
		MoveTo{Point: Point{X: 10, Y: 20}},
		CubicTo{Curves: []Cubic{
			{Control1: Point{X: 1, Y: 2}, Control2: Point{X: 3, Y: 4}, Point: Point{X: 5, Y: 6}},
			{Control1: Point{X: 7, Y: 8}, Control2: Point{X: 9, Y: 10}, Point: Point{X: 11, Y: 12}},
		}},
		SmoothTo{Curves: []Smooth{
			{Control2: Point{X: 13, Y: 14}, Point: Point{X: 15, Y: 16}},
		}},
		RelCubicTo{Curves: []Cubic{
			{Control1: Point{X: 1, Y: 1}, Control2: Point{X: 2, Y: 2}, Point: Point{X: 3, Y: 3}},
		}},
	}
	if diff := cmp.Diff(want, p.Segments()); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestTranslateAdditivity(t *testing.T) {
	// Translating by (3,4) then (2,3) must equal translating once by (5,7).
	paths := []string{
		"M10,20C30,40,50,60,70,80",
		"M11,54.25C14.19,54.82,17.58,54.68,20.77,54.39,31,53.5,39.75,52.75,49.25,52.5S62,53,64.75,53.25",
		"M32.5,16.25C36,18,39,22,40,26.5c1,4.5,0.5,6,0.25,8.75",
	}
	for _, d := range paths {
		step1, _, err := TranslatePath(d, 3, 4)
		if err != nil {
			t.Fatalf("TranslatePath(%q) error: %v", d, err)
		}
		twice, _, err := TranslatePath(step1, 2, 3)
		if err != nil {
			t.Fatalf("TranslatePath(%q) error: %v", step1, err)
		}
		once, _, err := TranslatePath(d, 5, 7)
		if err != nil {
			t.Fatalf("TranslatePath(%q) error: %v", d, err)
		}
		if twice != once {
			t.Errorf("two-step translation of %q = %q, want %q", d, twice, once)
		}
	}
}

func TestTranslateIdentity(t *testing.T) {
	// A zero translation reformats once, then is a fixpoint.
	d := "M11,54.25C14.19,54.82,17.58,54.68,20.77,54.39S62,53,64.75,53.25c1,4.5,0.5,6,0.25,8.75"
	canonical, start1, err := TranslatePath(d, 0, 0)
	if err != nil {
		t.Fatalf("TranslatePath error: %v", err)
	}
	again, start2, err := TranslatePath(canonical, 0, 0)
	if err != nil {
		t.Fatalf("TranslatePath error: %v", err)
	}
	if again != canonical {
		t.Errorf("second zero translation = %q, want %q", again, canonical)
	}
	if start1 != start2 {
		t.Errorf("start moved from %v to %v under zero translation", start1, start2)
	}
}

func TestTranslatePreservesSegmentStructure(t *testing.T) {
	p, err := ParsePath("M10,20C1,2,3,4,5,6,7,8,9,10,11,12S13,14,15,16c1,1,2,2,3,3s4,4,5,5")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	q := p.Translate(40, 50)
	if got, want := len(q.Segments()), len(p.Segments()); got != want {
		t.Fatalf("segment count after translation = %d, want %d", got, want)
	}
	for i, seg := range q.Segments() {
		orig := p.Segments()[i]
		switch s := seg.(type) {
		case CubicTo:
			if got, want := len(s.Curves), len(orig.(CubicTo).Curves); got != want {
				t.Errorf("segment %d cubic group size = %d, want %d", i, got, want)
			}
		case SmoothTo:
			if got, want := len(s.Curves), len(orig.(SmoothTo).Curves); got != want {
				t.Errorf("segment %d smooth group size = %d, want %d", i, got, want)
			}
		case RelCubicTo:
			if diff := cmp.Diff(orig, seg); diff != "" {
				t.Errorf("relative segment %d changed (-orig +translated):\n%s", i, diff)
			}
		case RelSmoothTo:
			if diff := cmp.Diff(orig, seg); diff != "" {
				t.Errorf("relative segment %d changed (-orig +translated):\n%s", i, diff)
			}
		}
	}
}

func TestStartWithoutMoveTo(t *testing.T) {
	p := &Path{segments: []Segment{RelMoveTo{Offset: Point{X: 1, Y: 2}}}}
	if _, ok := p.Start(); ok {
		t.Error("Start() reported a start point for a path without an absolute moveto")
	}
}
