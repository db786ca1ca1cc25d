package strokegrid

import "fmt"

// defaultLicense is the attribution notice prepended to composed diagrams.
// KanjiVG is CC BY-SA, so derived diagrams must carry the attribution.
const defaultLicense = `This work is distributed under the conditions of the Creative Commons
Attribution-Share Alike 3.0 License.

See http://creativecommons.org/licenses/by-sa/3.0/ for more details.

This work is based upon KanjiVG (http://kanjivg.tagaini.net/).`

// Options configures diagram composition. The yaml tags let batch runs load
// a whole configuration from one file; see the strokegrid command.
type Options struct {
	// BoxesPerLine is the number of panels per diagram row.
	BoxesPerLine int `yaml:"boxes_per_line"`

	// CellWidth and CellHeight are the panel dimensions, matching the
	// glyph format's fixed viewport. KanjiVG glyphs are 109x109.
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`

	// MarkerRadius, MarkerStrokeWidth and MarkerFill style the circle
	// placed at each panel's newly drawn stroke start.
	MarkerRadius      float64 `yaml:"marker_radius"`
	MarkerStrokeWidth float64 `yaml:"marker_stroke_width"`
	MarkerFill        string  `yaml:"marker_fill"`

	// License is the attribution comment prepended to every diagram.
	// Leave empty to omit the comment.
	License string `yaml:"license"`
}

// DefaultOptions returns the standard KanjiVG diagram configuration.
func DefaultOptions() Options {
	return Options{
		BoxesPerLine:      6,
		CellWidth:         109,
		CellHeight:        109,
		MarkerRadius:      3,
		MarkerStrokeWidth: 0,
		MarkerFill:        "red",
		License:           defaultLicense,
	}
}

// Validate reports the first invalid field, if any.
func (o Options) Validate() error {
	if o.BoxesPerLine < 1 {
		return fmt.Errorf("strokegrid: boxes per line must be at least 1, got %d", o.BoxesPerLine)
	}
	if o.CellWidth <= 0 {
		return fmt.Errorf("strokegrid: cell width must be positive, got %v", o.CellWidth)
	}
	if o.CellHeight <= 0 {
		return fmt.Errorf("strokegrid: cell height must be positive, got %v", o.CellHeight)
	}
	if o.MarkerRadius < 0 {
		return fmt.Errorf("strokegrid: marker radius must not be negative, got %v", o.MarkerRadius)
	}
	if o.MarkerStrokeWidth < 0 {
		return fmt.Errorf("strokegrid: marker stroke width must not be negative, got %v", o.MarkerStrokeWidth)
	}
	if o.MarkerFill == "" {
		return fmt.Errorf("strokegrid: marker fill must not be empty")
	}
	return nil
}
