package strokegrid

import "fmt"

// MalformedPathError reports a stroke path whose drawing commands cannot be
// handled: an unsupported command letter, or a numeric payload whose length
// does not match the command.
type MalformedPathError struct {
	// Command is the offending command letter, or 0 when the problem is not
	// tied to a single command.
	Command byte

	// D is the path data string being parsed.
	D string

	// Reason describes what was wrong.
	Reason string
}

func (e *MalformedPathError) Error() string {
	if e.Command != 0 {
		return fmt.Sprintf("strokegrid: malformed path %q: command %q: %s", truncate(e.D, 40), e.Command, e.Reason)
	}
	return fmt.Sprintf("strokegrid: malformed path %q: %s", truncate(e.D, 40), e.Reason)
}

// MalformedTransformError reports a label transform attribute that is not a
// matrix(...) form with at least six numeric components.
type MalformedTransformError struct {
	// Transform is the attribute value being parsed.
	Transform string

	// Reason describes what was wrong.
	Reason string
}

func (e *MalformedTransformError) Error() string {
	return fmt.Sprintf("strokegrid: malformed transform %q: %s", truncate(e.Transform, 40), e.Reason)
}

// MalformedGlyphError reports a glyph document whose structure does not match
// the expected KanjiVG shape: missing groups, a glyph group without an id, or
// a stroke/label count mismatch.
type MalformedGlyphError struct {
	// Reason describes what was wrong.
	Reason string
}

func (e *MalformedGlyphError) Error() string {
	return "strokegrid: malformed glyph: " + e.Reason
}

// truncate shortens s for error messages; path data strings can run to
// hundreds of characters.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
