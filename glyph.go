package strokegrid

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// Glyph is the typed view of one KanjiVG stroke-order document: the ordered
// stroke paths, the stroke-number labels, and the group metadata needed to
// rebuild a diagram in the same style.
//
// KanjiVG files carry two top-level groups. The first wraps a single inner
// group whose id names the glyph and whose nested path elements appear in
// stroke order. The second holds one text element per stroke, positioned by
// a matrix transform.
type Glyph struct {
	// ID is the id of the inner glyph group, e.g. "kvg:04e09". Element ids
	// in composed diagrams are derived from it.
	ID string

	Strokes []Stroke // document order, which is stroke order
	Labels  []Label  // label i numbers stroke i

	// Group attributes carried through to composed diagrams.
	PathGroupID  string
	PathStyle    string
	LabelGroupID string
	LabelStyle   string
}

// Stroke is a single stroke path: its source id and its path data.
type Stroke struct {
	ID string
	D  string
}

// Label is a stroke-number label: its positioning transform and its
// display text.
type Label struct {
	Transform string
	Text      string
}

// LoadGlyph reads and parses a glyph document from a file.
func LoadGlyph(path string) (*Glyph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := ParseGlyph(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// ParseGlyph parses a glyph document. The reader may be in any encoding
// declared by the document's XML header.
//
// Structural problems, including XML that does not parse at all, are
// reported as a *MalformedGlyphError. ParseGlyph does not require stroke
// and label counts to match; Compose checks that.
func ParseGlyph(r io.Reader) (*Glyph, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var root xmlNode
	if err := dec.Decode(&root); err != nil {
		return nil, &MalformedGlyphError{Reason: err.Error()}
	}
	if root.XMLName.Local != "svg" {
		return nil, &MalformedGlyphError{Reason: fmt.Sprintf("root element is %q, want svg", root.XMLName.Local)}
	}

	groups := root.childElements("g")
	if len(groups) < 2 {
		return nil, &MalformedGlyphError{Reason: fmt.Sprintf("expected 2 top-level groups, found %d", len(groups))}
	}
	pathGroup, labelGroup := groups[0], groups[1]

	inner := pathGroup.firstChildElement("g")
	if inner == nil {
		return nil, &MalformedGlyphError{Reason: "stroke group has no inner glyph group"}
	}
	id, ok := inner.attr("id")
	if !ok || id == "" {
		return nil, &MalformedGlyphError{Reason: "inner glyph group has no id"}
	}

	g := &Glyph{ID: id}
	g.PathGroupID, _ = pathGroup.attr("id")
	g.PathStyle, _ = pathGroup.attr("style")
	g.LabelGroupID, _ = labelGroup.attr("id")
	g.LabelStyle, _ = labelGroup.attr("style")

	var walkErr error
	inner.walk("path", func(n *xmlNode) {
		d, ok := n.attr("d")
		if !ok && walkErr == nil {
			walkErr = &MalformedGlyphError{Reason: "stroke path element has no d attribute"}
		}
		sid, _ := n.attr("id")
		g.Strokes = append(g.Strokes, Stroke{ID: sid, D: d})
	})
	if walkErr != nil {
		return nil, walkErr
	}
	labelGroup.walk("text", func(n *xmlNode) {
		transform, ok := n.attr("transform")
		if !ok && walkErr == nil {
			walkErr = &MalformedGlyphError{Reason: "stroke number label has no transform attribute"}
		}
		g.Labels = append(g.Labels, Label{Transform: transform, Text: strings.TrimSpace(n.Text)})
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return g, nil
}

// xmlNode is a generic ordered view of an XML element, used to navigate the
// glyph document by name instead of by child position.
type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []xmlNode  `xml:",any"`
	Text    string     `xml:",chardata"`
}

// attr returns the value of an unprefixed attribute.
func (n *xmlNode) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// childElements returns the direct children with the given local name,
// whatever their namespace, in document order.
func (n *xmlNode) childElements(local string) []*xmlNode {
	var out []*xmlNode
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == local {
			out = append(out, &n.Nodes[i])
		}
	}
	return out
}

func (n *xmlNode) firstChildElement(local string) *xmlNode {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == local {
			return &n.Nodes[i]
		}
	}
	return nil
}

// walk visits every descendant with the given local name in document order.
func (n *xmlNode) walk(local string, visit func(*xmlNode)) {
	for i := range n.Nodes {
		c := &n.Nodes[i]
		if c.XMLName.Local == local {
			visit(c)
		}
		c.walk(local, visit)
	}
}
