// Package simplesvg is a small object model for composing SVG documents.
//
// Shapes are built with fluent constructors, appended to a Document or a
// ShapeCollection, and serialized through a Layout that maps user-space
// coordinates to markup space under a chosen origin corner and scale.
//
// See the Version variable for the current library version.
package simplesvg

import (
	"io"
	"strings"
)

// Document is an append-only SVG document. Shapes are serialized against the
// document layout when added; only the resulting fragments are kept.
type Document struct {
	fileName  string
	layout    Layout
	fragments []string
}

// NewDocument creates an empty document saved to fileName.
func NewDocument(fileName string, layout Layout) *Document {
	return &Document{fileName: fileName, layout: layout}
}

// GetFileName returns the path used by Save.
func (d *Document) GetFileName() string { return d.fileName }

// GetLayout returns the layout fragments are rendered with.
func (d *Document) GetLayout() Layout { return d.layout }

// GetFragmentCount returns the number of appended shapes.
func (d *Document) GetFragmentCount() int { return len(d.fragments) }

// Add renders s immediately. Changing s afterwards does not affect the
// document.
func (d *Document) Add(s Shape) *Document {
	if s == nil {
		return d
	}
	d.fragments = append(d.fragments, s.ToMarkup(d.layout))
	return d
}

// AddCollection renders every shape of c in order.
func (d *Document) AddCollection(c *ShapeCollection) *Document {
	if c == nil {
		return d
	}
	for _, s := range c.shapes {
		d.Add(s)
	}
	return d
}

func (d *Document) writeMarkup(sb *strings.Builder) {
	sb.WriteString("<?xml ")
	sb.WriteString(attr("version", "1.0"))
	sb.WriteString(attr("standalone", "no"))
	sb.WriteString("?>\n")
	sb.WriteString(svgDocType)
	sb.WriteString("\n<svg ")
	sb.WriteString(numAttr("width", d.layout.Dimensions.Width, "px"))
	sb.WriteString(numAttr("height", d.layout.Dimensions.Height, "px"))
	sb.WriteString(attr("xmlns", nsSVG))
	sb.WriteString(attr("version", svgVersion))
	sb.WriteString(">\n")
	for _, f := range d.fragments {
		sb.WriteString(f)
	}
	sb.WriteString(elemEnd("svg"))
}

// String returns the complete document: XML declaration, DOCTYPE and the
// <svg> element wrapping every fragment.
func (d *Document) String() string {
	var sb strings.Builder
	d.writeMarkup(&sb)
	return sb.String()
}

// WriteTo writes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// Save writes the document to its file name and reports whether it
// succeeded. Failures are logged, never returned.
func (d *Document) Save() bool {
	Logger().Debug("saving document", "path", d.fileName)
	if err := d.SaveAs(d.fileName); err != nil {
		Logger().Warn("save failed", "path", d.fileName, "error", err)
		return false
	}
	return true
}

// SaveAs writes the document to path, creating parent directories.
func (d *Document) SaveAs(path string) error {
	w, err := NewWriter(d, WriterSVG)
	if err != nil {
		return err
	}
	return w.Save(path)
}
