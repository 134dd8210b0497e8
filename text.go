package simplesvg

import (
	"encoding/xml"
	"strings"
)

// Text is a run of text anchored at its baseline origin.
type Text struct {
	BaseShape
	origin      Point
	content     string
	font        Font
	escape      bool
	aboutCenter bool
	width       float64 // measured advance, set by SetRotateAboutCenter
}

func (t *Text) GetType() ShapeType { return ShapeTypeText }

// NewText creates a text shape. Content is written verbatim unless
// SetEscape(true) is called.
func NewText(origin Point, content string, fill Fill, font Font) *Text {
	return &Text{
		BaseShape: BaseShape{fill: fill, stroke: NoStroke()},
		origin:    origin,
		content:   content,
		font:      font,
	}
}

func (t *Text) GetOrigin() Point   { return t.origin }
func (t *Text) GetContent() string { return t.content }
func (t *Text) GetFont() Font      { return t.font }
func (t *Text) Offset(d Point)     { t.origin = t.origin.Add(d) }

// SetEscape controls whether reserved XML characters in the content are
// escaped on output.
func (t *Text) SetEscape(escape bool) *Text {
	t.escape = escape
	return t
}

// SetRotateAboutCenter makes the rotation transform pivot on the measured
// center of the text instead of its origin. The text is measured once here
// with fc, or DefaultFontCache when fc is nil. The measured center is always
// written in markup space.
func (t *Text) SetRotateAboutCenter(fc *FontCache) *Text {
	t.aboutCenter = true
	t.width = t.measure(fc)
	return t
}

// SetRotateAboutOrigin restores the default pivot, the text origin.
func (t *Text) SetRotateAboutOrigin() *Text {
	t.aboutCenter = false
	t.width = 0
	return t
}

// GetRotationCenter returns the text origin.
func (t *Text) GetRotationCenter() Point { return t.origin }

// GetTextCenter returns the center of the text's estimated box in markup
// space: the measured advance width by the font size, extending up from
// the baseline. A nil fc uses DefaultFontCache.
func (t *Text) GetTextCenter(l Layout, fc *FontCache) Point {
	return t.centerFor(l, t.measure(fc))
}

func (t *Text) measure(fc *FontCache) float64 {
	if fc == nil {
		fc = DefaultFontCache()
	}
	width, err := fc.MeasureString(t.content, t.font)
	if err != nil {
		// Rough monospace estimate.
		width = float64(len([]rune(t.content))) * t.font.Size * 0.6
	}
	return width
}

func (t *Text) centerFor(l Layout, width float64) Point {
	return Point{
		X: l.TranslateX(t.origin.X) + l.TranslateScale(width)/2,
		Y: l.TranslateY(t.origin.Y) - l.TranslateScale(t.font.Size)/2,
	}
}

func (t *Text) Clone() Shape {
	cp := *t
	return &cp
}

func (t *Text) ToMarkup(l Layout) string {
	var sb strings.Builder
	sb.WriteString(elemStart("text"))
	sb.WriteString(numAttr("x", l.TranslateX(t.origin.X), ""))
	sb.WriteString(numAttr("y", l.TranslateY(t.origin.Y), ""))
	sb.WriteString(t.fill.ToMarkup(l))
	sb.WriteString(t.stroke.ToMarkup(l))
	sb.WriteString(t.font.ToMarkup(l))
	if t.aboutCenter {
		sb.WriteString(rotateAt(t.rotation, t.centerFor(l, t.width)))
	} else {
		sb.WriteString(rotationAttr(t.rotation, t.origin, l))
	}
	sb.WriteByte('>')
	if t.escape {
		xml.EscapeText(&sb, []byte(t.content))
	} else {
		sb.WriteString(t.content)
	}
	sb.WriteString(elemEnd("text"))
	return sb.String()
}
