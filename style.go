package simplesvg

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Color represents an RGB color or the transparent sentinel. Channels are
// not range checked. The zero Color is black.
type Color struct {
	Transparent bool
	R, G, B     int
}

// NamedColor is the fixed palette of predefined colors.
type NamedColor int

const (
	Transparent NamedColor = iota - 1
	Aqua
	Black
	Blue
	Brown
	Cyan
	Fuchsia
	Green
	Lime
	Magenta
	Orange
	Purple
	Red
	Silver
	White
	Yellow
)

var namedColors = [...]struct {
	name    string
	r, g, b int
}{
	Aqua:    {"aqua", 0, 255, 255},
	Black:   {"black", 0, 0, 0},
	Blue:    {"blue", 0, 0, 255},
	Brown:   {"brown", 165, 42, 42},
	Cyan:    {"cyan", 0, 255, 255},
	Fuchsia: {"fuchsia", 255, 0, 255},
	Green:   {"green", 0, 128, 0},
	Lime:    {"lime", 0, 255, 0},
	Magenta: {"magenta", 255, 0, 255},
	Orange:  {"orange", 255, 165, 0},
	Purple:  {"purple", 128, 0, 128},
	Red:     {"red", 255, 0, 0},
	Silver:  {"silver", 192, 192, 192},
	White:   {"white", 255, 255, 255},
	Yellow:  {"yellow", 255, 255, 0},
}

// NewRGB creates a color from red, green and blue channels.
func NewRGB(r, g, b int) Color {
	return Color{R: r, G: g, B: b}
}

// NewNamedColor resolves a palette entry to its RGB triple. Transparent and
// any value outside the palette yield the transparent color.
func NewNamedColor(n NamedColor) Color {
	if n < 0 || int(n) >= len(namedColors) {
		return Color{Transparent: true}
	}
	c := namedColors[n]
	return Color{R: c.r, G: c.g, B: c.b}
}

// Color returns the RGB value of the palette entry.
func (n NamedColor) Color() Color { return NewNamedColor(n) }

func (n NamedColor) String() string {
	if n < 0 || int(n) >= len(namedColors) {
		return "transparent"
	}
	return namedColors[n].name
}

// ColorByName looks up a palette color by name, ignoring case.
// "none" and "transparent" resolve to the transparent color.
func ColorByName(name string) (Color, bool) {
	key := cases.Fold().String(strings.TrimSpace(name))
	if key == "none" || key == "transparent" {
		return Color{Transparent: true}, true
	}
	for i, c := range namedColors {
		if c.name == key {
			return NewNamedColor(NamedColor(i)), true
		}
	}
	return Color{}, false
}

// String returns the markup form of the color: "none" or "rgb(r,g,b)".
func (c Color) String() string {
	if c.Transparent {
		return "none"
	}
	return "rgb(" + strconv.Itoa(c.R) + "," + strconv.Itoa(c.G) + "," + strconv.Itoa(c.B) + ")"
}

// Fill is the interior paint of a shape. The zero Fill paints black, as SVG
// does by default; use NoFill for an unfilled shape.
type Fill struct {
	Color Color
}

// NewFill creates a fill of the given color.
func NewFill(c Color) Fill { return Fill{Color: c} }

// NoFill returns a transparent fill.
func NoFill() Fill { return Fill{Color: Color{Transparent: true}} }

// ToMarkup renders the fill attribute.
func (f Fill) ToMarkup(Layout) string {
	return attr("fill", f.Color.String())
}

// LineCap is the stroke-linecap value.
type LineCap string

const (
	LineCapNone   LineCap = ""
	LineCapButt   LineCap = "butt"
	LineCapRound  LineCap = "round"
	LineCapSquare LineCap = "square"
)

// LineJoin is the stroke-linejoin value.
type LineJoin string

const (
	LineJoinNone  LineJoin = ""
	LineJoinMiter LineJoin = "miter"
	LineJoinRound LineJoin = "round"
	LineJoinBevel LineJoin = "bevel"
)

// Stroke is the outline paint of a shape. A negative width disables the
// stroke entirely: no stroke attributes are emitted.
//
// The zero Stroke is not the absent stroke. It is a black stroke of width 0
// and is written as such; use NoStroke for a shape without an outline.
type Stroke struct {
	Width      float64
	Color      Color
	NonScaling bool
	LineCap    LineCap
	LineJoin   LineJoin
	DashArray  string
}

// NewStroke creates a stroke of the given width and color.
func NewStroke(width float64, c Color) Stroke {
	return Stroke{Width: width, Color: c}
}

// NoStroke returns a disabled stroke.
func NoStroke() Stroke {
	return Stroke{Width: -1, Color: Color{Transparent: true}}
}

// WithNonScaling returns a copy that keeps its width under zoom.
func (s Stroke) WithNonScaling(nonScaling bool) Stroke {
	s.NonScaling = nonScaling
	return s
}

// WithLineCap returns a copy with the given line cap.
func (s Stroke) WithLineCap(c LineCap) Stroke {
	s.LineCap = c
	return s
}

// WithLineJoin returns a copy with the given line join.
func (s Stroke) WithLineJoin(j LineJoin) Stroke {
	s.LineJoin = j
	return s
}

// WithDashArray returns a copy with the given dash pattern, e.g. "5,3".
func (s Stroke) WithDashArray(d string) Stroke {
	s.DashArray = d
	return s
}

// IsEnabled reports whether the stroke produces any output.
func (s Stroke) IsEnabled() bool { return s.Width >= 0 }

// ToMarkup renders the stroke attributes with the width scaled by l.
func (s Stroke) ToMarkup(l Layout) string {
	if !s.IsEnabled() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(numAttr("stroke-width", l.TranslateScale(s.Width), ""))
	sb.WriteString(attr("stroke", s.Color.String()))
	if s.NonScaling {
		sb.WriteString(attr("vector-effect", "non-scaling-stroke"))
	}
	if s.LineCap != LineCapNone {
		sb.WriteString(attr("stroke-linecap", string(s.LineCap)))
	}
	if s.LineJoin != LineJoinNone {
		sb.WriteString(attr("stroke-linejoin", string(s.LineJoin)))
	}
	if s.DashArray != "" {
		sb.WriteString(attr("stroke-dasharray", s.DashArray))
	}
	return sb.String()
}

// Font represents text font properties.
type Font struct {
	Size   float64 // in user units
	Family string
}

// NewFont creates a font of the given size and family.
func NewFont(size float64, family string) Font {
	return Font{Size: size, Family: family}
}

// DefaultFont returns 12 unit Verdana.
func DefaultFont() Font {
	return Font{Size: 12, Family: "Verdana"}
}

// ToMarkup renders the font attributes with the size scaled by l.
func (f Font) ToMarkup(l Layout) string {
	return numAttr("font-size", l.TranslateScale(f.Size), "") + attr("font-family", f.Family)
}
