package simplesvg

import (
	"fmt"
	"strings"
)

// Origin selects which canvas corner is the user-space (0,0) and therefore
// which axes are flipped when converting to markup space.
type Origin int

const (
	TopLeft Origin = iota
	BottomLeft
	TopRight
	BottomRight
)

var originNames = map[Origin]string{
	TopLeft:     "TopLeft",
	BottomLeft:  "BottomLeft",
	TopRight:    "TopRight",
	BottomRight: "BottomRight",
}

func (o Origin) String() string {
	if s, ok := originNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Origin(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Origin) MarshalText() ([]byte, error) {
	if _, ok := originNames[o]; !ok {
		return nil, fmt.Errorf("unknown origin %d", int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are matched
// case-insensitively, with or without a separating dash or underscore.
func (o *Origin) UnmarshalText(text []byte) error {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(string(text))
	for origin, name := range originNames {
		if strings.EqualFold(key, name) {
			*o = origin
			return nil
		}
	}
	return fmt.Errorf("unknown origin %q", string(text))
}

// flipsX reports whether x grows leftwards from the right edge.
func (o Origin) flipsX() bool { return o == TopRight || o == BottomRight }

// flipsY reports whether y grows upwards from the bottom edge.
func (o Origin) flipsY() bool { return o == BottomLeft || o == BottomRight }

// Layout defines the canvas dimensions, origin corner, uniform scale and
// origin offset of a document. It is the only place where user-space
// coordinates are converted to markup space.
type Layout struct {
	Dimensions   Dimensions
	Origin       Origin
	Scale        float64
	OriginOffset Point
	// MarkupRotation writes rotation centers translated to markup space.
	// By default the user-space center is written unchanged, which only
	// matches the drawn shape under an unscaled TopLeft layout.
	MarkupRotation bool
}

// NewLayout creates a layout with scale 1 and no offset.
func NewLayout(d Dimensions, origin Origin) Layout {
	return Layout{Dimensions: d, Origin: origin, Scale: 1}
}

// DefaultLayout returns a 400x300 canvas with a bottom-left origin.
func DefaultLayout() Layout {
	return NewLayout(Dimensions{Width: 400, Height: 300}, BottomLeft)
}

// WithScale returns a copy of the layout using the given scale.
func (l Layout) WithScale(scale float64) Layout {
	l.Scale = scale
	return l
}

// WithOffset returns a copy of the layout using the given origin offset.
func (l Layout) WithOffset(offset Point) Layout {
	l.OriginOffset = offset
	return l
}

// WithMarkupRotation returns a copy of the layout that translates rotation
// centers to markup space.
func (l Layout) WithMarkupRotation(on bool) Layout {
	l.MarkupRotation = on
	return l
}

// TranslateX converts a user-space x coordinate to markup space.
func (l Layout) TranslateX(x float64) float64 {
	if l.Origin.flipsX() {
		return l.Dimensions.Width - (x+l.OriginOffset.X)*l.Scale
	}
	return (l.OriginOffset.X + x) * l.Scale
}

// TranslateY converts a user-space y coordinate to markup space.
func (l Layout) TranslateY(y float64) float64 {
	if l.Origin.flipsY() {
		return l.Dimensions.Height - (y+l.OriginOffset.Y)*l.Scale
	}
	return (l.OriginOffset.Y + y) * l.Scale
}

// TranslatePoint converts a user-space point to markup space.
func (l Layout) TranslatePoint(p Point) Point {
	return Point{X: l.TranslateX(p.X), Y: l.TranslateY(p.Y)}
}

// TranslateScale scales a length such as a radius or stroke width.
// Lengths are never offset or flipped.
func (l Layout) TranslateScale(length float64) float64 {
	return length * l.Scale
}
