package simplesvg

import (
	"fmt"
	"strings"
)

// Validate checks the layout for values that produce a degenerate canvas and
// returns an error describing all problems found, or nil.
func (l Layout) Validate() error {
	return joinProblems(validateLayout(l))
}

func validateLayout(l Layout) []string {
	var errs []string
	if l.Dimensions.Width <= 0 {
		errs = append(errs, "layout width must be positive")
	}
	if l.Dimensions.Height <= 0 {
		errs = append(errs, "layout height must be positive")
	}
	if l.Scale <= 0 {
		errs = append(errs, "layout scale must be positive")
	}
	if _, ok := originNames[l.Origin]; !ok {
		errs = append(errs, fmt.Sprintf("unknown origin %d", int(l.Origin)))
	}
	return errs
}

// Validate checks every shape for values that render as nothing or as
// invalid markup. Rendering does not call Validate; it is advisory.
func (c *ShapeCollection) Validate() error {
	var errs []string
	for i, s := range c.shapes {
		errs = append(errs, validateShape(s, fmt.Sprintf("shape %d", i+1))...)
	}
	return joinProblems(errs)
}

func validateShape(s Shape, prefix string) []string {
	if s == nil {
		return []string{prefix + ": shape is nil"}
	}
	b := s.base()
	errs := validatePaint(b.fill, b.stroke, prefix)

	switch sh := s.(type) {
	case *Circle:
		if sh.radius < 0 {
			errs = append(errs, prefix+": circle diameter is negative")
		}
	case *Ellipse:
		if sh.radiusX < 0 || sh.radiusY < 0 {
			errs = append(errs, prefix+": ellipse size is negative")
		}
	case *Rectangle:
		if sh.width < 0 {
			errs = append(errs, prefix+": rectangle width is negative")
		}
		if sh.height < 0 {
			errs = append(errs, prefix+": rectangle height is negative")
		}
	case *Polygon:
		if len(sh.points) < 3 {
			errs = append(errs, fmt.Sprintf("%s: polygon has %d points, need at least 3", prefix, len(sh.points)))
		}
	case *Polyline:
		if len(sh.points) < 2 {
			errs = append(errs, fmt.Sprintf("%s: polyline has %d points, need at least 2", prefix, len(sh.points)))
		}
	case *Path:
		if len(sh.GetPoints()) == 0 {
			errs = append(errs, prefix+": path has no points")
		}
	case *Text:
		if sh.content == "" {
			errs = append(errs, prefix+": text is empty")
		}
		if sh.font.Size <= 0 {
			errs = append(errs, prefix+": font size must be positive")
		}
		if !sh.escape && strings.ContainsAny(sh.content, "<&") {
			errs = append(errs, prefix+": text contains unescaped markup characters")
		}
	case *Group:
		for k, child := range sh.shapes {
			errs = append(errs, validateShape(child, fmt.Sprintf("%s: child %d", prefix, k+1))...)
		}
	case *LineChart:
		if len(sh.polylines) == 0 {
			errs = append(errs, prefix+": line chart has no polylines")
		}
		errs = append(errs, validateColor(sh.axisStroke.Color, prefix+": axis stroke")...)
	}
	return errs
}

func validatePaint(f Fill, s Stroke, prefix string) []string {
	errs := validateColor(f.Color, prefix+": fill")
	if s.IsEnabled() {
		errs = append(errs, validateColor(s.Color, prefix+": stroke")...)
	}
	return errs
}

// validateColor checks that every channel is within [0,255].
func validateColor(c Color, prefix string) []string {
	if c.Transparent {
		return nil
	}
	for _, ch := range [...]struct {
		name string
		v    int
	}{{"red", c.R}, {"green", c.G}, {"blue", c.B}} {
		if ch.v < 0 || ch.v > 255 {
			return []string{fmt.Sprintf("%s color has %s channel %d out of range", prefix, ch.name, ch.v)}
		}
	}
	return nil
}

func joinProblems(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}
