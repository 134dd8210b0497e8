package simplesvg

import "strings"

// LineChart plots polylines inside a derived axis. Vertex markers and the
// axis are computed on every render and never stored.
type LineChart struct {
	BaseShape
	margin     Dimensions
	scale      float64
	axisStroke Stroke
	polylines  []*Polyline
}

func (c *LineChart) GetType() ShapeType { return ShapeTypeLineChart }

// NewLineChart creates an empty chart. The plot is shifted by margin in user
// space. scale is stored but not applied.
func NewLineChart(margin Dimensions, scale float64, axisStroke Stroke) *LineChart {
	return &LineChart{
		BaseShape:  BaseShape{fill: NoFill(), stroke: NoStroke()},
		margin:     margin,
		scale:      scale,
		axisStroke: axisStroke,
	}
}

// NewDefaultLineChart creates a chart with the given margin and a thin
// purple axis.
func NewDefaultLineChart(margin Dimensions) *LineChart {
	return NewLineChart(margin, 1, NewStroke(0.5, Purple.Color()))
}

// AddPolyline appends a copy of p. Polylines without points are ignored.
func (c *LineChart) AddPolyline(p *Polyline) *LineChart {
	if p == nil || p.Len() == 0 {
		return c
	}
	c.polylines = append(c.polylines, p.clone())
	return c
}

// GetPolylineCount returns the number of plotted polylines.
func (c *LineChart) GetPolylineCount() int { return len(c.polylines) }

func (c *LineChart) GetMargin() Dimensions { return c.margin }
func (c *LineChart) GetScale() float64     { return c.scale }
func (c *LineChart) GetAxisStroke() Stroke { return c.axisStroke }

func (c *LineChart) Offset(d Point) {
	for _, p := range c.polylines {
		p.Offset(d)
	}
}

// GetRotationCenter returns the middle of the box spanned by the
// polylines' centroids.
func (c *LineChart) GetRotationCenter() Point {
	centers := make([]Point, len(c.polylines))
	for i, p := range c.polylines {
		centers[i] = p.GetRotationCenter()
	}
	box, ok := Bounds(centers).Get()
	if !ok {
		return Point{}
	}
	return box.Center()
}

func (c *LineChart) Clone() Shape {
	cp := *c
	cp.polylines = make([]*Polyline, len(c.polylines))
	for i, p := range c.polylines {
		cp.polylines[i] = p.clone()
	}
	return &cp
}

// dataSize returns the extent of all plotted points.
func (c *LineChart) dataSize() Optional[Size] {
	var all []Point
	for _, p := range c.polylines {
		all = append(all, p.points...)
	}
	box, ok := Bounds(all).Get()
	if !ok {
		return None[Size]()
	}
	return Some(box.Size)
}

// parts expands the chart into primitives in drawing order: each shifted
// polyline followed by its vertex markers, then the axis.
func (c *LineChart) parts() []Shape {
	size, ok := c.dataSize().Get()
	if !ok {
		return nil
	}
	shift := Point{X: c.margin.Width, Y: c.margin.Height}
	marker := size.Height / 30

	var out []Shape
	for _, p := range c.polylines {
		shifted := p.clone()
		shifted.Offset(shift)
		out = append(out, shifted)
		for _, pt := range shifted.points {
			out = append(out, NewCircle(pt, marker, NewFill(Black.Color()), NoStroke()))
		}
	}

	// Axis extends 10% past the data.
	w, h := size.Width*1.1, size.Height*1.1
	axis := NewPolyline(NoFill(), c.axisStroke).AddPoints(
		Point{X: c.margin.Width, Y: c.margin.Height + h},
		Point{X: c.margin.Width, Y: c.margin.Height},
		Point{X: c.margin.Width + w, Y: c.margin.Height},
	)
	return append(out, axis)
}

// ToMarkup renders the chart, or "" when it has no polylines. A rotated
// chart is wrapped in a <g> carrying the transform.
func (c *LineChart) ToMarkup(l Layout) string {
	parts := c.parts()
	if len(parts) == 0 {
		return ""
	}
	var sb strings.Builder
	rot := rotationAttr(c.rotation, c.GetRotationCenter(), l)
	if rot != "" {
		sb.WriteString(elemStart("g"))
		sb.WriteString(rot)
		sb.WriteString(">\n")
	}
	for _, s := range parts {
		sb.WriteString(s.ToMarkup(l))
	}
	if rot != "" {
		sb.WriteString(elemEnd("g"))
	}
	return sb.String()
}
