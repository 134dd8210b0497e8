package simplesvg

import "strings"

// Shape is the interface that all drawable entities implement.
type Shape interface {
	GetType() ShapeType
	// ToMarkup serializes the shape to a markup fragment under l.
	ToMarkup(l Layout) string
	// Offset moves every coordinate of the shape by d.
	Offset(d Point)
	// GetRotationCenter returns the user-space point the rotation
	// transform is centered on.
	GetRotationCenter() Point
	GetRotation() float64
	// Clone returns an independent deep copy.
	Clone() Shape
	// base returns the underlying BaseShape (unexported, internal use only).
	base() *BaseShape
}

// ShapeType represents the type of shape.
type ShapeType int

const (
	ShapeTypeCircle ShapeType = iota
	ShapeTypeEllipse
	ShapeTypeRectangle
	ShapeTypeLine
	ShapeTypePolygon
	ShapeTypePolyline
	ShapeTypePath
	ShapeTypeText
	ShapeTypeGroup
	ShapeTypeLineChart
)

var shapeTypeNames = [...]string{
	ShapeTypeCircle:    "circle",
	ShapeTypeEllipse:   "ellipse",
	ShapeTypeRectangle: "rect",
	ShapeTypeLine:      "line",
	ShapeTypePolygon:   "polygon",
	ShapeTypePolyline:  "polyline",
	ShapeTypePath:      "path",
	ShapeTypeText:      "text",
	ShapeTypeGroup:     "g",
	ShapeTypeLineChart: "linechart",
}

func (t ShapeType) String() string {
	if t < 0 || int(t) >= len(shapeTypeNames) {
		return "unknown"
	}
	return shapeTypeNames[t]
}

// BaseShape contains common shape properties. Its zero value paints a black
// fill and a zero-width black stroke; constructors take fill and stroke
// explicitly so that NoFill and NoStroke can be passed.
type BaseShape struct {
	fill     Fill
	stroke   Stroke
	rotation float64 // in degrees
}

func (b *BaseShape) GetFill() Fill        { return b.fill }
func (b *BaseShape) GetStroke() Stroke    { return b.stroke }
func (b *BaseShape) GetRotation() float64 { return b.rotation }
func (b *BaseShape) base() *BaseShape     { return b }

func (b *BaseShape) SetFill(f Fill) *BaseShape {
	b.fill = f
	return b
}

func (b *BaseShape) SetStroke(s Stroke) *BaseShape {
	b.stroke = s
	return b
}

// SetRotation sets the presentation rotation in degrees. It does not touch
// the shape's coordinates.
func (b *BaseShape) SetRotation(degrees float64) *BaseShape {
	b.rotation = degrees
	return b
}

// paint renders fill, stroke and rotation attributes in that order.
func (b *BaseShape) paint(s Shape, l Layout) string {
	return b.fill.ToMarkup(l) + b.stroke.ToMarkup(l) + rotationAttr(b.rotation, s.GetRotationCenter(), l)
}

// Circle is a circle given by its center and diameter.
type Circle struct {
	BaseShape
	center Point
	radius float64
}

func (c *Circle) GetType() ShapeType { return ShapeTypeCircle }

// NewCircle creates a circle. The radius written to markup is diameter/2.
func NewCircle(center Point, diameter float64, fill Fill, stroke Stroke) *Circle {
	return &Circle{BaseShape: BaseShape{fill: fill, stroke: stroke}, center: center, radius: diameter / 2}
}

func (c *Circle) GetCenter() Point         { return c.center }
func (c *Circle) GetRadius() float64       { return c.radius }
func (c *Circle) Offset(d Point)           { c.center = c.center.Add(d) }
func (c *Circle) GetRotationCenter() Point { return c.center }

func (c *Circle) Clone() Shape {
	cp := *c
	return &cp
}

func (c *Circle) ToMarkup(l Layout) string {
	var sb strings.Builder
	sb.WriteString(elemStart("circle"))
	sb.WriteString(numAttr("cx", l.TranslateX(c.center.X), ""))
	sb.WriteString(numAttr("cy", l.TranslateY(c.center.Y), ""))
	sb.WriteString(numAttr("r", l.TranslateScale(c.radius), ""))
	sb.WriteString(c.paint(c, l))
	sb.WriteString(emptyElemEnd)
	return sb.String()
}

// Ellipse is an axis-aligned ellipse given by its center and extents.
type Ellipse struct {
	BaseShape
	center  Point
	radiusX float64
	radiusY float64
}

func (e *Ellipse) GetType() ShapeType { return ShapeTypeEllipse }

// NewEllipse creates an ellipse from its full width and height.
func NewEllipse(center Point, width, height float64, fill Fill, stroke Stroke) *Ellipse {
	return &Ellipse{BaseShape: BaseShape{fill: fill, stroke: stroke}, center: center, radiusX: width / 2, radiusY: height / 2}
}

func (e *Ellipse) GetCenter() Point           { return e.center }
func (e *Ellipse) GetRadii() (rx, ry float64) { return e.radiusX, e.radiusY }
func (e *Ellipse) Offset(d Point)             { e.center = e.center.Add(d) }
func (e *Ellipse) GetRotationCenter() Point   { return e.center }

func (e *Ellipse) Clone() Shape {
	cp := *e
	return &cp
}

func (e *Ellipse) ToMarkup(l Layout) string {
	var sb strings.Builder
	sb.WriteString(elemStart("ellipse"))
	sb.WriteString(numAttr("cx", l.TranslateX(e.center.X), ""))
	sb.WriteString(numAttr("cy", l.TranslateY(e.center.Y), ""))
	sb.WriteString(numAttr("rx", l.TranslateScale(e.radiusX), ""))
	sb.WriteString(numAttr("ry", l.TranslateScale(e.radiusY), ""))
	sb.WriteString(e.paint(e, l))
	sb.WriteString(emptyElemEnd)
	return sb.String()
}

// Rectangle is given by the corner written as x,y and its size.
type Rectangle struct {
	BaseShape
	edge   Point
	width  float64
	height float64
}

func (r *Rectangle) GetType() ShapeType { return ShapeTypeRectangle }

// NewRectangle creates a rectangle.
func NewRectangle(edge Point, width, height float64, fill Fill, stroke Stroke) *Rectangle {
	return &Rectangle{BaseShape: BaseShape{fill: fill, stroke: stroke}, edge: edge, width: width, height: height}
}

func (r *Rectangle) GetEdge() Point { return r.edge }
func (r *Rectangle) GetSize() Size  { return Size{Width: r.width, Height: r.height} }
func (r *Rectangle) Offset(d Point) { r.edge = r.edge.Add(d) }

// GetRotationCenter returns the geometric center.
func (r *Rectangle) GetRotationCenter() Point {
	return Point{X: r.edge.X + r.width/2, Y: r.edge.Y + r.height/2}
}

func (r *Rectangle) Clone() Shape {
	cp := *r
	return &cp
}

func (r *Rectangle) ToMarkup(l Layout) string {
	var sb strings.Builder
	sb.WriteString(elemStart("rect"))
	sb.WriteString(numAttr("x", l.TranslateX(r.edge.X), ""))
	sb.WriteString(numAttr("y", l.TranslateY(r.edge.Y), ""))
	sb.WriteString(numAttr("width", l.TranslateScale(r.width), ""))
	sb.WriteString(numAttr("height", l.TranslateScale(r.height), ""))
	sb.WriteString(r.paint(r, l))
	sb.WriteString(emptyElemEnd)
	return sb.String()
}

// Line is a stroke-only segment; it never emits a fill attribute.
type Line struct {
	BaseShape
	start Point
	end   Point
}

func (ln *Line) GetType() ShapeType { return ShapeTypeLine }

// NewLine creates a line segment.
func NewLine(start, end Point, stroke Stroke) *Line {
	return &Line{BaseShape: BaseShape{fill: NoFill(), stroke: stroke}, start: start, end: end}
}

func (ln *Line) GetEndpoints() (start, end Point) { return ln.start, ln.end }

func (ln *Line) Offset(d Point) {
	ln.start = ln.start.Add(d)
	ln.end = ln.end.Add(d)
}

// GetRotationCenter returns the midpoint of the endpoints.
func (ln *Line) GetRotationCenter() Point {
	return ln.start.Add(ln.end).Div(2)
}

func (ln *Line) Clone() Shape {
	cp := *ln
	return &cp
}

func (ln *Line) ToMarkup(l Layout) string {
	var sb strings.Builder
	sb.WriteString(elemStart("line"))
	sb.WriteString(numAttr("x1", l.TranslateX(ln.start.X), ""))
	sb.WriteString(numAttr("y1", l.TranslateY(ln.start.Y), ""))
	sb.WriteString(numAttr("x2", l.TranslateX(ln.end.X), ""))
	sb.WriteString(numAttr("y2", l.TranslateY(ln.end.Y), ""))
	sb.WriteString(ln.stroke.ToMarkup(l))
	sb.WriteString(rotationAttr(ln.rotation, ln.GetRotationCenter(), l))
	sb.WriteString(emptyElemEnd)
	return sb.String()
}
