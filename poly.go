package simplesvg

import (
	"slices"
	"strings"
)

// Polygon is a closed shape through an ordered list of points.
type Polygon struct {
	BaseShape
	points []Point
}

func (p *Polygon) GetType() ShapeType { return ShapeTypePolygon }

// NewPolygon creates an empty polygon.
func NewPolygon(fill Fill, stroke Stroke) *Polygon {
	return &Polygon{BaseShape: BaseShape{fill: fill, stroke: stroke}}
}

// NewOutlinePolygon creates an empty, unfilled polygon.
func NewOutlinePolygon(stroke Stroke) *Polygon {
	return NewPolygon(NoFill(), stroke)
}

// AddPoint appends a vertex and returns the polygon for chaining.
func (p *Polygon) AddPoint(pt Point) *Polygon {
	p.points = append(p.points, pt)
	return p
}

// AddPoints appends vertices in order.
func (p *Polygon) AddPoints(pts ...Point) *Polygon {
	p.points = append(p.points, pts...)
	return p
}

// GetPoints returns a copy of the vertices.
func (p *Polygon) GetPoints() []Point { return slices.Clone(p.points) }

func (p *Polygon) Offset(d Point) { offsetPoints(p.points, d) }

// GetRotationCenter returns the centroid of the vertices.
func (p *Polygon) GetRotationCenter() Point { return centroid(p.points) }

func (p *Polygon) Clone() Shape {
	cp := *p
	cp.points = slices.Clone(p.points)
	return &cp
}

func (p *Polygon) ToMarkup(l Layout) string {
	return pointsElement("polygon", p.points, &p.BaseShape, p, l)
}

// Polyline is an open shape through an ordered list of points.
type Polyline struct {
	BaseShape
	points []Point
}

func (p *Polyline) GetType() ShapeType { return ShapeTypePolyline }

// NewPolyline creates an empty polyline.
func NewPolyline(fill Fill, stroke Stroke) *Polyline {
	return &Polyline{BaseShape: BaseShape{fill: fill, stroke: stroke}}
}

// NewStrokePolyline creates an empty, unfilled polyline.
func NewStrokePolyline(stroke Stroke) *Polyline {
	return NewPolyline(NoFill(), stroke)
}

// NewPolylineFromPoints creates a polyline through the given points.
func NewPolylineFromPoints(points []Point, fill Fill, stroke Stroke) *Polyline {
	return &Polyline{BaseShape: BaseShape{fill: fill, stroke: stroke}, points: slices.Clone(points)}
}

// AddPoint appends a vertex and returns the polyline for chaining.
func (p *Polyline) AddPoint(pt Point) *Polyline {
	p.points = append(p.points, pt)
	return p
}

// AddPoints appends vertices in order.
func (p *Polyline) AddPoints(pts ...Point) *Polyline {
	p.points = append(p.points, pts...)
	return p
}

// GetPoints returns a copy of the vertices.
func (p *Polyline) GetPoints() []Point { return slices.Clone(p.points) }

// Len returns the number of vertices.
func (p *Polyline) Len() int { return len(p.points) }

func (p *Polyline) Offset(d Point) { offsetPoints(p.points, d) }

// GetRotationCenter returns the centroid of the vertices.
func (p *Polyline) GetRotationCenter() Point { return centroid(p.points) }

func (p *Polyline) Clone() Shape { return p.clone() }

func (p *Polyline) clone() *Polyline {
	cp := *p
	cp.points = slices.Clone(p.points)
	return &cp
}

func (p *Polyline) ToMarkup(l Layout) string {
	return pointsElement("polyline", p.points, &p.BaseShape, p, l)
}

func pointsElement(name string, points []Point, b *BaseShape, s Shape, l Layout) string {
	var sb strings.Builder
	sb.WriteString(elemStart(name))
	sb.WriteString(`points="`)
	pointList(&sb, points, l)
	sb.WriteString(`" `)
	sb.WriteString(b.paint(s, l))
	sb.WriteString(emptyElemEnd)
	return sb.String()
}

// Path is a set of closed subpaths rendered with the even-odd fill rule.
// Points are added to the most recent subpath.
type Path struct {
	BaseShape
	subpaths [][]Point
}

func (p *Path) GetType() ShapeType { return ShapeTypePath }

// NewPath creates a path with one empty subpath.
func NewPath(fill Fill, stroke Stroke) *Path {
	p := &Path{BaseShape: BaseShape{fill: fill, stroke: stroke}}
	p.StartNewSubPath()
	return p
}

// NewOutlinePath creates an unfilled path.
func NewOutlinePath(stroke Stroke) *Path {
	return NewPath(NoFill(), stroke)
}

// AddPoint appends a point to the current subpath.
func (p *Path) AddPoint(pt Point) *Path {
	last := len(p.subpaths) - 1
	p.subpaths[last] = append(p.subpaths[last], pt)
	return p
}

// AddPoints appends points to the current subpath.
func (p *Path) AddPoints(pts ...Point) *Path {
	for _, pt := range pts {
		p.AddPoint(pt)
	}
	return p
}

// StartNewSubPath begins a new subpath unless the current one is still
// empty.
func (p *Path) StartNewSubPath() *Path {
	if len(p.subpaths) == 0 || len(p.subpaths[len(p.subpaths)-1]) > 0 {
		p.subpaths = append(p.subpaths, nil)
	}
	return p
}

// GetSubPathCount returns the number of subpaths, including an empty
// trailing one.
func (p *Path) GetSubPathCount() int { return len(p.subpaths) }

// GetPoints returns all points of all subpaths in order.
func (p *Path) GetPoints() []Point {
	var all []Point
	for _, sp := range p.subpaths {
		all = append(all, sp...)
	}
	return all
}

func (p *Path) Offset(d Point) {
	for _, sp := range p.subpaths {
		offsetPoints(sp, d)
	}
}

// GetRotationCenter returns the sum of all points divided by the number of
// subpaths, not by the number of points. For a single subpath this differs
// from the centroid; the divisor is kept as is for output compatibility.
func (p *Path) GetRotationCenter() Point {
	if len(p.subpaths) == 0 {
		return Point{}
	}
	var sum Point
	for _, sp := range p.subpaths {
		for _, pt := range sp {
			sum = sum.Add(pt)
		}
	}
	return sum.Div(float64(len(p.subpaths)))
}

func (p *Path) Clone() Shape {
	cp := *p
	cp.subpaths = make([][]Point, len(p.subpaths))
	for i, sp := range p.subpaths {
		cp.subpaths[i] = slices.Clone(sp)
	}
	return &cp
}

func (p *Path) ToMarkup(l Layout) string {
	var sb strings.Builder
	sb.WriteString(elemStart("path"))
	sb.WriteString(`d="`)
	for _, sp := range p.subpaths {
		if len(sp) == 0 {
			continue
		}
		sb.WriteByte('M')
		pointList(&sb, sp, l)
		sb.WriteString("z ")
	}
	sb.WriteString(`" `)
	sb.WriteString(attr("fill-rule", "evenodd"))
	sb.WriteString(p.paint(p, l))
	sb.WriteString(emptyElemEnd)
	return sb.String()
}
