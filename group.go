package simplesvg

import "strings"

// Group is a composite that owns copies of its child shapes and wraps their
// markup in a <g> element carrying the group's own fill and stroke.
type Group struct {
	BaseShape
	shapes []Shape
}

func (g *Group) GetType() ShapeType { return ShapeTypeGroup }

// NewGroup creates an empty group.
func NewGroup(fill Fill, stroke Stroke) *Group {
	return &Group{BaseShape: BaseShape{fill: fill, stroke: stroke}}
}

// AddShape adds a copy of s to the group. Later changes to s do not affect
// the group.
func (g *Group) AddShape(s Shape) *Group {
	if s == nil {
		return g
	}
	g.shapes = append(g.shapes, s.Clone())
	return g
}

// GetShapes returns the owned children. Mutating them mutates the group.
func (g *Group) GetShapes() []Shape {
	return g.shapes
}

// GetShapeCount returns the number of shapes in the group.
func (g *Group) GetShapeCount() int {
	return len(g.shapes)
}

// RemoveShape removes a shape by index.
func (g *Group) RemoveShape(index int) error {
	if index < 0 || index >= len(g.shapes) {
		return errOutOfRange
	}
	g.shapes = append(g.shapes[:index], g.shapes[index+1:]...)
	return nil
}

func (g *Group) Offset(d Point) {
	for _, s := range g.shapes {
		s.Offset(d)
	}
}

// GetRotationCenter returns the mean of the children's rotation centers.
func (g *Group) GetRotationCenter() Point {
	centers := make([]Point, len(g.shapes))
	for i, s := range g.shapes {
		centers[i] = s.GetRotationCenter()
	}
	return centroid(centers)
}

func (g *Group) Clone() Shape {
	cp := *g
	cp.shapes = make([]Shape, len(g.shapes))
	for i, s := range g.shapes {
		cp.shapes[i] = s.Clone()
	}
	return &cp
}

func (g *Group) ToMarkup(l Layout) string {
	var sb strings.Builder
	sb.WriteString(elemStart("g"))
	sb.WriteString(g.paint(g, l))
	sb.WriteString(">\n")
	for _, s := range g.shapes {
		sb.WriteString(s.ToMarkup(l))
	}
	sb.WriteString(elemEnd("g"))
	return sb.String()
}
