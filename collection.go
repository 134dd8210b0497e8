package simplesvg

import "strings"

// ShapeCollection is an ordered set of live shapes that is re-rendered on
// every ToMarkup call, so the same shapes can be drawn under several layouts.
type ShapeCollection struct {
	shapes []Shape
}

// NewShapeCollection creates a collection holding copies of shapes.
func NewShapeCollection(shapes ...Shape) *ShapeCollection {
	c := &ShapeCollection{}
	for _, s := range shapes {
		c.Add(s)
	}
	return c
}

// Add appends a copy of s. Nil shapes are ignored.
func (c *ShapeCollection) Add(s Shape) *ShapeCollection {
	if s == nil {
		return c
	}
	c.shapes = append(c.shapes, s.Clone())
	return c
}

// AddCollection appends copies of every shape in other, flattened.
func (c *ShapeCollection) AddCollection(other *ShapeCollection) *ShapeCollection {
	if other == nil {
		return c
	}
	for _, s := range other.shapes {
		c.shapes = append(c.shapes, s.Clone())
	}
	return c
}

// Len returns the number of shapes.
func (c *ShapeCollection) Len() int { return len(c.shapes) }

// Shapes returns the owned shapes. Mutating them changes later output.
func (c *ShapeCollection) Shapes() []Shape { return c.shapes }

// ToMarkup concatenates the markup of every shape under l, without any
// envelope.
func (c *ShapeCollection) ToMarkup(l Layout) string {
	var sb strings.Builder
	for _, s := range c.shapes {
		sb.WriteString(s.ToMarkup(l))
	}
	return sb.String()
}
