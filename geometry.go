package simplesvg

// Point represents a 2D coordinate in user space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// AddSize returns the point moved by a size, i.e. the opposite corner of
// the box anchored at p.
func (p Point) AddSize(s Size) Point {
	return Point{X: p.X + s.Width, Y: p.Y + s.Height}
}

// Size is a width/height extent. Negative values are not rejected.
type Size struct {
	Width, Height float64
}

// Dimensions is the width/height of a canvas or chart margin.
type Dimensions struct {
	Width, Height float64
}

// Square returns Dimensions with equal width and height.
func Square(n float64) Dimensions {
	return Dimensions{Width: n, Height: n}
}

// Box is an axis-aligned region.
type Box struct {
	Origin Point
	Size   Size
}

// NewBox creates a box from its origin corner and size.
func NewBox(origin Point, size Size) Box {
	return Box{Origin: origin, Size: size}
}

// Max returns the corner opposite the origin.
func (b Box) Max() Point { return b.Origin.AddSize(b.Size) }

// Center returns the geometric center of the box.
func (b Box) Center() Point {
	return Point{X: b.Origin.X + b.Size.Width/2, Y: b.Origin.Y + b.Size.Height/2}
}

// Optional holds a value that may be absent, such as the bounds of an
// empty point set.
type Optional[T any] struct {
	value T
	valid bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsValid reports whether a value is present.
func (o Optional[T]) IsValid() bool { return o.valid }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.valid }

// MustGet returns the value, panicking with ErrAbsentValue if it is absent.
// Check IsValid first.
func (o Optional[T]) MustGet() T {
	if !o.valid {
		panic(ErrAbsentValue)
	}
	return o.value
}

// MinPoint returns the componentwise minimum of points.
func MinPoint(points []Point) Optional[Point] {
	if len(points) == 0 {
		return None[Point]()
	}
	min := points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
	}
	return Some(min)
}

// MaxPoint returns the componentwise maximum of points.
func MaxPoint(points []Point) Optional[Point] {
	if len(points) == 0 {
		return None[Point]()
	}
	max := points[0]
	for _, p := range points[1:] {
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return Some(max)
}

// Bounds returns the bounding box of points.
func Bounds(points []Point) Optional[Box] {
	min, ok := MinPoint(points).Get()
	if !ok {
		return None[Box]()
	}
	max := MaxPoint(points).MustGet()
	return Some(Box{Origin: min, Size: Size{Width: max.X - min.X, Height: max.Y - min.Y}})
}

// centroid returns the arithmetic mean of points, or the zero point when
// there are none.
func centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(points)))
}

func offsetPoints(points []Point, d Point) {
	for i := range points {
		points[i] = points[i].Add(d)
	}
}
