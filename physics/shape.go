package physics

import "math"

// ShapeKind selects the overlap test for a Shape
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// Shape is an axis-aligned collision volume centred on its owner's position
type Shape struct {
	Kind   ShapeKind
	Radius float64 // ShapeCircle
	HalfW  float64 // ShapeBox
	HalfH  float64 // ShapeBox
}

// Circle returns a circle shape of radius r
func Circle(r float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: r}
}

// Box returns an axis-aligned box with the given half extents
func Box(halfW, halfH float64) Shape {
	return Shape{Kind: ShapeBox, HalfW: halfW, HalfH: halfH}
}

// Overlaps reports whether shape a at (ax, ay) intersects shape b at (bx, by)
// Touching edges count as overlap
func Overlaps(ax, ay float64, a Shape, bx, by float64, b Shape) bool {
	switch {
	case a.Kind == ShapeCircle && b.Kind == ShapeCircle:
		dx, dy := bx-ax, by-ay
		r := a.Radius + b.Radius
		return dx*dx+dy*dy <= r*r

	case a.Kind == ShapeBox && b.Kind == ShapeBox:
		return math.Abs(bx-ax) <= a.HalfW+b.HalfW && math.Abs(by-ay) <= a.HalfH+b.HalfH

	case a.Kind == ShapeCircle:
		return circleBox(ax, ay, a.Radius, bx, by, b.HalfW, b.HalfH)

	default:
		return circleBox(bx, by, b.Radius, ax, ay, a.HalfW, a.HalfH)
	}
}

// circleBox clamps the circle centre into the box and compares the remainder to the radius
func circleBox(cx, cy, r, bx, by, halfW, halfH float64) bool {
	nx := math.Max(bx-halfW, math.Min(cx, bx+halfW))
	ny := math.Max(by-halfH, math.Min(cy, by+halfH))
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= r*r
}
