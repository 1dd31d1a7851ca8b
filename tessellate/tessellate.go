// Turns the parametric shapes of the X3D Geometry2D family
// into explicit point lists.
// All the functions of this package are pure: they work in the
// local XY plane of the shape, centered at the origin, with z = 0.
package tessellate

import (
	"errors"
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/samber/lo"
)

// DefaultSegments is the number of segments used to approximate
// an arc or a circle when no other density is configured.
const DefaultSegments = 10

const twoPi = 2 * math.Pi

var (
	ErrStartAngle         = errors.New("start angle out of range [-2pi, 2pi]")
	ErrEndAngle           = errors.New("end angle out of range [-2pi, 2pi]")
	ErrRadius             = errors.New("radius must be finite and greater than zero")
	ErrSegments           = errors.New("segment count must be at least 1")
	ErrInsufficientPoints = errors.New("not enough points")
	ErrPointCountMismatch = errors.New("point lists have different sizes")
)

// FullCircle returns true if the angles `start` and `end`
// describe a complete circle: either they are equal,
// or they are at least 2pi apart.
func FullCircle(start, end float64) bool {
	return start == end || math.Abs(end-start) >= twoPi
}

// Sweep returns the counter-clockwise angle covered when walking
// from `start` to `end`, which is 2pi for a full circle.
func Sweep(start, end float64) float64 {
	if FullCircle(start, end) {
		return twoPi
	}
	d := end - start
	if d < 0 {
		d += twoPi
	}
	return d
}

// onCircle returns the point at angle `theta` on the circle
// of radius `r` centered at the origin.
func onCircle(theta, r float64) v3.Vec {
	return v3.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// SampleArc returns `segments`+1 points walking counter-clockwise from `start`
// to `end` (in radians) on the circle of radius `radius`.
// If the angles describe a full circle (see FullCircle), the points form
// a closed loop: the last point is exactly the first one.
// Use start = end = 0 to request a circle.
func SampleArc(start, end, radius float64, segments int) ([]v3.Vec, error) {
	// negated comparisons also reject NaN
	if !(start >= -twoPi && start <= twoPi) {
		return nil, ErrStartAngle
	}
	if !(end >= -twoPi && end <= twoPi) {
		return nil, ErrEndAngle
	}
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, ErrRadius
	}
	if segments < 1 {
		return nil, ErrSegments
	}

	step := Sweep(start, end) / float64(segments)
	points := make([]v3.Vec, segments+1)
	for i := range points {
		points[i] = onCircle(start+float64(i)*step, radius)
	}
	if FullCircle(start, end) {
		points[segments] = points[0] // avoid rounding gaps
	}
	return points, nil
}

// LineList is a set of points, connected by segments.
// Indices stores consecutive pairs of indexes into Vertices,
// one pair per segment.
type LineList struct {
	Vertices []v3.Vec
	Indices  []int
}

// Segments returns the number of segments in the list.
func (l LineList) Segments() int { return len(l.Indices) / 2 }

// PointsToLineList connects each point to the next one, and the last
// point back to the first, so that N points give N segments.
// The points are copied, not transformed.
// An empty input gives an empty list; a single point is an error.
func PointsToLineList(points []v3.Vec) (LineList, error) {
	switch len(points) {
	case 0:
		return LineList{}, nil
	case 1:
		return LineList{}, ErrInsufficientPoints
	}
	indices := make([]int, 0, 2*len(points))
	for i := range points {
		indices = append(indices, i, (i+1)%len(points))
	}
	return LineList{Vertices: append([]v3.Vec{}, points...), Indices: indices}, nil
}

// BuildAnnularQuadStrip fills the ring between two point loops of the same size
// with quads. For each index i (wrapping at the end) the quad
// inner[i], outer[i], outer[i+1], inner[i+1] is emitted, in counter-clockwise order.
func BuildAnnularQuadStrip(inner, outer []v3.Vec) ([]v3.Vec, error) {
	if len(inner) < 2 || len(outer) < 2 {
		return nil, ErrInsufficientPoints
	}
	if len(inner) != len(outer) {
		return nil, ErrPointCountMismatch
	}
	n := len(inner)
	quads := make([]v3.Vec, 0, 4*n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		quads = append(quads, inner[i], outer[i], outer[j], inner[j])
	}
	return quads, nil
}

// Lift returns the points in the z = 0 plane, preserving order.
func Lift(points []v2.Vec) []v3.Vec {
	return lo.Map(points, func(p v2.Vec, _ int) v3.Vec {
		return v3.Vec{X: p.X, Y: p.Y}
	})
}

// Rectangle returns the four corners of the axis-aligned rectangle
// of the given size, centered at the origin, in the order
// (+x,-y), (+x,+y), (-x,+y), (-x,-y).
func Rectangle(size v2.Vec) []v3.Vec {
	x, y := size.X/2, size.Y/2
	return []v3.Vec{
		{X: x, Y: -y},
		{X: x, Y: y},
		{X: -x, Y: y},
		{X: -x, Y: -y},
	}
}
