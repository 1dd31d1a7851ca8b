package x3dgeom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Bounds defines an axis aligned bounding box in the XY plane.
type Bounds struct{ X, Y, W, H float64 }

// extent accumulates the min and max coordinates of points
type extent struct {
	minX, minY, maxX, maxY float64
}

func newExtent() extent {
	return extent{minX: math.Inf(1), minY: math.Inf(1), maxX: math.Inf(-1), maxY: math.Inf(-1)}
}

func (ex *extent) add(points []v3.Vec) {
	for _, p := range points {
		ex.minX = math.Min(p.X, ex.minX)
		ex.minY = math.Min(p.Y, ex.minY)
		ex.maxX = math.Max(p.X, ex.maxX)
		ex.maxY = math.Max(p.Y, ex.maxY)
	}
}

func (ex extent) bounds() (Bounds, bool) {
	if ex.minX > ex.maxX {
		return Bounds{}, false
	}
	return Bounds{X: ex.minX, Y: ex.minY, W: ex.maxX - ex.minX, H: ex.maxY - ex.minY}, true
}

// Bounds returns the extent of the vertices of the element,
// or false if it has none.
func (e *Element) Bounds() (Bounds, bool) {
	ex := newExtent()
	ex.add(e.Vertices)
	return ex.bounds()
}

// Bounds returns the extent of all the geometry of the scene,
// or false if there is none.
func (s *Scene) Bounds() (Bounds, bool) {
	ex := newExtent()
	for _, e := range s.nodes {
		ex.add(e.Vertices)
	}
	return ex.bounds()
}
