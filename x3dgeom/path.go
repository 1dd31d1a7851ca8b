package x3dgeom

import (
	"fmt"
	"math"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"golang.org/x/image/math/fixed"
)

// This file defines the outline of an element, as a path
// made of straight segments.

// Operation groups the different path commands
type Operation interface {
	isOperation()
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type Close struct{}

func (MoveTo) isOperation() {}
func (LineTo) isOperation() {}
func (Close) isOperation()  {}

// Path describes a sequence of basic operations.
type Path []Operation

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// maxFixed is the largest magnitude of a fixed.Int26_6
const maxFixed = float64(math.MaxInt32) / 64

// fitsFixed returns true if `f` is representable as a fixed.Int26_6.
func fitsFixed(f float64) bool { return -maxFixed <= f && f <= maxFixed }

// toFixed converts `f` to 26.6 fixed point, saturating out of range values.
func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Round(f*64))))
}

// toFixedP converts the X and Y coordinates of v, scaled by `scale`,
// to a fixed point.
func toFixedP(v v3.Vec, scale float64) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(v.X * scale), Y: toFixed(v.Y * scale)}
}

// Outline returns the primitives of the element as a path, with coordinates
// multiplied by `scale`. Lines are open sub-paths, triangles, quads and
// polygons are closed, and single points are zero length lines.
// Elements without geometry return an empty path.
// Coordinates beyond the 26.6 range are clamped.
func (e *Element) Outline(scale float64) Path {
	var p Path
	pt := func(i int) fixed.Point26_6 { return toFixedP(e.Vertices[i], scale) }

	if e.Indices != nil {
		for i := 0; i+1 < len(e.Indices); i += 2 {
			p.Start(pt(e.Indices[i]))
			p.Line(pt(e.Indices[i+1]))
		}
		return p
	}

	n := e.Arity
	if n <= 0 {
		return p
	}
	for i := 0; i+n <= len(e.Vertices); i += n {
		p.Start(pt(i))
		if n == 1 {
			p.Line(pt(i))
			continue
		}
		for j := i + 1; j < i+n; j++ {
			p.Line(pt(j))
		}
		p.Stop(n > 2)
	}
	return p
}
