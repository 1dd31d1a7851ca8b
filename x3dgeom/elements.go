package x3dgeom

import (
	"errors"
	"fmt"
	"math"

	"github.com/benoitkugler/okx3d/tessellate"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// buildFunc decodes the attributes of a Geometry2D tag and
// returns the new element, with its geometry computed.
type buildFunc func(c *cursor, t *tag) (*Element, error)

type reader struct {
	kind  Kind
	build buildFunc
}

var readFuncs = map[string]reader{
	"Arc2D":         {KindArc2D, arc2DF},
	"ArcClose2D":    {KindArcClose2D, arcClose2DF},
	"Circle2D":      {KindCircle2D, circle2DF},
	"Disk2D":        {KindDisk2D, disk2DF},
	"Polyline2D":    {KindPolyline2D, polyline2DF},
	"Polypoint2D":   {KindPolypoint2D, polypoint2DF},
	"Rectangle2D":   {KindRectangle2D, rectangle2DF},
	"TriangleSet2D": {KindTriangleSet2D, triangleSet2DF},
}

// arc samples an arc with the configured density, reporting
// invalid parameters on the matching attribute.
func (c *cursor) arc(t *tag, start, end, radius float64, radiusAttr string) ([]v3.Vec, error) {
	points, err := tessellate.SampleArc(start, end, radius, c.segments)
	switch {
	case errors.Is(err, tessellate.ErrStartAngle):
		return nil, t.invalid("startAngle", err)
	case errors.Is(err, tessellate.ErrEndAngle):
		return nil, t.invalid("endAngle", err)
	case errors.Is(err, tessellate.ErrRadius):
		return nil, t.invalid(radiusAttr, err)
	case err != nil:
		return nil, fmt.Errorf("%s: %w", t.name, err)
	}
	return points, nil
}

// lineSet returns an element with the points connected as a closed line list.
func lineSet(t *tag, points []v3.Vec, attr string) (*Element, error) {
	ll, err := tessellate.PointsToLineList(points)
	if err != nil {
		return nil, t.malformed(attr, err)
	}
	return &Element{Vertices: ll.Vertices, Indices: ll.Indices, Arity: 2}, nil
}

func arc2DF(c *cursor, t *tag) (*Element, error) {
	startAngle, endAngle, radius := 0., math.Pi/2, 1.
	var err error
	for _, attr := range t.attrs {
		switch attr.Name.Local {
		case "endAngle":
			endAngle, err = parseFloat(attr.Value)
		case "radius":
			radius, err = parseFloat(attr.Value)
		case "startAngle":
			startAngle, err = parseFloat(attr.Value)
		}
		if err != nil {
			return nil, t.invalid(attr.Name.Local, err)
		}
	}
	points, err := c.arc(t, startAngle, endAngle, radius, "radius")
	if err != nil {
		return nil, err
	}
	return lineSet(t, points, "radius")
}

type closure uint8

const (
	closurePie closure = iota
	closureChord
)

// parseClosureType also accepts the quoted form ("PIE"),
// found in files written by some exporters.
func parseClosureType(s string) (closure, error) {
	switch s {
	case "PIE", `"PIE"`:
		return closurePie, nil
	case "CHORD", `"CHORD"`:
		return closureChord, nil
	}
	return 0, fmt.Errorf("unknown closure type %q", s)
}

func arcClose2DF(c *cursor, t *tag) (*Element, error) {
	closureType := "PIE"
	startAngle, endAngle, radius := 0., math.Pi/2, 1.
	var (
		solid bool
		err   error
	)
	for _, attr := range t.attrs {
		switch attr.Name.Local {
		case "closureType":
			closureType = attr.Value
		case "endAngle":
			endAngle, err = parseFloat(attr.Value)
		case "radius":
			radius, err = parseFloat(attr.Value)
		case "solid":
			solid, err = parseBool(attr.Value)
		case "startAngle":
			startAngle, err = parseFloat(attr.Value)
		}
		if err != nil {
			return nil, t.invalid(attr.Name.Local, err)
		}
	}
	points, err := c.arc(t, startAngle, endAngle, radius, "radius")
	if err != nil {
		return nil, err
	}
	// a circle is never closed: closureType is ignored
	if !tessellate.FullCircle(startAngle, endAngle) {
		cl, err := parseClosureType(closureType)
		if err != nil {
			return nil, t.invalid("closureType", err)
		}
		if cl == closurePie {
			points = append(points, v3.Vec{}) // center: first radial line
		}
		points = append(points, points[0]) // chord, or second radial line
	}
	return &Element{Vertices: points, Arity: len(points), Solid: solid}, nil
}

func circle2DF(c *cursor, t *tag) (*Element, error) {
	radius := 1.
	var err error
	for _, attr := range t.attrs {
		switch attr.Name.Local {
		case "radius":
			radius, err = parseFloat(attr.Value)
		}
		if err != nil {
			return nil, t.invalid(attr.Name.Local, err)
		}
	}
	points, err := c.arc(t, 0, 0, radius, "radius")
	if err != nil {
		return nil, err
	}
	return lineSet(t, points, "radius")
}

func disk2DF(c *cursor, t *tag) (*Element, error) {
	innerRadius, outerRadius := 0., 1.
	var (
		solid bool
		err   error
	)
	for _, attr := range t.attrs {
		switch attr.Name.Local {
		case "innerRadius":
			innerRadius, err = parseFloat(attr.Value)
		case "outerRadius":
			outerRadius, err = parseFloat(attr.Value)
		case "solid":
			solid, err = parseBool(attr.Value)
		}
		if err != nil {
			return nil, t.invalid(attr.Name.Local, err)
		}
	}
	if innerRadius > outerRadius {
		return nil, t.invalid("innerRadius",
			fmt.Errorf("inner radius %g is greater than outer radius %g", innerRadius, outerRadius))
	}

	outer, err := c.arc(t, 0, 0, outerRadius, "outerRadius")
	if err != nil {
		return nil, err
	}
	var e *Element
	switch innerRadius {
	case 0: // filled disk
		e = &Element{Vertices: outer, Arity: len(outer)}
	case outerRadius: // circle outline
		e, err = lineSet(t, outer, "outerRadius")
		if err != nil {
			return nil, err
		}
	default: // ring
		inner, err := c.arc(t, 0, 0, innerRadius, "innerRadius")
		if err != nil {
			return nil, err
		}
		quads, err := tessellate.BuildAnnularQuadStrip(inner, outer)
		if err != nil {
			return nil, t.malformed("innerRadius", err)
		}
		e = &Element{Vertices: quads, Arity: 4}
	}
	e.Solid = solid
	return e, nil
}

func polyline2DF(c *cursor, t *tag) (*Element, error) {
	var (
		lineSegments []v2.Vec
		err          error
	)
	for _, attr := range t.attrs {
		switch attr.Name.Local {
		case "lineSegments":
			lineSegments, err = parseVec2List(attr.Value)
		}
		if err != nil {
			return nil, t.invalid(attr.Name.Local, err)
		}
	}
	return lineSet(t, tessellate.Lift(lineSegments), "lineSegments")
}

func polypoint2DF(c *cursor, t *tag) (*Element, error) {
	var (
		point []v2.Vec
		err   error
	)
	for _, attr := range t.attrs {
		switch attr.Name.Local {
		case "point":
			point, err = parseVec2List(attr.Value)
		}
		if err != nil {
			return nil, t.invalid(attr.Name.Local, err)
		}
	}
	return &Element{Vertices: tessellate.Lift(point), Arity: 1}, nil
}

func rectangle2DF(c *cursor, t *tag) (*Element, error) {
	size := v2.Vec{X: 2, Y: 2}
	var (
		solid bool
		err   error
	)
	for _, attr := range t.attrs {
		switch attr.Name.Local {
		case "size":
			size, err = parseVec2(attr.Value)
		case "solid":
			solid, err = parseBool(attr.Value)
		}
		if err != nil {
			return nil, t.invalid(attr.Name.Local, err)
		}
	}
	return &Element{Vertices: tessellate.Rectangle(size), Arity: 4, Solid: solid}, nil
}

func triangleSet2DF(c *cursor, t *tag) (*Element, error) {
	var (
		vertices []v2.Vec
		solid    bool
		err      error
	)
	for _, attr := range t.attrs {
		switch attr.Name.Local {
		case "vertices":
			vertices, err = parseVec2List(attr.Value)
		case "solid":
			solid, err = parseBool(attr.Value)
		}
		if err != nil {
			return nil, t.invalid(attr.Name.Local, err)
		}
	}
	if len(vertices)%3 != 0 {
		return nil, t.malformed("vertices",
			fmt.Errorf("%d points do not make whole triangles", len(vertices)))
	}
	return &Element{Vertices: tessellate.Lift(vertices), Arity: 3, Solid: solid}, nil
}
