package x3dgeom

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Kind identifies the X3D node an Element was built from.
// It is fixed at construction.
type Kind uint8

const (
	// KindGroup is used for the document root and the grouping
	// nodes (X3D, Scene, Group, Transform, Shape, ...).
	KindGroup Kind = iota

	KindArc2D
	KindArcClose2D
	KindCircle2D
	KindDisk2D
	KindPolyline2D
	KindPolypoint2D
	KindRectangle2D
	KindTriangleSet2D

	KindMetadataBoolean
	KindMetadataDouble
	KindMetadataFloat
	KindMetadataInteger
	KindMetadataSet
	KindMetadataString
)

var kindNames = [...]string{
	KindGroup:           "Group",
	KindArc2D:           "Arc2D",
	KindArcClose2D:      "ArcClose2D",
	KindCircle2D:        "Circle2D",
	KindDisk2D:          "Disk2D",
	KindPolyline2D:      "Polyline2D",
	KindPolypoint2D:     "Polypoint2D",
	KindRectangle2D:     "Rectangle2D",
	KindTriangleSet2D:   "TriangleSet2D",
	KindMetadataBoolean: "MetadataBoolean",
	KindMetadataDouble:  "MetadataDouble",
	KindMetadataFloat:   "MetadataFloat",
	KindMetadataInteger: "MetadataInteger",
	KindMetadataSet:     "MetadataSet",
	KindMetadataString:  "MetadataString",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "<invalid kind>"
}

// IsGeometry2D returns true for the eight kinds of the Geometry2D component.
func (k Kind) IsGeometry2D() bool { return KindArc2D <= k && k <= KindTriangleSet2D }

// IsMetadata returns true for the metadata kinds.
func (k Kind) IsMetadata() bool { return KindMetadataBoolean <= k && k <= KindMetadataString }

// Handle is the stable index of an element in the flat list of its Scene.
type Handle int32

// NoHandle is the parent of the scene root.
const NoHandle Handle = -1

// Element is a node of the scene graph.
//
// For the Geometry2D kinds, Vertices holds the explicit points of the shape,
// in the z = 0 plane, and Arity tells how they are grouped into primitives:
//
//	1: independent points
//	2: line list (pairs of vertices, or pairs of Indices when set)
//	3: triangle list
//	4: quad list
//	len(Vertices): a single filled polygon
type Element struct {
	Kind Kind
	Tag  string // name of the source tag
	ID   string // DEF name, empty for anonymous nodes

	Vertices []v3.Vec
	Indices  []int // only set for indexed line lists
	Arity    int
	Solid    bool // culling hint

	Meta *Metadata // only set for the metadata kinds

	// Children are owned by the element: metadata attachments,
	// and the nested nodes of grouping elements.
	Children []*Element
	// Refs are the elements reused with USE from this element.
	// They are owned by another parent.
	Refs []Handle

	self, parent Handle
}

// Handle returns the index of the element in the flat list of its scene.
func (e *Element) Handle() Handle { return e.self }

// Primitives returns the number of primitives described by the
// vertices, according to the element arity.
func (e *Element) Primitives() int {
	if e.Arity <= 0 {
		return 0
	}
	if e.Indices != nil {
		return len(e.Indices) / e.Arity
	}
	return len(e.Vertices) / e.Arity
}
