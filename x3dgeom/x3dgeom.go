// Provides parsing of the Geometry2D component of X3D scenes.
// X3D files are parsed into a graph of typed elements, where the shapes
// only defined by parameters (arcs, disks, rectangles) are expanded
// into explicit points, ready to be consumed by a mesh builder.
package x3dgeom

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/benoitkugler/okx3d/tessellate"
	"github.com/samber/lo"
	"golang.org/x/net/html/charset"
)

// ErrorMode determines how unsupported nodes are handled.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently skips unsupported nodes.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips unsupported nodes and logs a warning.
	WarnErrorMode
	// StrictErrorMode aborts the import on the first unsupported node.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	}
	return fmt.Sprintf("ErrorMode(%d)", uint8(m))
}

// ParseErrorMode accepts "ignore", "warn" or "strict", in any case.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore":
		return IgnoreErrorMode, nil
	case "warn":
		return WarnErrorMode, nil
	case "strict":
		return StrictErrorMode, nil
	}
	return 0, fmt.Errorf("unknown error mode %q", s)
}

// Options tunes the import.
type Options struct {
	// Segments is the number of segments used to approximate
	// arcs and circles. Zero means tessellate.DefaultSegments.
	Segments int

	ErrorMode ErrorMode

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) normalized() (Options, error) {
	if o.Segments == 0 {
		o.Segments = tessellate.DefaultSegments
	}
	if o.Segments < 0 {
		return o, fmt.Errorf("invalid segment count %d", o.Segments)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o, nil
}

// Scene is the graph built from an X3D document.
//
// The elements form a tree, rooted at Root, where each element
// is owned by the Children of its parent. The scene also keeps
// a flat list of every element, in creation order, addressed by Handle,
// and the registry of DEF names.
type Scene struct {
	Root *Element

	nodes    []*Element
	registry Registry
}

func newScene() *Scene {
	s := &Scene{}
	s.registry = Registry{scene: s, ids: make(map[string]Handle)}
	s.Root = &Element{Kind: KindGroup, parent: NoHandle}
	s.add(s.Root)
	return s
}

// add appends `e` to the flat list, assigning its handle.
func (s *Scene) add(e *Element) {
	e.self = Handle(len(s.nodes))
	s.nodes = append(s.nodes, e)
}

// Element returns the element with handle `h`, or nil.
func (s *Scene) Element(h Handle) *Element {
	if h < 0 || int(h) >= len(s.nodes) {
		return nil
	}
	return s.nodes[h]
}

// Parent returns the parent of `e`, or nil for the root.
func (s *Scene) Parent(e *Element) *Element { return s.Element(e.parent) }

// Elements returns every element of the scene, in creation order.
// The root comes first.
func (s *Scene) Elements() []*Element { return append([]*Element{}, s.nodes...) }

// Geometry returns the Geometry2D elements of the scene, in creation order.
// Elements reused with USE are only listed once.
func (s *Scene) Geometry() []*Element {
	return lo.Filter(s.nodes, func(e *Element, _ int) bool { return e.Kind.IsGeometry2D() })
}

// Refs returns the elements reused from `e`.
func (s *Scene) Refs(e *Element) []*Element {
	return lo.Map(e.Refs, func(h Handle, _ int) *Element { return s.nodes[h] })
}

// Lookup returns the element defined with the name `id`, or nil.
func (s *Scene) Lookup(id string) *Element {
	h, ok := s.registry.ids[id]
	if !ok {
		return nil
	}
	return s.nodes[h]
}

// Registry returns the DEF names registry of the scene.
func (s *Scene) Registry() *Registry { return &s.registry }

// ReadSceneStream reads an X3D document (XML encoding) from the given io.Reader.
// Only the Geometry2D nodes, the grouping nodes and the metadata nodes are supported;
// `opts.ErrorMode` determines what happens with the other ones.
// Any error aborts the import: no partial scene is returned.
func ReadSceneStream(stream io.Reader, opts Options) (*Scene, error) {
	opts, err := opts.normalized()
	if err != nil {
		return nil, err
	}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	root, err := decodeTree(decoder)
	if err != nil {
		return nil, err
	}
	if root.name != "X3D" {
		return nil, fmt.Errorf("invalid x3d document: unexpected root element <%s>", root.name)
	}

	scene := newScene()
	c := &cursor{scene: scene, current: scene.Root, segments: opts.Segments, errorMode: opts.ErrorMode, log: opts.Logger}
	if err = c.readNode(root); err != nil {
		return nil, err
	}
	return scene, nil
}

// ReadScene reads the X3D document from the named file.
// See ReadSceneStream for details.
func ReadScene(sceneFile string, opts Options) (*Scene, error) {
	fin, err := os.Open(sceneFile)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return ReadSceneStream(fin, opts)
}
