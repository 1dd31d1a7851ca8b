package x3dgeom

import (
	"fmt"
	"log/slog"
)

// cursor holds the state of the traversal of a document
type cursor struct {
	scene     *Scene
	current   *Element // container of the new elements
	segments  int
	errorMode ErrorMode
	log       *slog.Logger
}

var groupingNodes = map[string]bool{
	"X3D":         true,
	"Scene":       true,
	"Group":       true,
	"StaticGroup": true,
	"Transform":   true,
	"Shape":       true,
	"Switch":      true,
	"Collision":   true,
	"Anchor":      true,
	"Billboard":   true,
	"LOD":         true,
}

// nodes out of the scope of this package, skipped without notice
var ignoredNodes = map[string]bool{
	"head":           true,
	"Appearance":     true,
	"WorldInfo":      true,
	"NavigationInfo": true,
	"Viewpoint":      true,
	"Background":     true,
}

// readNode dispatches the tag to its reader.
func (c *cursor) readNode(t *tag) error {
	if r, ok := readFuncs[t.name]; ok {
		_, err := c.readGeometry(t, r)
		return err
	}
	switch {
	case groupingNodes[t.name]:
		return c.readGroup(t)
	case isMetadataNode(t.name):
		return c.readMetadata(t, c.current)
	case ignoredNodes[t.name]:
		c.log.Debug("skipping node", "node", t.name)
		return nil
	}
	return c.handleUnsupported(t, c.current.Tag)
}

func (c *cursor) handleUnsupported(t *tag, parent string) error {
	switch c.errorMode {
	case StrictErrorMode:
		return fmt.Errorf("%w: <%s> in <%s>", ErrUnsupportedNode, t.name, parent)
	case WarnErrorMode:
		c.log.Warn("skipping unsupported node", "node", t.name, "parent", parent)
	}
	return nil
}

// use resolves a USE reference and records it on `into`.
func (c *cursor) use(t *tag, id string, kind Kind, into *Element) (*Element, error) {
	e, err := c.scene.registry.Resolve(id, kind)
	if err == nil && e.Tag != t.name {
		err = fmt.Errorf("%w: %q is a <%s>", ErrKindMismatch, id, e.Tag)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.name, err)
	}
	into.Refs = append(into.Refs, e.self)
	c.log.Debug("reusing node", "kind", kind, "use", id)
	return e, nil
}

// insert adds `e` to the scene as a child of `parent`, and
// registers its DEF name.
func (c *cursor) insert(e, parent *Element) error {
	if c.scene.registry.Defined(e.ID) {
		return fmt.Errorf("%s: %w: %q", e.Tag, ErrDuplicateID, e.ID)
	}
	c.scene.add(e)
	if err := c.scene.registry.Define(e.ID, e); err != nil {
		return err
	}
	e.parent = parent.self
	parent.Children = append(parent.Children, e)
	return nil
}

// readGeometry is the common skeleton of the Geometry2D readers:
// the element is either reused or built by `r`, then attached
// to the current container.
func (c *cursor) readGeometry(t *tag, r reader) (*Element, error) {
	def, use, err := t.defUse()
	if err != nil {
		return nil, err
	}
	if use != "" {
		return c.use(t, use, r.kind, c.current)
	}

	e, err := r.build(c, t)
	if err != nil {
		return nil, err
	}
	e.Kind, e.Tag, e.ID = r.kind, t.name, def

	if len(t.children) != 0 {
		err = c.attachMetadataChildren(t, e)
	} else {
		err = c.insert(e, c.current)
	}
	if err != nil {
		return nil, err
	}
	c.log.Debug("built node", "kind", e.Kind, "def", e.ID,
		"vertices", len(e.Vertices), "arity", e.Arity, "solid", e.Solid)
	return e, nil
}

// readGroup reads a grouping node and its content.
func (c *cursor) readGroup(t *tag) error {
	def, use, err := t.defUse()
	if err != nil {
		return err
	}
	if use != "" {
		_, err = c.use(t, use, KindGroup, c.current)
		return err
	}

	group := &Element{Kind: KindGroup, Tag: t.name, ID: def}
	if err = c.insert(group, c.current); err != nil {
		return err
	}

	previous := c.current
	c.current = group
	defer func() { c.current = previous }()
	for _, child := range t.children {
		if err = c.readNode(child); err != nil {
			return err
		}
	}
	return nil
}
