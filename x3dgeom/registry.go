package x3dgeom

import (
	"errors"
	"fmt"
)

// Registry maps the DEF names of a scene to its elements.
// It only stores handles: elements are owned by their parent.
type Registry struct {
	scene *Scene
	ids   map[string]Handle
}

// Define registers `e` under `id`. Empty identifiers register nothing.
// `e` must already belong to the scene.
func (r *Registry) Define(id string, e *Element) error {
	if id == "" {
		return nil
	}
	if r.Defined(id) {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	if r.scene.Element(e.self) != e {
		return errors.New("x3dgeom: element is not part of the scene")
	}
	r.ids[id] = e.self
	return nil
}

// Defined returns true if `id` is registered.
func (r *Registry) Defined(id string) bool {
	_, ok := r.ids[id]
	return ok
}

// Resolve returns the element registered under `id`, which must be of the given kind.
// The element is returned as is: it is not copied, and keeps its parent.
func (r *Registry) Resolve(id string, kind Kind) (*Element, error) {
	h, ok := r.ids[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingReference, id)
	}
	e := r.scene.nodes[h]
	if e.Kind != kind {
		return nil, fmt.Errorf("%w: %q is a %s, not a %s", ErrKindMismatch, id, e.Kind, kind)
	}
	return e, nil
}

// Len returns the number of registered names.
func (r *Registry) Len() int { return len(r.ids) }
