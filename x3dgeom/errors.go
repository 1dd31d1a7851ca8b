package x3dgeom

import (
	"errors"
	"fmt"
)

var (
	// reference errors
	ErrMissingReference = errors.New("USE references an undefined node")
	ErrKindMismatch     = errors.New("USE references a node of another type")
	ErrDuplicateID      = errors.New("DEF name already defined")
	ErrDefAndUse        = errors.New("DEF and USE on the same node")

	// attribute errors
	ErrInvalidAttrValue = errors.New("invalid attribute value")
	ErrMalformedInput   = errors.New("malformed input")

	ErrUnsupportedNode = errors.New("unsupported node")

	errEmptyDocument = errors.New("invalid x3d document: no element found")
)

// AttrError reports an attribute of a node which can't be used.
// Err is either ErrInvalidAttrValue or ErrMalformedInput, and
// Cause, when not nil, gives the details.
type AttrError struct {
	Tag, Attr string
	Err       error
	Cause     error
}

func (e *AttrError) Error() string {
	s := fmt.Sprintf("%s: %s for %q", e.Tag, e.Err, e.Attr)
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *AttrError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func (t *tag) invalid(attr string, cause error) error {
	return &AttrError{Tag: t.name, Attr: attr, Err: ErrInvalidAttrValue, Cause: cause}
}

func (t *tag) malformed(attr string, cause error) error {
	return &AttrError{Tag: t.name, Attr: attr, Err: ErrMalformedInput, Cause: cause}
}
