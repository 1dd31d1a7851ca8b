package x3dgeom

// Metadata holds the content of a metadata node.
// Only the value slice matching the node kind is set:
// MetadataDouble and MetadataFloat both use Floats.
type Metadata struct {
	Name      string
	Reference string

	Bools   []bool
	Floats  []float64
	Ints    []int32
	Strings []string
}

var metadataKinds = map[string]Kind{
	"MetadataBoolean": KindMetadataBoolean,
	"MetadataDouble":  KindMetadataDouble,
	"MetadataFloat":   KindMetadataFloat,
	"MetadataInteger": KindMetadataInteger,
	"MetadataSet":     KindMetadataSet,
	"MetadataString":  KindMetadataString,
}

func isMetadataNode(name string) bool {
	_, ok := metadataKinds[name]
	return ok
}

// attachMetadataChildren inserts `e` in the current container,
// then reads the content of `t` as metadata children of `e`.
func (c *cursor) attachMetadataChildren(t *tag, e *Element) error {
	if err := c.insert(e, c.current); err != nil {
		return err
	}
	return c.readMetadataChildren(t, e)
}

func (c *cursor) readMetadataChildren(t *tag, parent *Element) error {
	for _, child := range t.children {
		if !isMetadataNode(child.name) {
			if err := c.handleUnsupported(child, t.name); err != nil {
				return err
			}
			continue
		}
		if err := c.readMetadata(child, parent); err != nil {
			return err
		}
	}
	return nil
}

// readMetadata reads a metadata node, and its own metadata, as a child of `parent`.
func (c *cursor) readMetadata(t *tag, parent *Element) error {
	kind := metadataKinds[t.name]
	def, use, err := t.defUse()
	if err != nil {
		return err
	}
	if use != "" {
		_, err = c.use(t, use, kind, parent)
		return err
	}

	meta := new(Metadata)
	for _, attr := range t.attrs {
		switch attr.Name.Local {
		case "name":
			meta.Name = attr.Value
		case "reference":
			meta.Reference = attr.Value
		case "value":
			switch kind {
			case KindMetadataBoolean:
				meta.Bools, err = parseBools(attr.Value)
			case KindMetadataDouble, KindMetadataFloat:
				meta.Floats, err = parseFloats(attr.Value)
			case KindMetadataInteger:
				meta.Ints, err = parseInts(attr.Value)
			case KindMetadataString:
				meta.Strings, err = parseStrings(attr.Value)
			}
		}
		if err != nil {
			return t.invalid(attr.Name.Local, err)
		}
	}

	e := &Element{Kind: kind, Tag: t.name, ID: def, Meta: meta}
	if err = c.insert(e, parent); err != nil {
		return err
	}
	return c.readMetadataChildren(t, e)
}
