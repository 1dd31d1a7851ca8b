package x3dgeom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// tag is an XML element of the source document,
// with its attributes and nested elements.
type tag struct {
	name     string
	attrs    []xml.Attr
	children []*tag
}

// value returns the value of the attribute `name`, if present.
func (t *tag) value(name string) (string, bool) {
	for _, attr := range t.attrs {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// defUse returns the DEF and USE attributes of the tag,
// which are exclusive.
func (t *tag) defUse() (def, use string, err error) {
	def, _ = t.value("DEF")
	use, _ = t.value("USE")
	if def != "" && use != "" {
		return "", "", fmt.Errorf("%s: %w (DEF=%q, USE=%q)", t.name, ErrDefAndUse, def, use)
	}
	return def, use, nil
}

// decodeTree reads the whole token stream and returns the root tag.
func decodeTree(decoder *xml.Decoder) (*tag, error) {
	var (
		root  *tag
		stack []*tag
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			se = se.Copy()
			node := &tag{name: se.Name.Local, attrs: se.Attr}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("invalid x3d document: multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, errEmptyDocument
	}
	return root, nil
}

// splitValues returns a list of strings after splitting the input
// on comma and white space delimiters
func splitValues(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// parseFloat rejects NaN and infinities, which strconv accepts.
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

func parseFloats(s string) ([]float64, error) {
	fields := splitValues(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		var err error
		out[i], err = parseFloat(f)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// parseInt accepts decimal integers, and hexadecimal ones
// with a 0x or 0X prefix, as SFInt32 does.
func parseInt(s string) (int32, error) {
	sign, digits := "", s
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		base, digits = 16, digits[2:]
	}
	v, err := strconv.ParseInt(sign+digits, base, 32)
	if err != nil || strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return int32(v), nil
}

func parseInts(s string) ([]int32, error) {
	fields := splitValues(s)
	out := make([]int32, len(fields))
	for i, f := range fields {
		var err error
		out[i], err = parseInt(f)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// parseBool accepts the XML encoding (true, false) as well
// as the classic VRML one (TRUE, FALSE).
func parseBool(s string) (bool, error) {
	switch strings.TrimSpace(s) {
	case "true", "TRUE":
		return true, nil
	case "false", "FALSE":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

func parseBools(s string) ([]bool, error) {
	fields := splitValues(s)
	out := make([]bool, len(fields))
	for i, f := range fields {
		var err error
		out[i], err = parseBool(f)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// parseVec2 expects exactly two numbers.
func parseVec2(s string) (v2.Vec, error) {
	fs, err := parseFloats(s)
	if err != nil {
		return v2.Vec{}, err
	}
	if len(fs) != 2 {
		return v2.Vec{}, fmt.Errorf("expected 2 numbers, got %d", len(fs))
	}
	return v2.Vec{X: fs[0], Y: fs[1]}, nil
}

// parseVec2List expects an even count of numbers.
func parseVec2List(s string) ([]v2.Vec, error) {
	fs, err := parseFloats(s)
	if err != nil {
		return nil, err
	}
	if len(fs)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates (%d)", len(fs))
	}
	out := make([]v2.Vec, len(fs)/2)
	for i := range out {
		out[i] = v2.Vec{X: fs[2*i], Y: fs[2*i+1]}
	}
	return out, nil
}

// parseStrings decodes a MFString value: a list of double quoted
// strings, where \" and \\ are escapes. A value without any quote
// is taken as a single string.
func parseStrings(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if !strings.ContainsRune(s, '"') {
		return []string{s}, nil
	}
	var (
		out     []string
		current strings.Builder
		inQuote bool
	)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case !inQuote && ch == '"':
			inQuote = true
			current.Reset()
		case !inQuote && (ch == ',' || unicode.IsSpace(rune(ch))):
		case !inQuote:
			return nil, fmt.Errorf("unexpected character %q outside of quotes", ch)
		case ch == '\\' && i+1 < len(s):
			i++
			current.WriteByte(s[i])
		case ch == '"':
			inQuote = false
			out = append(out, current.String())
		default:
			current.WriteByte(ch)
		}
	}
	if inQuote {
		return nil, errors.New("unterminated string")
	}
	return out, nil
}
