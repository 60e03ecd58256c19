package jsontree

import (
	"fmt"

	"github.com/npillmayer/markup"
	"github.com/npillmayer/markup/object"
)

// Value is a JSON value: a closed sum over String, Array and Object.
type Value interface {
	isValue()
}

// String is a JSON string scalar.
type String string

func (String) isValue() {}

// Array is an ordered JSON array.
type Array []Value

func (Array) isValue() {}

// Member is one key/value member of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object whose members keep their input order, both in the
// value and in its serialized text. Keys are emitted as given; uniqueness is
// the caller's concern.
type Object []Member

func (Object) isValue() {}

// --- Serialization ---------------------------------------------------------

// Encode returns the JSON text for v. Member order is the input order, and
// the output for a given value is deterministic.
func Encode(v Value) string {
	tracer().Debugf("encoding JSON value %v", v)
	return string(appendValue(make([]byte, 0, 128), v))
}

func appendValue(buf []byte, v Value) []byte {
	switch n := v.(type) {
	case String:
		return appendString(buf, string(n))
	case Array:
		buf = append(buf, '[')
		for i, item := range n {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendValue(buf, item)
		}
		return append(buf, ']')
	case Object:
		buf = append(buf, '{')
		for i, m := range n {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = appendString(buf, m.Key)
			buf = append(buf, ':')
			buf = appendValue(buf, m.Value)
		}
		return append(buf, '}')
	}
	panic(fmt.Sprintf("JSON value of unknown kind %T", v))
}

// appendString escapes per RFC 8259: quote, backslash and control
// characters. Multi-byte UTF-8 passes through unchanged, as do '<', '>' and
// '&'—pre-escaped fragment text has to embed verbatim.
func appendString(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '"' || c == '\\':
			buf = append(buf, '\\', c)
		case c == '\n':
			buf = append(buf, '\\', 'n')
		case c == '\r':
			buf = append(buf, '\\', 'r')
		case c == '\t':
			buf = append(buf, '\\', 't')
		case c < 0x20:
			buf = append(buf, fmt.Sprintf(`\u%04x`, c)...)
		default:
			buf = append(buf, c)
		}
	}
	return append(buf, '"')
}

// --- Bridges ---------------------------------------------------------------

// FromMarkup renders m as a fragment and wraps the fragment's text into a
// JSON string scalar. The text is HTML-escaped but not otherwise altered.
func FromMarkup(m markup.Markup) String {
	return String(markup.RenderFragment(m))
}

// FromTree converts a generic object tree of markup into a structurally
// identical JSON value: scalars become strings per FromMarkup, sequences
// become arrays, mappings become objects with members in input order. A nil
// tree converts to an empty string scalar.
func FromTree(t object.Tree[markup.Markup]) Value {
	switch n := t.(type) {
	case nil:
		return String("")
	case object.Scalar[markup.Markup]:
		return FromMarkup(n.Value)
	case object.Sequence[markup.Markup]:
		items := make(Array, len(n.Items))
		for i, item := range n.Items {
			items[i] = FromTree(item)
		}
		return items
	case object.Mapping[markup.Markup]:
		members := make(Object, len(n.Pairs))
		for i, p := range n.Pairs {
			members[i] = Member{Key: p.Key, Value: FromTree(p.Value)}
		}
		return members
	}
	panic(fmt.Sprintf("object tree node of unknown kind %T", t))
}
