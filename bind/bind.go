package bind

import (
	"fmt"
	"html/template"

	"github.com/npillmayer/markup"
	"github.com/npillmayer/markup/object"
)

// Value is a template attribute value: a template.HTML string, a List, or a
// *Map.
type Value any

// List is an ordered list of attribute values.
type List []Value

// Map is a string-keyed map of attribute values which iterates in insertion
// order. Duplicate keys are kept; Get returns the first occurrence.
//
// Templates range over Keys and look values up with Get:
//
//     {{range .Keys}}{{.}}: {{$.Get .}}{{end}}
//
type Map struct {
	pairs []mapPair
}

type mapPair struct {
	key   string
	value Value
}

// Keys returns the map's keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.pairs))
	for i, p := range m.pairs {
		keys[i] = p.key
	}
	return keys
}

// Get returns the value for the first occurrence of key, or nil if the key
// is absent.
func (m *Map) Get(key string) Value {
	for _, p := range m.pairs {
		if p.key == key {
			return p.value
		}
	}
	return nil
}

// Len returns the number of entries, duplicates included.
func (m *Map) Len() int {
	return len(m.pairs)
}

// FromTree converts a generic object tree of markup into a template
// attribute value: scalars become their fragment text as template.HTML,
// sequences become Lists, mappings become Maps in input order. A nil tree
// converts to empty template.HTML.
func FromTree(t object.Tree[markup.Markup]) Value {
	switch n := t.(type) {
	case nil:
		return template.HTML("")
	case object.Scalar[markup.Markup]:
		return template.HTML(markup.RenderFragment(n.Value))
	case object.Sequence[markup.Markup]:
		items := make(List, len(n.Items))
		for i, item := range n.Items {
			items[i] = FromTree(item)
		}
		return items
	case object.Mapping[markup.Markup]:
		pairs := make([]mapPair, len(n.Pairs))
		for i, p := range n.Pairs {
			pairs[i] = mapPair{key: p.Key, value: FromTree(p.Value)}
		}
		return &Map{pairs: pairs}
	}
	panic(fmt.Sprintf("object tree node of unknown kind %T", t))
}
