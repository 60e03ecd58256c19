package markup

import (
	"fmt"

	"golang.org/x/net/html"
)

// Mode selects the tag-closing convention used by the renderer.
type Mode int

const (
	// HTML closes void tags with a plain '>'.
	HTML Mode = iota
	// XML closes void tags with '/>'.
	XML
)

func (mode Mode) String() string {
	if mode == XML {
		return "XML"
	}
	return "HTML"
}

// Render flattens a markup tree into its textual form. Text nodes and
// attribute keys and values are escaped with html.EscapeString, Raw nodes
// are emitted verbatim.
func Render(mode Mode, m Markup) string {
	tracer().Debugf("render %v in %s mode", m, mode)
	return string(appendMarkup(make([]byte, 0, 128), mode, m))
}

// appendMarkup is the renderer proper: a single exhaustive match over the
// node kinds. Output is accumulated into buf, so that flattening an
// arbitrarily deep or wide tree stays linear in the size of the output.
// Returning concatenated strings from the recursion instead would copy
// every prefix once per level.
func appendMarkup(buf []byte, mode Mode, m Markup) []byte {
	switch n := m.(type) {
	case nil:
		return buf
	case Raw:
		return append(buf, n...)
	case Text:
		return append(buf, html.EscapeString(string(n))...)
	case Element:
		buf = appendOpenTag(buf, n.Name, n.Attrs)
		buf = append(buf, '>')
		buf = appendMarkup(buf, mode, n.Content)
		buf = append(buf, "</"...)
		buf = append(buf, n.Name...)
		return append(buf, '>')
	case Void:
		buf = appendOpenTag(buf, n.Name, n.Attrs)
		if mode == XML {
			return append(buf, "/>"...)
		}
		return append(buf, '>')
	case Group:
		for _, item := range n {
			buf = appendMarkup(buf, mode, item)
		}
		return buf
	}
	panic(fmt.Sprintf("markup node of unknown kind %T", m))
}

// appendOpenTag emits '<name' plus all attributes, but not the closing
// '>' or '/>' of the open tag.
func appendOpenTag(buf []byte, name string, attrs []Attr) []byte {
	buf = append(buf, '<')
	buf = append(buf, name...)
	for _, a := range attrs {
		buf = append(buf, ' ')
		buf = append(buf, html.EscapeString(a.Key)...)
		buf = append(buf, `="`...)
		buf = append(buf, html.EscapeString(a.Value)...)
		buf = append(buf, '"')
	}
	return buf
}
