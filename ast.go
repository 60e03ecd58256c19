package markup

import "fmt"

// Markup is one node of a markup tree. It is a closed sum over the five node
// kinds Raw, Text, Element, Void and Group; clients construct values of those
// types directly. Markup values are immutable and compared structurally with
// Equal.
type Markup interface {
	isMarkup()
}

// Raw is text which is already known to be safe markup. It is emitted
// verbatim by the renderer, bypassing all escaping. Raw is the only node
// kind that does so: wrapping untrusted input in Raw re-introduces every
// injection problem this package exists to prevent.
type Raw string

func (Raw) isMarkup() {}

func (m Raw) String() string {
	return fmt.Sprintf("Raw(%q)", string(m))
}

// Text is plain text. The renderer escapes it on the way out, so a Text node
// may contain any characters, markup-significant or not.
type Text string

func (Text) isMarkup() {}

func (m Text) String() string {
	return fmt.Sprintf("Text(%q)", string(m))
}

// Attr is a single attribute of an Element or Void node. Attribute lists are
// ordered slices; duplicate keys are kept and emitted in order, not
// deduplicated.
type Attr struct {
	Key   string
	Value string
}

// Element is a tag with a matching closing tag. Content holds the nested
// markup; use a Group for more than one child. A nil Content renders as an
// empty element.
//
// Name is emitted as given. Checking it for syntactic legality is the
// caller's business, not this package's.
type Element struct {
	Name    string
	Attrs   []Attr
	Content Markup
}

func (Element) isMarkup() {}

func (m Element) String() string {
	return "<" + m.Name + ">"
}

// Void is a tag without closing tag and without children, like <br> or
// <img>. How its open tag is closed depends on the rendering mode.
type Void struct {
	Name  string
	Attrs []Attr
}

func (Void) isMarkup() {}

func (m Void) String() string {
	return "<" + m.Name + "/>"
}

// Group is an ordered sequence of sibling nodes with no wrapping tag. It
// renders as the plain concatenation of its items.
type Group []Markup

func (Group) isMarkup() {}

func (m Group) String() string {
	return fmt.Sprintf("Group(%d)", len(m))
}

// --- Structural equality ---------------------------------------------------

// Equal compares two markup trees structurally. Element contents of nil and
// an empty Group are distinct shapes and compare unequal.
func Equal(a, b Markup) bool {
	switch m := a.(type) {
	case Raw:
		n, ok := b.(Raw)
		return ok && m == n
	case Text:
		n, ok := b.(Text)
		return ok && m == n
	case Element:
		n, ok := b.(Element)
		return ok && m.Name == n.Name && attrsEqual(m.Attrs, n.Attrs) && Equal(m.Content, n.Content)
	case Void:
		n, ok := b.(Void)
		return ok && m.Name == n.Name && attrsEqual(m.Attrs, n.Attrs)
	case Group:
		n, ok := b.(Group)
		if !ok || len(m) != len(n) {
			return false
		}
		for i := range m {
			if !Equal(m[i], n[i]) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}

func attrsEqual(a, b []Attr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
