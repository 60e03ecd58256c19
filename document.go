package markup

// The three document shapes are distinct types over a plain text payload.
// They carry no behavior beyond holding their text; their point is that a
// fragment, a full HTML page and an XML document cannot be mixed up at
// compile time.

// Fragment is rendered markup text without any document wrapper, suitable
// for embedding into a larger document.
type Fragment string

func (f Fragment) String() string { return string(f) }

// IsZero reports whether the fragment is empty.
func (f Fragment) IsZero() bool { return f == "" }

// Markup reinterprets the fragment's already-escaped text as trusted raw
// markup. This is the re-trust boundary: the fragment was produced by the
// renderer, so its text is safe by construction and is not escaped again.
// Re-rendering the returned node yields the fragment's text byte for byte.
func (f Fragment) Markup() Markup {
	return Raw(f)
}

// FullDocument is a complete HTML page.
type FullDocument string

func (d FullDocument) String() string { return string(d) }

// IsZero reports whether the document is empty.
func (d FullDocument) IsZero() bool { return d == "" }

// XMLDocument is an XML document including its prolog.
type XMLDocument string

func (d XMLDocument) String() string { return string(d) }

// IsZero reports whether the document is empty.
func (d XMLDocument) IsZero() bool { return d == "" }

// DocumentTitle is the placeholder title emitted into the head of every
// FullDocument.
const DocumentTitle = "Untitled"

const (
	htmlPreamble  = "<!DOCTYPE html><html><head><title>" + DocumentTitle + "</title></head><body>"
	htmlPostamble = "</body></html>"
	xmlProlog     = "<?xml version='1.0' encoding='utf-8' ?>\n"
)

// RenderFragment renders m in HTML mode with no wrapping.
func RenderFragment(m Markup) Fragment {
	return Fragment(Render(HTML, m))
}

// RenderDocument renders m in HTML mode, wrapped into a fixed page skeleton:
// doctype, head with placeholder title, and body.
func RenderDocument(m Markup) FullDocument {
	buf := make([]byte, 0, 256)
	buf = append(buf, htmlPreamble...)
	buf = appendMarkup(buf, HTML, m)
	buf = append(buf, htmlPostamble...)
	return FullDocument(buf)
}

// RenderXML renders m in XML mode, preceded by an XML prolog. For the result
// to be well-formed XML, m has to start with a single element—not raw text
// and not a group of top-level siblings. This precondition is not checked;
// violating it yields invalid XML text, not an error.
func RenderXML(m Markup) XMLDocument {
	buf := make([]byte, 0, 256)
	buf = append(buf, xmlProlog...)
	buf = appendMarkup(buf, XML, m)
	return XMLDocument(buf)
}

// CDATA wraps a markup tree into a CDATA section. This is a pure tree
// transform; the wrapped node is rendered as usual between the section
// markers.
func CDATA(m Markup) Markup {
	return Group{Raw("<![CDATA["), m, Raw("]]>")}
}
