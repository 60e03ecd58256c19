/*
Package markup provides a typed intermediate representation for HTML and XML
content, together with lossless, escaping-correct renderings of that
representation.

Clients build a tree of Markup nodes—raw markup, escapable text, elements,
void elements and groups of siblings—and hand it to one of the rendering
entry points. Rendering flattens the tree into text, escaping every piece of
untrusted content on the way out, so that callers never hand-escape text or
attribute values. Three document shapes are available: a bare Fragment, a
complete HTML FullDocument, and an XMLDocument with prolog.

Markup trees are immutable values. Rendering never mutates its input, and all
conversions in this module and its subpackages are total, pure functions:
there is no error to handle and no state to share. Escaping is not validated
or repaired—wrapping pre-escaped text in a Text node will double-escape it,
and only Raw bypasses escaping. Tag and attribute names are likewise taken as
given; a malformed name produces malformed output, not an error.

The subpackages bridge markup into other representations: package object
holds a generic scalar/sequence/mapping tree which FromTree turns into
markup, package jsontree serializes markup and object trees as JSON with
stable member order, and package bind exposes object trees to the standard
template engines.

Status

API is stable.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.core'.
func tracer() tracing.Trace {
	return tracing.Select("markup.core")
}
