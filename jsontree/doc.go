/*
Package jsontree serializes markup and generic object trees as JSON.

The standard library's encoding/json marshals map-backed objects with sorted
keys; this package instead models a JSON value as an explicit tree—string,
array, or object with an ordered member list—so that serialization emits
members exactly in input order.

Markup enters JSON as a string scalar holding the markup's rendered fragment
text. Since fragment text is already HTML-escaped, the resulting JSON
strings are safe to embed directly into script contexts; the serializer
deliberately does not apply any HTML escaping of its own on top.

Status

API is stable.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package jsontree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.jsontree'.
func tracer() tracing.Trace {
	return tracing.Select("markup.jsontree")
}
