/*
Package bind exposes generic object trees of markup as attribute values for
the standard template engines.

A bound value is one of three shapes: a template.HTML string (the rendered
fragment text, marked as pre-escaped so html/template will not escape it
again), a List of bound values, or an ordered Map from string keys to bound
values. This lets one object tree be handed to a template as a single
attribute, without a separate flattening pass.

Status

API is stable.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bind
