/*
Package object provides a small generic tree for semi-structured data: a
value is a scalar, an ordered sequence of values, or an ordered mapping from
string keys to values. The tree is generic over its scalar payload type; the
markup root package instantiates it with Markup nodes, but nothing in this
package depends on markup.

Trees are immutable values. Map transforms the payloads of a tree while
preserving its shape; consumers that need to fold a tree into another
representation (markup, JSON, template attributes) do so with an exhaustive
match over the three node kinds.

Mapping keys are kept in insertion order and are not required to be unique;
whether a duplicate key means anything is the caller's concern.

Status

API is stable.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package object
