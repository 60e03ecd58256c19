package markup

import (
	"fmt"

	"github.com/npillmayer/markup/object"
)

// FromTree gives a generic object tree of markup a concrete visual shape:
// scalars pass through unchanged, sequences become unordered lists,
// mappings become definition lists with their keys as escaped plain text.
// The policy is fixed; callers wanting a different shape build the markup
// themselves.
//
// Composing FromTree with RenderFragment, RenderDocument or RenderXML
// renders generic data in any of the three document shapes.
func FromTree(t object.Tree[Markup]) Markup {
	switch n := t.(type) {
	case nil:
		return nil
	case object.Scalar[Markup]:
		return n.Value
	case object.Sequence[Markup]:
		items := make(Group, len(n.Items))
		for i, item := range n.Items {
			items[i] = Element{Name: "li", Content: FromTree(item)}
		}
		return Element{Name: "ul", Content: items}
	case object.Mapping[Markup]:
		items := make(Group, 0, 2*len(n.Pairs))
		for _, p := range n.Pairs {
			items = append(items,
				Element{Name: "dt", Content: Text(p.Key)},
				Element{Name: "dd", Content: FromTree(p.Value)},
			)
		}
		return Element{Name: "dl", Content: items}
	}
	panic(fmt.Sprintf("object tree node of unknown kind %T", t))
}
