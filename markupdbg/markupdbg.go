/*
Package markupdbg implements helpers to debug markup trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markupdbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/markup"
	tp "github.com/xlab/treeprint"
)

// Tree returns an indented tree diagram of a markup tree, one line per
// node, for logging and test output.
func Tree(m markup.Markup) string {
	printer := tp.New()
	addNode(printer, m)
	return printer.String()
}

func addNode(printer tp.Tree, m markup.Markup) {
	switch n := m.(type) {
	case nil:
		return
	case markup.Raw:
		printer.AddNode(fmt.Sprintf("raw %q", string(n)))
	case markup.Text:
		printer.AddNode(fmt.Sprintf("text %q", string(n)))
	case markup.Element:
		branch := printer.AddBranch(label(n.Name, n.Attrs))
		addNode(branch, n.Content)
	case markup.Void:
		printer.AddNode(label(n.Name, n.Attrs) + " (void)")
	case markup.Group:
		branch := printer.AddBranch(fmt.Sprintf("group of %d", len(n)))
		for _, item := range n {
			addNode(branch, item)
		}
	}
}

func label(name string, attrs []markup.Attr) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(name)
	for _, a := range attrs {
		fmt.Fprintf(&b, " %s=%q", a.Key, a.Value)
	}
	b.WriteString(">")
	return b.String()
}
