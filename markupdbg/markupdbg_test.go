package markupdbg

import (
	"strings"
	"testing"

	"github.com/npillmayer/markup"
)

func TestTreeDiagram(t *testing.T) {
	node := markup.Element{
		Name:  "div",
		Attrs: []markup.Attr{{Key: "id", Value: "foo"}},
		Content: markup.Group{
			markup.Text("hello"),
			markup.Void{Name: "br"},
		},
	}
	diagram := Tree(node)
	t.Logf("diagram =\n%s", diagram)
	for _, want := range []string{`<div id="foo">`, `text "hello"`, "<br> (void)", "group of 2"} {
		if !strings.Contains(diagram, want) {
			t.Errorf("expected diagram to contain %q, doesn't", want)
		}
	}
}

func TestNilTree(t *testing.T) {
	if diagram := Tree(nil); strings.TrimSpace(diagram) != "." {
		t.Errorf("expected diagram of nil markup to be just the root, is %q", diagram)
	}
}
