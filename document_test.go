package markup

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFragmentRetrust(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.core")
	defer teardown()
	//
	node := Group{
		Text("a & b"),
		Element{Name: "p", Attrs: []Attr{{Key: "title", Value: `"q"`}}, Content: Text("<x>")},
		Void{Name: "br"},
	}
	frag := RenderFragment(node)
	again := RenderFragment(frag.Markup())
	if frag != again {
		t.Logf("frag  = %q", frag)
		t.Logf("again = %q", again)
		t.Error("expected re-trusted fragment to re-render byte-identical, doesn't")
	}
}

func TestFullDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.core")
	defer teardown()
	//
	doc := RenderDocument(Element{Name: "p", Content: Text("hi")})
	want := "<!DOCTYPE html><html><head><title>Untitled</title></head><body>" +
		"<p>hi</p></body></html>"
	if doc.String() != want {
		t.Logf("doc = %q", doc)
		t.Error("expected fixed page skeleton around the rendered body, isn't")
	}
	if doc.IsZero() {
		t.Error("expected a rendered document not to be zero, is")
	}
}

func TestXMLDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.core")
	defer teardown()
	//
	doc := RenderXML(Element{
		Name:    "feed",
		Content: Void{Name: "entry", Attrs: []Attr{{Key: "id", Value: "1"}}},
	})
	want := "<?xml version='1.0' encoding='utf-8' ?>\n<feed><entry id=\"1\"/></feed>"
	if doc.String() != want {
		t.Logf("doc = %q", doc)
		t.Error("expected XML prolog and self-closed void tag, isn't")
	}
}

func TestCDATA(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup.core")
	defer teardown()
	//
	wrapped := CDATA(Text("x < y"))
	if !Equal(wrapped, Group{Raw("<![CDATA["), Text("x < y"), Raw("]]>")}) {
		t.Errorf("expected CDATA to be a pure tree transform, got %v", wrapped)
	}
	out := Render(XML, wrapped)
	if !strings.HasPrefix(out, "<![CDATA[") || !strings.HasSuffix(out, "]]>") {
		t.Logf("out = %q", out)
		t.Error("expected rendering to keep the CDATA section markers, doesn't")
	}
}
