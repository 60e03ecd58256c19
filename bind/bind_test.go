package bind

import (
	"html/template"
	"strings"
	"testing"

	"github.com/npillmayer/markup"
	"github.com/npillmayer/markup/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarBindsAsHTML(t *testing.T) {
	v := FromTree(object.Of[markup.Markup](markup.Text("<hr>")))
	assert.Equal(t, template.HTML("&lt;hr&gt;"), v,
		"a scalar binds as its pre-escaped fragment text")
}

func TestSequenceBindsAsList(t *testing.T) {
	v := FromTree(object.Seq(
		object.Of[markup.Markup](markup.Raw("<br>")),
		object.Of[markup.Markup](markup.Text("x")),
	))
	list, ok := v.(List)
	require.True(t, ok, "a sequence binds as a List")
	require.Len(t, list, 2)
	assert.Equal(t, template.HTML("<br>"), list[0])
	assert.Equal(t, template.HTML("x"), list[1])
}

func TestMappingBindsAsOrderedMap(t *testing.T) {
	v := FromTree(object.Dict(
		object.P("z", object.Of[markup.Markup](markup.Text("1"))),
		object.P("a", object.Of[markup.Markup](markup.Text("2"))),
		object.P("z", object.Of[markup.Markup](markup.Text("3"))),
	))
	m, ok := v.(*Map)
	require.True(t, ok, "a mapping binds as a *Map")
	assert.Equal(t, []string{"z", "a", "z"}, m.Keys(), "keys keep input order")
	assert.Equal(t, template.HTML("1"), m.Get("z"), "Get returns the first occurrence")
	assert.Equal(t, 3, m.Len())
	assert.Nil(t, m.Get("missing"))
}

func TestTemplateExecution(t *testing.T) {
	tree := object.Dict(
		object.P("title", object.Of[markup.Markup](markup.Text("a & b"))),
		object.P("rule", object.Of[markup.Markup](markup.Raw("<hr>"))),
	)
	tmpl := template.Must(template.New("attrs").Parse(
		`{{range .Keys}}{{.}}={{$.Get .}};{{end}}`))
	var out strings.Builder
	require.NoError(t, tmpl.Execute(&out, FromTree(tree)))
	// template.HTML values pass through html/template without a second
	// round of escaping.
	assert.Equal(t, "title=a &amp; b;rule=<hr>;", out.String())
}
