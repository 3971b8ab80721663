package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *Node {
	return Div(Class("grid gap-6"), ID("cards"),
		Div(Key("0"), Class("card"), Text("one")),
		Div(Key("1"), Class("card"), Text("two")),
		A(Href("/login"), Text("Login")),
	)
}

func TestBuildersCollectArgs(t *testing.T) {
	n := sampleTree()

	assert.Equal(t, "div", n.Tag)
	require.Len(t, n.Children, 3)
	assert.Equal(t, "0", n.Children[0].Key)

	v, ok := n.Get("id")
	assert.True(t, ok)
	assert.Equal(t, "cards", v)
	assert.True(t, n.HasClass("gap-6"))
	assert.False(t, n.HasClass("gap"))
}

func TestNilChildrenAreSkipped(t *testing.T) {
	var missing *Node
	n := Div(missing, nil, Group{nil, Text("x")})
	require.Len(t, n.Children, 1)
	assert.Equal(t, "x", n.TextContent())
}

func TestButtonVariant(t *testing.T) {
	b := Button("ghost", Text("Help"))
	v, _ := b.Get("data-variant")
	assert.Equal(t, "ghost", v)

	plain := Button("", Text("Go"))
	_, ok := plain.Get("data-variant")
	assert.False(t, ok)
}

func TestQueries(t *testing.T) {
	n := sampleTree()

	cards := n.FindAll(func(c *Node) bool { return c.HasClass("card") })
	require.Len(t, cards, 2)
	assert.Equal(t, "two", cards[1].TextContent())

	link := n.Find(ByAttr("href", "/login"))
	require.NotNil(t, link)
	assert.Equal(t, "Login", link.TextContent())

	assert.Nil(t, n.Find(ByTag("table")))
	assert.Equal(t, "onetwoLogin", n.TextContent())
}

func TestRenderString(t *testing.T) {
	html, err := RenderString(sampleTree())
	require.NoError(t, err)

	assert.Equal(t,
		`<div class="grid gap-6" id="cards"><div class="card">one</div><div class="card">two</div><a href="/login">Login</a></div>`,
		html)
}

func TestRenderEscapesText(t *testing.T) {
	html, err := RenderString(Span(AttrOf("title", `"quoted"`), Text("<b>&</b>")))
	require.NoError(t, err)

	assert.NotContains(t, html, "<b>")
	assert.Contains(t, html, "&lt;b&gt;&amp;&lt;/b&gt;")
	assert.Contains(t, html, "&#34;quoted&#34;")
}

func TestRenderDocument(t *testing.T) {
	var buf bytes.Buffer
	err := RenderDocument(&buf, DocumentProps{
		Title:       "TestMaster",
		Description: "Smart testing",
		Stylesheets: []string{"/static/landing.css"},
		Scripts:     []string{"/static/mount.js"},
	}, Div(Text("body")))
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>TestMaster</title>")
	assert.Contains(t, out, `href="/static/landing.css"`)
	assert.Contains(t, out, `src="/static/mount.js"`)
	assert.Contains(t, out, "<div>body</div>")
}
