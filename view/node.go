// Package view is a small inspectable element tree. Pages build a tree of
// Nodes, tests walk it, and Render turns it into HTML.
package view

import "strings"

// Attr is a single HTML attribute. Attribute order is preserved.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Node is an element or, when Tag is empty, a text node.
type Node struct {
	Tag      string  `json:"tag,omitempty"`
	Key      string  `json:"key,omitempty"`
	Attrs    []Attr  `json:"attrs,omitempty"`
	Children []*Node `json:"children,omitempty"`
	Text     string  `json:"text,omitempty"`
}

// Arg is anything that can be passed to an element builder: attributes,
// keys and child nodes.
type Arg interface {
	apply(n *Node)
}

func (a Attr) apply(n *Node) { n.Attrs = append(n.Attrs, a) }

func (c *Node) apply(n *Node) {
	if c != nil {
		n.Children = append(n.Children, c)
	}
}

type key string

func (k key) apply(n *Node) { n.Key = string(k) }

// Group applies several args at once; nil entries are skipped.
type Group []Arg

func (g Group) apply(n *Node) {
	for _, a := range g {
		if a != nil {
			a.apply(n)
		}
	}
}

// Key sets the node's reconciliation key. Keys are not rendered.
func Key(k string) Arg { return key(k) }

// El builds an element.
func El(tag string, args ...Arg) *Node {
	n := &Node{Tag: tag}
	Group(args).apply(n)
	return n
}

// Text builds a text node.
func Text(s string) *Node { return &Node{Text: s} }

func Class(v string) Attr        { return Attr{Name: "class", Value: v} }
func Href(v string) Attr         { return Attr{Name: "href", Value: v} }
func ID(v string) Attr           { return Attr{Name: "id", Value: v} }
func Data(name, v string) Attr   { return Attr{Name: "data-" + name, Value: v} }
func AttrOf(name, v string) Attr { return Attr{Name: name, Value: v} }

func Div(args ...Arg) *Node     { return El("div", args...) }
func Span(args ...Arg) *Node    { return El("span", args...) }
func P(args ...Arg) *Node       { return El("p", args...) }
func H1(args ...Arg) *Node      { return El("h1", args...) }
func H2(args ...Arg) *Node      { return El("h2", args...) }
func H3(args ...Arg) *Node      { return El("h3", args...) }
func Header(args ...Arg) *Node  { return El("header", args...) }
func Nav(args ...Arg) *Node     { return El("nav", args...) }
func Section(args ...Arg) *Node { return El("section", args...) }
func Footer(args ...Arg) *Node  { return El("footer", args...) }
func A(args ...Arg) *Node       { return El("a", args...) }

// Button builds a button. Variant is one of "", "ghost" or "outline" and is
// exposed as data-variant for styling.
func Button(variant string, args ...Arg) *Node {
	b := El("button", AttrOf("type", "button"))
	if variant != "" {
		b.Attrs = append(b.Attrs, Data("variant", variant))
	}
	Group(args).apply(b)
	return b
}

// Get returns the value of the named attribute.
func (n *Node) Get(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasClass reports whether the class attribute contains c.
func (n *Node) HasClass(c string) bool {
	v, _ := n.Get("class")
	for _, f := range strings.Fields(v) {
		if f == c {
			return true
		}
	}
	return false
}

// TextContent concatenates all text below n, like the DOM property.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Tag == "" {
			b.WriteString(c.Text)
		}
		return true
	})
	return b.String()
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// FindAll returns every node below n, n included, that matches.
func (n *Node) FindAll(match func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if match(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Find returns the first match in depth-first order, or nil.
func (n *Node) Find(match func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if match(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// ByAttr matches elements whose attribute name equals value.
func ByAttr(name, value string) func(*Node) bool {
	return func(n *Node) bool {
		v, ok := n.Get(name)
		return ok && v == value
	}
}

// ByTag matches elements with the given tag.
func ByTag(tag string) func(*Node) bool {
	return func(n *Node) bool { return n.Tag == tag }
}
