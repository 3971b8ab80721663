package view

import (
	"bytes"
	"io"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// Component converts the tree into a gomponents node.
func (n *Node) Component() g.Node {
	if n == nil {
		return nil
	}
	if n.Tag == "" {
		return g.Text(n.Text)
	}

	children := make([]g.Node, 0, len(n.Attrs)+len(n.Children))
	for _, a := range n.Attrs {
		children = append(children, g.Attr(a.Name, a.Value))
	}
	for _, child := range n.Children {
		children = append(children, child.Component())
	}
	return g.El(n.Tag, children...)
}

// Render writes the HTML of n to w.
func Render(w io.Writer, n *Node) error {
	return n.Component().Render(w)
}

// RenderString returns the HTML of n.
func RenderString(n *Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DocumentProps describes the page shell around a body tree.
type DocumentProps struct {
	Title       string
	Description string
	Stylesheets []string
	Scripts     []string
}

// Document wraps body in a full HTML5 document.
func Document(p DocumentProps, body *Node) g.Node {
	head := []g.Node{}
	for _, href := range p.Stylesheets {
		head = append(head, h.Link(h.Rel("stylesheet"), h.Href(href)))
	}
	for _, src := range p.Scripts {
		head = append(head, h.Script(h.Src(src), h.Defer()))
	}

	return c.HTML5(c.HTML5Props{
		Title:       p.Title,
		Description: p.Description,
		Language:    "en",
		Head:        head,
		Body:        []g.Node{body.Component()},
	})
}

// RenderDocument writes a full HTML document to w.
func RenderDocument(w io.Writer, p DocumentProps, body *Node) error {
	return Document(p, body).Render(w)
}
