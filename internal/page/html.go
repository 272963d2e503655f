package page

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteHTML serializes the tree as HTML to w.
func (n *Node) WriteHTML(w io.Writer) error {
	return html.Render(w, n.toHTML())
}

// HTML returns the tree serialized as HTML.
func (n *Node) HTML() string {
	var buf bytes.Buffer
	if err := n.WriteHTML(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (n *Node) toHTML() *html.Node {
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if n.Class != "" {
		h.Attr = append(h.Attr, html.Attribute{Key: "class", Val: n.Class})
	}
	if n.TestID != "" {
		h.Attr = append(h.Attr, html.Attribute{Key: "data-testid", Val: n.TestID})
	}
	if n.Tag == "input" {
		h.Attr = append(h.Attr,
			html.Attribute{Key: "type", Val: "text"},
			html.Attribute{Key: "value", Val: n.Value},
		)
	}
	if n.Text != "" {
		h.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		h.AppendChild(c.toHTML())
	}
	return h
}
