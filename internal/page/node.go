package page

import "strings"

// Node is one element of the document tree.
type Node struct {
	Tag      string
	ID       string // stable identity for focus and live widgets; not rendered
	Class    string
	TestID   string
	Text     string
	Value    string // current value of an input
	Children []*Node

	OnClick func()
	OnInput func(value string)
}

// El creates an element with optional text and children.
func El(tag, text string, children ...*Node) *Node {
	return &Node{Tag: tag, Text: text, Children: children}
}

// WithClass sets the class attribute and returns n.
func (n *Node) WithClass(class string) *Node {
	n.Class = class
	return n
}

// WithTestID sets the data-testid attribute and returns n.
func (n *Node) WithTestID(id string) *Node {
	n.TestID = id
	return n
}

// WithID sets the focus identity and returns n.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

func Div(children ...*Node) *Node { return El("div", "", children...) }
func H1(text string) *Node         { return El("h1", text) }
func H2(text string) *Node         { return El("h2", text) }
func H3(text string) *Node         { return El("h3", text) }
func Span(text string) *Node       { return El("span", text) }
func UL(items ...*Node) *Node      { return El("ul", "", items...) }
func LI(text string) *Node         { return El("li", text) }

// Button creates a button labelled text.
func Button(text string, onClick func()) *Node {
	n := El("button", text)
	n.OnClick = onClick
	return n
}

// TextInput creates a single-line text field showing value.
func TextInput(value string, onInput func(string)) *Node {
	n := El("input", "")
	n.Value = value
	n.OnInput = onInput
	return n
}

// Role returns the implicit semantic role of the element, or "".
func (n *Node) Role() string {
	switch n.Tag {
	case "ul", "ol":
		return "list"
	case "li":
		return "listitem"
	case "button":
		return "button"
	case "input":
		return "textbox"
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return "heading"
	default:
		return ""
	}
}

// HasClass reports whether class is one of n's space-separated classes.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Class) {
		if c == class {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		b.WriteString(c.Text)
		return true
	})
	return b.String()
}

// Walk visits n and its descendants depth-first.
// Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
