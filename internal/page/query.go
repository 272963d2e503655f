package page

import "strings"

// find returns every node matching pred in document order.
func (n *Node) find(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

func first(nodes []*Node) *Node {
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// AllByText returns nodes whose own text equals text after trimming whitespace.
func (n *Node) AllByText(text string) []*Node {
	want := strings.TrimSpace(text)
	return n.find(func(c *Node) bool {
		return c.Text != "" && strings.TrimSpace(c.Text) == want
	})
}

// ByText returns the first node whose own text equals text, or nil.
func (n *Node) ByText(text string) *Node {
	return first(n.AllByText(text))
}

// ContainsText reports whether any node's own text contains substr.
func (n *Node) ContainsText(substr string) bool {
	return len(n.find(func(c *Node) bool {
		return c.Text != "" && strings.Contains(c.Text, substr)
	})) > 0
}

// ByTestID returns the node with the given data-testid, or nil.
func (n *Node) ByTestID(id string) *Node {
	return first(n.find(func(c *Node) bool { return c.TestID == id }))
}

// ByID returns the node with the given focus identity, or nil.
func (n *Node) ByID(id string) *Node {
	return first(n.find(func(c *Node) bool { return c.ID == id }))
}

// AllByRole returns every node with the given implicit role.
func (n *Node) AllByRole(role string) []*Node {
	return n.find(func(c *Node) bool { return c.Role() == role })
}

// ByRole returns the first node with the given implicit role, or nil.
func (n *Node) ByRole(role string) *Node {
	return first(n.AllByRole(role))
}

// Focusable returns the IDs of interactive nodes in document order.
func (n *Node) Focusable() []string {
	var ids []string
	for _, c := range n.find(func(c *Node) bool {
		return c.ID != "" && (c.Role() == "button" || c.Role() == "textbox")
	}) {
		ids = append(ids, c.ID)
	}
	return ids
}
