package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hellotui/internal/page"
	"hellotui/internal/ui/textutil"
)

// termRenderer draws a page.Node document as styled terminal text.
type termRenderer struct {
	width  int    // 0 = unbounded
	focus  string // focused node ID
	widget func(n *page.Node) (string, bool)
}

func (r termRenderer) render(n *page.Node) string {
	if n == nil {
		return ""
	}
	if r.widget != nil {
		if s, ok := r.widget(n); ok {
			return s
		}
	}
	switch n.Tag {
	case "h1":
		return Styles.Title.Render(r.fit(n.Text))
	case "h2":
		return Styles.Counter.Render(r.fit(n.Text))
	case "h3":
		return Styles.Section.Render(r.fit(n.Text))
	case "span":
		return Styles.Normal.Render(r.fit(n.Text))
	case "ul":
		lines := make([]string, 0, len(n.Children))
		for _, li := range n.Children {
			lines = append(lines, Styles.Muted.Render(r.fit("• "+li.TextContent())))
		}
		return strings.Join(lines, "\n")
	case "button":
		if n.ID != "" && n.ID == r.focus {
			return Styles.ButtonFocused.Render(n.Text)
		}
		return Styles.Button.Render(n.Text)
	case "input":
		return Styles.Normal.Render(r.fit("> " + n.Value))
	}

	block := r.renderChildren(n.Children)
	if n.HasClass("person") {
		return Styles.Person.Render(block)
	}
	return block
}

// renderChildren stacks children vertically, laying out runs of adjacent
// buttons side by side.
func (r termRenderer) renderChildren(children []*page.Node) string {
	var rows, buttons []string
	flush := func() {
		if len(buttons) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
			buttons = nil
		}
	}
	for _, c := range children {
		if c.Role() == "button" {
			buttons = append(buttons, r.render(c))
			continue
		}
		flush()
		rows = append(rows, r.render(c))
	}
	flush()
	return strings.Join(rows, "\n")
}

func (r termRenderer) fit(s string) string {
	if r.width <= 0 {
		return s
	}
	return textutil.Truncate(s, r.width)
}
