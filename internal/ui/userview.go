package ui

import (
	"hellotui/internal/page"
	"hellotui/internal/user"
)

// UserView renders a fetched record: name as a heading, email as text.
// The caller guarantees the record exists.
func UserView(u user.Record) *page.Node {
	return page.Div(
		page.H3(u.Name),
		page.Span(u.Email),
	).WithClass("person")
}
