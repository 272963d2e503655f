// Package ui is the Bubble Tea front end.
//
// AppModel is the root view. It owns all state (fetch state, counter, input
// text), builds a page.Node document from that state on every render, and
// draws the document to the terminal. Child components never hold
// authoritative state:
//   - InputField: controlled text field, reports each change to its owner
//   - UserView: pure rendering of a fetched user record
//   - FocusManager: rotates focus across the interactive nodes
//   - KeybindRegistry: maps keys to commands, filtered by focus
package ui
