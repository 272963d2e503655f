// Package page is the rendering surface: a small document tree with semantic
// roles, classes and test identifiers.
//
// Views build a fresh tree from their state on every render. The tree can be
// queried the way a user would find things on screen (by text, role or test
// id), serialized to HTML, or drawn by the terminal renderer in package ui.
package page
