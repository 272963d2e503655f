package ui

import "hellotui/internal/user"

// IncrementMsg adds one to the counter.
type IncrementMsg struct{}

// DecrementMsg subtracts one from the counter.
type DecrementMsg struct{}

// PressFocusedMsg presses the focused button, if any.
type PressFocusedMsg struct{}

// FocusNextMsg moves focus forward (tab).
type FocusNextMsg struct{}

// FocusPrevMsg moves focus backward (shift+tab).
type FocusPrevMsg struct{}

// userFetchedMsg carries a successful fetch result.
type userFetchedMsg struct {
	User user.Record
}

// userFetchFailedMsg carries the failure message of the fetch.
type userFetchFailedMsg struct {
	Message string
}
