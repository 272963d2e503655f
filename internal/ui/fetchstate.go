package ui

import "hellotui/internal/user"

// FetchState is the outcome of the one-shot user fetch.
// Exactly one variant holds at a time: Loading, Loaded or Failed.
type FetchState interface {
	fetchState()
	String() string
}

// Loading means the fetch has not resolved yet.
type Loading struct{}

// Loaded holds the fetched record.
type Loaded struct {
	User user.Record
}

// Failed holds the message of the fetch failure.
type Failed struct {
	Message string
}

func (Loading) fetchState() {}
func (Loaded) fetchState()  {}
func (Failed) fetchState()  {}

func (Loading) String() string { return "Loading" }
func (Loaded) String() string  { return "Loaded" }
func (Failed) String() string  { return "Failed" }
