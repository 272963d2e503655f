package user

// FetchError is the single failure kind of a user fetch.
// Error returns Message verbatim so it can be shown to the user as-is.
type FetchError struct {
	Message string
	Status  int // HTTP status code, 0 when no response was received
	Err     error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
