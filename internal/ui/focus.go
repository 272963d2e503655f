package ui

// Focus identities of the interactive nodes, in tab order.
const (
	FocusIncrement = "increment"
	FocusDecrement = "decrement"
	FocusInput     = "input"
)

// FocusManager tracks and rotates focus across the interactive nodes.
type FocusManager struct {
	Current  string   // ID of the focused node
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// NewFocusManager focuses the first ID in order.
func NewFocusManager(order ...string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Next advances focus to the next node in order, wrapping around.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.move(1)
}

// Prev moves focus to the previous node in order, wrapping around.
func (f *FocusManager) Prev() string {
	return f.move(-1)
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

// SetFocus sets focus to the given ID.
// Returns false if the ID is not in order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

func (f *FocusManager) move(step int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := -1
	for i, id := range f.Order {
		if id == f.Current {
			idx = i
			break
		}
	}
	if idx < 0 && step < 0 {
		idx = 0
	}
	f.set(f.Order[((idx+step)%n+n)%n])
	return f.Current
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
