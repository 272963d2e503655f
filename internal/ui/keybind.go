package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps keys to commands.
// Keys use tea.KeyMsg.String() notation: "q", "+", "tab", "ctrl+c", "enter", " ".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	focusFilter  map[string][]string // nil/empty = applies regardless of focus
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		focusFilter:  make(map[string][]string),
	}
}

// Bind registers a key to a command for any focus.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help bar.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	r.BindWithDescForFocus(k, cmd, desc, nil)
}

// BindWithDescForFocus registers a key that only fires while one of focus
// is focused. A nil or empty focus list applies everywhere.
func (r *KeybindRegistry) BindWithDescForFocus(k string, cmd tea.Cmd, desc string, focus []string) {
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	}
	if len(focus) > 0 {
		r.focusFilter[k] = focus
	} else {
		delete(r.focusFilter, k)
	}
}

// Lookup returns the command for a key under the given focus, or nil.
func (r *KeybindRegistry) Lookup(k, focus string) tea.Cmd {
	cmd, ok := r.bindings[k]
	if !ok || !r.appliesTo(k, focus) {
		return nil
	}
	return cmd
}

// Bindings returns help bindings for keys that apply under focus and carry
// a description, sorted by key.
func (r *KeybindRegistry) Bindings(focus string) []key.Binding {
	keys := make([]string, 0, len(r.descriptions))
	for k := range r.descriptions {
		if r.bindings[k] != nil && r.appliesTo(k, focus) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make([]key.Binding, 0, len(keys))
	for _, k := range keys {
		out = append(out, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(displayKey(k), r.descriptions[k]),
		))
	}
	return out
}

func (r *KeybindRegistry) appliesTo(k, focus string) bool {
	ids, ok := r.focusFilter[k]
	if !ok || len(ids) == 0 {
		return true
	}
	for _, id := range ids {
		if id == focus {
			return true
		}
	}
	return false
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// KeyHandler dispatches key presses to the registry for the current focus.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// Unconsumed keys belong to the focused widget.
func (h *KeyHandler) Handle(msg tea.KeyMsg, focus string) (consumed bool, cmd tea.Cmd) {
	if c := h.Registry.Lookup(msg.String(), focus); c != nil {
		return true, c
	}
	return false, nil
}

// DefaultKeybinds returns the application's bindings.
func DefaultKeybinds() *KeybindRegistry {
	buttons := []string{FocusIncrement, FocusDecrement}
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("tab", func() tea.Msg { return FocusNextMsg{} }, "next")
	reg.BindWithDesc("shift+tab", func() tea.Msg { return FocusPrevMsg{} }, "prev")
	reg.BindWithDescForFocus("enter", func() tea.Msg { return PressFocusedMsg{} }, "press", buttons)
	reg.BindWithDescForFocus(" ", func() tea.Msg { return PressFocusedMsg{} }, "", buttons)
	reg.BindWithDescForFocus("+", func() tea.Msg { return IncrementMsg{} }, "increment", buttons)
	reg.BindWithDescForFocus("-", func() tea.Msg { return DecrementMsg{} }, "decrement", buttons)
	reg.BindWithDescForFocus("q", tea.Quit, "quit", buttons)
	return reg
}
