package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"hellotui/internal/page"
)

// InputField is a controlled single-line text field.
//
// The owner passes the current value into every call; the field never keeps
// its own copy of the text. The bubbles textinput is only an editing buffer
// (cursor, word deletion) and is reset to the owner's value before each use.
type InputField struct {
	input    textinput.Model
	onChange func(value string)
}

// NewInputField creates a field that calls onChange with the full new
// content after each keystroke that changes it.
func NewInputField(onChange func(value string)) *InputField {
	ti := textinput.New()
	ti.Placeholder = "type something"
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()
	return &InputField{input: ti, onChange: onChange}
}

// Node returns the document node for the field showing value.
func (f *InputField) Node(value string) *page.Node {
	return page.TextInput(value, f.onChange).WithID(FocusInput)
}

// Update applies one message to the field holding value.
// The change callback fires at most once, and only if the text changed.
func (f *InputField) Update(msg tea.Msg, value string) tea.Cmd {
	f.input.SetValue(value)
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if next := f.input.Value(); next != value && f.onChange != nil {
		f.onChange(next)
	}
	return cmd
}

// View draws the field showing value.
func (f *InputField) View(value string) string {
	f.input.SetValue(value)
	return f.input.View()
}

// SetFocused toggles the cursor.
func (f *InputField) SetFocused(focused bool) tea.Cmd {
	if focused {
		return f.input.Focus()
	}
	f.input.Blur()
	return nil
}
