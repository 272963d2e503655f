package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"hellotui/internal/user"
)

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ", "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func jackFetcher() user.Fetcher {
	return user.FetcherFunc(func(ctx context.Context) (user.Record, error) {
		return user.Record{
			Name:   "Jack",
			Email:  "jack@email.com",
			Fields: map[string]any{"name": "Jack", "email": "jack@email.com"},
		}, nil
	})
}

func downFetcher() user.Fetcher {
	return user.FetcherFunc(func(ctx context.Context) (user.Record, error) {
		return user.Record{}, &user.FetchError{Message: "API is down", Err: errors.New("connection refused")}
	})
}

// countingFetcher wraps f and counts calls.
type countingFetcher struct {
	f     user.Fetcher
	calls int
}

func (c *countingFetcher) Fetch(ctx context.Context) (user.Record, error) {
	c.calls++
	return c.f.Fetch(ctx)
}

// newApp builds a model and its tea.Model adapter.
func newApp(t *testing.T, f user.Fetcher) (*AppModel, tea.Model) {
	t.Helper()
	m := NewAppModel(f, nil)
	return m, m.AsTeaModel()
}

// runCmd executes cmd one level deep, feeding every resulting message back
// into the model. Commands returned by those updates are not run, so
// timers (spinner ticks, cursor blink) never sleep.
func runCmd(t *testing.T, a tea.Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				a.Update(c())
			}
		}
		return
	}
	a.Update(msg)
}

// mount runs Init and resolves the fetch.
func mount(t *testing.T, a tea.Model) {
	t.Helper()
	runCmd(t, a, a.Init())
}

// click presses the button labelled label the way a pointer would.
func click(t *testing.T, m *AppModel, label string) {
	t.Helper()
	n := m.Document().ByText(label)
	require.NotNil(t, n, "no element with text %q", label)
	require.Equal(t, "button", n.Role())
	require.NotNil(t, n.OnClick)
	n.OnClick()
}

// change fires an input event on the text field with its new full value,
// the way a browser reports an edit.
func change(t *testing.T, m *AppModel, value string) {
	t.Helper()
	box := m.Document().ByRole("textbox")
	require.NotNil(t, box, "no textbox on the page")
	require.NotNil(t, box.OnInput)
	box.OnInput(value)
}

// typeText focuses the input and types s one key at a time.
func typeText(t *testing.T, m *AppModel, a tea.Model, s string) {
	t.Helper()
	require.True(t, m.Focus.SetFocus(FocusInput))
	for _, r := range s {
		_, cmd := a.Update(keyMsg(string(r)))
		_ = cmd
	}
}

// sendKey delivers one key and runs whatever command the keybind returns.
func sendKey(t *testing.T, a tea.Model, k string) tea.Msg {
	t.Helper()
	_, cmd := a.Update(keyMsg(k))
	if cmd == nil {
		return nil
	}
	msg := cmd()
	a.Update(msg)
	return msg
}

func stripANSI(s string) string {
	return ansi.Strip(s)
}
