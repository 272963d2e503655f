package ui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"hellotui/internal/page"
	"hellotui/internal/user"
)

// Static page content.
const (
	HeadingText = "Hello World"
	BrandText   = "Yokizzy"
	LoadingText = "Loading..."
)

// Animals is the fixed list shown under the heading.
var Animals = []string{"Cat", "Whale", "Lion", "Elephant", "Rhino"}

// AppModel is the root view. It owns every piece of state and is the only
// place that state changes.
type AppModel struct {
	Fetcher    user.Fetcher
	Logger     *zap.Logger
	Input      *InputField
	Focus      *FocusManager
	KeyHandler *KeyHandler

	state      FetchState
	counter    int
	inputValue string
	fetched    bool

	spinner  spinner.Model
	width    int
	focusCmd tea.Cmd // cursor command from the last focus change
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model in the Loading state.
// A nil logger is replaced by a no-op logger.
func NewAppModel(fetcher user.Fetcher, logger *zap.Logger) *AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	m := &AppModel{
		Fetcher:    fetcher,
		Logger:     logger,
		Focus:      NewFocusManager(FocusIncrement, FocusDecrement, FocusInput),
		KeyHandler: NewKeyHandler(DefaultKeybinds()),
		state:      Loading{},
		spinner:    s,
	}
	m.Input = NewInputField(m.handleChange)
	m.Input.SetFocused(false)
	m.Focus.OnChange = func(from, to string) {
		m.focusCmd = m.Input.SetFocused(to == FocusInput)
	}
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// State returns the current fetch state.
func (m *AppModel) State() FetchState { return m.state }

// Counter returns the counter value.
func (m *AppModel) Counter() int { return m.counter }

// InputValue returns the text last reported by the input field.
func (m *AppModel) InputValue() string { return m.inputValue }

// FetchCmd returns the command that fetches the user. It is handed out
// once per model; later calls return nil.
func (m *AppModel) FetchCmd() tea.Cmd {
	if m.fetched || m.Fetcher == nil {
		return nil
	}
	m.fetched = true
	f := m.Fetcher
	return func() tea.Msg {
		rec, err := f.Fetch(context.Background())
		if err != nil {
			return userFetchFailedMsg{Message: err.Error()}
		}
		return userFetchedMsg{User: rec}
	}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.FetchCmd(), a.spinner.Tick)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.update(msg)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if f, ok := a.state.(Failed); ok {
		return Styles.Error.Render(f.Message) + "\n"
	}
	body := a.render(a.Document())
	return body + "\n" + RenderKeybindHelp(a.KeyHandler.Registry, a.Focus.Current) + "\n"
}

func (m *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case userFetchedMsg:
		if _, ok := m.state.(Loading); !ok {
			return nil
		}
		m.state = Loaded{User: msg.User}
		m.Logger.Info("user loaded", zap.String("name", msg.User.Name))
		return nil
	case userFetchFailedMsg:
		if _, ok := m.state.(Loading); !ok {
			return nil
		}
		m.state = Failed{Message: msg.Message}
		m.Logger.Warn("user fetch failed", zap.String("error", msg.Message))
		return nil
	case IncrementMsg:
		m.increment()
		return nil
	case DecrementMsg:
		m.decrement()
		return nil
	case PressFocusedMsg:
		m.press(m.Focus.Current)
		return nil
	case FocusNextMsg:
		m.Focus.Next()
		return m.takeFocusCmd()
	case FocusPrevMsg:
		m.Focus.Prev()
		return m.takeFocusCmd()
	case cursor.BlinkMsg:
		return m.Input.Update(msg, m.inputValue)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return nil
	case spinner.TickMsg:
		if _, ok := m.state.(Loading); !ok {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Nothing but the error is on screen; only quitting is possible.
	if _, failed := m.state.(Failed); failed {
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return tea.Quit
		}
		return nil
	}
	if consumed, cmd := m.KeyHandler.Handle(msg, m.Focus.Current); consumed {
		return cmd
	}
	if m.Focus.Is(FocusInput) {
		return m.Input.Update(msg, m.inputValue)
	}
	return nil
}

// takeFocusCmd returns the pending cursor command, if any, and clears it.
func (m *AppModel) takeFocusCmd() tea.Cmd {
	cmd := m.focusCmd
	m.focusCmd = nil
	return cmd
}

// press clicks the button with the given ID, if it is on the page.
func (m *AppModel) press(id string) {
	n := m.Document().ByID(id)
	if n == nil || n.OnClick == nil {
		return
	}
	n.OnClick()
}

func (m *AppModel) increment() {
	m.counter++
	m.Logger.Debug("counter changed", zap.Int("counter", m.counter))
}

func (m *AppModel) decrement() {
	m.counter--
	m.Logger.Debug("counter changed", zap.Int("counter", m.counter))
}

// handleChange receives the full text of the input field.
func (m *AppModel) handleChange(value string) {
	m.inputValue = value
	m.Logger.Debug("input changed", zap.Int("length", len(value)))
}

// Document builds the page for the current state. A failed fetch replaces
// the whole page with the error text.
func (m *AppModel) Document() *page.Node {
	if f, ok := m.state.(Failed); ok {
		return page.Span(f.Message)
	}

	var status *page.Node
	switch s := m.state.(type) {
	case Loaded:
		status = UserView(s.User)
	default:
		status = page.Span(LoadingText).WithID("loading")
	}

	return page.Div(
		page.H1(HeadingText),
		page.Span(BrandText).WithTestID("mySpan"),
		animalList(),
		page.Div(
			page.H2(strconv.Itoa(m.counter)).WithTestID("counter"),
			page.Button("Increment", m.increment).WithID(FocusIncrement),
			page.Button("Decrement", m.decrement).WithID(FocusDecrement),
		),
		m.Input.Node(m.inputValue),
		status,
	)
}

func animalList() *page.Node {
	items := make([]*page.Node, len(Animals))
	for i, a := range Animals {
		items[i] = page.LI(a)
	}
	return page.UL(items...).WithClass("animals")
}

// render draws doc with the live widgets (text field, spinner) spliced in.
func (m *AppModel) render(doc *page.Node) string {
	r := termRenderer{
		width: m.width,
		focus: m.Focus.Current,
		widget: func(n *page.Node) (string, bool) {
			switch n.ID {
			case FocusInput:
				return m.Input.View(n.Value), true
			case "loading":
				return m.spinner.View() + " " + Styles.Muted.Render(n.Text), true
			}
			return "", false
		},
	}
	return r.render(doc)
}

// RenderPlain draws the document without live widgets, for non-interactive output.
func (m *AppModel) RenderPlain() string {
	return termRenderer{width: m.width}.render(m.Document())
}

// Resolve runs the fetch synchronously and applies its result.
// Used when there is no event loop, e.g. for snapshots.
func (m *AppModel) Resolve() {
	if cmd := m.FetchCmd(); cmd != nil {
		m.update(cmd())
	}
}
