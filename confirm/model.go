package confirm

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sjoeboo/canopy/popup"
)

// OutcomeMsg carries a dialog outcome into a bubbletea update loop.
type OutcomeMsg Outcome

// Listen returns a command that delivers the next outcome from ch as an
// OutcomeMsg. Hosts re-issue it from Update after each delivery. Because
// the dialog's send is non-blocking, the channel should be buffered; the
// command ends quietly if the channel is closed.
func Listen(ch <-chan Outcome) tea.Cmd {
	return func() tea.Msg {
		o, ok := <-ch
		if !ok {
			return nil
		}
		return OutcomeMsg(o)
	}
}

// Model is the bubbletea widget around a dialog State: it translates key
// messages into the state machine's input set and renders the popup with
// lipgloss, centered on the screen area given by SetSize.
type Model struct {
	state  *State
	width  int
	height int

	// PercentX and PercentY size the popup as a percentage of the full
	// screen.
	PercentX int
	PercentY int

	Styles Styles
	KeyMap KeyMap
}

// NewModel wraps a dialog state in a widget with default size, styles, and
// bindings.
func NewModel(state *State) Model {
	return Model{
		state:    state,
		PercentX: DefaultPercentX,
		PercentY: DefaultPercentY,
		Styles:   DefaultStyles(),
		KeyMap:   DefaultKeyMap(),
	}
}

// State returns the underlying dialog state machine, for reconfiguration
// between opens and for direct use of Open/Close.
func (m *Model) State() *State { return m.state }

// SetSize records the full drawable area the popup centers within.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Show opens the dialog.
func (m *Model) Show() { m.state.Open() }

// Hide closes the dialog without emitting an outcome.
func (m *Model) Hide() { m.state.Close() }

// IsVisible reports whether the dialog is open.
func (m *Model) IsVisible() bool { return m.state.IsOpen() }

// HandleKey routes one key message to the dialog and reports whether the
// dialog consumed it. Unconsumed keys should be dispatched to the rest of
// the application.
func (m *Model) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !m.state.IsOpen() {
		return nil, false
	}
	if k := m.translate(msg); k != KeyOther {
		return nil, m.state.HandleKey(k)
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return nil, m.state.HandleRune(msg.Runes[0])
	}
	return nil, m.state.HandleKey(KeyOther)
}

// translate maps a key message onto the dialog's closed input set.
func (m *Model) translate(msg tea.KeyMsg) Key {
	switch {
	case key.Matches(msg, m.KeyMap.Left):
		return KeyLeft
	case key.Matches(msg, m.KeyMap.Right):
		return KeyRight
	case key.Matches(msg, m.KeyMap.Next):
		return KeyTab
	case key.Matches(msg, m.KeyMap.Prev):
		return KeyShiftTab
	case key.Matches(msg, m.KeyMap.Confirm):
		return KeyEnter
	case key.Matches(msg, m.KeyMap.Dismiss):
		return KeyEsc
	}
	return KeyOther
}

// Update implements the usual bubbles component surface for hosts that
// prefer message routing over HandleKey.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		cmd, _ := m.HandleKey(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the centered popup, or "" while the dialog is hidden or the
// area is too small to draw anything.
func (m Model) View() string {
	if !m.state.IsOpen() || m.width <= 0 || m.height <= 0 {
		return ""
	}
	rect := popup.Centered(m.PercentX, m.PercentY, popup.Rect{W: m.width, H: m.height})
	box := m.renderBox(rect)
	if box == "" {
		return ""
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderBox draws the framed dialog at exactly rect's size, or returns ""
// when the frame leaves no room for content.
func (m Model) renderBox(rect popup.Rect) string {
	innerW := rect.W - m.Styles.Box.GetHorizontalFrameSize()
	innerH := rect.H - m.Styles.Box.GetVerticalFrameSize()
	if innerW <= 0 || innerH <= 0 {
		return ""
	}

	var lines []string
	if innerH >= 2 {
		lines = append(lines, m.Styles.Title.Width(innerW).Render(m.state.Title()))
	}
	if msgRows := innerH - 2; msgRows > 0 {
		for _, ln := range clipLines(wrapLines(m.state.Message(), innerW), msgRows, innerW) {
			lines = append(lines, m.Styles.Message.Render(ln))
		}
	}
	// Pad so the button row lands on the last content line.
	for len(lines) < innerH-1 {
		lines = append(lines, "")
	}
	lines = append(lines, lipgloss.PlaceHorizontal(innerW, lipgloss.Center, m.renderButtons()))

	content := lipgloss.Place(innerW, innerH, lipgloss.Left, lipgloss.Top, strings.Join(lines, "\n"))
	return m.Styles.Box.Render(content)
}

// renderButtons draws the button row with the selection highlight.
func (m Model) renderButtons() string {
	buttons := m.state.Buttons()
	cells := make([]string, 0, len(buttons))
	for i, b := range buttons {
		style := m.Styles.Button
		if i == m.state.Selected() {
			style = m.Styles.ActiveButton
		}
		cells = append(cells, style.Render(b.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
