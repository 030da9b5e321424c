package popup

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// MessageStyles holds the lipgloss styles a Message renders with.
type MessageStyles struct {
	Box   lipgloss.Style
	Title lipgloss.Style
	Text  lipgloss.Style
}

// DefaultMessageStyles returns the standard popup look, matching the
// confirm dialog's adaptive palette.
func DefaultMessageStyles() MessageStyles {
	var (
		surface = lipgloss.AdaptiveColor{Light: "#D0E8FE", Dark: "#22385C"}
		accent  = lipgloss.AdaptiveColor{Light: "#1670AD", Dark: "#58B8FD"}
	)

	return MessageStyles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2).
			Background(surface),

		Title: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Align(lipgloss.Center),

		Text: lipgloss.NewStyle(),
	}
}

// Message is a modal message popup: a title and pre-broken body lines, no
// buttons. It sizes itself to its content, clamped to the screen, and any
// key dismisses it. Dismissal is not a decision, so there is no outcome
// channel; hosts just stop rendering it once hidden.
type Message struct {
	title  string
	text   string
	open   bool
	width  int
	height int

	Styles MessageStyles
}

// NewMessage returns a hidden popup. Body lines are split on newlines; the
// popup truncates rather than wraps, so callers control line breaks.
func NewMessage(title, text string) *Message {
	return &Message{
		title:  title,
		text:   text,
		Styles: DefaultMessageStyles(),
	}
}

// SetContent replaces the title and body. Allowed while hidden or shown.
func (m *Message) SetContent(title, text string) {
	m.title = title
	m.text = text
}

// SetSize records the full drawable area the popup centers within.
func (m *Message) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Show makes the popup visible.
func (m *Message) Show() { m.open = true }

// Hide dismisses the popup.
func (m *Message) Hide() { m.open = false }

// IsVisible reports whether the popup is shown.
func (m *Message) IsVisible() bool { return m.open }

// HandleKey dismisses a visible popup on any key press and reports whether
// the key was consumed.
func (m *Message) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !m.open {
		return nil, false
	}
	m.open = false
	return nil, true
}

// View renders the popup centered on the recorded area, sized to its
// content via CenteredSize. Hidden popups and degenerate areas render
// nothing.
func (m *Message) View() string {
	if !m.open || m.width <= 0 || m.height <= 0 {
		return ""
	}
	frameW := m.Styles.Box.GetHorizontalFrameSize()
	frameH := m.Styles.Box.GetVerticalFrameSize()

	lines := strings.Split(m.text, "\n")
	contentW := runewidth.StringWidth(m.title)
	for _, ln := range lines {
		if w := runewidth.StringWidth(ln); w > contentW {
			contentW = w
		}
	}
	contentH := len(lines)
	if m.title != "" {
		contentH += 2 // title line and a separating blank
	}

	rect := CenteredSize(contentW+frameW, contentH+frameH, Rect{W: m.width, H: m.height})
	innerW := rect.W - frameW
	innerH := rect.H - frameH
	if innerW <= 0 || innerH <= 0 {
		return ""
	}

	var rows []string
	if m.title != "" && innerH >= 2 {
		rows = append(rows, m.Styles.Title.Width(innerW).Render(m.title), "")
	}
	for _, ln := range lines {
		if len(rows) >= innerH {
			break
		}
		if w := runewidth.StringWidth(ln); w > innerW {
			ln = runewidth.Truncate(ln, innerW-1, "") + "…"
		}
		rows = append(rows, m.Styles.Text.Render(ln))
	}

	content := lipgloss.Place(innerW, innerH, lipgloss.Left, lipgloss.Top, strings.Join(rows, "\n"))
	box := m.Styles.Box.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
