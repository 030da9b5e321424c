package confirm

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestModel_TranslatesKeyMessages(t *testing.T) {
	m := NewModel(New(0, "T", "M"))

	tests := []struct {
		msg  tea.KeyMsg
		want Key
	}{
		{msg: tea.KeyMsg{Type: tea.KeyLeft}, want: KeyLeft},
		{msg: tea.KeyMsg{Type: tea.KeyRight}, want: KeyRight},
		{msg: tea.KeyMsg{Type: tea.KeyTab}, want: KeyTab},
		{msg: tea.KeyMsg{Type: tea.KeyShiftTab}, want: KeyShiftTab},
		{msg: tea.KeyMsg{Type: tea.KeyEnter}, want: KeyEnter},
		{msg: tea.KeyMsg{Type: tea.KeyEsc}, want: KeyEsc},
		{msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, want: KeyOther},
		{msg: tea.KeyMsg{Type: tea.KeySpace}, want: KeyOther},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, m.translate(tt.msg), "translate(%s)", tt.msg.String())
	}
}

func TestModel_HandleKeyRouting(t *testing.T) {
	ch := make(chan Outcome, 1)
	m := NewModel(New(0, "Quit", "Really quit?").SetListener(ch))

	// Hidden dialog consumes nothing.
	_, consumed := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, consumed, "hidden dialog consumed a key")

	m.Show()
	require.True(t, m.IsVisible())

	_, consumed = m.HandleKey(tea.KeyMsg{Type: tea.KeyRight})
	require.True(t, consumed)
	require.Equal(t, 1, m.State().Selected())

	// Unbound rune falls through on a non-modal dialog.
	_, consumed = m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.False(t, consumed)
	require.True(t, m.IsVisible())

	_, consumed = m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, consumed)
	require.False(t, m.IsVisible())

	o := <-ch
	require.NotNil(t, o.Result)
	require.False(t, *o.Result, "second button carries false")
}

func TestModel_MnemonicRouting(t *testing.T) {
	ch := make(chan Outcome, 1)
	m := NewModel(New(0, "Quit", "Really quit?").SetListener(ch))
	m.Show()

	_, consumed := m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.True(t, consumed, "mnemonic not consumed")
	require.False(t, m.IsVisible())

	o := <-ch
	require.True(t, o.Confirmed())
}

func TestModel_PastedRunesAreNotMnemonics(t *testing.T) {
	m := NewModel(New(0, "Quit", "Really quit?"))
	m.Show()

	_, consumed := m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("yes")})
	require.False(t, consumed)
	require.True(t, m.IsVisible())
}

func TestModel_UpdateTracksWindowSize(t *testing.T) {
	m := NewModel(New(0, "T", "M"))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 120, m.width)
	require.Equal(t, 40, m.height)
}

func TestModel_ViewHiddenOrDegenerate(t *testing.T) {
	m := NewModel(New(0, "T", "M"))
	require.Empty(t, m.View(), "hidden dialog rendered")

	m.Show()
	require.Empty(t, m.View(), "dialog rendered without a size")

	m.SetSize(4, 2)
	require.Empty(t, m.View(), "dialog rendered into a degenerate area")
}

func TestModel_ViewGeometryAndContent(t *testing.T) {
	m := NewModel(New(0, "Confirm", "Delete the selected session?"))
	m.SetSize(80, 40)
	m.Show()

	view := m.View()
	require.NotEmpty(t, view)

	lines := strings.Split(view, "\n")
	require.Len(t, lines, 40, "view must fill the full height")
	for i, ln := range lines {
		w := runewidth.StringWidth(ansi.Strip(ln))
		require.LessOrEqual(t, w, 80, "line %d exceeds terminal width", i)
	}

	plain := ansi.Strip(view)
	require.Contains(t, plain, "Confirm")
	require.Contains(t, plain, "Delete the selected")
	require.Contains(t, plain, "(Y)es")
	require.Contains(t, plain, "(N)o")
}

func TestModel_ViewMarksSelection(t *testing.T) {
	// Styles collapse to nothing under the no-color profile tests run in,
	// so force one that keeps the highlight visible.
	lipgloss.SetColorProfile(termenv.ANSI256)

	m := NewModel(New(0, "Confirm", "Pick"))
	m.SetSize(60, 30)
	m.Show()

	before := m.View()
	m.HandleKey(tea.KeyMsg{Type: tea.KeyRight})
	after := m.View()

	require.NotEqual(t, before, after, "selection change must alter the render")
}

func TestListen_DeliversOutcome(t *testing.T) {
	ch := make(chan Outcome, 1)
	v := true
	ch <- Outcome{ID: 5, Result: &v}

	msg := Listen(ch)()
	out, ok := msg.(OutcomeMsg)
	require.True(t, ok, "message type = %T", msg)
	require.Equal(t, 5, out.ID)
	require.True(t, Outcome(out).Confirmed())
}

func TestListen_EndsOnClosedChannel(t *testing.T) {
	ch := make(chan Outcome)
	close(ch)
	require.Nil(t, Listen(ch)())
}
