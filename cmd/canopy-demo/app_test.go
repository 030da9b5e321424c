package main

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/sjoeboo/canopy/confirm"
	"github.com/sjoeboo/canopy/internal/config"
)

func newTestApp(t *testing.T, mode demoMode) *app {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	return newApp(mode, config.Default(), path, overrides{}, nil)
}

func update(a *app, msg tea.Msg) tea.Cmd {
	_, cmd := a.Update(msg)
	return cmd
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestApp_ConfirmFlow(t *testing.T) {
	a := newTestApp(t, modeConfirm)
	listen := a.Init()

	update(a, tea.WindowSizeMsg{Width: 80, Height: 24})

	update(a, keyMsg('p'))
	if !a.active.IsVisible() {
		t.Fatal("p should open the dialog")
	}

	// Default selection is the yes button
	update(a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.active.IsVisible() {
		t.Fatal("enter should close the dialog")
	}

	msg := listen()
	out, ok := msg.(confirm.OutcomeMsg)
	if !ok {
		t.Fatalf("listen delivered %T, want confirm.OutcomeMsg", msg)
	}

	_, cmd := a.Update(out)
	if cmd == nil {
		t.Fatal("app should keep listening after an outcome")
	}
	if a.status != "Dialog closed with result: true" {
		t.Errorf("status = %q", a.status)
	}
}

func TestApp_DismissFlow(t *testing.T) {
	a := newTestApp(t, modeConfirm)
	listen := a.Init()

	update(a, tea.WindowSizeMsg{Width: 80, Height: 24})
	update(a, keyMsg('p'))
	update(a, tea.KeyMsg{Type: tea.KeyEsc})

	if a.active.IsVisible() {
		t.Fatal("esc should close the dialog")
	}

	a.Update(listen())
	if a.status != "Dialog dismissed without a decision." {
		t.Errorf("status = %q", a.status)
	}
}

func TestApp_IgnoresForeignOutcomes(t *testing.T) {
	a := newTestApp(t, modeConfirm)
	before := a.status

	_, cmd := a.Update(confirm.OutcomeMsg{ID: 99, Result: nil})
	if a.status != before {
		t.Errorf("status changed on foreign outcome: %q", a.status)
	}
	if cmd == nil {
		t.Error("app should keep listening after a foreign outcome")
	}
}

func TestApp_NonModalQuitFallsThrough(t *testing.T) {
	a := newTestApp(t, modeConfirm)

	update(a, tea.WindowSizeMsg{Width: 80, Height: 24})
	update(a, keyMsg('p'))

	cmd := update(a, keyMsg('q'))
	if cmd == nil {
		t.Fatal("q should fall through a non-modal dialog and quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit from q")
	}
}

func TestApp_ModalSwallowsQuit(t *testing.T) {
	a := newTestApp(t, modeConfirm)
	cfg := config.Default()
	cfg.Dialog.Modal = true
	a.applyConfig(cfg)

	update(a, tea.WindowSizeMsg{Width: 80, Height: 24})
	update(a, keyMsg('p'))

	if cmd := update(a, keyMsg('q')); cmd != nil {
		t.Error("modal dialog should swallow q")
	}
	if !a.active.IsVisible() {
		t.Error("dialog should stay open after a swallowed key")
	}

	// Esc still dismisses a modal dialog
	update(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.active.IsVisible() {
		t.Error("esc should dismiss even a modal dialog")
	}
}

func TestApp_PopupMode(t *testing.T) {
	a := newTestApp(t, modePopup)

	update(a, tea.WindowSizeMsg{Width: 80, Height: 24})

	update(a, keyMsg('p'))
	if !a.popup.IsVisible() {
		t.Fatal("p should open the popup")
	}

	// Any key dismisses the popup instead of reaching the app
	if cmd := update(a, keyMsg('q')); cmd != nil {
		t.Error("q while the popup is open should dismiss, not quit")
	}
	if a.popup.IsVisible() {
		t.Error("popup should close on any key")
	}

	cmd := update(a, keyMsg('q'))
	if cmd == nil {
		t.Fatal("q should quit once the popup is closed")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit from q")
	}
}

func TestApp_ReloadAppliesSettings(t *testing.T) {
	a := newTestApp(t, modeConfirm)

	cfg := config.Default()
	cfg.Theme = "dark"
	cfg.Dialog.Title = "Overwrite file"
	cfg.Dialog.YesLabel = "(D)elete"
	cfg.Dialog.DefaultButton = "no"
	cfg.Dialog.PercentX = 90
	cfg.Dialog.PercentY = 40

	update(a, configReloadedMsg{cfg: cfg})

	state := a.confirm.State()
	if state.Title() != "Overwrite file" {
		t.Errorf("title = %q", state.Title())
	}
	if got := state.Buttons()[0]; got.Label != "(D)elete" || got.Mnemonic != 'd' {
		t.Errorf("yes button = %+v", got)
	}
	if a.confirm.PercentX != 90 || a.confirm.PercentY != 40 {
		t.Errorf("popup size = %d%% x %d%%", a.confirm.PercentX, a.confirm.PercentY)
	}
	if !strings.Contains(a.status, "Settings reloaded") {
		t.Errorf("status = %q", a.status)
	}

	// The new default button takes effect on the next open
	update(a, keyMsg('p'))
	if state.Selected() != 1 {
		t.Errorf("selected = %d, want the no button", state.Selected())
	}
}

func TestApp_OverridesWinOverConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	a := newApp(modeConfirm, config.Default(), path, overrides{title: "Detach", message: "Leave the session running?"}, nil)

	state := a.confirm.State()
	if state.Title() != "Detach" {
		t.Errorf("title = %q", state.Title())
	}
	if state.Message() != "Leave the session running?" {
		t.Errorf("message = %q", state.Message())
	}

	// Overrides survive a reload of the file settings
	update(a, configReloadedMsg{cfg: config.Default()})
	if state.Title() != "Detach" {
		t.Errorf("title after reload = %q", state.Title())
	}
}

func TestApp_SaveWritesConfig(t *testing.T) {
	a := newTestApp(t, modeConfirm)

	update(a, keyMsg('s'))

	if !strings.HasPrefix(a.status, "Settings saved to ") {
		t.Fatalf("status = %q", a.status)
	}
	got, err := config.Load(a.configPath)
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}
	if *got != *a.cfg {
		t.Errorf("saved config = %+v, want %+v", got, a.cfg)
	}
}

func TestApp_ViewBackdropAndDialog(t *testing.T) {
	a := newTestApp(t, modeConfirm)

	if a.View() != "" {
		t.Error("View before sizing should be empty")
	}

	update(a, tea.WindowSizeMsg{Width: 80, Height: 24})

	backdrop := a.View()
	if lipgloss.Width(backdrop) != 80 || lipgloss.Height(backdrop) != 24 {
		t.Errorf("backdrop is %dx%d, want 80x24", lipgloss.Width(backdrop), lipgloss.Height(backdrop))
	}
	plain := ansi.Strip(backdrop)
	if !strings.Contains(plain, "Press `p` to open the dialog") {
		t.Error("backdrop should show the open hint")
	}
	if !strings.Contains(plain, "Demo") {
		t.Error("backdrop should carry the demo title")
	}

	update(a, keyMsg('p'))
	view := ansi.Strip(a.View())
	if !strings.Contains(view, "Please Select") {
		t.Error("dialog view should replace the backdrop")
	}
	if !strings.Contains(view, "(Y)es") || !strings.Contains(view, "(N)o") {
		t.Error("dialog view should render the buttons")
	}
}
