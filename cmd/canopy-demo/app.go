package main

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sjoeboo/canopy/confirm"
	"github.com/sjoeboo/canopy/internal/config"
	"github.com/sjoeboo/canopy/internal/logging"
	"github.com/sjoeboo/canopy/popup"
)

// demoMode selects which widget the demo exercises.
type demoMode int

const (
	modeConfirm demoMode = iota
	modePopup
)

// dialogID tags outcomes from the demo's one dialog so stale messages from
// a previous configuration can be told apart.
const dialogID = 1

// dialog is the surface shared by both widgets, so key routing, sizing, and
// rendering do not care which one is active.
type dialog interface {
	IsVisible() bool
	Show()
	Hide()
	View() string
	HandleKey(msg tea.KeyMsg) (cmd tea.Cmd, consumed bool)
	SetSize(width, height int)
}

// configReloadedMsg delivers a config re-read from disk into the update loop.
type configReloadedMsg struct {
	cfg *config.Config
}

// overrides holds command line values that win over the config file.
type overrides struct {
	title   string
	message string
	text    string
}

// app is the demo's top-level bubbletea model: a mostly empty screen that
// hosts either the confirmation dialog or the message popup.
type app struct {
	mode   demoMode
	active dialog

	confirm  *confirm.Model
	popup    *popup.Message
	outcomes chan confirm.Outcome

	cfg        *config.Config
	configPath string
	overrides  overrides
	watcher    *config.Watcher

	width  int
	height int
	status string

	logger *slog.Logger
}

func newApp(mode demoMode, cfg *config.Config, configPath string, ov overrides, watcher *config.Watcher) *app {
	a := &app{
		mode:       mode,
		outcomes:   make(chan confirm.Outcome, 1),
		configPath: configPath,
		overrides:  ov,
		watcher:    watcher,
		logger:     logging.ForComponent(logging.CompDemo),
	}

	state := confirm.New(dialogID, "", "").SetListener(a.outcomes)
	model := confirm.NewModel(state)
	a.confirm = &model
	a.popup = popup.NewMessage("", "")

	a.applyConfig(cfg)

	if mode == modePopup {
		a.active = a.popup
	} else {
		a.active = a.confirm
	}
	a.status = a.hint()

	return a
}

// applyConfig pushes file settings and command line overrides onto both
// widgets. Called at startup and again on every hot reload.
func (a *app) applyConfig(cfg *config.Config) {
	a.cfg = cfg

	title := cfg.Dialog.Title
	if a.overrides.title != "" {
		title = a.overrides.title
	}
	message := cfg.Dialog.Message
	if a.overrides.message != "" {
		message = a.overrides.message
	}

	state := a.confirm.State()
	state.SetTitle(title).
		SetMessage(message).
		SetModal(cfg.Dialog.Modal).
		SetDefaultIndex(cfg.DefaultIndex())
	// Two buttons are always passed, so this cannot fail
	_ = state.SetButtons(
		confirm.ParseButton(cfg.Dialog.YesLabel, true),
		confirm.ParseButton(cfg.Dialog.NoLabel, false),
	)
	a.confirm.PercentX = cfg.Dialog.PercentX
	a.confirm.PercentY = cfg.Dialog.PercentY

	popupTitle := cfg.Popup.Title
	if a.overrides.title != "" {
		popupTitle = a.overrides.title
	}
	popupText := cfg.Popup.Text
	if a.overrides.text != "" {
		popupText = a.overrides.text
	}
	a.popup.SetContent(popupTitle, popupText)
}

// hint is the idle status line for the current mode.
func (a *app) hint() string {
	if a.mode == modePopup {
		return "Press `p` to open the popup"
	}
	return "Press `p` to open the dialog"
}

func (a *app) Init() tea.Cmd {
	return confirm.Listen(a.outcomes)
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.confirm.SetSize(msg.Width, msg.Height)
		a.popup.SetSize(msg.Width, msg.Height)
		return a, nil

	case confirm.OutcomeMsg:
		if msg.ID == dialogID {
			if msg.Result != nil {
				a.status = fmt.Sprintf("Dialog closed with result: %t", *msg.Result)
			} else {
				a.status = "Dialog dismissed without a decision."
			}
			a.logger.Info("dialog outcome", "id", msg.ID, "status", a.status)
		}
		// Keep listening; the dialog can be opened again
		return a, confirm.Listen(a.outcomes)

	case configReloadedMsg:
		a.applyConfig(msg.cfg)
		applyTheme(msg.cfg.Theme)
		a.status = "Settings reloaded from " + a.configPath
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleKey routes keys to the visible dialog first; only unconsumed keys
// reach the demo's own shortcuts.
func (a *app) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.active.IsVisible() {
		if cmd, consumed := a.active.HandleKey(msg); consumed {
			return a, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		a.logger.Info("quitting")
		return a, tea.Quit
	case "p":
		a.active.Show()
		return a, nil
	case "s":
		a.saveConfig()
		return a, nil
	}

	return a, nil
}

// saveConfig writes the active settings back to the config file. The watcher
// is told first so the write does not bounce back as a reload.
func (a *app) saveConfig() {
	if a.watcher != nil {
		a.watcher.NotifySave()
	}
	if err := config.Save(a.configPath, a.cfg); err != nil {
		a.logger.Error("save config", "error", err)
		a.status = "Save failed: " + err.Error()
		return
	}
	a.logger.Info("config saved", "path", a.configPath)
	a.status = "Settings saved to " + a.configPath
}

func (a *app) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	if a.active.IsVisible() {
		return a.active.View()
	}
	return a.renderBackdrop()
}

// renderBackdrop draws the idle screen: a full-terminal framed box with the
// status line in the middle, echoing the layout of a plain dialog host.
func (a *app) renderBackdrop() string {
	var (
		accent = lipgloss.AdaptiveColor{Light: "#1670AD", Dark: "#58B8FD"}
		dim    = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#5C6773"}
	)
	frameStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent)
	titleStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	statusStyle := lipgloss.NewStyle().Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(dim)

	innerW := a.width - frameStyle.GetHorizontalFrameSize()
	innerH := a.height - frameStyle.GetVerticalFrameSize()
	if innerW <= 0 || innerH <= 0 {
		return ""
	}

	title := " Demo "
	if a.mode == modePopup {
		title = " Popup Demo "
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		statusStyle.Render(a.status),
		"",
		dimStyle.Render("p open • s save settings • q quit"),
	)

	var lines []string
	if innerH >= 3 {
		lines = append(lines, lipgloss.PlaceHorizontal(innerW, lipgloss.Center, titleStyle.Render(title)))
	}
	lines = append(lines, lipgloss.Place(innerW, innerH-len(lines), lipgloss.Center, lipgloss.Center, body))

	return frameStyle.Render(strings.Join(lines, "\n"))
}
