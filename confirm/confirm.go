// Package confirm implements a modal confirmation dialog for terminal
// applications: a small keyboard-driven state machine that tracks an
// open/closed flag and a highlighted button, and reports the user's decision
// to the host over an outcome channel. Rendering lives in Model (a
// bubbletea/lipgloss widget) and in NewLayout, which produces structured
// draw instructions for hosts that render themselves.
package confirm

import (
	"errors"
	"unicode"
)

// ErrNoButtons is returned when a dialog would be left without any buttons.
var ErrNoButtons = errors.New("confirm: dialog requires at least one button")

// Outcome is the result of one resolved dialog cycle. ID identifies the
// dialog when several share a listener channel. Result is the activated
// button's value, or nil when the dialog was dismissed without a decision.
type Outcome struct {
	ID     int
	Result *bool
}

// Confirmed reports whether the outcome carries a true result.
func (o Outcome) Confirmed() bool {
	return o.Result != nil && *o.Result
}

// Dismissed reports whether the dialog was dismissed without a decision.
func (o Outcome) Dismissed() bool {
	return o.Result == nil
}

// State is the dialog state machine. A State is exclusively owned by the
// host's event loop: methods never block, spawn work, or perform I/O, and
// there is no internal locking. The outcome channel is the only handoff
// that may cross goroutines.
type State struct {
	id           int
	open         bool
	title        string
	message      string
	buttons      []Button
	selected     int
	defaultIndex int
	modal        bool
	listener     chan<- Outcome
}

// New returns a closed dialog carrying the standard (Y)es/(N)o buttons.
// The id distinguishes this dialog's outcomes when several dialogs feed one
// listener channel; pass 0 if there is only one.
func New(id int, title, message string) *State {
	return &State{
		id:      id,
		title:   title,
		message: message,
		buttons: DefaultButtons(),
	}
}

// ID returns the identifier stamped on this dialog's outcomes.
func (s *State) ID() int { return s.id }

// Title returns the dialog title.
func (s *State) Title() string { return s.title }

// Message returns the dialog body text.
func (s *State) Message() string { return s.message }

// Buttons returns the button row in display order. The slice is never empty.
func (s *State) Buttons() []Button { return s.buttons }

// Selected returns the index of the highlighted button.
func (s *State) Selected() int { return s.selected }

// IsOpen reports whether the dialog is visible and intercepting input.
func (s *State) IsOpen() bool { return s.open }

// SetTitle updates the title. Allowed between opens to reuse one instance.
func (s *State) SetTitle(title string) *State {
	s.title = title
	return s
}

// SetMessage updates the body text.
func (s *State) SetMessage(message string) *State {
	s.message = message
	return s
}

// SetModal controls whether an open dialog also consumes keys outside its
// input set. Off by default: unrecognized keys fall through to the host.
func (s *State) SetModal(modal bool) *State {
	s.modal = modal
	return s
}

// SetListener sets the channel outcomes are delivered on. Delivery is
// non-blocking, so hosts that poll should pass a buffered channel. A nil
// listener disables delivery.
func (s *State) SetListener(ch chan<- Outcome) *State {
	s.listener = ch
	return s
}

// SetDefaultIndex sets the button highlighted whenever the dialog opens.
// Out-of-range values clamp into the button row.
func (s *State) SetDefaultIndex(i int) *State {
	s.defaultIndex = clampIndex(i, len(s.buttons))
	return s
}

// SetButtons replaces the button row. At least one button is required;
// ErrNoButtons leaves the previous row in place. The default and current
// selection are clamped to the new row.
func (s *State) SetButtons(buttons ...Button) error {
	if len(buttons) == 0 {
		return ErrNoButtons
	}
	s.buttons = buttons
	s.defaultIndex = clampIndex(s.defaultIndex, len(buttons))
	s.selected = clampIndex(s.selected, len(buttons))
	return nil
}

// Open shows the dialog and resets the highlight to the default button.
// Opening an already-open dialog just resets the highlight; no outcome is
// emitted and the dialog stays open.
func (s *State) Open() {
	s.open = true
	s.selected = s.defaultIndex
}

// Close hides the dialog without emitting an outcome. This is the
// programmatic dismissal path (host-driven timeout, screen change); a
// close is not a user decision, so listeners hear nothing.
func (s *State) Close() {
	s.open = false
}

// HandleKey advances the state machine by one key from the closed input
// set and reports whether the dialog consumed it. A closed dialog consumes
// nothing and never changes state. HandleKey never fails.
func (s *State) HandleKey(k Key) bool {
	if !s.open {
		return false
	}
	n := len(s.buttons)
	switch k {
	case KeyLeft, KeyShiftTab:
		s.selected = (s.selected - 1 + n) % n
	case KeyRight, KeyTab:
		s.selected = (s.selected + 1) % n
	case KeyEnter:
		v := s.buttons[s.selected].Value
		s.resolve(&v)
	case KeyEsc:
		s.resolve(nil)
	default:
		// Unknown keys fall through to the host unless the dialog is modal.
		return s.modal
	}
	return true
}

// HandleRune activates a button by its mnemonic shortcut, resolving the
// dialog exactly as Enter on that button would. Runes match
// case-insensitively. Non-matching runes are treated like any other
// unrecognized key.
func (s *State) HandleRune(r rune) bool {
	if !s.open {
		return false
	}
	r = unicode.ToLower(r)
	for i, b := range s.buttons {
		if b.Mnemonic != 0 && b.Mnemonic == r {
			s.selected = i
			v := b.Value
			s.resolve(&v)
			return true
		}
	}
	return s.modal
}

// resolve closes the dialog and emits the outcome for this cycle. The send
// is best-effort: a full channel or absent receiver must never block the
// transition to closed, so an undeliverable outcome is dropped.
func (s *State) resolve(result *bool) {
	s.open = false
	if s.listener == nil {
		return
	}
	select {
	case s.listener <- Outcome{ID: s.id, Result: result}:
	default:
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
