package confirm

// Key is the closed set of inputs the dialog state machine understands.
// Hosts translate raw terminal events into this set (the bubbletea adapter
// in this package does that translation); the state machine itself never
// sees platform key codes.
type Key int

const (
	// KeyOther is any key outside the dialog's input set.
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyTab
	KeyShiftTab
	KeyEnter
	KeyEsc
)

// String returns the key name for logs and test output.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyTab:
		return "tab"
	case KeyShiftTab:
		return "shift+tab"
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	default:
		return "other"
	}
}
