package confirm

import "github.com/sjoeboo/canopy/popup"

// DefaultPercentX and DefaultPercentY size the popup relative to the full
// screen when the host does not configure its own percentages.
const (
	DefaultPercentX = 60
	DefaultPercentY = 20
)

// ButtonBox is one button cell in a layout's bottom row. Selected marks the
// highlighted button; it is determined solely by the state's selection
// index.
type ButtonBox struct {
	Label    string
	Selected bool
}

// Layout is a renderer-agnostic set of draw instructions for one render
// tick. Rect is the popup's position on the full area and carries a
// one-cell frame; inside the frame, Title occupies the first row, Lines
// follow, and Buttons render left to right on the last row. An empty
// layout means draw nothing.
type Layout struct {
	Rect    popup.Rect
	Title   string
	Lines   []string
	Buttons []ButtonBox
}

// Empty reports whether there is nothing to draw.
func (l Layout) Empty() bool {
	return l.Rect.Empty()
}

// NewLayout computes the draw instructions for a dialog over the given full
// area, sized by percentage of that area. It is a pure function of its
// inputs: a closed dialog or a degenerate area yields the empty layout, and
// no input can make it fail.
func NewLayout(s *State, area popup.Rect, percentX, percentY int) Layout {
	if s == nil || !s.IsOpen() || area.Empty() {
		return Layout{}
	}
	rect := popup.Centered(percentX, percentY, area)
	inner := rect.Inset(1)
	if inner.Empty() {
		return Layout{}
	}

	l := Layout{Rect: rect}
	for i, b := range s.Buttons() {
		l.Buttons = append(l.Buttons, ButtonBox{Label: b.Label, Selected: i == s.Selected()})
	}
	rows := inner.H - 1 // bottom row is the button row
	if rows > 0 {
		l.Title = s.Title()
		rows--
	}
	if rows > 0 {
		l.Lines = clipLines(wrapLines(s.Message(), inner.W), rows, inner.W)
	}
	return l
}
