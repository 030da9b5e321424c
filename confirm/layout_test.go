package confirm_test

import (
	"strings"
	"testing"

	"github.com/sjoeboo/canopy/confirm"
	"github.com/sjoeboo/canopy/popup"
)

func openDialog(t *testing.T, title, message string) *confirm.State {
	t.Helper()
	s := confirm.New(0, title, message)
	s.Open()
	return s
}

func TestNewLayout_CentersByPercent(t *testing.T) {
	s := openDialog(t, "Confirm", "Really?")
	l := confirm.NewLayout(s, popup.Rect{W: 100, H: 40}, 60, 50)

	want := popup.Rect{X: 20, Y: 10, W: 60, H: 20}
	if l.Rect != want {
		t.Errorf("Rect = %+v, want %+v", l.Rect, want)
	}
	if l.Empty() {
		t.Error("layout reported empty")
	}
	if l.Title != "Confirm" {
		t.Errorf("Title = %q", l.Title)
	}
}

func TestNewLayout_EmptyCases(t *testing.T) {
	open := openDialog(t, "T", "M")
	closed := confirm.New(0, "T", "M")

	tests := []struct {
		name string
		s    *confirm.State
		area popup.Rect
	}{
		{name: "zero width area", s: open, area: popup.Rect{W: 0, H: 40}},
		{name: "zero height area", s: open, area: popup.Rect{W: 100, H: 0}},
		{name: "closed dialog", s: closed, area: popup.Rect{W: 100, H: 40}},
		{name: "nil state", s: nil, area: popup.Rect{W: 100, H: 40}},
		{name: "popup too small for a frame", s: open, area: popup.Rect{W: 3, H: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := confirm.NewLayout(tt.s, tt.area, 60, 50)
			if !l.Empty() {
				t.Errorf("layout = %+v, want empty", l)
			}
			if len(l.Lines) != 0 || len(l.Buttons) != 0 {
				t.Errorf("empty layout carries content: %+v", l)
			}
		})
	}
}

func TestNewLayout_ButtonRowHighlight(t *testing.T) {
	s := openDialog(t, "Confirm", "Pick one")
	if err := s.SetButtons(
		confirm.Button{Label: "Save", Value: true},
		confirm.Button{Label: "Discard", Value: false},
		confirm.Button{Label: "Cancel", Value: false},
	); err != nil {
		t.Fatal(err)
	}
	s.HandleKey(confirm.KeyRight)

	l := confirm.NewLayout(s, popup.Rect{W: 80, H: 24}, 60, 50)
	if len(l.Buttons) != 3 {
		t.Fatalf("Buttons = %+v, want 3 entries", l.Buttons)
	}
	for i, b := range l.Buttons {
		wantSelected := i == 1
		if b.Selected != wantSelected {
			t.Errorf("button %d (%s): Selected = %v, want %v", i, b.Label, b.Selected, wantSelected)
		}
	}
	labels := []string{l.Buttons[0].Label, l.Buttons[1].Label, l.Buttons[2].Label}
	if strings.Join(labels, ",") != "Save,Discard,Cancel" {
		t.Errorf("button order = %v", labels)
	}
}

func TestNewLayout_WrapsMessageToInnerWidth(t *testing.T) {
	s := openDialog(t, "Confirm", "the quick brown fox jumps over the lazy dog")
	// 20x10 popup over a 40x20 area at 50 percent, inner width 18.
	l := confirm.NewLayout(s, popup.Rect{W: 40, H: 20}, 50, 50)

	if len(l.Lines) == 0 {
		t.Fatal("no wrapped lines")
	}
	for i, ln := range l.Lines {
		if n := len(ln); n > 18 {
			t.Errorf("line %d wider than inner width: %q (%d)", i, ln, n)
		}
	}
	if got := strings.Join(l.Lines, " "); !strings.HasPrefix(got, "the quick brown") {
		t.Errorf("wrapped content = %q", got)
	}
}

func TestNewLayout_TruncatesOverflowingMessage(t *testing.T) {
	long := strings.Repeat("lorem ipsum dolor sit amet ", 30)
	s := openDialog(t, "Notice", long)
	l := confirm.NewLayout(s, popup.Rect{W: 60, H: 12}, 60, 50)

	// Inner box is 4 rows: title, button row, and at most two message rows.
	inner := l.Rect.Inset(1)
	maxMsgRows := inner.H - 2
	if len(l.Lines) > maxMsgRows {
		t.Fatalf("message rows = %d, want at most %d", len(l.Lines), maxMsgRows)
	}
	last := l.Lines[len(l.Lines)-1]
	if !strings.HasSuffix(last, "…") {
		t.Errorf("truncated message does not end in ellipsis: %q", last)
	}
}

func TestNewLayout_IsPure(t *testing.T) {
	s := openDialog(t, "Confirm", "stable output")
	area := popup.Rect{W: 90, H: 30}

	first := confirm.NewLayout(s, area, 60, 40)
	for i := 0; i < 5; i++ {
		got := confirm.NewLayout(s, area, 60, 40)
		if got.Rect != first.Rect || got.Title != first.Title ||
			strings.Join(got.Lines, "|") != strings.Join(first.Lines, "|") {
			t.Fatalf("call %d differs: %+v vs %+v", i, got, first)
		}
	}
	if s.Selected() != 0 || !s.IsOpen() {
		t.Error("layout mutated dialog state")
	}
}
