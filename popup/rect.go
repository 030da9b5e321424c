// Package popup provides the geometry used to place modal popups on a
// terminal screen: a cell-grid rectangle type and pure centering helpers.
// The helpers carry no widget state so any modal component can reuse them.
package popup

// Rect is an axis-aligned rectangle on the terminal cell grid.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inset returns the rectangle shrunk by n cells on every side.
// Shrinking past zero size yields an empty rectangle at the center.
func (r Rect) Inset(n int) Rect {
	r.X += n
	r.Y += n
	r.W -= 2 * n
	r.H -= 2 * n
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// Centered returns the sub-rectangle of area covering percentX of its width
// and percentY of its height, centered. Sizes use integer truncation and
// offsets use floor division, so results are stable across odd dimensions.
// Percentages above 100 clamp to the full area; a degenerate area yields an
// empty rectangle. Centered never fails and holds no hidden state.
func Centered(percentX, percentY int, area Rect) Rect {
	if area.Empty() {
		return Rect{}
	}
	w := area.W * percentX / 100
	h := area.H * percentY / 100
	return fit(w, h, area)
}

// CenteredSize centers a popup of an absolute width and height within area,
// clamping the popup to the area when it does not fit.
func CenteredSize(width, height int, area Rect) Rect {
	if area.Empty() {
		return Rect{}
	}
	return fit(width, height, area)
}

// fit clamps the requested size to area and centers the result.
func fit(w, h int, area Rect) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w > area.W {
		w = area.W
	}
	if h > area.H {
		h = area.H
	}
	return Rect{
		X: area.X + (area.W-w)/2,
		Y: area.Y + (area.H-h)/2,
		W: w,
		H: h,
	}
}
