package confirm

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// wrapLines greedily word-wraps text to the given display width with no
// hyphenation. Widths are measured in terminal cells, so wide runes count
// double. Words wider than a full line are hard-split across lines.
func wrapLines(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := ""
	lineWidth := 0
	for _, w := range words {
		for runewidth.StringWidth(w) > width {
			if line != "" {
				lines = append(lines, line)
				line, lineWidth = "", 0
			}
			head := runewidth.Truncate(w, width, "")
			if head == "" {
				// A single rune wider than the line; drop it.
				_, size := utf8.DecodeRuneInString(w)
				w = w[size:]
				continue
			}
			lines = append(lines, head)
			w = w[len(head):]
		}
		if w == "" {
			continue
		}
		ww := runewidth.StringWidth(w)
		switch {
		case line == "":
			line, lineWidth = w, ww
		case lineWidth+1+ww <= width:
			line += " " + w
			lineWidth += 1 + ww
		default:
			lines = append(lines, line)
			line, lineWidth = w, ww
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// clipLines caps lines at max rows, replacing the tail of the last visible
// line with an ellipsis when content is cut off.
func clipLines(lines []string, max, width int) []string {
	if max <= 0 {
		return nil
	}
	if len(lines) <= max {
		return lines
	}
	out := make([]string, max)
	copy(out, lines[:max-1])
	out[max-1] = runewidth.Truncate(lines[max-1], width-1, "") + "…"
	return out
}
