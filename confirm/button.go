package confirm

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Button is one selectable action in the dialog's button row. Value is the
// result code reported when the button is activated. Mnemonic, when nonzero,
// is a shortcut rune that activates the button directly; it is matched
// case-insensitively and stored lowercased.
type Button struct {
	Label    string
	Value    bool
	Mnemonic rune
}

// mnemonicPattern extracts the shortcut letter from labels like "(Y)es".
var mnemonicPattern = regexp.MustCompile(`\((.)\)`)

// ParseButton builds a Button from a display label. A parenthesized letter
// marks the mnemonic: "(Y)es" yields the shortcut 'y'. Labels without one
// get their first letter annotated, so "No" becomes "(N)o" with shortcut
// 'n'. An empty label produces a button with no shortcut.
func ParseButton(label string, value bool) Button {
	b := Button{Label: label, Value: value}
	if m := mnemonicPattern.FindStringSubmatch(label); m != nil {
		r, _ := utf8.DecodeRuneInString(m[1])
		b.Mnemonic = unicode.ToLower(r)
		return b
	}
	if label == "" {
		return b
	}
	first, size := utf8.DecodeRuneInString(label)
	b.Label = "(" + string(first) + ")" + label[size:]
	b.Mnemonic = unicode.ToLower(first)
	return b
}

// DefaultButtons returns the standard confirmation pair: (Y)es reporting
// true and (N)o reporting false.
func DefaultButtons() []Button {
	return []Button{
		ParseButton("(Y)es", true),
		ParseButton("(N)o", false),
	}
}
