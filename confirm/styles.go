package confirm

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles the dialog renders with. Colors are
// adaptive so the defaults work on both light and dark terminal
// backgrounds; hosts with their own theme replace the struct wholesale.
type Styles struct {
	// Box frames the whole popup; its border and padding are subtracted
	// from the popup rectangle when sizing the content.
	Box     lipgloss.Style
	Title   lipgloss.Style
	Message lipgloss.Style
	// Button and ActiveButton render the bottom row; ActiveButton marks
	// the highlighted entry.
	Button       lipgloss.Style
	ActiveButton lipgloss.Style
}

// DefaultStyles returns the standard dialog look: rounded purple-bordered
// box, bold centered title, and a reverse-video highlight on the selected
// button.
func DefaultStyles() Styles {
	var (
		bg      = lipgloss.AdaptiveColor{Light: "#EEF4FF", Dark: "#101825"}
		surface = lipgloss.AdaptiveColor{Light: "#D0E8FE", Dark: "#22385C"}
		border  = lipgloss.AdaptiveColor{Light: "#B2DCFE", Dark: "#264870"}
		accent  = lipgloss.AdaptiveColor{Light: "#1670AD", Dark: "#58B8FD"}
		purple  = lipgloss.AdaptiveColor{Light: "#46259f", Dark: "#C695FF"}
	)

	return Styles{
		// No vertical padding: at the default 20% height on a 24-row
		// terminal the popup is four rows, just enough for the border,
		// title, and button row.
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(purple).
			Padding(0, 2).
			Background(surface),

		Title: lipgloss.NewStyle().
			Foreground(purple).
			Bold(true).
			Align(lipgloss.Center),

		Message: lipgloss.NewStyle(),

		Button: lipgloss.NewStyle().
			Foreground(accent).
			Background(border).
			Padding(0, 2).
			MarginRight(1),

		ActiveButton: lipgloss.NewStyle().
			Foreground(bg).
			Background(accent).
			Padding(0, 2).
			MarginRight(1).
			Bold(true),
	}
}
