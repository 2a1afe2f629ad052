package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
}{
	Primary:   lipgloss.Color("#F48024"), // Orange
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"),
	TitleSelected: lipgloss.Color("#FFEAA7"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Question list
	CursorSelected lipgloss.Style
	TitleNormal    lipgloss.Style
	TitleSelected  lipgloss.Style
	Score          lipgloss.Style
	Answered       lipgloss.Style
	Owner          lipgloss.Style

	// Details
	DetailTitle lipgloss.Style
	DetailMeta  lipgloss.Style
	Tag         lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Footer and states
	Footer  lipgloss.Style
	Spinner lipgloss.Style
	Empty   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Padding(0, 1),
		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		CursorSelected: lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true),
		TitleNormal:    lipgloss.NewStyle().Foreground(Colors.TitleNormal),
		TitleSelected:  lipgloss.NewStyle().Foreground(Colors.TitleSelected).Bold(true),
		Score:          lipgloss.NewStyle().Foreground(Colors.Secondary).Width(5).Align(lipgloss.Right),
		Answered:       lipgloss.NewStyle().Foreground(Colors.Success),
		Owner:          lipgloss.NewStyle().Foreground(Colors.Muted),

		DetailTitle: lipgloss.NewStyle().Bold(true).Foreground(Colors.TitleSelected),
		DetailMeta:  lipgloss.NewStyle().Foreground(Colors.Muted),
		Tag:         lipgloss.NewStyle().Foreground(Colors.Secondary),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Error).
			Padding(1, 3),
		DialogTitle: lipgloss.NewStyle().Bold(true).Foreground(Colors.Error),

		Footer:  lipgloss.NewStyle().Foreground(Colors.Muted).Padding(0, 1),
		Spinner: lipgloss.NewStyle().Foreground(Colors.Primary),
		Empty:   lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}
