package components

import "github.com/charmbracelet/lipgloss"

// Styles holds all shared Lipgloss styles used across TUI screens.
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Body       lipgloss.Style
	Muted      lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Panel      lipgloss.Style
	EntryPanel lipgloss.Style

	Tab          lipgloss.Style
	ActiveTab    lipgloss.Style
	CompletedTab lipgloss.Style

	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Required     lipgloss.Style
	Locked       lipgloss.Style

	CheckboxOn    string
	CheckboxOff   string
	RadioOn       string
	RadioOff      string
	StatusDone    string
	StatusInvalid string
	StatusPending string
	Retiring      string

	Footer        lipgloss.Style
	AccentColor   lipgloss.AdaptiveColor
	ProgressFull  lipgloss.Style
	ProgressEmpty lipgloss.Style
}

// DefaultStyles returns a Styles populated with the dossier color palette.
// Uses AdaptiveColor to work in both light and dark terminals.
func DefaultStyles() Styles {
	accent := lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}
	cyan := lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	success := lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	errColor := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	warn := lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

	tab := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(muted).
		Foreground(muted)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(cyan),

		Body: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Success: lipgloss.NewStyle().
			Foreground(success),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(errColor),

		Warning: lipgloss.NewStyle().
			Foreground(warn),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		EntryPanel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(muted).
			PaddingLeft(1),

		Tab: tab,

		ActiveTab: tab.
			Bold(true).
			Foreground(accent).
			BorderForeground(accent),

		CompletedTab: tab.
			Foreground(success).
			BorderForeground(success),

		Label: lipgloss.NewStyle().
			Width(24),

		FocusedLabel: lipgloss.NewStyle().
			Width(24).
			Bold(true).
			Foreground(accent),

		Required: lipgloss.NewStyle().
			Foreground(errColor),

		Locked: lipgloss.NewStyle().
			Italic(true).
			Foreground(muted),

		CheckboxOn:    "[x]",
		CheckboxOff:   "[ ]",
		RadioOn:       "(•)",
		RadioOff:      "( )",
		StatusDone:    "✓",
		StatusInvalid: "✗",
		StatusPending: "○",
		Retiring:      "removing",

		Footer: lipgloss.NewStyle().
			Foreground(muted),

		AccentColor: accent,

		ProgressFull: lipgloss.NewStyle().
			Foreground(accent),

		ProgressEmpty: lipgloss.NewStyle().
			Foreground(muted),
	}
}
