package components

import "strings"

// RenderBanner renders the title block shown at the top of every screen.
func RenderBanner(styles Styles, title string) string {
	if title == "" {
		title = "dossier"
	}
	rule := strings.Repeat("─", max(len([]rune(title))+4, 24))
	return styles.Title.Render("  "+title) + "\n" +
		styles.Muted.Render(rule) + "\n" +
		styles.Muted.Render("  Fill in each section, then submit.")
}

// ProgressBar renders a fixed-width bar for fraction in [0, 1].
func ProgressBar(styles Styles, fraction float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return styles.ProgressFull.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmpty.Render(strings.Repeat("░", width-filled))
}
