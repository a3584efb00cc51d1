package wizard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/druarnfield/dossier/internal/form"
	"github.com/druarnfield/dossier/internal/tui/components"
)

const progressBarWidth = 20

// renderTabs draws one tab per section. The current step is highlighted and
// steps whose last check passed carry a done mark.
func renderTabs(styles components.Styles, sess *form.Session, current int) string {
	tabs := make([]string, 0, sess.Steps())
	for i, def := range sess.Catalog().Steps() {
		step := i + 1
		label := fmt.Sprintf("%d %s", step, def.Title)
		switch {
		case step == current:
			tabs = append(tabs, styles.ActiveTab.Render(label))
		case sess.Completed(step):
			tabs = append(tabs, styles.CompletedTab.Render(label+" "+styles.StatusDone))
		default:
			tabs = append(tabs, styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

// renderProgress draws the bar and status line for p.
func renderProgress(styles components.Styles, p form.Progress) string {
	bar := components.ProgressBar(styles, p.Fraction, progressBarWidth)
	status := styles.Muted.Render(p.Status())
	if p.Total > 0 && p.Completed == p.Total {
		status = styles.Success.Render(p.Status())
	}
	return fmt.Sprintf("  Step %d/%d  %s  %d%%   %s",
		p.Step, p.Total, bar, int(p.Fraction*100), status)
}
