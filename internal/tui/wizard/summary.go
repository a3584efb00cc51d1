package wizard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/druarnfield/dossier/internal/form"
	"github.com/druarnfield/dossier/internal/tui/components"
)

// SummaryModel shows the data summary after a successful submission.
type SummaryModel struct {
	styles  components.Styles
	title   string
	summary form.Summary
	width   int
	height  int
}

// NewSummaryModel creates a summary view.
func NewSummaryModel(styles components.Styles, title string) SummaryModel {
	return SummaryModel{styles: styles, title: title}
}

// SetSummary updates the summary to display.
func (m SummaryModel) SetSummary(s form.Summary) SummaryModel {
	m.summary = s
	return m
}

// Summary returns the displayed summary.
func (m SummaryModel) Summary() form.Summary { return m.summary }

// Init satisfies tea.Model.
func (m SummaryModel) Init() tea.Cmd {
	return nil
}

// Update handles key events.
func (m SummaryModel) Update(msg tea.Msg) (SummaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "q":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the summary screen.
func (m SummaryModel) View() string {
	var b strings.Builder

	b.WriteString(components.RenderBanner(m.styles, m.title))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Success.Render("Data summary"))
	b.WriteString("\n")

	for _, sec := range m.summary.Sections() {
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render("  " + sec.Title))
		b.WriteString("\n")
		for _, line := range sec.Lines {
			b.WriteString("    " + line + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("  enter/q: exit  esc: back to form  n: new form"))

	return b.String()
}
