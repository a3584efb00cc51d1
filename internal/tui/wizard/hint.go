package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/druarnfield/dossier/internal/form"
	"github.com/druarnfield/dossier/internal/tui/components"
)

// HintPanel renders a bordered "About this field" panel with word-wrapped text.
type HintPanel struct {
	styles  components.Styles
	text    string
	visible bool
	width   int
}

// NewHintPanel creates a hint panel (hidden by default).
func NewHintPanel(styles components.Styles) HintPanel {
	return HintPanel{
		styles: styles,
		width:  60,
	}
}

// SetText returns a copy with updated text.
func (p HintPanel) SetText(text string) HintPanel {
	p.text = text
	return p
}

// SetVisible returns a copy with updated visibility.
func (p HintPanel) SetVisible(v bool) HintPanel {
	p.visible = v
	return p
}

// Visible reports whether the panel is shown.
func (p HintPanel) Visible() bool { return p.visible }

// SetWidth returns a copy with updated width.
func (p HintPanel) SetWidth(w int) HintPanel {
	if w > 0 {
		p.width = w
	}
	return p
}

// View renders the panel. Returns empty string when not visible.
func (p HintPanel) View() string {
	if !p.visible || p.text == "" {
		return ""
	}

	// Panel border + padding take 4 columns.
	innerWidth := p.width - 4
	if innerWidth < 20 {
		innerWidth = 20
	}

	return p.styles.Panel.
		Width(p.width).
		Render(
			lipgloss.JoinVertical(lipgloss.Left,
				p.styles.Subtitle.Render("About this field"),
				"",
				wordWrap(p.text, innerWidth),
			),
		)
}

// fieldHint describes what a field accepts.
func fieldHint(d form.FieldDescriptor) string {
	var parts []string
	if d.Required {
		parts = append(parts, "Required.")
	} else {
		parts = append(parts, "Optional.")
	}

	switch d.Kind {
	case form.KindEmail:
		parts = append(parts, "Use the form name@domain.tld.")
	case form.KindTel:
		parts = append(parts, "10 to 15 digits, numbers only.")
	case form.KindNIK:
		parts = append(parts, "Exactly 16 digits.")
	case form.KindDate:
		parts = append(parts, "Date as YYYY-MM-DD.")
	case form.KindNumber:
		if d.Min != "" && d.Max != "" {
			parts = append(parts, fmt.Sprintf("Between %s and %s.", d.Min, d.Max))
		}
		if d.Step != "" {
			parts = append(parts, fmt.Sprintf("Steps of %s.", d.Step))
		}
	case form.KindRadioGroup, form.KindSelect:
		parts = append(parts, "Choose one of: "+strings.Join(d.Options, ", ")+". Use left and right to change.")
	case form.KindCheckbox:
		parts = append(parts, "Press space to toggle.")
	case form.KindTextarea:
		if d.SoftLimit > 0 {
			parts = append(parts, fmt.Sprintf("Up to %d characters recommended.", d.SoftLimit))
		}
	}

	if d.OngoingFlag {
		parts = append(parts, "While checked the end date is cleared and locked.")
	}
	if d.EndDate {
		parts = append(parts, "Locked while the entry is marked ongoing.")
	}
	return strings.Join(parts, " ")
}

// wordWrap breaks text into lines that fit within the given width.
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]

	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)

	return strings.Join(lines, "\n")
}
