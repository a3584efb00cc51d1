package wizard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/druarnfield/dossier/internal/form"
	"github.com/druarnfield/dossier/internal/tui/components"
)

const inputWidth = 40

// fieldWidget is the text editor behind one text-like field. Choice and
// checkbox fields have no widget; their value lives in the session only.
type fieldWidget struct {
	desc  form.FieldDescriptor
	input textinput.Model
	area  textarea.Model
}

func hasWidget(d form.FieldDescriptor) bool {
	return !d.Kind.Choice() && d.Kind != form.KindCheckbox
}

func newFieldWidget(d form.FieldDescriptor, value string) *fieldWidget {
	w := &fieldWidget{desc: d}
	if d.Kind == form.KindTextarea {
		ta := textarea.New()
		ta.CharLimit = 0
		ta.ShowLineNumbers = false
		ta.Placeholder = d.Placeholder
		ta.SetWidth(inputWidth + 8)
		ta.SetHeight(3)
		ta.SetValue(value)
		ta.Blur()
		w.area = ta
		return w
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Width = inputWidth
	ti.Placeholder = d.Placeholder
	ti.SetValue(value)
	ti.Blur()
	w.input = ti
	return w
}

func (w *fieldWidget) multiline() bool { return w.desc.Kind == form.KindTextarea }

func (w *fieldWidget) Value() string {
	if w.multiline() {
		return w.area.Value()
	}
	return w.input.Value()
}

// SetValue replaces the widget content when it differs from v.
func (w *fieldWidget) SetValue(v string) {
	if w.Value() == v {
		return
	}
	if w.multiline() {
		w.area.SetValue(v)
		return
	}
	w.input.SetValue(v)
}

func (w *fieldWidget) Focus() tea.Cmd {
	if w.multiline() {
		return w.area.Focus()
	}
	return w.input.Focus()
}

func (w *fieldWidget) Blur() {
	if w.multiline() {
		w.area.Blur()
		return
	}
	w.input.Blur()
}

func (w *fieldWidget) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if w.multiline() {
		w.area, cmd = w.area.Update(msg)
		return cmd
	}
	w.input, cmd = w.input.Update(msg)
	return cmd
}

func (w *fieldWidget) View() string {
	if w.multiline() {
		return w.area.View()
	}
	return w.input.View()
}

// softCounter renders "n/limit" under free text, warning once over the limit.
func softCounter(styles components.Styles, value string, limit int) string {
	if limit <= 0 {
		return ""
	}
	n := len([]rune(value))
	text := fmt.Sprintf("%d/%d", n, limit)
	if n > limit {
		return styles.Warning.Render(text)
	}
	return styles.Muted.Render(text)
}

// choiceView renders the options of a radio group or select with the
// current value marked.
func choiceView(styles components.Styles, d form.FieldDescriptor, value string) string {
	if d.Kind == form.KindSelect {
		if value == "" {
			return styles.Muted.Render("‹ choose ›")
		}
		return "‹ " + value + " ›"
	}
	opts := make([]string, 0, len(d.Options))
	for _, o := range d.Options {
		mark := styles.RadioOff
		if o == value {
			mark = styles.RadioOn
		}
		opts = append(opts, mark+" "+o)
	}
	return strings.Join(opts, "  ")
}

func checkboxView(styles components.Styles, value string) string {
	if value != "" {
		return styles.CheckboxOn
	}
	return styles.CheckboxOff
}

// cycleOption returns the option dir steps away from value, wrapping around.
// An empty value moves to the first (or last) option.
func cycleOption(options []string, value string, dir int) string {
	if len(options) == 0 {
		return value
	}
	i := slices.Index(options, value)
	if i < 0 {
		if dir < 0 {
			return options[len(options)-1]
		}
		return options[0]
	}
	n := len(options)
	return options[((i+dir)%n+n)%n]
}
