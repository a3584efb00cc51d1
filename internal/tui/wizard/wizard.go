package wizard

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/druarnfield/dossier/internal/form"
	"github.com/druarnfield/dossier/internal/tui/components"
)

type screen int

const (
	screenForm screen = iota
	screenSummary
)

// Options configures a WizardModel.
type Options struct {
	Title        string
	RemovalDelay time.Duration
	ShowHelp     bool
	Logger       *slog.Logger
}

// row is one line of the step body: an entry header or a field.
type row struct {
	header bool
	entry  form.EntryView
	ref    form.FieldRef
	desc   form.FieldDescriptor
}

// WizardModel is the top-level tea.Model driving a form.Session through its
// steps, then showing the summary.
type WizardModel struct {
	styles  components.Styles
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	hint    HintPanel
	screen  screen
	summary SummaryModel

	session *form.Session
	view    *View
	logger  *slog.Logger

	title        string
	removalDelay time.Duration
	showHelp     bool

	widgets  map[form.FieldRef]*fieldWidget
	rows     []row
	cursor   int
	retiring map[form.EntryID]bool

	confirmReset bool
	submitted    bool
	width        int
	height       int
	quitting     bool
}

// New creates a WizardModel for sess. view must be the renderer sess was
// created with.
func New(sess *form.Session, view *View, opts Options) WizardModel {
	styles := components.DefaultStyles()
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := WizardModel{
		styles:       styles,
		keys:         defaultKeyMap(),
		help:         help.New(),
		spinner:      components.NewSpinner(styles),
		hint:         NewHintPanel(styles),
		screen:       screenForm,
		summary:      NewSummaryModel(styles, opts.Title),
		session:      sess,
		view:         view,
		logger:       logger,
		title:        opts.Title,
		removalDelay: opts.RemovalDelay,
		showHelp:     opts.ShowHelp,
		widgets:      make(map[form.FieldRef]*fieldWidget),
		retiring:     make(map[form.EntryID]bool),
	}
	sess.Render()
	m.rebuild()
	m.cursor = m.firstField()
	m.focusCurrent()
	return m
}

// Init satisfies tea.Model.
func (m WizardModel) Init() tea.Cmd {
	if w := m.focusedWidget(); w != nil {
		return w.Focus()
	}
	return nil
}

// Update handles messages and delegates to the active screen.
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.hint = m.hint.SetWidth(min(msg.Width-4, 70))
		m.summary, _ = m.summary.Update(msg)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case removeEntryMsg:
		return m.finishRemoval(msg)

	case spinner.TickMsg:
		if len(m.retiring) == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.screen {
	case screenForm:
		return m.updateForm(msg)
	case screenSummary:
		return m.updateSummary(msg)
	}
	return m, nil
}

func (m WizardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	if m.confirmReset {
		m.confirmReset = false
		if s := keyMsg.String(); s == "y" || s == "Y" {
			return m, m.reset()
		}
		return m, nil
	}

	// Multi-line fields keep vertical movement and newlines.
	if w := m.focusedWidget(); w != nil && w.multiline() {
		switch keyMsg.String() {
		case "up", "down", "enter":
			return m, m.updateFocused(msg)
		}
	}

	switch {
	case key.Matches(keyMsg, m.keys.NextField):
		return m, m.moveFocus(1)
	case key.Matches(keyMsg, m.keys.PrevField):
		return m, m.moveFocus(-1)
	case key.Matches(keyMsg, m.keys.NextStep):
		return m, m.advance()
	case key.Matches(keyMsg, m.keys.PrevStep):
		m.blurCurrent()
		m.session.Back()
		return m, m.enterStep()
	case key.Matches(keyMsg, m.keys.Step1):
		return m, m.goTo(1)
	case key.Matches(keyMsg, m.keys.Step2):
		return m, m.goTo(2)
	case key.Matches(keyMsg, m.keys.Step3):
		return m, m.goTo(3)
	case key.Matches(keyMsg, m.keys.Step4):
		return m, m.goTo(4)
	case key.Matches(keyMsg, m.keys.AddEntry):
		return m, m.addEntry()
	case key.Matches(keyMsg, m.keys.RemoveEntry):
		return m, m.removeEntry()
	case key.Matches(keyMsg, m.keys.Submit):
		return m, m.submit()
	case key.Matches(keyMsg, m.keys.Reset):
		m.confirmReset = true
		return m, nil
	case key.Matches(keyMsg, m.keys.Hint):
		m.hint = m.hint.SetVisible(!m.hint.Visible())
		return m, nil
	}

	return m, m.updateFocused(msg)
}

func (m WizardModel) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.screen = screenForm
			return m, m.focusCurrent()
		case "n":
			return m, m.reset()
		}
	}
	var cmd tea.Cmd
	m.summary, cmd = m.summary.Update(msg)
	if cmd != nil {
		m.quitting = true
	}
	return m, cmd
}

// --- step navigation ---

func (m *WizardModel) advance() tea.Cmd {
	m.blurCurrent()
	before := m.session.Current()
	err := m.session.Advance()
	var stepErr *form.StepError
	switch {
	case errors.As(err, &stepErr):
		if len(stepErr.Fields) > 0 {
			m.focusRef(stepErr.Fields[0])
		}
		return m.focusCurrent()
	case err != nil:
		m.logger.Error("advance failed", slog.Any("error", err))
		return nil
	}
	if m.session.Current() == before {
		m.view.notice = "Section complete. Press ctrl+s to submit."
		return m.focusCurrent()
	}
	return m.enterStep()
}

func (m *WizardModel) goTo(step int) tea.Cmd {
	m.blurCurrent()
	if err := m.session.GoTo(step); err != nil {
		return m.focusCurrent()
	}
	return m.enterStep()
}

// enterStep rebuilds the body for the current step and focuses its first
// field.
func (m *WizardModel) enterStep() tea.Cmd {
	m.rebuild()
	m.cursor = m.firstField()
	return m.focusCurrent()
}

func (m *WizardModel) submit() tea.Cmd {
	m.blurCurrent()
	sum, err := m.session.Submit()
	if err != nil {
		var subErr *form.SubmitError
		if errors.As(err, &subErr) && len(subErr.Steps) > 0 {
			notice := m.view.notice
			_ = m.session.GoTo(subErr.Steps[0])
			cmd := m.enterStep()
			m.view.notice = notice
			if len(subErr.Fields) > 0 {
				m.focusRef(subErr.Fields[0])
				cmd = m.focusCurrent()
			}
			return cmd
		}
		return m.focusCurrent()
	}
	m.submitted = true
	m.summary = m.summary.SetSummary(sum)
	m.screen = screenSummary
	return nil
}

func (m *WizardModel) reset() tea.Cmd {
	m.blurCurrent()
	m.session.Reset()
	m.widgets = make(map[form.FieldRef]*fieldWidget)
	m.retiring = make(map[form.EntryID]bool)
	m.submitted = false
	m.screen = screenForm
	return m.enterStep()
}

// --- entries ---

func (m *WizardModel) currentSection() *form.Section {
	sec, err := m.session.SectionAt(m.session.Current())
	if err != nil {
		return nil
	}
	return sec
}

func (m *WizardModel) addEntry() tea.Cmd {
	sec := m.currentSection()
	if sec == nil || !sec.Def().Repeatable {
		m.view.notice = "This section holds a single record."
		return nil
	}
	m.blurCurrent()
	e, err := m.session.AddEntry(sec.Category())
	if err != nil {
		m.logger.Error("add entry failed", slog.Any("error", err))
		return m.focusCurrent()
	}
	m.rebuild()
	if def := sec.Def(); len(def.Fields) > 0 {
		m.focusRef(form.FieldRef{Category: def.Category, EntryID: e.ID(), Name: def.Fields[0].Name})
	}
	return m.focusCurrent()
}

// removeEntry retires the focused entry. It disappears after the removal
// delay; the first entry cannot be removed.
func (m *WizardModel) removeEntry() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	e := m.rows[m.cursor].entry
	if !e.Removable {
		m.view.notice = "The first entry cannot be removed."
		return nil
	}
	if m.retiring[e.ID] {
		return nil
	}
	msg := removeEntryMsg{Category: m.rows[m.cursor].ref.Category, ID: e.ID}
	if m.removalDelay <= 0 {
		m.applyRemoval(msg)
		return m.focusCurrent()
	}
	m.retiring[e.ID] = true
	return tea.Batch(
		tea.Tick(m.removalDelay, func(time.Time) tea.Msg { return msg }),
		m.spinner.Tick,
	)
}

func (m WizardModel) finishRemoval(msg removeEntryMsg) (tea.Model, tea.Cmd) {
	if !m.retiring[msg.ID] {
		return m, nil
	}
	delete(m.retiring, msg.ID)
	m.applyRemoval(msg)
	return m, m.focusCurrent()
}

func (m *WizardModel) applyRemoval(msg removeEntryMsg) {
	focused := m.focusedRef()
	if focused.EntryID == msg.ID {
		m.blurCurrent()
	}
	if err := m.session.RemoveEntryByID(msg.Category, msg.ID); err != nil {
		// The entry went away in the meantime (reset).
		m.logger.Debug("removal skipped", slog.Any("error", err))
		return
	}
	for ref := range m.widgets {
		if ref.EntryID == msg.ID {
			delete(m.widgets, ref)
		}
	}
	m.rebuild()
	if focused.EntryID != msg.ID && m.focusRef(focused) {
		return
	}
	m.cursor = m.nearestField(min(m.cursor, len(m.rows)-1))
}

// --- rows and focus ---

// rebuild recomputes the rows of the current step and syncs every widget
// with its session value.
func (m *WizardModel) rebuild() {
	focused := m.focusedRef()
	m.rows = nil
	sec := m.currentSection()
	if sec == nil {
		return
	}
	def := sec.Def()
	entries := m.view.Entries(def.Category)
	if entries == nil {
		entries = sec.Views()
	}
	for _, e := range entries {
		if def.Repeatable {
			m.rows = append(m.rows, row{header: true, entry: e})
		}
		for _, f := range def.Fields {
			ref := form.FieldRef{Category: def.Category, EntryID: e.ID, Name: f.Name}
			m.rows = append(m.rows, row{entry: e, ref: ref, desc: f})
			if !hasWidget(f) {
				continue
			}
			w, ok := m.widgets[ref]
			if !ok {
				w = newFieldWidget(f, m.session.Value(ref))
				m.widgets[ref] = w
			}
			w.SetValue(m.session.Value(ref))
		}
	}
	if !m.focusRef(focused) {
		m.cursor = m.nearestField(min(m.cursor, len(m.rows)-1))
	}
}

func (m *WizardModel) firstField() int {
	return m.nearestField(0)
}

// nearestField returns the first field row at or after i, falling back to
// the last field row before it.
func (m *WizardModel) nearestField(i int) int {
	if i < 0 {
		i = 0
	}
	for j := i; j < len(m.rows); j++ {
		if !m.rows[j].header {
			return j
		}
	}
	for j := min(i, len(m.rows)-1); j >= 0; j-- {
		if !m.rows[j].header {
			return j
		}
	}
	return 0
}

func (m *WizardModel) focusRef(ref form.FieldRef) bool {
	if ref == (form.FieldRef{}) {
		return false
	}
	for i, r := range m.rows {
		if !r.header && r.ref == ref {
			m.cursor = i
			return true
		}
	}
	return false
}

func (m WizardModel) focusedRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) || m.rows[m.cursor].header {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m WizardModel) focusedRef() form.FieldRef {
	r, ok := m.focusedRow()
	if !ok {
		return form.FieldRef{}
	}
	return r.ref
}

func (m WizardModel) focusedWidget() *fieldWidget {
	r, ok := m.focusedRow()
	if !ok {
		return nil
	}
	return m.widgets[r.ref]
}

func (m *WizardModel) focusCurrent() tea.Cmd {
	r, ok := m.focusedRow()
	if !ok {
		return nil
	}
	m.hint = m.hint.SetText(fieldHint(r.desc))
	if w := m.widgets[r.ref]; w != nil {
		return w.Focus()
	}
	return nil
}

// blurCurrent validates the field losing focus.
func (m *WizardModel) blurCurrent() {
	r, ok := m.focusedRow()
	if !ok {
		return
	}
	if w := m.widgets[r.ref]; w != nil {
		w.Blur()
	}
	if _, err := m.session.Blur(r.ref); err != nil {
		m.logger.Debug("blur failed", slog.String("field", r.ref.String()), slog.Any("error", err))
	}
}

func (m *WizardModel) moveFocus(dir int) tea.Cmd {
	if len(m.rows) == 0 {
		return nil
	}
	m.blurCurrent()
	i := m.cursor
	for range m.rows {
		i = (i + dir + len(m.rows)) % len(m.rows)
		if !m.rows[i].header {
			break
		}
	}
	m.cursor = i
	return m.focusCurrent()
}

// updateFocused hands msg to the focused field and pushes any value change
// into the session.
func (m *WizardModel) updateFocused(msg tea.Msg) tea.Cmd {
	r, ok := m.focusedRow()
	if !ok {
		return nil
	}
	st, err := m.session.Field(r.ref)
	if err != nil || st.Locked {
		return nil
	}

	if w := m.widgets[r.ref]; w != nil {
		before := w.Value()
		cmd := w.Update(msg)
		if after := w.Value(); after != before {
			m.input(r.ref, after)
		}
		return cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case r.desc.Kind == form.KindCheckbox && key.Matches(keyMsg, m.keys.Toggle):
		next := ""
		if st.Value == "" {
			next = "true"
		}
		m.input(r.ref, next)
		m.rebuild()
	case r.desc.Kind.Choice() && key.Matches(keyMsg, m.keys.NextOption):
		m.input(r.ref, cycleOption(r.desc.Options, st.Value, 1))
	case r.desc.Kind.Choice() && key.Matches(keyMsg, m.keys.PrevOption):
		m.input(r.ref, cycleOption(r.desc.Options, st.Value, -1))
	}
	return nil
}

func (m *WizardModel) input(ref form.FieldRef, value string) {
	if err := m.session.Input(ref, value); err != nil {
		m.logger.Debug("input rejected", slog.String("field", ref.String()), slog.Any("error", err))
		if w := m.widgets[ref]; w != nil {
			w.SetValue(m.session.Value(ref))
		}
	}
}

// --- accessors ---

// Session returns the underlying form session.
func (m WizardModel) Session() *form.Session { return m.session }

// Submitted reports whether the form was submitted successfully.
func (m WizardModel) Submitted() bool { return m.submitted }

// Summary returns the summary of a successful submission.
func (m WizardModel) Summary() form.Summary { return m.summary.Summary() }

// Screen returns the current screen (for testing).
func (m WizardModel) Screen() screen {
	return m.screen
}

// --- view ---

// View renders the active screen.
func (m WizardModel) View() string {
	if m.quitting {
		return ""
	}
	if m.screen == screenSummary {
		return m.summary.View()
	}
	return m.formView()
}

func (m WizardModel) formView() string {
	var b strings.Builder

	b.WriteString(components.RenderBanner(m.styles, m.title))
	b.WriteString("\n\n")
	b.WriteString(renderTabs(m.styles, m.session, m.view.step))
	b.WriteString("\n")
	b.WriteString(renderProgress(m.styles, m.view.progress))
	b.WriteString("\n\n")

	if n := m.view.notice; n != "" {
		b.WriteString(m.styles.Error.Render("  " + n))
		b.WriteString("\n\n")
	}

	if sec := m.currentSection(); sec != nil {
		b.WriteString(m.styles.Subtitle.Render("  " + sec.Def().Title))
		b.WriteString("\n\n")
	}

	for i, r := range m.rows {
		if r.header {
			b.WriteString(m.headerLine(r.entry))
		} else {
			b.WriteString(m.fieldLine(r, i == m.cursor))
		}
		b.WriteString("\n")
	}

	if panel := m.hint.View(); panel != "" {
		b.WriteString("\n")
		b.WriteString(panel)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.confirmReset {
		b.WriteString(m.styles.Warning.Render("  Start a new form? All entered data will be lost. (y/n)"))
	} else if m.showHelp {
		b.WriteString("  " + m.help.View(m.keys))
	}

	return b.String()
}

func (m WizardModel) headerLine(e form.EntryView) string {
	line := "  " + m.styles.Title.Render(e.Label)
	if m.retiring[e.ID] {
		return line + "  " + m.spinner.View() + " " + m.styles.Muted.Render(m.styles.Retiring)
	}
	if e.Ongoing {
		line += "  " + m.styles.Muted.Render("(ongoing)")
	}
	if e.Removable {
		line += "  " + m.styles.Footer.Render("ctrl+x: remove")
	}
	return line
}

func (m WizardModel) fieldLine(r row, focused bool) string {
	label := r.desc.Label
	if r.desc.Required {
		label += m.styles.Required.Render(" *")
	}
	labelStyle := m.styles.Label
	cursor := "  "
	if focused {
		labelStyle = m.styles.FocusedLabel
		cursor = "› "
	}

	st, _ := m.session.Field(r.ref)
	var value string
	switch {
	case st.Locked:
		value = m.styles.Locked.Render("Present")
	case r.desc.Kind == form.KindCheckbox:
		value = checkboxView(m.styles, st.Value)
	case r.desc.Kind.Choice():
		value = choiceView(m.styles, r.desc, st.Value)
	default:
		if w := m.widgets[r.ref]; w != nil {
			value = w.View()
		}
	}

	line := cursor + labelStyle.Render(label) + " " + value
	if res, ok := m.view.Result(r.ref); ok {
		if res.Valid {
			line += " " + m.styles.Success.Render(m.styles.StatusDone)
		} else {
			line += " " + m.styles.Error.Render(fmt.Sprintf("%s %s", m.styles.StatusInvalid, res.Message))
		}
	}
	if r.desc.Kind == form.KindTextarea && r.desc.SoftLimit > 0 {
		line += "\n" + strings.Repeat(" ", 27) + softCounter(m.styles, st.Value, r.desc.SoftLimit)
	}
	return line
}
