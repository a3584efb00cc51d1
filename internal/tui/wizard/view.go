package wizard

import (
	"github.com/druarnfield/dossier/internal/form"
)

const (
	noticeStepBlocked   = "Please complete every required field before continuing."
	noticeSubmitBlocked = "Please complete every required field in all sections."
)

// View is the form.Renderer side of the TUI. The session writes into it and
// WizardModel reads from it when drawing.
type View struct {
	step      int
	progress  form.Progress
	results   map[form.FieldRef]form.ValidationResult
	lists     map[form.Category][]form.EntryView
	notice    string
	summary   *form.Summary
	submitErr error
}

// NewView creates an empty View to pass to form.WithRenderer.
func NewView() *View {
	return &View{
		results: make(map[form.FieldRef]form.ValidationResult),
		lists:   make(map[form.Category][]form.EntryView),
	}
}

func (v *View) RenderStep(step int) {
	v.step = step
	v.notice = ""
}

func (v *View) RenderProgress(p form.Progress) {
	v.progress = p
}

func (v *View) RenderFieldState(ref form.FieldRef, res form.ValidationResult) {
	v.results[ref] = res
}

// RenderEntryList also forgets field marks of entries that are gone.
func (v *View) RenderEntryList(cat form.Category, entries []form.EntryView) {
	v.lists[cat] = entries
	live := make(map[form.EntryID]bool, len(entries))
	for _, e := range entries {
		live[e.ID] = true
	}
	for ref := range v.results {
		if ref.Category == cat && !live[ref.EntryID] {
			delete(v.results, ref)
		}
	}
}

func (v *View) RenderGateError(_ int, _ error) {
	v.notice = noticeStepBlocked
}

func (v *View) RenderSummary(s form.Summary) {
	v.summary = &s
	v.submitErr = nil
	v.notice = ""
}

func (v *View) RenderSubmissionError(err error) {
	v.summary = nil
	v.submitErr = err
	v.notice = noticeSubmitBlocked
}

// Result returns the last validation mark of a field.
func (v *View) Result(ref form.FieldRef) (form.ValidationResult, bool) {
	res, ok := v.results[ref]
	return res, ok
}

// Notice returns the blocking notice currently shown, if any.
func (v *View) Notice() string { return v.notice }

// Entries returns the entries last rendered for cat.
func (v *View) Entries(cat form.Category) []form.EntryView { return v.lists[cat] }
