package form

import "fmt"

// Progress describes the wizard position and how many steps are complete.
type Progress struct {
	Step      int
	Total     int
	Completed int
	Fraction  float64
}

// Status returns the completion line shown under the progress bar.
func (p Progress) Status() string {
	if p.Total > 0 && p.Completed == p.Total {
		return "All sections complete ✓"
	}
	return fmt.Sprintf("%d/%d sections complete", p.Completed, p.Total)
}

// Renderer is the presentation side of a Session. The session calls it after
// every state change; implementations only display what they are given.
type Renderer interface {
	// RenderStep shows the step's panel and marks its selector active.
	RenderStep(step int)

	RenderProgress(p Progress)

	// RenderFieldState marks a field valid or invalid with its message.
	RenderFieldState(ref FieldRef, res ValidationResult)

	// RenderEntryList reflects the current entries of a section.
	RenderEntryList(cat Category, entries []EntryView)

	// RenderGateError reports that Advance was blocked on step.
	RenderGateError(step int, err error)

	RenderSummary(s Summary)
	RenderSubmissionError(err error)
}

// NopRenderer discards every call.
type NopRenderer struct{}

func (NopRenderer) RenderStep(int)                              {}
func (NopRenderer) RenderProgress(Progress)                     {}
func (NopRenderer) RenderFieldState(FieldRef, ValidationResult) {}
func (NopRenderer) RenderEntryList(Category, []EntryView)       {}
func (NopRenderer) RenderGateError(int, error)                  {}
func (NopRenderer) RenderSummary(Summary)                       {}
func (NopRenderer) RenderSubmissionError(error)                 {}
