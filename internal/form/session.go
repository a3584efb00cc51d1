package form

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Session owns the state of one wizard run: the current step, per-step
// completion, and every section's entries. It is created at session start and
// discarded at the end; nothing survives it. A Session is not safe for
// concurrent use.
type Session struct {
	catalog    *Catalog
	sections   []*Section
	current    int
	completion map[int]bool

	renderer Renderer
	logger   *slog.Logger
	newID    func() EntryID
}

// Option configures a Session.
type Option func(*Session)

// WithRenderer sets the renderer notified of state changes.
func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithLogger sets the logger for transitions and gate failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithIDSource overrides how entry IDs are generated.
func WithIDSource(fn func() EntryID) Option {
	return func(s *Session) { s.newID = fn }
}

// NewSession starts a session on step 1 with one empty entry per section.
func NewSession(cat *Catalog, opts ...Option) *Session {
	s := &Session{
		catalog:    cat,
		current:    1,
		completion: make(map[int]bool, cat.Len()),
		renderer:   NopRenderer{},
		logger:     slog.New(slog.DiscardHandler),
		newID:      func() EntryID { return EntryID(uuid.New()) },
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, def := range cat.Steps() {
		s.sections = append(s.sections, newSection(def, s.newID))
	}
	return s
}

// Catalog returns the catalog the session was built from.
func (s *Session) Catalog() *Catalog { return s.catalog }

// Current returns the 1-based current step.
func (s *Session) Current() int { return s.current }

// Steps returns the number of steps.
func (s *Session) Steps() int { return len(s.sections) }

// Completed reports the completion flag of step as of its last check.
func (s *Session) Completed(step int) bool { return s.completion[step] }

// Sections returns every section in step order.
func (s *Session) Sections() []*Section {
	out := make([]*Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// SectionAt returns the section edited by the 1-based step.
func (s *Session) SectionAt(step int) (*Section, error) {
	if step < 1 || step > len(s.sections) {
		return nil, fmt.Errorf("step %d: %w", step, ErrStepOutOfRange)
	}
	return s.sections[step-1], nil
}

// Section returns the section of the given category, or nil.
func (s *Session) Section(cat Category) *Section {
	for _, sec := range s.sections {
		if sec.Category() == cat {
			return sec
		}
	}
	return nil
}

// Render pushes the full current state to the renderer. Call it once after
// attaching a renderer to draw the initial screen.
func (s *Session) Render() {
	s.renderer.RenderStep(s.current)
	for _, sec := range s.sections {
		s.renderer.RenderEntryList(sec.Category(), sec.Views())
	}
	s.renderer.RenderProgress(s.Progress())
}

// Progress reports the current position and completion count.
func (s *Session) Progress() Progress {
	done := 0
	for step := 1; step <= len(s.sections); step++ {
		if s.completion[step] {
			done++
		}
	}
	total := len(s.sections)
	p := Progress{Step: s.current, Total: total, Completed: done}
	if total > 0 {
		p.Fraction = float64(s.current) / float64(total)
	}
	return p
}

// GoTo jumps to step without any validation.
func (s *Session) GoTo(step int) error {
	if step < 1 || step > len(s.sections) {
		return fmt.Errorf("step %d: %w", step, ErrStepOutOfRange)
	}
	if step != s.current {
		s.logger.Debug("step changed",
			slog.Int("from", s.current),
			slog.Int("to", step),
		)
	}
	s.current = step
	s.renderer.RenderStep(step)
	s.renderer.RenderProgress(s.Progress())
	return nil
}

// Back moves to the previous step. It is a no-op on step 1.
func (s *Session) Back() {
	if s.current > 1 {
		_ = s.GoTo(s.current - 1)
	}
}

// Advance validates every required field of the current step and moves
// forward when they all pass. On the last step a passing check only records
// completion. A failing check leaves the step unchanged and returns a
// *StepError.
func (s *Session) Advance() error {
	step := s.current
	failed := s.checkStep(step)
	if len(failed) > 0 {
		err := &StepError{Step: step, Fields: failed}
		s.logger.Info("step blocked",
			slog.Int("step", step),
			slog.Int("invalid_fields", len(failed)),
		)
		s.renderer.RenderGateError(step, err)
		s.renderer.RenderProgress(s.Progress())
		return err
	}

	if step < len(s.sections) {
		return s.GoTo(step + 1)
	}
	s.renderer.RenderProgress(s.Progress())
	return nil
}

// Submit validates every step. When all pass it assembles and renders the
// summary; otherwise it returns a *SubmitError and renders it.
func (s *Session) Submit() (Summary, error) {
	var (
		steps  []int
		fields []FieldRef
	)
	for step := 1; step <= len(s.sections); step++ {
		if failed := s.checkStep(step); len(failed) > 0 {
			steps = append(steps, step)
			fields = append(fields, failed...)
		}
	}
	s.renderer.RenderProgress(s.Progress())

	if len(steps) > 0 {
		err := &SubmitError{Steps: steps, Fields: fields}
		s.logger.Info("submission blocked",
			slog.Any("steps", steps),
			slog.Int("invalid_fields", len(fields)),
		)
		s.renderer.RenderSubmissionError(err)
		return Summary{}, err
	}

	sum := s.Summary()
	s.logger.Info("submitted",
		slog.Int("education", sum.Education),
		slog.Int("organization", sum.Organization),
		slog.Int("work", sum.Work),
	)
	s.renderer.RenderSummary(sum)
	return sum, nil
}

// Summary assembles the synopsis from the current values without validating.
func (s *Session) Summary() Summary {
	values := map[string]string{}
	if sec := s.Section(CategoryPersonal); sec != nil {
		values = sec.entries[0].Values()
	}
	counts := make(map[Category]int, len(s.sections))
	for _, sec := range s.sections {
		counts[sec.Category()] = sec.Len()
	}
	return Assemble(values, counts)
}

// Reset discards every entry and completion flag and returns to step 1.
func (s *Session) Reset() {
	for _, sec := range s.sections {
		sec.reset()
	}
	clear(s.completion)
	s.logger.Info("session reset")
	s.current = 1
	s.Render()
}

// checkStep validates the required, unlocked fields of every entry in step,
// records the step's completion, and returns the failing fields.
func (s *Session) checkStep(step int) []FieldRef {
	sec := s.sections[step-1]
	var failed []FieldRef
	for _, e := range sec.entries {
		for _, f := range sec.def.Fields {
			if !f.Required {
				continue
			}
			st := e.values[f.Name]
			if st.Locked {
				continue
			}
			ref := FieldRef{Category: sec.Category(), EntryID: e.id, Name: f.Name}
			if res := s.check(ref, f, st); !res.Valid {
				failed = append(failed, ref)
			}
		}
	}
	s.completion[step] = len(failed) == 0
	return failed
}

func (s *Session) check(ref FieldRef, f FieldDescriptor, st *FieldState) ValidationResult {
	res := Validate(f, st.Value)
	st.Validated = true
	st.Invalid = !res.Valid
	st.Message = res.Message
	s.renderer.RenderFieldState(ref, res)
	return res
}

// Ref builds the handle of field name on the entry at index of cat.
func (s *Session) Ref(cat Category, index int, name string) (FieldRef, error) {
	sec := s.Section(cat)
	if sec == nil {
		return FieldRef{}, fmt.Errorf("%s: %w", cat.Key(), ErrUnknownField)
	}
	e, err := sec.Entry(index)
	if err != nil {
		return FieldRef{}, err
	}
	if _, ok := sec.def.Field(name); !ok {
		return FieldRef{}, fmt.Errorf("%s.%s: %w", cat.Key(), name, ErrUnknownField)
	}
	return FieldRef{Category: cat, EntryID: e.id, Name: name}, nil
}

func (s *Session) resolve(ref FieldRef) (*Section, *Entry, FieldDescriptor, *FieldState, error) {
	sec := s.Section(ref.Category)
	if sec == nil {
		return nil, nil, FieldDescriptor{}, nil, fmt.Errorf("%s: %w", ref, ErrUnknownField)
	}
	e, ok := sec.Lookup(ref.EntryID)
	if !ok {
		return nil, nil, FieldDescriptor{}, nil, fmt.Errorf("%s: %w", ref, ErrUnknownEntry)
	}
	f, ok := sec.def.Field(ref.Name)
	if !ok {
		return nil, nil, FieldDescriptor{}, nil, fmt.Errorf("%s: %w", ref, ErrUnknownField)
	}
	return sec, e, f, e.values[ref.Name], nil
}

// Describe returns a human-readable location such as "Education #2 › Institution".
func (s *Session) Describe(ref FieldRef) string {
	sec, e, f, _, err := s.resolve(ref)
	if err != nil {
		return ref.String()
	}
	if !sec.def.Repeatable {
		return fmt.Sprintf("%s › %s", ref.Category, f.Label)
	}
	return fmt.Sprintf("%s › %s", e.Label(), f.Label)
}

// Field returns the current state of a field.
func (s *Session) Field(ref FieldRef) (FieldState, error) {
	_, _, _, st, err := s.resolve(ref)
	if err != nil {
		return FieldState{}, err
	}
	return *st, nil
}

// Value returns the current raw value of a field, or "" for an unknown ref.
func (s *Session) Value(ref FieldRef) string {
	st, err := s.Field(ref)
	if err != nil {
		return ""
	}
	return st.Value
}

// Blur validates a field that lost focus.
func (s *Session) Blur(ref FieldRef) (ValidationResult, error) {
	_, _, f, st, err := s.resolve(ref)
	if err != nil {
		return ValidationResult{}, err
	}
	if st.Locked {
		return ValidationResult{Valid: true}, nil
	}
	return s.check(ref, f, st), nil
}

// Input stores a new value. A field currently marked invalid is re-validated
// immediately so its error clears as soon as it is fixed; any other field
// waits for Blur. Editing an ongoing flag toggles the entry's ongoing state.
func (s *Session) Input(ref FieldRef, value string) error {
	sec, e, f, st, err := s.resolve(ref)
	if err != nil {
		return err
	}
	if st.Locked {
		return fmt.Errorf("%s: %w", s.Describe(ref), ErrFieldLocked)
	}
	if f.OngoingFlag {
		on, err := ParseCheckbox(value)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Describe(ref), err)
		}
		return s.ToggleOngoing(sec.Category(), e.index, on)
	}
	st.Value = value
	if st.Invalid {
		s.check(ref, f, st)
	}
	return nil
}

// AddEntry appends an empty entry to a repeatable section.
func (s *Session) AddEntry(cat Category) (*Entry, error) {
	sec := s.Section(cat)
	if sec == nil {
		return nil, fmt.Errorf("%s: %w", cat.Key(), ErrNotRepeatable)
	}
	e, err := sec.Add()
	if err != nil {
		return nil, err
	}
	s.logger.Debug("entry added",
		slog.String("section", cat.Key()),
		slog.Int("index", e.index),
		slog.String("entry", e.id.String()),
	)
	s.renderer.RenderEntryList(cat, sec.Views())
	return e, nil
}

// RemoveEntry removes the entry at index and renumbers the remaining ones.
func (s *Session) RemoveEntry(cat Category, index int) error {
	sec := s.Section(cat)
	if sec == nil {
		return fmt.Errorf("%s: %w", cat.Key(), ErrNotRepeatable)
	}
	if err := sec.Remove(index); err != nil {
		return err
	}
	s.logger.Debug("entry removed",
		slog.String("section", cat.Key()),
		slog.Int("index", index),
		slog.Int("remaining", sec.Len()),
	)
	s.renderer.RenderEntryList(cat, sec.Views())
	return nil
}

// RemoveEntryByID removes the entry with the given ID wherever it currently
// sits.
func (s *Session) RemoveEntryByID(cat Category, id EntryID) error {
	sec := s.Section(cat)
	if sec == nil {
		return fmt.Errorf("%s: %w", cat.Key(), ErrNotRepeatable)
	}
	idx, ok := sec.IndexOf(id)
	if !ok {
		return fmt.Errorf("%s entry %s: %w", cat.Key(), id.Short(), ErrUnknownEntry)
	}
	return s.RemoveEntry(cat, idx)
}

// ToggleOngoing marks the entry at index ongoing (end date cleared and
// locked) or not (end date editable and empty).
func (s *Session) ToggleOngoing(cat Category, index int, ongoing bool) error {
	sec := s.Section(cat)
	if sec == nil {
		return fmt.Errorf("%s: %w", cat.Key(), ErrNoOngoing)
	}
	if err := sec.ToggleOngoing(index, ongoing); err != nil {
		return err
	}
	s.logger.Debug("ongoing toggled",
		slog.String("section", cat.Key()),
		slog.Int("index", index),
		slog.Bool("ongoing", ongoing),
	)
	s.renderer.RenderEntryList(cat, sec.Views())
	return nil
}
