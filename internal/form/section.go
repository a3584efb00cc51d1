package form

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/google/uuid"
)

// EntryID identifies an entry for its whole lifetime, independent of the
// position it currently occupies.
type EntryID uuid.UUID

func (id EntryID) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first group of the ID for compact display.
func (id EntryID) Short() string {
	return id.String()[:8]
}

// Entry is one record of a section.
type Entry struct {
	id       EntryID
	index    int
	category Category
	values   map[string]*FieldState
	ongoing  bool
}

func newEntry(def StepDef, index int, id EntryID) *Entry {
	e := &Entry{
		id:       id,
		index:    index,
		category: def.Category,
		values:   make(map[string]*FieldState, len(def.Fields)),
	}
	for _, f := range def.Fields {
		e.values[f.Name] = &FieldState{}
	}
	return e
}

// ID returns the stable identifier.
func (e *Entry) ID() EntryID { return e.id }

// Index returns the 0-based position. It changes when an earlier entry is
// removed.
func (e *Entry) Index() int { return e.index }

// Label returns the positional caption, e.g. "Education #2".
func (e *Entry) Label() string {
	return fmt.Sprintf("%s #%d", e.category, e.index+1)
}

// Ongoing reports whether the entry has no end date.
func (e *Entry) Ongoing() bool { return e.ongoing }

// Value returns the raw value of the named field.
func (e *Entry) Value(name string) string {
	if st, ok := e.values[name]; ok {
		return st.Value
	}
	return ""
}

// State returns a copy of the named field's state.
func (e *Entry) State(name string) (FieldState, bool) {
	st, ok := e.values[name]
	if !ok {
		return FieldState{}, false
	}
	return *st, true
}

// Values returns a copy of every field value keyed by field name.
func (e *Entry) Values() map[string]string {
	out := make(map[string]string, len(e.values))
	for name, st := range e.values {
		out[name] = st.Value
	}
	return out
}

// EntryView is the read-only projection of an entry handed to renderers.
type EntryView struct {
	ID        EntryID
	Index     int
	Label     string
	Ongoing   bool
	Removable bool
	Values    map[string]string
}

// Section holds the ordered entries of one step. Non-repeatable sections keep
// exactly one entry; repeatable ones keep at least one.
type Section struct {
	def     StepDef
	entries []*Entry
	newID   func() EntryID
}

func newSection(def StepDef, newID func() EntryID) *Section {
	s := &Section{def: def, newID: newID}
	s.entries = []*Entry{newEntry(def, 0, newID())}
	return s
}

// Def returns the step definition the section was built from.
func (s *Section) Def() StepDef { return s.def }

// Category returns the section's category.
func (s *Section) Category() Category { return s.def.Category }

// Len returns the number of entries.
func (s *Section) Len() int { return len(s.entries) }

// Entries returns the entries in positional order.
func (s *Section) Entries() []*Entry {
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Entry returns the entry at index.
func (s *Section) Entry(index int) (*Entry, error) {
	if index < 0 || index >= len(s.entries) {
		return nil, fmt.Errorf("%s entry %d: %w", s.def.Category.Key(), index, ErrEntryOutOfRange)
	}
	return s.entries[index], nil
}

// Lookup returns the entry with the given ID.
func (s *Section) Lookup(id EntryID) (*Entry, bool) {
	for _, e := range s.entries {
		if e.id == id {
			return e, true
		}
	}
	return nil, false
}

// IndexOf returns the current position of the entry with the given ID.
func (s *Section) IndexOf(id EntryID) (int, bool) {
	if e, ok := s.Lookup(id); ok {
		return e.index, true
	}
	return -1, false
}

// Add appends an empty entry and returns it. There is no upper bound.
func (s *Section) Add() (*Entry, error) {
	if !s.def.Repeatable {
		return nil, fmt.Errorf("%s: %w", s.def.Category.Key(), ErrNotRepeatable)
	}
	e := newEntry(s.def, len(s.entries), s.newID())
	s.entries = append(s.entries, e)
	return e, nil
}

// Remove drops the entry at index and renumbers the rest. Removing the last
// remaining entry is refused with ErrLastEntry.
func (s *Section) Remove(index int) error {
	if index < 0 || index >= len(s.entries) {
		return fmt.Errorf("%s entry %d: %w", s.def.Category.Key(), index, ErrEntryOutOfRange)
	}
	if len(s.entries) == 1 {
		return fmt.Errorf("%s: %w", s.def.Category.Key(), ErrLastEntry)
	}
	s.entries = slices.Delete(s.entries, index, index+1)
	s.renumber()
	return nil
}

func (s *Section) renumber() {
	for i, e := range s.entries {
		e.index = i
	}
}

// ToggleOngoing marks the entry at index ongoing or not. Going ongoing clears
// and locks every end-date field; leaving it unlocks them without restoring
// the cleared value.
func (s *Section) ToggleOngoing(index int, ongoing bool) error {
	if !s.SupportsOngoing() {
		return fmt.Errorf("%s: %w", s.def.Category.Key(), ErrNoOngoing)
	}
	e, err := s.Entry(index)
	if err != nil {
		return err
	}
	e.ongoing = ongoing
	for _, f := range s.def.Fields {
		st := e.values[f.Name]
		switch {
		case f.EndDate:
			if ongoing {
				*st = FieldState{Locked: true}
			} else {
				st.Locked = false
			}
		case f.OngoingFlag:
			st.Value = checkboxValue(ongoing)
		}
	}
	return nil
}

// SupportsOngoing reports whether entries of this section can be ongoing.
func (s *Section) SupportsOngoing() bool {
	for _, f := range s.def.Fields {
		if f.OngoingFlag {
			return true
		}
	}
	return false
}

// Views projects the entries for a renderer.
func (s *Section) Views() []EntryView {
	views := make([]EntryView, len(s.entries))
	for i, e := range s.entries {
		views[i] = EntryView{
			ID:        e.id,
			Index:     e.index,
			Label:     e.Label(),
			Ongoing:   e.ongoing,
			Removable: s.def.Repeatable && e.index > 0,
			Values:    e.Values(),
		}
	}
	return views
}

func (s *Section) reset() {
	s.entries = []*Entry{newEntry(s.def, 0, s.newID())}
}

const checkboxOn = "true"

// ParseCheckbox reads a checkbox value. Empty is off; anything else must
// parse as a boolean ("true", "false", "1", "0", ...).
func ParseCheckbox(value string) (bool, error) {
	if value == "" {
		return false, nil
	}
	on, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%q: %w", value, ErrInvalidFlag)
	}
	return on, nil
}

func checkboxValue(on bool) string {
	if on {
		return checkboxOn
	}
	return ""
}
