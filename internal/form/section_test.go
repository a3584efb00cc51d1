package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func educationSection(t *testing.T) *Section {
	t.Helper()
	def, ok := DefaultCatalog(CatalogOptions{}).Step(2)
	if !ok {
		t.Fatal("default catalog has no step 2")
	}
	n := byte(0)
	return newSection(def, func() EntryID {
		n++
		return EntryID{n}
	})
}

func labels(s *Section) []string {
	var out []string
	for _, e := range s.Entries() {
		out = append(out, e.Label())
	}
	return out
}

func TestSection_SeededWithOneEntry(t *testing.T) {
	s := educationSection(t)
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	e, _ := s.Entry(0)
	if e.Label() != "Education #1" {
		t.Errorf("Label = %q", e.Label())
	}
	for _, f := range s.Def().Fields {
		if v := e.Value(f.Name); v != "" {
			t.Errorf("new entry field %s = %q, want empty", f.Name, v)
		}
	}
}

func TestSection_AddAppendsWithNextIndex(t *testing.T) {
	s := educationSection(t)
	for i := 1; i <= 5; i++ {
		e, err := s.Add()
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if e.Index() != i {
			t.Errorf("Index = %d, want %d", e.Index(), i)
		}
	}
	want := []string{"Education #1", "Education #2", "Education #3", "Education #4", "Education #5", "Education #6"}
	if diff := cmp.Diff(want, labels(s)); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestSection_RemoveRenumbers(t *testing.T) {
	s := educationSection(t)
	for i := 0; i < 4; i++ {
		_, _ = s.Add()
	}
	before := s.Entries() // ids 1..5

	if err := s.Remove(1); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if s.Len() != 4 {
		t.Fatalf("Len = %d, want 4", s.Len())
	}

	// Entries after the removed one shift down by one.
	for i, e := range before[2:] {
		if e.Index() != i+1 {
			t.Errorf("entry %s Index = %d, want %d", e.ID().Short(), e.Index(), i+1)
		}
	}
	if before[0].Index() != 0 {
		t.Errorf("first entry moved to %d", before[0].Index())
	}
	if _, ok := s.Lookup(before[1].ID()); ok {
		t.Error("removed entry still found")
	}

	want := []string{"Education #1", "Education #2", "Education #3", "Education #4"}
	if diff := cmp.Diff(want, labels(s)); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestSection_RemoveReleasesEntry(t *testing.T) {
	s := educationSection(t)
	_, _ = s.Add()
	_, _ = s.Add()
	backing := s.entries

	if err := s.Remove(0); err != nil {
		t.Fatal(err)
	}
	if backing[len(backing)-1] != nil {
		t.Error("vacated slot still references an entry")
	}
}

func TestSection_RemoveKeepsIDs(t *testing.T) {
	s := educationSection(t)
	_, _ = s.Add()
	last, _ := s.Add()
	id := last.ID()

	_ = s.Remove(0)
	idx, ok := s.IndexOf(id)
	if !ok || idx != 1 {
		t.Errorf("IndexOf = %d, %v; want 1, true", idx, ok)
	}
}

func TestSection_NeverBelowOne(t *testing.T) {
	s := educationSection(t)
	for i := 0; i < 3; i++ {
		_, _ = s.Add()
	}
	for s.Len() > 1 {
		if err := s.Remove(s.Len() - 1); err != nil {
			t.Fatalf("Remove: %v", err)
		}
	}

	err := s.Remove(0)
	if !errors.Is(err, ErrLastEntry) {
		t.Errorf("err = %v, want ErrLastEntry", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestSection_RemoveOutOfRange(t *testing.T) {
	s := educationSection(t)
	_, _ = s.Add()
	for _, idx := range []int{-1, 2, 10} {
		if err := s.Remove(idx); !errors.Is(err, ErrEntryOutOfRange) {
			t.Errorf("Remove(%d) err = %v, want ErrEntryOutOfRange", idx, err)
		}
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestSection_NotRepeatable(t *testing.T) {
	def, _ := DefaultCatalog(CatalogOptions{}).Step(1)
	s := newSection(def, func() EntryID { return EntryID{1} })
	if _, err := s.Add(); !errors.Is(err, ErrNotRepeatable) {
		t.Errorf("err = %v, want ErrNotRepeatable", err)
	}
	if s.SupportsOngoing() {
		t.Error("personal section should not support ongoing")
	}
	if err := s.ToggleOngoing(0, true); !errors.Is(err, ErrNoOngoing) {
		t.Errorf("err = %v, want ErrNoOngoing", err)
	}
	if views := s.Views(); views[0].Removable {
		t.Error("personal entry must not be removable")
	}
}

func TestSection_EducationHasNoOngoing(t *testing.T) {
	s := educationSection(t)
	if err := s.ToggleOngoing(0, true); !errors.Is(err, ErrNoOngoing) {
		t.Errorf("err = %v, want ErrNoOngoing", err)
	}
}

func TestSection_ToggleOngoingLosesEndDate(t *testing.T) {
	for _, step := range []int{3, 4} {
		def, _ := DefaultCatalog(CatalogOptions{}).Step(step)
		s := newSection(def, func() EntryID { return EntryID{byte(step)} })
		e, _ := s.Entry(0)
		e.values["end_date"].Value = "2022-06-30"

		if err := s.ToggleOngoing(0, true); err != nil {
			t.Fatalf("%s: ToggleOngoing(true): %v", def.Category.Key(), err)
		}
		st, _ := e.State("end_date")
		if !st.Locked || st.Value != "" {
			t.Errorf("%s: end date while ongoing = %+v", def.Category.Key(), st)
		}
		if !e.Ongoing() {
			t.Errorf("%s: entry not ongoing", def.Category.Key())
		}

		if err := s.ToggleOngoing(0, false); err != nil {
			t.Fatalf("ToggleOngoing(false): %v", err)
		}
		st, _ = e.State("end_date")
		if st.Locked {
			t.Errorf("%s: end date still locked", def.Category.Key())
		}
		if st.Value != "" {
			t.Errorf("%s: end date restored to %q, want empty", def.Category.Key(), st.Value)
		}
		if e.Ongoing() {
			t.Errorf("%s: entry still ongoing", def.Category.Key())
		}
	}
}

func TestSection_ViewsMirrorEntries(t *testing.T) {
	s := educationSection(t)
	second, _ := s.Add()
	second.values["institution"].Value = "ITB"

	got := s.Views()
	if len(got) != 2 {
		t.Fatalf("views = %d, want 2", len(got))
	}
	if got[1].ID != second.ID() || got[1].Label != "Education #2" || got[1].Values["institution"] != "ITB" {
		t.Errorf("view = %+v", got[1])
	}
	if got[0].Removable || !got[1].Removable {
		t.Errorf("removable flags = %v, %v; want false, true", got[0].Removable, got[1].Removable)
	}
}
