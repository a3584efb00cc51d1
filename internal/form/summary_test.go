package form

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssemble(t *testing.T) {
	got := Assemble(
		map[string]string{"full_name": "Budi", "email": "budi@example.com", "phone": "0811111111", "address": "ignored"},
		map[Category]int{CategoryEducation: 3, CategoryOrganization: 1, CategoryWork: 2},
	)
	want := Summary{Name: "Budi", Email: "budi@example.com", Phone: "0811111111", Education: 3, Organization: 1, Work: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Assemble mismatch (-want +got):\n%s", diff)
	}
}

func TestAssemble_MissingValues(t *testing.T) {
	got := Assemble(nil, nil)
	if diff := cmp.Diff(Summary{}, got); diff != "" {
		t.Errorf("Assemble(nil, nil) mismatch (-want +got):\n%s", diff)
	}
	out := got.String()
	for _, want := range []string{"Name: \n", "0 education records added", "0 work experience records added"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}
}

func TestSummary_Sections(t *testing.T) {
	s := Summary{Name: "Ani", Education: 2, Organization: 0, Work: 1}
	secs := s.Sections()
	if len(secs) != 4 {
		t.Fatalf("sections = %d, want 4", len(secs))
	}
	titles := []string{secs[0].Title, secs[1].Title, secs[2].Title, secs[3].Title}
	if diff := cmp.Diff([]string{"Personal Data", "Education", "Organization", "Work Experience"}, titles); diff != "" {
		t.Errorf("titles mismatch (-want +got):\n%s", diff)
	}
	if secs[1].Lines[0] != "2 education records added" {
		t.Errorf("education line = %q", secs[1].Lines[0])
	}
}

func TestProgress_Status(t *testing.T) {
	tests := []struct {
		p    Progress
		want string
	}{
		{Progress{Total: 4, Completed: 0}, "0/4 sections complete"},
		{Progress{Total: 4, Completed: 3}, "3/4 sections complete"},
		{Progress{Total: 4, Completed: 4}, "All sections complete ✓"},
	}
	for _, tt := range tests {
		if got := tt.p.Status(); got != tt.want {
			t.Errorf("Status(%d/%d) = %q, want %q", tt.p.Completed, tt.p.Total, got, tt.want)
		}
	}
}

func TestDefaultCatalog_Overrides(t *testing.T) {
	cat := DefaultCatalog(CatalogOptions{
		SoftLimit: 300,
		YearMin:   1980,
		Required:  map[string]bool{"education.major": true, "personal.birth_date": false},
	})
	edu, _ := cat.Step(2)
	major, _ := edu.Field("major")
	if !major.Required {
		t.Error("education.major should be required by override")
	}
	start, _ := edu.Field("start_year")
	if start.Min != "1980" || start.Max != "2030" {
		t.Errorf("start_year range = %s..%s, want 1980..2030", start.Min, start.Max)
	}
	personal, _ := cat.Step(1)
	birth, _ := personal.Field("birth_date")
	if birth.Required {
		t.Error("personal.birth_date should be optional by override")
	}
	addr, _ := personal.Field("address")
	if addr.SoftLimit != 300 {
		t.Errorf("address soft limit = %d, want 300", addr.SoftLimit)
	}
	if _, ok := cat.Step(5); ok {
		t.Error("Step(5) should not exist")
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range []Category{CategoryPersonal, CategoryEducation, CategoryOrganization, CategoryWork} {
		got, ok := ParseCategory(c.Key())
		if !ok || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.Key(), got, ok)
		}
	}
	if _, ok := ParseCategory("hobbies"); ok {
		t.Error("unknown key should not parse")
	}
}
