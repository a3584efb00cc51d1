package answers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/druarnfield/dossier/internal/form"
	"github.com/google/go-cmp/cmp"
)

const complete = `
[personal]
full_name = "Siti Rahma"
national-id = "3174000000000001"
birth_date = 1995-04-12
gender = "female"
email = "siti@example.com"
phone = "081234567890"

[[education]]
level = "senior-high"
institution = "SMA 8"
graduation_year = 2013

[[education]]
level = "bachelor"
institution = "Universitas Indonesia"
gpa = 3.75

[[organization]]
name = "Robotics Club"
end_date = 2019-01-01
ongoing = true

[[work]]
company = "PT Maju"
position = "Engineer"
start_date = 2020-01-06
current = true
`

func newSession() *form.Session {
	return form.NewSession(form.DefaultCatalog(form.CatalogOptions{}))
}

func value(t *testing.T, s *form.Session, cat form.Category, index int, name string) string {
	t.Helper()
	ref, err := s.Ref(cat, index, name)
	if err != nil {
		t.Fatalf("Ref: %v", err)
	}
	return s.Value(ref)
}

func TestLoadFromFile_AppliesAndSubmits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.toml")
	if err := os.WriteFile(path, []byte(complete), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	s := newSession()
	if err := a.Apply(s); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	sum, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	want := form.Summary{
		Name:         "Siti Rahma",
		Email:        "siti@example.com",
		Phone:        "081234567890",
		Education:    2,
		Organization: 1,
		Work:         1,
	}
	if diff := cmp.Diff(want, sum); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_Stringifies(t *testing.T) {
	a, err := Parse([]byte(complete))
	if err != nil {
		t.Fatal(err)
	}
	s := newSession()
	if err := a.Apply(s); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		cat   form.Category
		index int
		name  string
		want  string
	}{
		{form.CategoryPersonal, 0, "birth_date", "1995-04-12"},
		{form.CategoryEducation, 0, "graduation_year", "2013"},
		{form.CategoryEducation, 1, "gpa", "3.75"},
		{form.CategoryWork, 0, "current", "true"},
	}
	for _, tt := range tests {
		if got := value(t, s, tt.cat, tt.index, tt.name); got != tt.want {
			t.Errorf("%s[%d].%s = %q, want %q", tt.cat.Key(), tt.index, tt.name, got, tt.want)
		}
	}
}

func TestApply_OngoingClearsEndDate(t *testing.T) {
	a, err := Parse([]byte(complete))
	if err != nil {
		t.Fatal(err)
	}
	s := newSession()
	if err := a.Apply(s); err != nil {
		t.Fatal(err)
	}

	org := s.Section(form.CategoryOrganization)
	e, _ := org.Entry(0)
	if !e.Ongoing() {
		t.Error("organization entry should be ongoing")
	}
	if got := e.Value("end_date"); got != "" {
		t.Errorf("end_date = %q, want cleared", got)
	}
	st, _ := e.State("end_date")
	if !st.Locked {
		t.Error("end_date should be locked")
	}
}

func TestApply_OngoingFlagValues(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		ongoing bool
		wantErr bool
	}{
		{"string false", `"false"`, false, false},
		{"bool false", `false`, false, false},
		{"zero", `"0"`, false, false},
		{"empty", `""`, false, false},
		{"string true", `"true"`, true, false},
		{"bool true", `true`, true, false},
		{"garbage", `"no"`, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "[[work]]\ncompany = \"X\"\nend_date = \"2024-01-01\"\ncurrent = " + tt.value + "\n"
			a, err := Parse([]byte(doc))
			if err != nil {
				t.Fatal(err)
			}
			s := newSession()
			err = a.Apply(s)
			if tt.wantErr {
				if !errors.Is(err, form.ErrInvalidFlag) {
					t.Fatalf("err = %v, want ErrInvalidFlag", err)
				}
			} else if err != nil {
				t.Fatalf("Apply: %v", err)
			}

			e, _ := s.Section(form.CategoryWork).Entry(0)
			if e.Ongoing() != tt.ongoing {
				t.Errorf("ongoing = %v, want %v", e.Ongoing(), tt.ongoing)
			}
			wantEnd := "2024-01-01"
			if tt.ongoing {
				wantEnd = ""
			}
			if got := e.Value("end_date"); got != wantEnd {
				t.Errorf("end_date = %q, want %q", got, wantEnd)
			}
		})
	}
}

func TestApply_UnknownFieldsReported(t *testing.T) {
	a, err := Parse([]byte(`
[personal]
full_name = "Budi"
nickname = "Bud"

[[education]]
level = "master"
ongoing = true
`))
	if err != nil {
		t.Fatal(err)
	}
	s := newSession()
	err = a.Apply(s)
	if !errors.Is(err, form.ErrUnknownField) {
		t.Errorf("err = %v, want ErrUnknownField", err)
	}
	if !errors.Is(err, form.ErrNoOngoing) {
		t.Errorf("err = %v, want ErrNoOngoing", err)
	}
	// Known fields still land.
	if got := value(t, s, form.CategoryPersonal, 0, "full_name"); got != "Budi" {
		t.Errorf("full_name = %q", got)
	}
	if got := value(t, s, form.CategoryEducation, 0, "level"); got != "master" {
		t.Errorf("level = %q", got)
	}
}

func TestApply_Empty(t *testing.T) {
	a, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	s := newSession()
	if err := a.Apply(s); err != nil {
		t.Errorf("Apply(empty): %v", err)
	}
	if _, err := s.Submit(); !errors.Is(err, form.ErrFormIncomplete) {
		t.Errorf("Submit err = %v, want ErrFormIncomplete", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("[[education]\nlevel = ")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/answers.toml"); err == nil {
		t.Error("expected error for missing file")
	}
}
