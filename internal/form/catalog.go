package form

import (
	"fmt"
	"strconv"
)

// Category identifies the section a step edits.
type Category int

const (
	CategoryPersonal     Category = iota // Single record of personal data
	CategoryEducation                    // Education history
	CategoryOrganization                 // Organizational history
	CategoryWork                         // Work history
)

// String returns the display name used in headings and entry labels.
func (c Category) String() string {
	switch c {
	case CategoryPersonal:
		return "Personal Data"
	case CategoryEducation:
		return "Education"
	case CategoryOrganization:
		return "Organization"
	case CategoryWork:
		return "Work Experience"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Key returns the machine name used in answers files and config overrides.
func (c Category) Key() string {
	switch c {
	case CategoryPersonal:
		return "personal"
	case CategoryEducation:
		return "education"
	case CategoryOrganization:
		return "organization"
	case CategoryWork:
		return "work"
	default:
		return strconv.Itoa(int(c))
	}
}

// ParseCategory is the inverse of Category.Key.
func ParseCategory(key string) (Category, bool) {
	for _, c := range []Category{CategoryPersonal, CategoryEducation, CategoryOrganization, CategoryWork} {
		if c.Key() == key {
			return c, true
		}
	}
	return 0, false
}

// StepDef declares one wizard step: the section it edits and its fields.
type StepDef struct {
	Category   Category
	Title      string
	Repeatable bool
	Fields     []FieldDescriptor
}

// Field returns the descriptor with the given name.
func (d StepDef) Field(name string) (FieldDescriptor, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

// Catalog is the ordered list of steps a session walks through. Steps are
// numbered from 1 in the order they were added.
type Catalog struct {
	steps []StepDef
}

// NewCatalog creates a catalog from steps in order.
func NewCatalog(steps ...StepDef) *Catalog {
	return &Catalog{steps: steps}
}

// Len returns the number of steps.
func (c *Catalog) Len() int {
	return len(c.steps)
}

// Steps returns every step in order.
func (c *Catalog) Steps() []StepDef {
	out := make([]StepDef, len(c.steps))
	copy(out, c.steps)
	return out
}

// Step returns the 1-based step n.
func (c *Catalog) Step(n int) (StepDef, bool) {
	if n < 1 || n > len(c.steps) {
		return StepDef{}, false
	}
	return c.steps[n-1], true
}

// CatalogOptions tunes the default catalog.
type CatalogOptions struct {
	// SoftLimit is the character budget shown on free-text fields.
	SoftLimit int

	// YearMin and YearMax bound the year hints of education records.
	YearMin int
	YearMax int

	// Required overrides the required flag per "<category>.<field>" key,
	// e.g. "education.major" = true.
	Required map[string]bool
}

const (
	DefaultSoftLimit = 500
	DefaultYearMin   = 1950
	DefaultYearMax   = 2030
)

// EducationLevels are the options of the education level field.
var EducationLevels = []string{
	"primary", "junior-high", "senior-high", "diploma", "bachelor", "master", "doctorate",
}

// Genders are the options of the gender radio group.
var Genders = []string{"male", "female"}

// DefaultCatalog returns the four-step dossier: personal data, education,
// organization and work history.
func DefaultCatalog(opts CatalogOptions) *Catalog {
	if opts.SoftLimit <= 0 {
		opts.SoftLimit = DefaultSoftLimit
	}
	if opts.YearMin == 0 {
		opts.YearMin = DefaultYearMin
	}
	if opts.YearMax == 0 {
		opts.YearMax = DefaultYearMax
	}
	yearMin, yearMax := strconv.Itoa(opts.YearMin), strconv.Itoa(opts.YearMax)

	steps := []StepDef{
		{
			Category: CategoryPersonal,
			Title:    "Personal Data",
			Fields: []FieldDescriptor{
				{Name: "full_name", Label: "Full name", Kind: KindText, Required: true, Placeholder: "As on your ID card"},
				{Name: NationalIDField, Label: "National ID (NIK)", Kind: KindNIK, Required: true, Placeholder: "16 digits"},
				{Name: "birth_place", Label: "Place of birth", Kind: KindText},
				{Name: "birth_date", Label: "Date of birth", Kind: KindDate, Required: true, Placeholder: "YYYY-MM-DD"},
				{Name: "gender", Label: "Gender", Kind: KindRadioGroup, Required: true, Options: Genders},
				{Name: "email", Label: "Email", Kind: KindEmail, Required: true, Placeholder: "name@example.com"},
				{Name: "phone", Label: "Phone", Kind: KindTel, Required: true, Placeholder: "081234567890"},
				{Name: "address", Label: "Address", Kind: KindTextarea, SoftLimit: opts.SoftLimit},
			},
		},
		{
			Category:   CategoryEducation,
			Title:      "Education",
			Repeatable: true,
			Fields: []FieldDescriptor{
				{Name: "level", Label: "Level", Kind: KindSelect, Required: true, Options: EducationLevels},
				{Name: "institution", Label: "Institution", Kind: KindText, Required: true, Placeholder: "School or university"},
				{Name: "major", Label: "Major / study program", Kind: KindText},
				{Name: "start_year", Label: "Year started", Kind: KindNumber, Min: yearMin, Max: yearMax, Placeholder: "2020"},
				{Name: "graduation_year", Label: "Year graduated", Kind: KindNumber, Min: yearMin, Max: yearMax, Placeholder: "2024"},
				{Name: "gpa", Label: "Grade / GPA", Kind: KindNumber, Min: "0", Max: "4", Step: "0.01", Placeholder: "3.50"},
			},
		},
		{
			Category:   CategoryOrganization,
			Title:      "Organization",
			Repeatable: true,
			Fields: []FieldDescriptor{
				{Name: "name", Label: "Organization", Kind: KindText, Required: true},
				{Name: "role", Label: "Role", Kind: KindText},
				{Name: "start_date", Label: "Start date", Kind: KindDate, Placeholder: "YYYY-MM-DD"},
				{Name: "end_date", Label: "End date", Kind: KindDate, EndDate: true, Placeholder: "YYYY-MM-DD"},
				{Name: "active", Label: "Still active", Kind: KindCheckbox, OngoingFlag: true},
				{Name: "description", Label: "Description", Kind: KindTextarea, SoftLimit: opts.SoftLimit},
			},
		},
		{
			Category:   CategoryWork,
			Title:      "Work Experience",
			Repeatable: true,
			Fields: []FieldDescriptor{
				{Name: "company", Label: "Company / institution", Kind: KindText, Required: true},
				{Name: "position", Label: "Position", Kind: KindText, Required: true},
				{Name: "start_date", Label: "Start date", Kind: KindDate, Required: true, Placeholder: "YYYY-MM-DD"},
				{Name: "end_date", Label: "End date", Kind: KindDate, EndDate: true, Placeholder: "YYYY-MM-DD"},
				{Name: "current", Label: "Currently working here", Kind: KindCheckbox, OngoingFlag: true},
				{Name: "description", Label: "Duties", Kind: KindTextarea, SoftLimit: opts.SoftLimit},
			},
		},
	}

	for i := range steps {
		for j := range steps[i].Fields {
			f := &steps[i].Fields[j]
			if req, ok := opts.Required[steps[i].Category.Key()+"."+f.Name]; ok {
				f.Required = req
			}
		}
	}

	return NewCatalog(steps...)
}
