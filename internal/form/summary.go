package form

import (
	"fmt"
	"strings"
)

// Summary is the synopsis shown after a successful submission.
type Summary struct {
	Name  string
	Email string
	Phone string

	Education    int
	Organization int
	Work         int
}

// SummarySection is one heading of the textual report with its lines.
type SummarySection struct {
	Title string
	Lines []string
}

// Assemble builds a Summary from personal field values and per-section entry
// counts. Missing values come out empty.
func Assemble(values map[string]string, counts map[Category]int) Summary {
	return Summary{
		Name:         values["full_name"],
		Email:        values["email"],
		Phone:        values["phone"],
		Education:    counts[CategoryEducation],
		Organization: counts[CategoryOrganization],
		Work:         counts[CategoryWork],
	}
}

// Sections returns the report grouped by heading.
func (s Summary) Sections() []SummarySection {
	return []SummarySection{
		{
			Title: CategoryPersonal.String(),
			Lines: []string{
				"Name: " + s.Name,
				"Email: " + s.Email,
				"Phone: " + s.Phone,
			},
		},
		{
			Title: CategoryEducation.String(),
			Lines: []string{fmt.Sprintf("%d education records added", s.Education)},
		},
		{
			Title: CategoryOrganization.String(),
			Lines: []string{fmt.Sprintf("%d organization records added", s.Organization)},
		},
		{
			Title: CategoryWork.String(),
			Lines: []string{fmt.Sprintf("%d work experience records added", s.Work)},
		},
	}
}

func (s Summary) String() string {
	var b strings.Builder
	b.WriteString("Data summary\n")
	for _, sec := range s.Sections() {
		b.WriteString("\n")
		b.WriteString(sec.Title)
		b.WriteString("\n")
		for _, l := range sec.Lines {
			b.WriteString("  ")
			b.WriteString(l)
			b.WriteString("\n")
		}
	}
	return b.String()
}
