// Package answers loads prefilled form values from a TOML file and applies
// them to a form session. It backs `dossier check` and `dossier fill --answers`.
package answers

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/druarnfield/dossier/internal/form"
	toml "github.com/pelletier/go-toml/v2"
)

// OngoingKey marks an organization or work record as ongoing.
const OngoingKey = "ongoing"

// Record is one entry's values keyed by field name.
type Record map[string]any

// Answers mirrors the answers file: one personal table and an array of
// tables per repeatable section.
type Answers struct {
	Personal     Record   `toml:"personal"`
	Education    []Record `toml:"education"`
	Organization []Record `toml:"organization"`
	Work         []Record `toml:"work"`
}

// LoadFromFile reads and decodes an answers file.
func LoadFromFile(path string) (*Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	return Parse(data)
}

// Parse decodes answers from TOML.
func Parse(data []byte) (*Answers, error) {
	var a Answers
	if err := toml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing answers: %w", err)
	}
	return &a, nil
}

// Records returns the records of a category.
func (a *Answers) Records(cat form.Category) []Record {
	switch cat {
	case form.CategoryPersonal:
		if a.Personal == nil {
			return nil
		}
		return []Record{a.Personal}
	case form.CategoryEducation:
		return a.Education
	case form.CategoryOrganization:
		return a.Organization
	case form.CategoryWork:
		return a.Work
	default:
		return nil
	}
}

// Apply writes the answers into s, adding entries to repeatable sections as
// needed. Values land through Session.Input, so nothing is validated until the
// caller advances or submits. Every unknown field is reported; known fields
// are applied regardless.
func (a *Answers) Apply(s *form.Session) error {
	var errs []error
	for _, sec := range s.Sections() {
		cat := sec.Category()
		for i, rec := range a.Records(cat) {
			if i >= sec.Len() {
				if _, err := s.AddEntry(cat); err != nil {
					errs = append(errs, err)
					break
				}
			}
			if err := applyRecord(s, sec.Def(), i, rec); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// applyRecord sets plain values first and ongoing flags last, so an ongoing
// record ends with its end date cleared and locked whatever the key order.
func applyRecord(s *form.Session, def form.StepDef, index int, rec Record) error {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var (
		errs    []error
		ongoing *bool
	)
	for _, key := range keys {
		value := stringify(rec[key])
		if f, ok := def.Field(key); key == OngoingKey || (ok && f.OngoingFlag) {
			on, err := form.ParseCheckbox(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s #%d %s: %w", def.Category.Key(), index+1, key, err))
				continue
			}
			ongoing = &on
			continue
		}
		ref, err := s.Ref(def.Category, index, key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := s.Input(ref, value); err != nil {
			errs = append(errs, err)
		}
	}

	if ongoing != nil {
		if err := s.ToggleOngoing(def.Category, index, *ongoing); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// stringify renders a decoded TOML value the way a user would have typed it.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return ""
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
