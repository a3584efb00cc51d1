// Package form is the state and validation engine behind the dossier wizard:
// field descriptors and their validator, repeatable sections with stable entry
// handles, the step controller that gates forward motion, and the summary
// assembled on submission. Rendering is delegated to a Renderer.
package form

import "fmt"

// Kind identifies how a field's raw value is entered and validated.
type Kind int

const (
	KindText Kind = iota
	KindTextarea
	KindNumber
	KindDate
	KindEmail
	KindTel
	KindNIK
	KindCheckbox
	KindRadioGroup
	KindSelect
)

// String returns the lowercase kind name used in catalogs and CLI output.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTextarea:
		return "textarea"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindEmail:
		return "email"
	case KindTel:
		return "tel"
	case KindNIK:
		return "nik"
	case KindCheckbox:
		return "checkbox"
	case KindRadioGroup:
		return "radio-group"
	case KindSelect:
		return "select"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Choice reports whether the field takes one of a fixed set of Options.
func (k Kind) Choice() bool {
	return k == KindRadioGroup || k == KindSelect
}

// FieldDescriptor describes one input of a step.
type FieldDescriptor struct {
	// Name is the machine name, unique within its step (e.g. "national-id").
	Name string

	// Label is the human-readable caption.
	Label string

	Kind     Kind
	Required bool

	// Options lists the allowed values of radio-group and select fields.
	Options []string

	// Min, Max and Step are range hints for number and date fields. They are
	// shown by renderers and never enforced by Validate.
	Min  string
	Max  string
	Step string

	// SoftLimit is a display-only character budget for free text.
	SoftLimit int

	Placeholder string

	// EndDate marks the field cleared and locked while its entry is ongoing.
	EndDate bool

	// OngoingFlag marks the checkbox that toggles the entry's ongoing state.
	OngoingFlag bool
}

// ValidationResult is the outcome of validating one value.
type ValidationResult struct {
	Valid   bool
	Message string
}

// FieldState is the per-entry state of one field.
type FieldState struct {
	Value string

	// Validated is set once the field has been checked at least once.
	Validated bool

	// Invalid is true while the last check failed. An invalid field is
	// re-validated on every input change until it passes.
	Invalid bool
	Message string

	// Locked fields are disabled for editing (an ongoing entry's end date).
	Locked bool
}

// FieldRef is a structural handle to one field of one entry. It stays valid
// across renumbering because it names the entry by ID, not position.
type FieldRef struct {
	Category Category
	EntryID  EntryID
	Name     string
}

func (r FieldRef) String() string {
	return fmt.Sprintf("%s/%s/%s", r.Category.Key(), r.EntryID, r.Name)
}
