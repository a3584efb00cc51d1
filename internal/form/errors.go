package form

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStepIncomplete  = errors.New("required fields in this step are not valid")
	ErrFormIncomplete  = errors.New("required fields across the form are not valid")
	ErrStepOutOfRange  = errors.New("step out of range")
	ErrEntryOutOfRange = errors.New("entry out of range")
	ErrLastEntry       = errors.New("at least one entry must remain")
	ErrNotRepeatable   = errors.New("section is not repeatable")
	ErrNoOngoing       = errors.New("section has no ongoing flag")
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownEntry    = errors.New("unknown entry")
	ErrFieldLocked     = errors.New("field is locked")
	ErrInvalidFlag     = errors.New("invalid checkbox value")
)

// StepError reports the required fields that blocked Advance.
type StepError struct {
	Step   int
	Fields []FieldRef
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %d required field(s) invalid", e.Step, len(e.Fields))
}

func (e *StepError) Unwrap() error { return ErrStepIncomplete }

// SubmitError reports the steps that blocked Submit.
type SubmitError struct {
	Steps  []int
	Fields []FieldRef
}

func (e *SubmitError) Error() string {
	steps := make([]string, len(e.Steps))
	for i, s := range e.Steps {
		steps[i] = fmt.Sprint(s)
	}
	return fmt.Sprintf("%v (incomplete steps: %s)", ErrFormIncomplete, strings.Join(steps, ", "))
}

func (e *SubmitError) Unwrap() error { return ErrFormIncomplete }
