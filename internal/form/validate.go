package form

import (
	"regexp"
	"slices"
	"strings"
)

// NationalIDField is the field name that carries the 16-digit identity number.
const NationalIDField = "national-id"

const (
	MsgRequired   = "This field is required"
	MsgEmail      = "Invalid email format"
	MsgTel        = "Phone number must be 10-15 digits"
	MsgNationalID = "National ID must be exactly 16 digits"
	MsgChoice     = "Select one of the options"
)

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	telPattern        = regexp.MustCompile(`^[0-9]{10,15}$`)
	nationalIDPattern = regexp.MustCompile(`^[0-9]{16}$`)
)

// Validate checks raw against d. Rules are applied in order and the first
// failing rule decides the message:
//
//  1. required and blank (whitespace only counts as blank)
//  2. email shape local@domain.tld
//  3. phone of 10 to 15 digits
//  4. national id of exactly 16 digits
//  5. required radio group with no option selected
//
// Rules 2-4 only look at non-empty values, so an optional field left empty is
// always valid.
func Validate(d FieldDescriptor, raw string) ValidationResult {
	if d.Required && strings.TrimSpace(raw) == "" {
		return invalid(MsgRequired)
	}
	if d.Kind == KindEmail && raw != "" && !emailPattern.MatchString(raw) {
		return invalid(MsgEmail)
	}
	if d.Kind == KindTel && raw != "" && !telPattern.MatchString(raw) {
		return invalid(MsgTel)
	}
	if (d.Name == NationalIDField || d.Kind == KindNIK) && raw != "" && !nationalIDPattern.MatchString(raw) {
		return invalid(MsgNationalID)
	}
	if d.Kind == KindRadioGroup && d.Required && !slices.Contains(d.Options, raw) {
		return invalid(MsgChoice)
	}
	return ValidationResult{Valid: true}
}

func invalid(msg string) ValidationResult {
	return ValidationResult{Valid: false, Message: msg}
}
