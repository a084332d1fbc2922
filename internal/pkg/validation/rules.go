package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yigit/idscan/internal/pkg/apperrors"
)

// Field limits. The request DTOs carry the same values in their validate tags.
const (
	NameMaxLength          = 200
	StudentNumberMaxLength = 50
	ProgramMaxLength       = 100
	OCRTextMaxLength       = 20000
)

// StudentNumberPattern is the seven-digit number printed on cards. Manual
// entries are not held to it.
var StudentNumberPattern = regexp.MustCompile(`^\d{7}$`)

// StringValidation checks one string field
type StringValidation struct {
	Field    string
	Value    string
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates an optional string validation for field
func NewStringValidation(field, value string) *StringValidation {
	return &StringValidation{
		Field: field,
		Value: strings.TrimSpace(value),
	}
}

// WithMaxLength sets the maximum length in characters
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate returns a validation error describing the first failed rule
func (v *StringValidation) Validate() error {
	if v.Value == "" {
		if v.Required {
			return apperrors.NewValidationError(v.Field + " is required")
		}
		return nil
	}

	if v.MaxLen > 0 && utf8.RuneCountInString(v.Value) > v.MaxLen {
		return apperrors.NewValidationError(fmt.Sprintf("%s must be at most %d", v.Field, v.MaxLen))
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return apperrors.NewValidationError(v.Field + " has an invalid format")
	}

	return nil
}

// StudentFields applies the length limits to a manual entry or scan.
// Presence is left to the list store, which owns that message.
func StudentFields(name, studentNumber, program string) error {
	rules := []*StringValidation{
		NewStringValidation("Name", name).WithMaxLength(NameMaxLength),
		NewStringValidation("StudentNumber", studentNumber).WithMaxLength(StudentNumberMaxLength),
		NewStringValidation("Program", program).WithMaxLength(ProgramMaxLength),
	}
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return err
		}
	}
	return nil
}
