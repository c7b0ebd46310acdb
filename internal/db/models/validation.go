package models

import (
	"github.com/go-playground/validator/v10"
)

const (
	// DescriptionMinLength is the minimum number of characters of a power description.
	DescriptionMinLength = 20
)

// ValidationError reports a field value rejected before persistence.
// Message is safe to return to API clients.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

//nolint:revive,stylecheck // messages are returned to API clients verbatim
var (
	// ErrDescriptionTooShort is returned for power descriptions shorter than DescriptionMinLength.
	ErrDescriptionTooShort = &ValidationError{
		Field:   "description",
		Message: "Description must be at least 20 characters long",
	}

	// ErrInvalidStrength is returned for hero power strengths other than Strong, Weak or Average.
	ErrInvalidStrength = &ValidationError{
		Field:   "strength",
		Message: "Strength must be one of: 'Strong', 'Weak', 'Average'",
	}
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals

func required(field, value string) error {
	if validate.Var(value, "required") != nil {
		return &ValidationError{Field: field, Message: field + " must not be empty"}
	}

	return nil
}

func requiredID(field string, id uint) error {
	if id == 0 {
		return &ValidationError{Field: field, Message: field + " is required"}
	}

	return nil
}

// ValidateDescription checks a power description, counted in characters, not bytes.
func ValidateDescription(description string) error {
	if validate.Var(description, "min=20") != nil {
		return ErrDescriptionTooShort
	}

	return nil
}

// ValidateStrength checks a hero power strength. The comparison is case-sensitive.
func ValidateStrength(strength string) error {
	if validate.Var(strength, "oneof=Strong Weak Average") != nil {
		return ErrInvalidStrength
	}

	return nil
}
