package expenses

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is matched by every ValidationError, use
	// errors.Is(err, ErrValidation) to check for validation failures.
	ErrValidation = errors.New("the submitted data is invalid")

	ErrMonthOutOfRange = errors.New("the month must be between 1 and 12")
)

// FieldError describes one violated constraint of one field.
type FieldError struct {
	Field   string `json:"field" example:"amount"`
	Message string `json:"message" example:"must be greater than zero"`
}

// ValidationError reports every violated constraint of a payload, not
// just the first one.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field.Field, field.Message))
	}

	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(messages, ", "))
}

// Is makes errors.Is(err, ErrValidation) match ValidationError values.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidation
}
