package domain

import (
	"errors"
	"fmt"
)

var ErrProductNotFound = errors.New("product not found")

// FieldError describes a single invalid input field and the rule it violated.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid input: field %q violates rule %q", e.Field, e.Rule)
}
