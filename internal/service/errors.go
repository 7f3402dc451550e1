package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no record exists for a given identifier or query
var ErrNotFound = errors.New("record not found")

// FieldViolation describes a single violated DTO constraint
type FieldViolation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// ValidationError reports a DTO that failed its declared constraints
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Constraint))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
