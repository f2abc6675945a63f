package model

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// ValidationError collects per-field problems found while checking an insert
// record. It is returned before anything touches the database or the network.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	names := make([]string, 0, len(v.Fields))
	for name := range v.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(v.Fields[name], ", ")))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *ValidationError) Add(field, format string, args ...interface{}) {
	v.Fields[field] = append(v.Fields[field], fmt.Sprintf(format, args...))
}

func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// Err returns nil when nothing was recorded so callers can `return v.Err()`.
func (v *ValidationError) Err() error {
	if !v.HasErrors() {
		return nil
	}

	return v
}

func (v *ValidationError) minLength(field, value string, min int, message string) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < min {
		v.Add(field, message)
	}
}

func (v *ValidationError) required(field string, n NullInt) {
	if !n.Valid {
		v.Add(field, "is required")
	}
}

func (v *ValidationError) oneOf(field, value string, allowed []string) {
	if value == "" {
		return
	}

	for _, a := range allowed {
		if value == a {
			return
		}
	}

	v.Add(field, "must be one of %s", strings.Join(allowed, ", "))
}
