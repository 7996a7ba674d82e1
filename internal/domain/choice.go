package domain

import (
	"fmt"
	"slices"
	"strings"
)

// MultiChoiceConfig describes a multi-select field: the closed set of
// accepted values, whether at least one must be picked, and help text
// shown to authors.
type MultiChoiceConfig struct {
	Choices  []string
	Required bool
	Help     string
}

// Validate checks a selection against the config. Selection order is the
// author's and repeated values are accepted; only unknown values and a
// missing required selection are rejected.
func (c MultiChoiceConfig) Validate(selection []string) error {
	if c.Required && len(selection) == 0 {
		return NewValidationError("selection", "required")
	}

	var errs []FieldError
	for i, v := range selection {
		if !slices.Contains(c.Choices, v) {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("selection[%d]", i),
				Message: fmt.Sprintf("invalid choice %q", v),
			})
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// SearchableText flattens a selection into the strings fed to the search
// index: one element holding the space-joined selection.
func (c MultiChoiceConfig) SearchableText(selection []string) []string {
	return []string{strings.Join(selection, " ")}
}
