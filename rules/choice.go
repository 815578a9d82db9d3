package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/formval"
)

// Checked validates that the field has at least one submitted value, covering
// single checkboxes and checkbox groups alike.
func Checked() formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			return st.Checked
		},
		Message:           "must be selected",
		TranslationKey:    "validation.checked",
		TranslationValues: map[string]any{},
	}
}

// MinSelected validates that at least min values are selected in a
// multi-value field.
func MinSelected(min int) formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			return len(st.Selected) >= min
		},
		Message:        fmt.Sprintf("must have at least %d selected", min),
		TranslationKey: "validation.min_selected",
		TranslationValues: map[string]any{
			"min": min,
		},
	}
}

// OneOf validates that the value is one of the allowed options.
func OneOf(allowed ...string) formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			return slices.Contains(allowed, st.Value)
		},
		Message:        fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		TranslationKey: "validation.one_of",
		TranslationValues: map[string]any{
			"allowed": allowed,
		},
	}
}
