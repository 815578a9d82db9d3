package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formval"
)

// Required validates that the field's value is not empty after trimming
// whitespace.
func Required() formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			return strings.TrimSpace(st.Value) != ""
		},
		Message:           "field is required",
		TranslationKey:    "validation.required",
		TranslationValues: map[string]any{},
	}
}

// MinLen validates that the field's value is at least min characters long.
func MinLen(min int) formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			return len(st.Value) >= min
		},
		Message:        fmt.Sprintf("must be at least %d characters long", min),
		TranslationKey: "validation.min_length",
		TranslationValues: map[string]any{
			"min": min,
		},
	}
}

// MaxLen validates that the field's value is at most max characters long.
func MaxLen(max int) formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			return len(st.Value) <= max
		},
		Message:        fmt.Sprintf("must be at most %d characters long", max),
		TranslationKey: "validation.max_length",
		TranslationValues: map[string]any{
			"max": max,
		},
	}
}

// Matches validates the field's value against a regular expression given as
// source text. The pattern is compiled eagerly with MustCompile: an invalid
// pattern is a bug in the rule set and fails loudly at setup time. Use Regexp
// when the pattern comes from external data and compile errors must be
// handled.
func Matches(pattern string) formval.Rule {
	return Regexp(regexp.MustCompile(pattern))
}

// Regexp validates the field's value against a compiled regular expression.
func Regexp(re *regexp.Regexp) formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			return re.MatchString(st.Value)
		},
		Message:        "has an invalid format",
		TranslationKey: "validation.pattern",
		TranslationValues: map[string]any{
			"pattern": re.String(),
		},
	}
}
