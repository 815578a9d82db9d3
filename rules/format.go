package rules

import (
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formval"
)

var (
	digitsRegex = regexp.MustCompile(`^[0-9]+$`)
	zipRegex    = regexp.MustCompile(`^[0-9]{5}$`)
	cvvRegex    = regexp.MustCompile(`^[0-9]{3}$`)
)

// Email validates that the field's value is a well-formed email address.
// Parses with net/mail first, then applies the stricter checks typical web
// forms need (single local/domain split, dotted domain with no empty labels).
func Email() formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			value := st.Value
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 || parts[0] == "" {
				return false
			}

			domain := parts[1]
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Message:           "must be a valid email address",
		TranslationKey:    "validation.email",
		TranslationValues: map[string]any{},
	}
}

// OneAtSign validates that the value contains exactly one "@". Ordered before
// Email in a rule list it reports doubled at-signs with a dedicated message
// instead of the generic format failure.
func OneAtSign() formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			return strings.Count(st.Value, "@") == 1
		},
		Message:           "must contain exactly one @ symbol",
		TranslationKey:    "validation.one_at_sign",
		TranslationValues: map[string]any{},
	}
}

// Digits validates that the value consists of decimal digits only.
func Digits() formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			return digitsRegex.MatchString(st.Value)
		},
		Message:           "must contain only digits",
		TranslationKey:    "validation.digits",
		TranslationValues: map[string]any{},
	}
}

// DigitsBetween validates that the value is all digits and min to max digits
// long.
func DigitsBetween(min, max int) formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			return digitsRegex.MatchString(st.Value) && len(st.Value) >= min && len(st.Value) <= max
		},
		Message:        fmt.Sprintf("must be between %d and %d digits", min, max),
		TranslationKey: "validation.digits_between",
		TranslationValues: map[string]any{
			"min": min,
			"max": max,
		},
	}
}

// ZipCode validates a 5-digit US zip code.
func ZipCode() formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			return zipRegex.MatchString(st.Value)
		},
		Message:           "must be a 5-digit zip code",
		TranslationKey:    "validation.zip_code",
		TranslationValues: map[string]any{},
	}
}

// CVV validates a 3-digit card verification value.
func CVV() formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			return cvvRegex.MatchString(st.Value)
		},
		Message:           "must be a 3-digit number",
		TranslationKey:    "validation.cvv",
		TranslationValues: map[string]any{},
	}
}

// Numeric validates that the value parses as a number. Accepts anything
// strconv does, including signs, decimals, and scientific notation, so it
// admits values a digit-count rule then rejects. Pair it with Digits or
// DigitsBetween and treat those as authoritative; Numeric alone is advisory.
func Numeric() formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			_, err := strconv.ParseFloat(strings.TrimSpace(st.Value), 64)
			return err == nil
		},
		Message:           "must be a number",
		TranslationKey:    "validation.numeric",
		TranslationValues: map[string]any{},
	}
}
