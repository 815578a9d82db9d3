package rules

import (
	"strings"

	"github.com/dmitrymomot/formval"
)

// CreditCardNumber validates that the value is a 13 to 16 digit card number.
// Spaces and dashes are stripped before checking. The digit-count check is
// authoritative for card fields; combine with Luhn for checksum validation.
func CreditCardNumber() formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			cleaned := stripSeparators(st.Value)
			return digitsRegex.MatchString(cleaned) && len(cleaned) >= 13 && len(cleaned) <= 16
		},
		Message:           "must be between 13 and 16 digits",
		TranslationKey:    "validation.credit_card",
		TranslationValues: map[string]any{},
	}
}

// Luhn validates the value with the Luhn checksum used by payment card
// numbers. Spaces and dashes are stripped before checking.
func Luhn() formval.Rule {
	return formval.Rule{
		Predicate: func(st formval.FieldState) bool {
			cleaned := stripSeparators(st.Value)
			if !digitsRegex.MatchString(cleaned) {
				return false
			}

			sum := 0
			double := false
			for i := len(cleaned) - 1; i >= 0; i-- {
				digit := int(cleaned[i] - '0')
				if double {
					digit *= 2
					if digit > 9 {
						digit = digit/10 + digit%10
					}
				}
				sum += digit
				double = !double
			}
			return sum%10 == 0
		},
		Message:           "is not a valid card number",
		TranslationKey:    "validation.luhn",
		TranslationValues: map[string]any{},
	}
}

func stripSeparators(value string) string {
	return strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")
}
