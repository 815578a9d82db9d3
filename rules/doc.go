// Package rules provides constructors for common form validation rules.
//
// Every constructor returns a field-agnostic formval.Rule carrying a default
// failure message and translation metadata. Rules are customised with the
// combinators on formval.Rule:
//
//	reg.Register("cc-num",
//		rules.Required().WithMessage("Credit card number is required"),
//		rules.CreditCardNumber().When(rules.FieldEquals(provider, "payment", "credit-card")),
//	)
//
// Constructors group by concern: string length and patterns (string.go),
// value formats (format.go), payment checks (payment.go), and choice controls
// (choice.go). Conditions that gate rules on other fields' live state live in
// condition.go.
package rules
