package schema

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/formval"
	"github.com/dmitrymomot/formval/rules"
)

// Build resolves the document into a formval.Registry bound to the given
// state provider. When-clauses become live conditions reading the provider on
// every evaluation pass. The registry is built in document order, so
// full-form error order follows the document.
func (f *Form) Build(p formval.StateProvider) (*formval.Registry, error) {
	reg := formval.NewRegistry()
	for _, field := range f.Fields {
		built := make([]formval.Rule, 0, len(field.Rules))
		for _, def := range field.Rules {
			rule, err := buildRule(def, p)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", field.ID, err)
			}
			built = append(built, rule)
		}
		reg.Register(field.ID, built...)
	}
	return reg, nil
}

// buildRule maps one rule definition to its constructor and applies the
// message override and when-clause.
func buildRule(def RuleDef, p formval.StateProvider) (formval.Rule, error) {
	var rule formval.Rule

	switch def.Type {
	case "required":
		rule = rules.Required()
	case "min_length":
		rule = rules.MinLen(def.Min)
	case "max_length":
		rule = rules.MaxLen(def.Max)
	case "pattern":
		re, err := regexp.Compile(def.Pattern)
		if err != nil {
			return formval.Rule{}, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, def.Pattern, err)
		}
		rule = rules.Regexp(re)
	case "email":
		rule = rules.Email()
	case "one_at_sign":
		rule = rules.OneAtSign()
	case "digits":
		rule = rules.Digits()
	case "digits_between":
		rule = rules.DigitsBetween(def.Min, def.Max)
	case "numeric":
		rule = rules.Numeric()
	case "credit_card":
		rule = rules.CreditCardNumber()
	case "luhn":
		rule = rules.Luhn()
	case "zip_code":
		rule = rules.ZipCode()
	case "cvv":
		rule = rules.CVV()
	case "checked":
		rule = rules.Checked()
	case "min_selected":
		rule = rules.MinSelected(def.Min)
	case "one_of":
		rule = rules.OneOf(def.Values...)
	default:
		return formval.Rule{}, fmt.Errorf("%w: %q", ErrUnknownRuleType, def.Type)
	}

	if def.Message != "" {
		rule = rule.WithMessage(def.Message)
	}
	if def.When != nil {
		rule = rule.When(rules.FieldEquals(p, def.When.Field, def.When.Equals))
	}
	return rule, nil
}
