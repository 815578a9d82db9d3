package rules

import "github.com/dmitrymomot/formval"

// FieldEquals returns a condition that holds while another field's live value
// equals want. The provider is consulted on every evaluation pass, so the
// gate follows the form as the user edits it. Typical use is skipping payment
// detail rules unless the matching payment method is chosen.
func FieldEquals(p formval.StateProvider, fieldID, want string) formval.Condition {
	return func() bool {
		st, ok := p.FieldState(fieldID)
		return ok && st.Value == want
	}
}

// FieldNotEmpty returns a condition that holds while another field has a
// non-empty value.
func FieldNotEmpty(p formval.StateProvider, fieldID string) formval.Condition {
	return func() bool {
		st, ok := p.FieldState(fieldID)
		return ok && st.Value != ""
	}
}
