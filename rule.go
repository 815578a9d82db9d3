package formval

// Predicate reports whether a field's current state passes a single check.
// Predicates must be pure and synchronous.
type Predicate func(FieldState) bool

// Condition gates a rule without looking at the field itself. When a rule's
// condition returns false the rule is skipped entirely for that pass: the
// predicate is never invoked and the rule contributes neither a pass nor a
// failure.
type Condition func() bool

// Rule is one validation check for one field. The zero Condition (nil) means
// the rule always applies. Message is used only when the predicate fails;
// TranslationKey and TranslationValues carry the machine-readable counterpart
// for the i18n package.
type Rule struct {
	Predicate         Predicate
	Condition         Condition
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// When returns a copy of the rule gated by cond, replacing any condition set
// previously.
func (r Rule) When(cond Condition) Rule {
	r.Condition = cond
	return r
}

// WithMessage returns a copy of the rule with a custom failure message. The
// translation key and values are kept so translated output stays available.
func (r Rule) WithMessage(msg string) Rule {
	r.Message = msg
	return r
}

// Validator binds a field identifier to its ordered rule list. Order is
// significant: the first failing rule (after condition gating) wins and later
// rules are never evaluated in that pass.
type Validator struct {
	FieldID string
	Rules   []Rule
}
