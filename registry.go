package formval

// Registry owns the mapping from field identifier to its ordered rule list.
// Entries are meant to be registered once during setup and left untouched
// afterwards; the engine never mutates registry contents during evaluation.
//
// Registering a field identifier twice replaces the earlier rule list while
// keeping the field's original position in registration order. Silent
// shadowing of duplicate registrations is deliberately not supported because
// lookup would then disagree with full-form evaluation.
type Registry struct {
	validators []Validator
	index      map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register binds fieldID to an ordered rule list. An empty rule list is
// valid: the field is registered and always evaluates as valid. No field
// existence check happens here; resolving live state is deferred to
// evaluation time.
func (rg *Registry) Register(fieldID string, rules ...Rule) {
	if i, ok := rg.index[fieldID]; ok {
		rg.validators[i].Rules = rules
		return
	}
	rg.index[fieldID] = len(rg.validators)
	rg.validators = append(rg.validators, Validator{FieldID: fieldID, Rules: rules})
}

// Lookup returns the validator registered for fieldID. The second return
// value is false when no validator is registered, which callers must
// distinguish from a registered field with zero rules.
func (rg *Registry) Lookup(fieldID string) (Validator, bool) {
	i, ok := rg.index[fieldID]
	if !ok {
		return Validator{}, false
	}
	return rg.validators[i], true
}

// Validators returns all validators in registration order. The returned slice
// is a copy; the caller cannot alter registry contents through it.
func (rg *Registry) Validators() []Validator {
	out := make([]Validator, len(rg.validators))
	copy(out, rg.validators)
	return out
}

// Fields returns the registered field identifiers in registration order.
func (rg *Registry) Fields() []string {
	out := make([]string, len(rg.validators))
	for i, v := range rg.validators {
		out[i] = v.FieldID
	}
	return out
}

// Len returns the number of registered fields.
func (rg *Registry) Len() int {
	return len(rg.validators)
}
