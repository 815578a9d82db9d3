package formval

import "net/url"

// FieldState is the value-bearing snapshot of one form field at evaluation
// time. The engine treats it as opaque input to predicates; which parts are
// meaningful depends on the control the field represents (text input, single
// checkbox, checkbox group, select).
type FieldState struct {
	// Value is the field's current text, or the first submitted value for
	// multi-value fields.
	Value string

	// Checked reports whether the control is checked (single checkbox) or
	// has at least one submitted value.
	Checked bool

	// Selected holds every submitted value for multi-value fields such as
	// checkbox groups and multi-selects.
	Selected []string
}

// StateProvider resolves a field identifier to its current state. Resolution
// happens on every evaluation pass, never at registration time, so results
// always reflect live values. The second return value distinguishes "field
// absent from the form" from "field present but empty".
type StateProvider interface {
	FieldState(fieldID string) (FieldState, bool)
}

// MapProvider is a StateProvider backed by a plain map, for headless use and
// tests. Mutating the map between passes models user input.
type MapProvider map[string]FieldState

// FieldState implements StateProvider.
func (p MapProvider) FieldState(fieldID string) (FieldState, bool) {
	st, ok := p[fieldID]
	return st, ok
}

// ValuesProvider adapts url.Values (typically http.Request.PostForm) to the
// StateProvider interface. The first value becomes Value, all values become
// Selected, and presence of any value marks the field Checked.
type ValuesProvider url.Values

// NewValuesProvider wraps already-parsed form values.
func NewValuesProvider(values url.Values) ValuesProvider {
	return ValuesProvider(values)
}

// FieldState implements StateProvider.
func (p ValuesProvider) FieldState(fieldID string) (FieldState, bool) {
	vs, ok := p[fieldID]
	if !ok {
		return FieldState{}, false
	}

	st := FieldState{Selected: vs}
	if len(vs) > 0 {
		st.Value = vs[0]
		st.Checked = true
	}
	return st, true
}
