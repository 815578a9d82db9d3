package formval

import (
	"log/slog"
	"maps"
)

// FieldResult is the outcome of evaluating one field's rule list. Err is nil
// when the field is valid (every rule passed or was condition-skipped).
type FieldResult struct {
	FieldID string
	Valid   bool
	Err     *FieldError
}

// Result is the outcome of a full-form pass. Fields holds one entry per
// registered field in registration order; Errors holds the first-failing
// message of each invalid field, in the same order.
type Result struct {
	Fields []FieldResult
	Errors ValidationErrors
}

// Valid reports whether the whole form passed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Engine evaluates registered rule lists against live field state. It holds
// no evaluation state of its own: every pass returns a fresh Result and the
// registry is never mutated, so re-evaluating a field fully supersedes any
// prior outcome.
type Engine struct {
	registry *Registry
	provider StateProvider
	log      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for non-fatal diagnostics such as
// unknown-field warnings. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New creates an engine bound to a registry and a state provider.
func New(registry *Registry, provider StateProvider, opts ...Option) *Engine {
	e := &Engine{
		registry: registry,
		provider: provider,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ValidateForm evaluates every registered field in registration order and
// returns the aggregate result. Intended for form submission: a non-empty
// error list means the submission must be suppressed.
func (e *Engine) ValidateForm() Result {
	res := Result{Fields: make([]FieldResult, 0, e.registry.Len())}
	for _, v := range e.registry.Validators() {
		fr := e.evaluate(v)
		res.Fields = append(res.Fields, fr)
		if fr.Err != nil {
			res.Errors = append(res.Errors, *fr.Err)
		}
	}
	return res
}

// ValidateField evaluates a single field in isolation, without touching any
// other field's outcome. Intended for real-time feedback on input/blur, so it
// is cheap enough to call once per keystroke. When no validator is registered
// for fieldID a warning is logged and ok is false; this is a non-fatal
// condition, not a failure.
func (e *Engine) ValidateField(fieldID string) (result FieldResult, ok bool) {
	v, found := e.registry.Lookup(fieldID)
	if !found {
		e.log.Warn("no validator registered for field", slog.String("field", fieldID))
		return FieldResult{}, false
	}
	return e.evaluate(v), true
}

// evaluate runs one field's rule list: condition-skipped rules count neither
// way, the first failing predicate wins, and a field whose every rule passed
// or was skipped is valid. A provider miss evaluates against the zero
// FieldState; the rule set decides what an absent field means.
func (e *Engine) evaluate(v Validator) FieldResult {
	state, _ := e.provider.FieldState(v.FieldID)

	for _, r := range v.Rules {
		if r.Condition != nil && !r.Condition() {
			continue
		}
		if r.Predicate(state) {
			continue
		}
		return FieldResult{
			FieldID: v.FieldID,
			Err: &FieldError{
				Field:             v.FieldID,
				Message:           r.Message,
				TranslationKey:    r.TranslationKey,
				TranslationValues: withField(r.TranslationValues, v.FieldID),
			},
		}
	}
	return FieldResult{FieldID: v.FieldID, Valid: true}
}

// withField copies the rule's translation values and injects the field
// identifier. Rules are field-agnostic until registered, so the field key is
// only known here; copying keeps the shared rule value untouched.
func withField(values map[string]any, fieldID string) map[string]any {
	out := make(map[string]any, len(values)+1)
	maps.Copy(out, values)
	out["field"] = fieldID
	return out
}
