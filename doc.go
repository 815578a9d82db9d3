// Package formval provides a declarative, synchronous form validation engine.
//
// Callers attach an ordered list of Rule values to each form field through a
// Registry, then evaluate them with an Engine either for the whole form (on
// submission) or for a single field (on input/blur). Evaluation produces a
// structured, ordered error list and per-field pass/fail results that drive
// field-level feedback through the feedback.Projector boundary.
//
// # Architecture
//
// Three core pieces live in this package:
//   - Rule: predicate + optional condition gate + failure message
//   - Registry: ordered mapping from field identifier to its rule list
//   - Engine: evaluates rule lists against live field state
//
// Field state is resolved at evaluation time through a StateProvider, never
// cached at registration time, so every pass reflects the current values. The
// engine never interprets field semantics itself; predicates receive an opaque
// FieldState and decide on their own.
//
// Rule constructors for common checks live in the rules subpackage, YAML form
// definitions in schema, message translation in i18n, and presentation-side
// collaborators in feedback.
//
// # Evaluation semantics
//
// Rules run in list order. A rule whose condition returns false is skipped
// entirely (neither pass nor fail). The first failing rule wins: its message
// becomes the field's single error and later rules for that field are never
// evaluated. A field whose every rule passed or was skipped is valid. Results
// are rebuilt from scratch on every pass; nothing accumulates between passes.
//
// # Usage
//
//	reg := formval.NewRegistry()
//	reg.Register("name",
//		rules.Required().WithMessage("Name is required"),
//		rules.MinLen(3).WithMessage("Name must be at least 3 characters long"),
//	)
//
//	engine := formval.New(reg, provider)
//	res := engine.ValidateForm()
//	if !res.Valid() {
//		// res.Errors holds one FieldError per invalid field, in
//		// registration order.
//	}
//
// All evaluation is synchronous and single-threaded per pass; predicates and
// conditions must return immediately. A panicking predicate is an authoring
// bug in the rule set and is deliberately not recovered.
package formval
