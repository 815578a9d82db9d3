// Package schema loads declarative YAML form definitions and builds formval
// registries from them. Rule sets are data, not engine logic: a form document
// names its fields, each field's ordered rule list, per-rule messages, and
// optional gating on another field's live value.
//
//	name: registration
//	fields:
//	  - id: name
//	    realtime: true
//	    rules:
//	      - type: required
//	        message: Name is required
//	      - type: min_length
//	        min: 3
//	        message: Name must be at least 3 characters long
//	  - id: cc-num
//	    rules:
//	      - type: credit_card
//	        when: {field: payment, equals: credit-card}
//
// Build binds when-clauses to a live StateProvider, so gating follows the
// form as the user edits it. Unknown rule types, invalid patterns, and
// duplicate field ids are authoring errors and fail the build.
package schema
