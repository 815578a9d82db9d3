package schema

import "errors"

// Form document authoring errors
var (
	ErrInvalidDocument = errors.New("invalid form document")
	ErrMissingFieldID  = errors.New("field is missing an id")
	ErrDuplicateField  = errors.New("duplicate field id")
	ErrUnknownRuleType = errors.New("unknown rule type")
	ErrInvalidPattern  = errors.New("invalid pattern")
	ErrInvalidWhen     = errors.New("invalid when clause")
)
