package schema

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Form is a declarative form definition: the fields to validate and their
// ordered rule lists.
type Form struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Field describes one form control. Realtime marks fields the integration
// layer should validate on input/blur rather than only on submission.
type Field struct {
	ID       string    `yaml:"id"`
	Label    string    `yaml:"label"`
	Realtime bool      `yaml:"realtime"`
	Rules    []RuleDef `yaml:"rules"`
}

// RuleDef names one rule by type with its parameters. Which parameters apply
// depends on the type; unused ones stay at their zero value. Message, when
// set, overrides the rule's default failure message.
type RuleDef struct {
	Type    string   `yaml:"type"`
	Message string   `yaml:"message"`
	Min     int      `yaml:"min"`
	Max     int      `yaml:"max"`
	Pattern string   `yaml:"pattern"`
	Values  []string `yaml:"values"`
	When    *WhenDef `yaml:"when"`
}

// WhenDef gates a rule on another field's live value.
type WhenDef struct {
	Field  string `yaml:"field"`
	Equals string `yaml:"equals"`
}

// Parse reads a YAML form document.
func Parse(r io.Reader) (*Form, error) {
	var form Form
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&form); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if err := form.validate(); err != nil {
		return nil, err
	}
	return &form, nil
}

// ParseFile reads a YAML form document from disk.
func ParseFile(path string) (*Form, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	defer f.Close()
	return Parse(f)
}

// validate rejects structural authoring errors before any build attempt.
func (f *Form) validate() error {
	seen := make(map[string]bool, len(f.Fields))
	for i, field := range f.Fields {
		if field.ID == "" {
			return fmt.Errorf("%w: field at index %d", ErrMissingFieldID, i)
		}
		if seen[field.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateField, field.ID)
		}
		seen[field.ID] = true

		for _, def := range field.Rules {
			if def.When != nil && def.When.Field == "" {
				return fmt.Errorf("%w: field %q rule %q has a when clause without a field", ErrInvalidWhen, field.ID, def.Type)
			}
		}
	}
	return nil
}

// RealtimeFields returns the ids of fields marked for input/blur validation,
// in document order.
func (f *Form) RealtimeFields() []string {
	var out []string
	for _, field := range f.Fields {
		if field.Realtime {
			out = append(out, field.ID)
		}
	}
	return out
}

// FieldByID returns the field definition for id.
func (f *Form) FieldByID(id string) (Field, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}
