package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formval"
	"github.com/dmitrymomot/formval/rules"
)

func TestChecked(t *testing.T) {
	t.Run("passes a checked control", func(t *testing.T) {
		st := formval.FieldState{Checked: true}
		assert.True(t, rules.Checked().Predicate(st))
	})

	t.Run("fails an unchecked control", func(t *testing.T) {
		assert.False(t, rules.Checked().Predicate(formval.FieldState{}))
	})
}

func TestMinSelected(t *testing.T) {
	t.Run("passes with enough selections", func(t *testing.T) {
		st := formval.FieldState{Selected: []string{"main-conference"}}
		assert.True(t, rules.MinSelected(1).Predicate(st))
	})

	t.Run("fails with too few selections", func(t *testing.T) {
		assert.False(t, rules.MinSelected(1).Predicate(formval.FieldState{}))
		st := formval.FieldState{Selected: []string{"main-conference"}}
		assert.False(t, rules.MinSelected(2).Predicate(st))
	})
}

func TestOneOf(t *testing.T) {
	t.Run("passes allowed value", func(t *testing.T) {
		r := rules.OneOf("credit-card", "paypal", "bitcoin")
		assert.True(t, check(r, "paypal"))
	})

	t.Run("fails other values", func(t *testing.T) {
		r := rules.OneOf("credit-card", "paypal", "bitcoin")
		assert.False(t, check(r, "cash"))
		assert.False(t, check(r, ""))
	})
}
