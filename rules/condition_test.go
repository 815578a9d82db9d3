package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formval"
	"github.com/dmitrymomot/formval/rules"
)

func TestFieldEquals(t *testing.T) {
	t.Run("holds while the field has the wanted value", func(t *testing.T) {
		p := formval.MapProvider{"payment": {Value: "credit-card"}}
		cond := rules.FieldEquals(p, "payment", "credit-card")
		assert.True(t, cond())
	})

	t.Run("does not hold for other values or missing fields", func(t *testing.T) {
		p := formval.MapProvider{"payment": {Value: "paypal"}}
		assert.False(t, rules.FieldEquals(p, "payment", "credit-card")())
		assert.False(t, rules.FieldEquals(p, "missing", "anything")())
	})

	t.Run("reads live state on every call", func(t *testing.T) {
		p := formval.MapProvider{"payment": {Value: "paypal"}}
		cond := rules.FieldEquals(p, "payment", "credit-card")
		assert.False(t, cond())

		p["payment"] = formval.FieldState{Value: "credit-card"}
		assert.True(t, cond())
	})
}

func TestFieldNotEmpty(t *testing.T) {
	t.Run("holds for a non-empty field", func(t *testing.T) {
		p := formval.MapProvider{"name": {Value: "Jane"}}
		assert.True(t, rules.FieldNotEmpty(p, "name")())
	})

	t.Run("does not hold for empty or missing fields", func(t *testing.T) {
		p := formval.MapProvider{"name": {Value: ""}}
		assert.False(t, rules.FieldNotEmpty(p, "name")())
		assert.False(t, rules.FieldNotEmpty(p, "missing")())
	})
}
