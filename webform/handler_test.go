package webform_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/formval/i18n"
	"github.com/dmitrymomot/formval/schema"
	"github.com/dmitrymomot/formval/webform"
)

const formDoc = `
name: registration
fields:
  - id: name
    realtime: true
    rules:
      - type: required
        message: Name is required
      - type: min_length
        min: 3
        message: Name must be at least 3 characters long
  - id: email
    realtime: true
    rules:
      - type: required
        message: Email address is required
      - type: one_at_sign
        message: Email address must contain exactly one @ symbol
      - type: email
        message: Email address must be formatted correctly
  - id: activities
    rules:
      - type: min_selected
        min: 1
        message: At least one activity must be selected
  - id: cc-num
    rules:
      - type: credit_card
        message: Credit card number must be between 13 and 16 digits
        when: {field: payment, equals: credit-card}
`

func newHandler(t *testing.T, opts ...webform.Option) *webform.Handler {
	t.Helper()
	form, err := schema.Parse(strings.NewReader(formDoc))
	require.NoError(t, err)
	h, err := webform.New(form, opts...)
	require.NoError(t, err)
	return h
}

func postForm(t *testing.T, h *webform.Handler, path string, form url.Values, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)
	return w
}

func TestNew(t *testing.T) {
	t.Run("rejects a form with authoring errors", func(t *testing.T) {
		form, err := schema.Parse(strings.NewReader("fields:\n  - id: x\n    rules:\n      - type: nope\n"))
		require.NoError(t, err)

		_, err = webform.New(form)
		assert.ErrorIs(t, err, schema.ErrUnknownRuleType)
	})
}

func TestHandleSubmit(t *testing.T) {
	t.Run("invalid submission answers 422 with ordered errors", func(t *testing.T) {
		h := newHandler(t)
		w := postForm(t, h, "/", url.Values{
			"name":  {""},
			"email": {"jane@example.com"},
		}, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body struct {
			Valid  bool `json:"valid"`
			Errors []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"errors"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))

		assert.False(t, body.Valid)
		require.Len(t, body.Errors, 2)
		assert.Equal(t, "name", body.Errors[0].Field)
		assert.Equal(t, "Name is required", body.Errors[0].Message)
		assert.Equal(t, "activities", body.Errors[1].Field)
	})

	t.Run("valid submission answers 200 with a confirmation id", func(t *testing.T) {
		h := newHandler(t)
		w := postForm(t, h, "/", url.Values{
			"name":       {"Jane Doe"},
			"email":      {"jane@example.com"},
			"activities": {"main-conference", "build-tools"},
			"payment":    {"paypal"},
		}, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Valid        bool   `json:"valid"`
			Confirmation string `json:"confirmation"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))

		assert.True(t, body.Valid)
		_, err := uuid.Parse(body.Confirmation)
		assert.NoError(t, err)
	})

	t.Run("gated card rules are skipped for other payment methods", func(t *testing.T) {
		h := newHandler(t)
		w := postForm(t, h, "/", url.Values{
			"name":       {"Jane Doe"},
			"email":      {"jane@example.com"},
			"activities": {"main-conference"},
			"payment":    {"paypal"},
			"cc-num":     {"not-a-card"},
		}, nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("datastar submission streams hint and summary patches", func(t *testing.T) {
		h := newHandler(t)
		w := postForm(t, h, "/", url.Values{
			"name": {""},
		}, http.Header{"Accept": {"text/event-stream"}})

		assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
		body := w.Body.String()
		assert.Contains(t, body, `id="hint-name"`)
		assert.Contains(t, body, "Name is required")
		assert.Contains(t, body, `id="form-errors"`)
	})

	t.Run("redirects accepted submissions when configured", func(t *testing.T) {
		h := newHandler(t, webform.WithSuccessRedirect("/thanks"))
		w := postForm(t, h, "/", url.Values{
			"name":       {"Jane Doe"},
			"email":      {"jane@example.com"},
			"activities": {"main-conference"},
		}, nil)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/thanks", w.Header().Get("Location"))
	})

	t.Run("translates messages from the accept-language header", func(t *testing.T) {
		cat := i18n.New(language.English)
		cat.Add(language.Spanish, map[string]string{
			"validation.required": "El campo {{field}} es obligatorio",
		})
		h := newHandler(t, webform.WithCatalog(cat))

		w := postForm(t, h, "/", url.Values{"email": {"jane@example.com"}},
			http.Header{"Accept-Language": {"es"}})

		body := w.Body.String()
		assert.Contains(t, body, "El campo name es obligatorio")
	})
}

func TestHandleField(t *testing.T) {
	t.Run("invalid field answers with its first failing message", func(t *testing.T) {
		h := newHandler(t)
		w := postForm(t, h, "/fields/email", url.Values{"email": {"a.b@@c.com"}}, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Field   string `json:"field"`
			Valid   bool   `json:"valid"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))

		assert.Equal(t, "email", body.Field)
		assert.False(t, body.Valid)
		assert.Equal(t, "Email address must contain exactly one @ symbol", body.Message)
	})

	t.Run("valid field answers with no message", func(t *testing.T) {
		h := newHandler(t)
		w := postForm(t, h, "/fields/email", url.Values{"email": {"jane@example.com"}}, nil)

		var body struct {
			Valid   bool   `json:"valid"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))

		assert.True(t, body.Valid)
		assert.Empty(t, body.Message)
	})

	t.Run("unknown field answers 204 and nothing else", func(t *testing.T) {
		h := newHandler(t)
		w := postForm(t, h, "/fields/does-not-exist", url.Values{}, nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("datastar field pass clears then patches the hint", func(t *testing.T) {
		h := newHandler(t)
		w := postForm(t, h, "/fields/name", url.Values{"name": {"Al"}},
			http.Header{"Accept": {"text/event-stream"}})

		body := w.Body.String()
		assert.Contains(t, body, `id="hint-name"`)
		assert.Contains(t, body, "Name must be at least 3 characters long")
	})
}
