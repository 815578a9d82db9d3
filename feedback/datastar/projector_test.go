package datastar_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval"
	dsfeedback "github.com/dmitrymomot/formval/feedback/datastar"
)

func newProjector(t *testing.T, opts ...dsfeedback.Option) (*dsfeedback.Projector, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/register", nil)
	r.Header.Set("Accept", "text/event-stream")
	return dsfeedback.New(w, r, opts...), w
}

func TestProjector(t *testing.T) {
	t.Run("streams sse", func(t *testing.T) {
		p, w := newProjector(t)
		p.Reset()
		require.NoError(t, p.Err())
		assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	})

	t.Run("projects an error hint", func(t *testing.T) {
		p, w := newProjector(t)
		p.ProjectField(formval.FieldResult{
			FieldID: "name",
			Err:     &formval.FieldError{Field: "name", Message: "Name is required"},
		})

		require.NoError(t, p.Err())
		body := w.Body.String()
		assert.Contains(t, body, `id="hint-name"`)
		assert.Contains(t, body, "Name is required")
		assert.Contains(t, body, `class="hint error"`)
	})

	t.Run("projects a valid hint without a message", func(t *testing.T) {
		p, w := newProjector(t)
		p.ProjectField(formval.FieldResult{FieldID: "email", Valid: true})

		require.NoError(t, p.Err())
		body := w.Body.String()
		assert.Contains(t, body, `id="hint-email"`)
		assert.Contains(t, body, `class="hint valid"`)
	})

	t.Run("escapes message html", func(t *testing.T) {
		p, w := newProjector(t)
		p.ProjectField(formval.FieldResult{
			FieldID: "name",
			Err:     &formval.FieldError{Field: "name", Message: `<script>alert("x")</script>`},
		})

		body := w.Body.String()
		assert.NotContains(t, body, "<script>")
		assert.Contains(t, body, "&lt;script&gt;")
	})

	t.Run("projects the summary list in order", func(t *testing.T) {
		p, w := newProjector(t)
		p.ProjectSummary(formval.ValidationErrors{
			{Field: "name", Message: "Name is required"},
			{Field: "activities", Message: "At least one activity must be selected"},
		})

		require.NoError(t, p.Err())
		body := w.Body.String()
		assert.Contains(t, body, `id="form-errors"`)
		assert.Contains(t, body, `data-field="name"`)
		assert.Contains(t, body, `data-field="activities"`)
		assert.Less(t,
			strings.Index(body, "Name is required"),
			strings.Index(body, "At least one activity must be selected"),
		)
	})

	t.Run("empty summary clears the list", func(t *testing.T) {
		p, w := newProjector(t)
		p.ProjectSummary(nil)

		body := w.Body.String()
		assert.Contains(t, body, `id="form-errors"`)
		assert.Contains(t, body, "hidden")
	})

	t.Run("custom ids are honoured", func(t *testing.T) {
		p, w := newProjector(t,
			dsfeedback.WithSummaryID("summary"),
			dsfeedback.WithHintID(func(fieldID string) string { return fieldID + "-feedback" }),
		)
		p.Reset()
		p.ClearField("zip")

		body := w.Body.String()
		assert.Contains(t, body, `id="summary"`)
		assert.Contains(t, body, `id="zip-feedback"`)
	})
}
