// Package datastar renders validation feedback as DataStar server-sent
// element patches, letting a browser form update hints and the error summary
// without a page reload.
package datastar

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formval"
)

// Projector streams feedback over a DataStar SSE connection. Each field owns
// a hint element (id "hint-<field>" by default) patched in place; the
// aggregate summary is patched into its own container. Patching the same
// element again replaces the previous content, so supersession comes for
// free from the patch semantics.
//
// Write errors are sticky: the first one is retained, later calls become
// no-ops, and the caller checks Err once after the pass.
type Projector struct {
	sse       *datastar.ServerSentEventGenerator
	summaryID string
	hintID    func(fieldID string) string
	err       error
}

// Option configures a Projector.
type Option func(*Projector)

// WithSummaryID sets the id of the aggregate summary element. Defaults to
// "form-errors".
func WithSummaryID(id string) Option {
	return func(p *Projector) {
		if id != "" {
			p.summaryID = id
		}
	}
}

// WithHintID sets the mapping from field identifier to hint element id.
// Defaults to "hint-<field>".
func WithHintID(f func(fieldID string) string) Option {
	return func(p *Projector) {
		if f != nil {
			p.hintID = f
		}
	}
}

// New creates a projector streaming to the given response.
func New(w http.ResponseWriter, r *http.Request, opts ...Option) *Projector {
	p := &Projector{
		sse:       datastar.NewSSE(w, r),
		summaryID: "form-errors",
		hintID: func(fieldID string) string {
			return "hint-" + fieldID
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reset clears the aggregate summary ahead of a full-form pass. Field hints
// are not touched here: every registered field gets re-projected during the
// pass, and each patch replaces that field's previous hint.
func (p *Projector) Reset() {
	p.patch(fmt.Sprintf(`<ul id=%q class="error-summary" hidden></ul>`, p.summaryID))
}

// ClearField clears one field's hint.
func (p *Projector) ClearField(fieldID string) {
	id := p.hintID(fieldID)
	p.patch(fmt.Sprintf(`<span id=%q class="hint" hidden></span>`, id))
}

// ProjectField patches the field's hint element with its new state: an error
// message for invalid fields, an empty valid-state hint otherwise.
func (p *Projector) ProjectField(res formval.FieldResult) {
	id := p.hintID(res.FieldID)
	if res.Valid {
		p.patch(fmt.Sprintf(`<span id=%q class="hint valid" hidden></span>`, id))
		return
	}

	msg := ""
	if res.Err != nil {
		msg = res.Err.Message
	}
	p.patch(fmt.Sprintf(`<span id=%q class="hint error">%s</span>`, id, html.EscapeString(msg)))
}

// ProjectSummary patches the aggregate summary list with every first-failing
// message, in field registration order.
func (p *Projector) ProjectSummary(errs formval.ValidationErrors) {
	if len(errs) == 0 {
		p.Reset()
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<ul id=%q class="error-summary">`, p.summaryID)
	for _, err := range errs {
		fmt.Fprintf(&b, `<li data-field=%q>%s</li>`, err.Field, html.EscapeString(err.Message))
	}
	b.WriteString(`</ul>`)
	p.patch(b.String())
}

// Redirect sends the browser to url once the pass is projected. Not part of
// the feedback.Projector interface; callers hold the concrete type when they
// need it.
func (p *Projector) Redirect(url string) {
	if p.err != nil {
		return
	}
	p.err = p.sse.Redirect(url)
}

// Err returns the first write error encountered, if any.
func (p *Projector) Err() error {
	return p.err
}

func (p *Projector) patch(elements string) {
	if p.err != nil {
		return
	}
	p.err = p.sse.PatchElements(elements)
}
