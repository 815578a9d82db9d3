package feedback

import "github.com/dmitrymomot/formval"

// Projector consumes evaluation results and mutates presentation state. The
// engine never calls a projector itself; the integration layer hands results
// over after each pass.
//
// Implementations must support clearing all prior feedback before a new
// full-form pass (Reset), clearing one field's feedback before rendering its
// new result (ClearField), and rendering zero, one, or many messages
// depending on mode. Projecting a field result supersedes whatever that field
// showed before; stale errors must never persist or accumulate.
type Projector interface {
	// Reset clears all prior feedback ahead of a full-form pass.
	Reset()

	// ClearField clears one field's prior feedback.
	ClearField(fieldID string)

	// ProjectField renders a field's pass/fail state and its hint message,
	// replacing whatever the field showed before.
	ProjectField(res formval.FieldResult)

	// ProjectSummary renders the aggregate error list of a full-form pass.
	ProjectSummary(errs formval.ValidationErrors)
}

// Noop discards all feedback.
type Noop struct{}

func (Noop) Reset()                                  {}
func (Noop) ClearField(string)                       {}
func (Noop) ProjectField(formval.FieldResult)        {}
func (Noop) ProjectSummary(formval.ValidationErrors) {}
