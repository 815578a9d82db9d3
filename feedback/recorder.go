package feedback

import "github.com/dmitrymomot/formval"

// Recorder is a headless Projector retaining only the latest projected state:
// one FieldResult per field and the last summary. Projecting a field again
// overwrites its previous entry, which makes supersession directly
// observable in tests.
type Recorder struct {
	fields  map[string]formval.FieldResult
	order   []string
	summary formval.ValidationErrors
	resets  int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{fields: make(map[string]formval.FieldResult)}
}

// Reset implements Projector.
func (r *Recorder) Reset() {
	r.fields = make(map[string]formval.FieldResult)
	r.order = nil
	r.summary = nil
	r.resets++
}

// ClearField implements Projector.
func (r *Recorder) ClearField(fieldID string) {
	if _, ok := r.fields[fieldID]; !ok {
		return
	}
	delete(r.fields, fieldID)
	for i, id := range r.order {
		if id == fieldID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// ProjectField implements Projector.
func (r *Recorder) ProjectField(res formval.FieldResult) {
	if _, ok := r.fields[res.FieldID]; !ok {
		r.order = append(r.order, res.FieldID)
	}
	r.fields[res.FieldID] = res
}

// ProjectSummary implements Projector.
func (r *Recorder) ProjectSummary(errs formval.ValidationErrors) {
	r.summary = make(formval.ValidationErrors, len(errs))
	copy(r.summary, errs)
}

// Field returns the latest projected result for fieldID.
func (r *Recorder) Field(fieldID string) (formval.FieldResult, bool) {
	res, ok := r.fields[fieldID]
	return res, ok
}

// Fields returns the latest projected results in first-projection order.
func (r *Recorder) Fields() []formval.FieldResult {
	out := make([]formval.FieldResult, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.fields[id])
	}
	return out
}

// Summary returns the last projected aggregate error list.
func (r *Recorder) Summary() formval.ValidationErrors {
	return r.summary
}

// Resets returns how many times the recorder was reset.
func (r *Recorder) Resets() int {
	return r.resets
}
