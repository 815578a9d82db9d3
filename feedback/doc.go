// Package feedback defines the presentation boundary of the validation
// engine. The engine itself only returns results; anything user-visible goes
// through a Projector, which an integration layer feeds with per-field
// outcomes and, after a full-form pass, the aggregate error list.
//
// Recorder is a headless implementation that retains the latest projected
// state, for tests and non-UI hosts. Noop discards everything. The datastar
// subpackage renders feedback as server-sent element patches for
// browser-driven forms.
package feedback
