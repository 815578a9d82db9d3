// Package webform wires the validation engine to HTTP form submissions.
//
// A Handler is built from a schema.Form and serves two endpoints: a full-form
// pass on submission and a single-field pass for real-time feedback on
// input/blur. For DataStar requests feedback streams back as server-sent
// element patches; plain requests get a JSON result. A failing full-form pass
// answers 422, which stands in for suppressing the default submit action.
//
// Engines are constructed per request from the schema, bound to that
// request's form values. Construction is a handful of closures, and it keeps
// each evaluation pass strictly single-threaded while the server itself stays
// free to handle requests concurrently.
package webform
