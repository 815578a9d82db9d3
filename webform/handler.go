package webform

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/formval"
	dsfeedback "github.com/dmitrymomot/formval/feedback/datastar"
	"github.com/dmitrymomot/formval/i18n"
	"github.com/dmitrymomot/formval/schema"
)

// Handler serves validation endpoints for one form definition.
type Handler struct {
	form       *schema.Form
	log        *slog.Logger
	catalog    *i18n.Catalog
	successURL string
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the handler's logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithCatalog enables message translation negotiated from the request's
// Accept-Language header.
func WithCatalog(c *i18n.Catalog) Option {
	return func(h *Handler) {
		if c != nil {
			h.catalog = c
		}
	}
}

// WithSuccessRedirect sends accepted submissions to url instead of answering
// with a confirmation body. DataStar requests redirect through the event
// stream, plain requests get 303 See Other.
func WithSuccessRedirect(url string) Option {
	return func(h *Handler) {
		h.successURL = url
	}
}

// New creates a handler for the form. The definition is built once against an
// empty provider to surface authoring errors (unknown rule types, bad
// patterns) at startup instead of on the first request.
func New(form *schema.Form, opts ...Option) (*Handler, error) {
	if _, err := form.Build(formval.MapProvider{}); err != nil {
		return nil, err
	}

	h := &Handler{
		form: form,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Router returns the handler's routes:
//
//	POST /                 full-form validation (submission)
//	POST /fields/{field}   single-field validation (input/blur)
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.handleSubmit)
	r.Post("/fields/{field}", h.handleField)
	return r
}

// submitResponse is the JSON body of a full-form pass.
type submitResponse struct {
	Valid        bool        `json:"valid"`
	Confirmation string      `json:"confirmation,omitempty"`
	Errors       []errorItem `json:"errors,omitempty"`
}

// fieldResponse is the JSON body of a single-field pass.
type fieldResponse struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

type errorItem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}

	res := engine.ValidateForm()
	tr := h.translator(r)
	errs := res.Errors
	if tr != nil {
		errs = tr.TranslateAll(res.Errors)
	}

	if isDataStar(r) {
		proj := dsfeedback.New(w, r)
		proj.Reset()
		for _, fr := range res.Fields {
			proj.ProjectField(h.translateResult(fr, tr))
		}
		proj.ProjectSummary(errs)
		if res.Valid() && h.successURL != "" {
			proj.Redirect(h.successURL)
		}
		if err := proj.Err(); err != nil {
			h.log.Error("feedback stream failed",
				slog.Any("error", err),
				slog.String("form", h.form.Name),
			)
		}
		return
	}

	if !res.Valid() {
		writeJSON(w, http.StatusUnprocessableEntity, submitResponse{
			Valid:  false,
			Errors: errorItems(errs),
		})
		return
	}

	confirmation := uuid.NewString()
	h.log.Info("form accepted",
		slog.String("form", h.form.Name),
		slog.String("confirmation", confirmation),
	)
	if h.successURL != "" {
		http.Redirect(w, r, h.successURL, http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{Valid: true, Confirmation: confirmation})
}

func (h *Handler) handleField(w http.ResponseWriter, r *http.Request) {
	fieldID := chi.URLParam(r, "field")

	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}

	fr, found := engine.ValidateField(fieldID)
	if !found {
		// Unknown field is non-fatal: the engine already logged a warning
		// and no other field's feedback is touched.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	tr := h.translator(r)
	fr = h.translateResult(fr, tr)

	if isDataStar(r) {
		proj := dsfeedback.New(w, r)
		proj.ClearField(fieldID)
		proj.ProjectField(fr)
		if err := proj.Err(); err != nil {
			h.log.Error("feedback stream failed",
				slog.Any("error", err),
				slog.String("field", fieldID),
			)
		}
		return
	}

	resp := fieldResponse{Field: fieldID, Valid: fr.Valid}
	if fr.Err != nil {
		resp.Message = fr.Err.Message
	}
	writeJSON(w, http.StatusOK, resp)
}

// engineFor builds a per-request engine bound to the request's form values.
func (h *Handler) engineFor(w http.ResponseWriter, r *http.Request) (*formval.Engine, bool) {
	if err := r.ParseForm(); err != nil {
		h.log.Warn("unparseable form body", slog.Any("error", err))
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return nil, false
	}

	provider := formval.NewValuesProvider(r.PostForm)
	registry, err := h.form.Build(provider)
	if err != nil {
		// Unreachable for definitions vetted in New, but a 500 beats a panic
		// if the form is swapped at runtime.
		h.log.Error("form definition failed to build", slog.Any("error", err))
		http.Error(w, "form configuration error", http.StatusInternalServerError)
		return nil, false
	}

	return formval.New(registry, provider, formval.WithLogger(h.log)), true
}

// translator returns the negotiated translator, or a fallback pass-through
// when no catalog is configured.
func (h *Handler) translator(r *http.Request) *i18n.Translator {
	if h.catalog == nil {
		return nil
	}
	return h.catalog.Translator(r.Header.Get("Accept-Language"))
}

func (h *Handler) translateResult(fr formval.FieldResult, tr *i18n.Translator) formval.FieldResult {
	if tr == nil || fr.Err == nil {
		return fr
	}
	translated := *fr.Err
	translated.Message = tr.Translate(*fr.Err)
	fr.Err = &translated
	return fr
}

func errorItems(errs formval.ValidationErrors) []errorItem {
	items := make([]errorItem, 0, len(errs))
	for _, err := range errs {
		items = append(items, errorItem{Field: err.Field, Message: err.Message})
	}
	return items
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// isDataStar reports whether the request expects server-sent element patches:
// it accepts SSE, carries the datastar query parameter, or posts a DataStar
// content type.
func isDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	if r.URL.Query().Has("datastar") {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}
