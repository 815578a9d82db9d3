package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formval"
)

// Catalog holds per-language message templates keyed by translation key.
// Templates use {{name}} placeholders filled from a FieldError's
// TranslationValues. The catalog is meant to be populated once at startup and
// read afterwards; Add is not safe for concurrent use with Translator.
type Catalog struct {
	fallback language.Tag
	tags     []language.Tag
	matcher  language.Matcher
	messages map[language.Tag]map[string]string
}

// New creates a catalog whose fallback language is used when negotiation
// finds no better match. The fallback starts with no templates; errors
// translate to their default messages until Add provides some.
func New(fallback language.Tag) *Catalog {
	c := &Catalog{
		fallback: fallback,
		messages: make(map[language.Tag]map[string]string),
	}
	c.tags = []language.Tag{fallback}
	c.matcher = language.NewMatcher(c.tags)
	return c
}

// Add registers message templates for a language, merging with any templates
// registered for it earlier.
func (c *Catalog) Add(tag language.Tag, messages map[string]string) {
	existing, ok := c.messages[tag]
	if !ok {
		existing = make(map[string]string, len(messages))
		c.messages[tag] = existing
		if tag != c.fallback {
			c.tags = append(c.tags, tag)
		}
		c.matcher = language.NewMatcher(c.tags)
	}
	for key, tmpl := range messages {
		existing[key] = tmpl
	}
}

// Translator negotiates the best registered language for an Accept-Language
// header value. An empty or unparseable header falls back to the catalog's
// fallback language.
func (c *Catalog) Translator(acceptLanguage string) *Translator {
	tag := c.fallback
	if acceptLanguage != "" {
		if wanted, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			// Match may extend the result with the request's region; the
			// index always points at the registered tag it chose.
			_, index, _ := c.matcher.Match(wanted...)
			tag = c.tags[index]
		}
	}
	return &Translator{catalog: c, tag: tag}
}

// Translator renders FieldError records in one negotiated language.
type Translator struct {
	catalog *Catalog
	tag     language.Tag
}

// Tag returns the negotiated language.
func (t *Translator) Tag() language.Tag {
	return t.tag
}

// Translate returns the translated message for a single error, falling back
// to the record's default message when the negotiated language has no
// template for its key.
func (t *Translator) Translate(err formval.FieldError) string {
	tmpl, ok := t.catalog.messages[t.tag][err.TranslationKey]
	if !ok {
		return err.Message
	}
	return interpolate(tmpl, err.TranslationValues)
}

// TranslateAll returns a copy of the error list with every message
// translated. The input list is left untouched.
func (t *Translator) TranslateAll(errs formval.ValidationErrors) formval.ValidationErrors {
	if len(errs) == 0 {
		return nil
	}
	out := make(formval.ValidationErrors, len(errs))
	for i, err := range errs {
		out[i] = err
		out[i].Message = t.Translate(err)
	}
	return out
}

// interpolate substitutes {{name}} tokens with stringified values. Unknown
// tokens are left in place so missing values surface during review instead of
// vanishing silently.
func interpolate(tmpl string, values map[string]any) string {
	if len(values) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(values)*2)
	for name, value := range values {
		pairs = append(pairs, "{{"+name+"}}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
