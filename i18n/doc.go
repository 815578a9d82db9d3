// Package i18n translates validation error messages.
//
// Every rule carries a TranslationKey and TranslationValues next to its
// default message. A Catalog maps keys to per-language templates with
// {{name}} placeholders; a Translator, negotiated from an Accept-Language
// header, interpolates the values into the matched language's template and
// falls back to the record's default message when no template exists.
//
//	cat := i18n.New(language.English)
//	cat.Add(language.Ukrainian, map[string]string{
//		"validation.required":   "Поле {{field}} обов'язкове",
//		"validation.min_length": "Поле {{field}} має містити щонайменше {{min}} символів",
//	})
//
//	tr := cat.Translator(r.Header.Get("Accept-Language"))
//	msg := tr.Translate(fieldErr)
package i18n
