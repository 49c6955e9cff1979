// Package i18n translates user facing form texts.
//
// Message keys are the English texts, so English needs no catalog entries.
package i18n

import (
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator selects a message printer for the preferred languages of a request.
type Translator struct {
	cat      *catalog.Builder
	matcher  language.Matcher
	fallback language.Tag
}

// NewTranslator creates a translator. defaultLanguage is used if no requested language is supported.
func NewTranslator(defaultLanguage string) *Translator {
	cat := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, messages := range translations {
		for key, msg := range messages {
			if err := cat.SetString(tag, key, msg); err != nil {
				slog.Error("failed to register translation", "language", tag, "key", key, "error", err)
			}
		}
	}

	supported := []language.Tag{language.English, language.German}
	fallback, err := language.Parse(defaultLanguage)
	if err != nil {
		fallback = language.English
	}

	return &Translator{
		cat:      cat,
		matcher:  language.NewMatcher(supported),
		fallback: fallback,
	}
}

// Printer returns a printer for the best match of the given Accept-Language values.
func (t *Translator) Printer(acceptLanguage ...string) *message.Printer {
	return message.NewPrinter(t.Match(acceptLanguage...), message.Catalog(t.cat))
}

// Match returns the supported base language that fits the given Accept-Language values best.
func (t *Translator) Match(acceptLanguage ...string) language.Tag {
	tag := t.fallback
	if len(acceptLanguage) > 0 && acceptLanguage[0] != "" {
		if desired, _, err := language.ParseAcceptLanguage(acceptLanguage[0]); err == nil && len(desired) > 0 {
			matched, _, confidence := t.matcher.Match(desired...)
			if confidence != language.No {
				tag = matched
			}
		}
	}

	base, _ := tag.Base()
	return language.Make(base.String())
}
