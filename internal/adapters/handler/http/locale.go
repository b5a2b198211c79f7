package http

import (
	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"golang.org/x/text/language"
)

// LocaleResolver picks the month-name translator for range labels.
type LocaleResolver struct {
	matcher     language.Matcher
	translators []locales.Translator
	fallback    locales.Translator
}

func NewLocaleResolver(defaultLocale string) *LocaleResolver {
	tags := []language.Tag{language.English, language.Italian, language.German, language.French, language.Spanish}
	translators := []locales.Translator{en.New(), it.New(), de.New(), fr.New(), es.New()}

	r := &LocaleResolver{
		matcher:     language.NewMatcher(tags),
		translators: translators,
		fallback:    translators[0],
	}
	if tag, err := language.Parse(defaultLocale); err == nil {
		if tr, ok := r.match([]language.Tag{tag}); ok {
			r.fallback = tr
		}
	}
	return r
}

// Resolve prefers the Accept-Language header, then the user's stored locale.
func (r *LocaleResolver) Resolve(acceptLanguage, userLocale string) locales.Translator {
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			if tr, ok := r.match(tags); ok {
				return tr
			}
		}
	}
	if userLocale != "" {
		if tag, err := language.Parse(userLocale); err == nil {
			if tr, ok := r.match([]language.Tag{tag}); ok {
				return tr
			}
		}
	}
	return r.fallback
}

func (r *LocaleResolver) match(tags []language.Tag) (locales.Translator, bool) {
	_, index, confidence := r.matcher.Match(tags...)
	if confidence == language.No {
		return nil, false
	}
	return r.translators[index], true
}
