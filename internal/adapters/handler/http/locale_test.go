package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocaleResolver(t *testing.T) {
	r := NewLocaleResolver("en")

	tests := []struct {
		name           string
		acceptLanguage string
		userLocale     string
		want           string
	}{
		{name: "Header wins", acceptLanguage: "it-IT,it;q=0.9,en;q=0.8", userLocale: "de-DE", want: "it"},
		{name: "Quality ordering", acceptLanguage: "fr;q=0.4, es;q=0.9", want: "es"},
		{name: "User locale when no header", userLocale: "de-AT", want: "de"},
		{name: "Unsupported header falls to user", acceptLanguage: "ja-JP", userLocale: "fr-FR", want: "fr"},
		{name: "Garbage everywhere", acceptLanguage: ";;;", userLocale: "???", want: "en"},
		{name: "Nothing at all", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.acceptLanguage, tt.userLocale).Locale())
		})
	}
}

func TestLocaleResolver_DefaultLocale(t *testing.T) {
	assert.Equal(t, "it", NewLocaleResolver("it-IT").Resolve("", "").Locale())
	assert.Equal(t, "en", NewLocaleResolver("not a tag").Resolve("", "").Locale())
}
