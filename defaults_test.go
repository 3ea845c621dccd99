package datefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vearutop/datefmt"
	"golang.org/x/text/language"
)

func TestLocaleFromEnv(t *testing.T) {
	for _, tc := range []struct {
		env  map[string]string
		want language.Tag
	}{
		{env: nil, want: language.AmericanEnglish},
		{env: map[string]string{"LANG": "C"}, want: language.AmericanEnglish},
		{env: map[string]string{"LANG": "C.UTF-8"}, want: language.AmericanEnglish},
		{env: map[string]string{"LANG": "POSIX"}, want: language.AmericanEnglish},
		{env: map[string]string{"LANG": "de_DE.UTF-8"}, want: language.MustParse("de-DE")},
		{env: map[string]string{"LANG": "de_DE.UTF-8@euro"}, want: language.MustParse("de-DE")},
		{env: map[string]string{"LANG": "fr_FR", "LC_TIME": "en_GB.UTF-8"}, want: language.BritishEnglish},
		{env: map[string]string{"LC_ALL": "ru_RU", "LC_TIME": "en_GB", "LANG": "fr_FR"}, want: language.MustParse("ru-RU")},
		{env: map[string]string{"LANG": "!!!"}, want: language.AmericanEnglish},
	} {
		got := datefmt.LocaleFromEnv(func(name string) string {
			return tc.env[name]
		})

		assert.Equal(t, tc.want, got, tc.env)
	}
}

func TestSystemDefaults(t *testing.T) {
	t.Setenv("LC_ALL", "ja_JP.UTF-8")

	d := datefmt.SystemDefaults{}
	assert.Equal(t, language.MustParse("ja-JP"), d.Locale())
	assert.Equal(t, time.Local, d.TimeZone())
}

func TestFixedDefaults(t *testing.T) {
	d := &datefmt.FixedDefaults{Tag: language.German}

	assert.Equal(t, language.German, d.Locale())
	assert.Equal(t, time.UTC, d.TimeZone())

	d.Zone = cst
	assert.Equal(t, cst, d.TimeZone())
}
