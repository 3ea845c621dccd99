package datefmt

import (
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Defaults supplies ambient locale and time zone for requests that omit them.
//
// Defaults are consulted on every request and never cached.
type Defaults interface {
	Locale() language.Tag
	TimeZone() *time.Location
}

// SystemDefaults reads locale from LC_ALL, LC_TIME or LANG environment variables and
// uses time.Local as time zone.
type SystemDefaults struct{}

var _ Defaults = SystemDefaults{}

// Locale returns locale of process environment, en-US if none is set.
func (SystemDefaults) Locale() language.Tag {
	return LocaleFromEnv(os.Getenv)
}

// TimeZone returns time.Local.
func (SystemDefaults) TimeZone() *time.Location {
	return time.Local
}

// FixedDefaults holds explicit ambient values, nil Zone means UTC.
//
// Fields can be changed between requests by the owner, changes are observed by the next request.
type FixedDefaults struct {
	Tag  language.Tag
	Zone *time.Location
}

var _ Defaults = &FixedDefaults{}

// Locale returns Tag.
func (d *FixedDefaults) Locale() language.Tag {
	return d.Tag
}

// TimeZone returns Zone.
func (d *FixedDefaults) TimeZone() *time.Location {
	if d.Zone == nil {
		return time.UTC
	}

	return d.Zone
}

// LocaleFromEnv resolves POSIX locale variables (for example "de_DE.UTF-8@euro") into a language tag.
func LocaleFromEnv(getenv func(string) string) language.Tag {
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		v := getenv(name)
		if v == "" {
			continue
		}

		return parsePOSIXLocale(v)
	}

	return language.AmericanEnglish
}

func parsePOSIXLocale(v string) language.Tag {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}

	if v == "" || v == "C" || v == "POSIX" {
		return language.AmericanEnglish
	}

	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return language.AmericanEnglish
	}

	return tag
}
