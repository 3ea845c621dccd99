package datefmt

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Formatter converts between instants and text using a compiled pattern, a locale and a time zone.
//
// Pattern and locale are fixed at construction, time zone can be changed with SetTimeZone.
// Formatter is not safe for concurrent use, each goroutine should obtain its own from its own Cache.
type Formatter struct {
	pattern string
	locale  language.Tag
	zone    *time.Location

	tokens []token
	sym    *symbols
	week   WeekRule

	// now anchors two-digit year window.
	now func() time.Time
}

// NewFormatter compiles pattern for locale, nil zone means UTC.
//
// The result is not cached, use Cache.Formatter to reuse formatters.
func NewFormatter(pattern string, locale language.Tag, zone *time.Location) (*Formatter, error) {
	tokens, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	f := &Formatter{
		pattern: pattern,
		locale:  locale,
		tokens:  tokens,
		sym:     symbolsFor(locale),
		week:    weekRuleFor(locale),
		now:     time.Now,
	}

	f.SetTimeZone(zone)

	return f, nil
}

// Pattern returns formatter pattern.
func (f *Formatter) Pattern() string {
	return f.pattern
}

// Locale returns formatter locale.
func (f *Formatter) Locale() language.Tag {
	return f.locale
}

// TimeZone returns currently applied time zone.
func (f *Formatter) TimeZone() *time.Location {
	return f.zone
}

// SetTimeZone applies time zone to subsequent Format and Parse calls, nil means UTC.
func (f *Formatter) SetTimeZone(zone *time.Location) {
	if zone == nil {
		zone = time.UTC
	}

	f.zone = zone
}

// WeekRule returns week numbering used by w, W and Y fields.
func (f *Formatter) WeekRule() WeekRule {
	return f.week
}

// Format formats t in the applied time zone.
func (f *Formatter) Format(t time.Time) string {
	return string(f.AppendFormat(make([]byte, 0, len(f.pattern)+10), t))
}

// FormatMillis formats milliseconds since Unix epoch.
func (f *Formatter) FormatMillis(ms int64) string {
	return f.Format(time.UnixMilli(ms))
}

// AppendFormat appends formatted t to b.
func (f *Formatter) AppendFormat(b []byte, t time.Time) []byte {
	t = t.In(f.zone)

	for _, tok := range f.tokens {
		if tok.letter == 0 {
			b = append(b, tok.text...)

			continue
		}

		b = f.appendField(b, tok, t)
	}

	return b
}

func (f *Formatter) appendField(b []byte, tok token, t time.Time) []byte {
	switch tok.letter {
	case 'G':
		era := 1
		if t.Year() <= 0 {
			era = 0
		}

		return append(b, f.sym.eras[era]...)
	case 'y':
		return appendYear(b, yearOfEra(t.Year()), tok.count)
	case 'Y':
		wy, _ := f.week.Week(t)

		return appendYear(b, yearOfEra(wy), tok.count)
	case 'M', 'L':
		switch {
		case tok.count >= 4:
			return append(b, f.sym.months[t.Month()-1]...)
		case tok.count == 3:
			return append(b, f.sym.shortMonths[t.Month()-1]...)
		}

		return appendInt(b, int(t.Month()), tok.count)
	case 'w':
		_, w := f.week.Week(t)

		return appendInt(b, w, tok.count)
	case 'W':
		return appendInt(b, f.week.WeekOfMonth(t), tok.count)
	case 'D':
		return appendInt(b, t.YearDay(), tok.count)
	case 'd':
		return appendInt(b, t.Day(), tok.count)
	case 'F':
		return appendInt(b, (t.Day()-1)/7+1, tok.count)
	case 'E':
		if tok.count >= 4 {
			return append(b, f.sym.weekdays[t.Weekday()]...)
		}

		return append(b, f.sym.shortWeekdays[t.Weekday()]...)
	case 'u':
		u := int(t.Weekday())
		if u == 0 {
			u = 7
		}

		return appendInt(b, u, tok.count)
	case 'a':
		if t.Hour() < 12 {
			return append(b, f.sym.ampm[0]...)
		}

		return append(b, f.sym.ampm[1]...)
	case 'H':
		return appendInt(b, t.Hour(), tok.count)
	case 'k':
		h := t.Hour()
		if h == 0 {
			h = 24
		}

		return appendInt(b, h, tok.count)
	case 'K':
		return appendInt(b, t.Hour()%12, tok.count)
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}

		return appendInt(b, h, tok.count)
	case 'm':
		return appendInt(b, t.Minute(), tok.count)
	case 's':
		return appendInt(b, t.Second(), tok.count)
	case 'S':
		return appendInt(b, t.Nanosecond()/int(time.Millisecond), tok.count)
	case 'z':
		return f.appendZoneName(b, tok.count, t)
	case 'Z':
		_, offset := t.Zone()

		return appendOffset(b, offset, true, false)
	case 'X':
		_, offset := t.Zone()
		if offset == 0 {
			return append(b, 'Z')
		}

		switch tok.count {
		case 1:
			if offset%3600 == 0 {
				return appendOffset(b, offset, false, false)
			}

			return appendOffset(b, offset, true, false)
		case 2:
			return appendOffset(b, offset, true, false)
		}

		return appendOffset(b, offset, true, true)
	}

	return b
}

func (f *Formatter) appendZoneName(b []byte, count int, t time.Time) []byte {
	if count >= 4 {
		if name := f.zone.String(); strings.Contains(name, "/") || name == "UTC" {
			return append(b, name...)
		}
	}

	name, offset := t.Zone()
	if name == "" || name[0] == '+' || name[0] == '-' {
		b = append(b, "GMT"...)

		return appendOffset(b, offset, true, true)
	}

	return append(b, name...)
}

func yearOfEra(year int) int {
	if year <= 0 {
		return 1 - year
	}

	return year
}

func appendYear(b []byte, year, count int) []byte {
	if count == 2 {
		return appendInt(b, year%100, 2)
	}

	return appendInt(b, year, count)
}

// appendInt appends non-negative v zero padded to width.
func appendInt(b []byte, v, width int) []byte {
	var buf [20]byte

	s := strconv.AppendInt(buf[:0], int64(v), 10)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}

	return append(b, s...)
}

// appendOffset appends signed offset as hh, hhmm or hh:mm.
func appendOffset(b []byte, offset int, minutes, colon bool) []byte {
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}

	b = append(b, sign)
	b = appendInt(b, offset/3600, 2)

	if !minutes {
		return b
	}

	if colon {
		b = append(b, ':')
	}

	return appendInt(b, offset%3600/60, 2)
}
