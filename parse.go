package datefmt

import (
	"strconv"
	"strings"
	"time"
)

const (
	hasEra = 1 << iota
	hasYear
	hasWeekYear
	hasMonth
	hasDay
	hasDayOfYear
	hasWeek
	hasWeekday
	hasHour24
	hasHour12
)

// fields collects parsed values before they are resolved into an instant.
type fields struct {
	set uint32

	era       int
	year      int
	weekYear  int
	month     int
	day       int
	dayOfYear int
	week      int
	weekday   time.Weekday

	hour   int
	hour12 int
	pm     bool
	minute int
	second int
	milli  int

	zone     *time.Location
	zoneAbbr string
}

type parser struct {
	f   *Formatter
	in  string
	pos int
}

func (p *parser) fail(reason string) error {
	return &ParseError{Input: p.in, Pattern: p.f.pattern, Offset: p.pos, Reason: reason}
}

// Parse parses s into an instant, wall clock fields are taken in the applied time zone
// unless s carries its own zone or offset.
//
// The whole s must match the pattern, otherwise *ParseError is returned.
func (f *Formatter) Parse(s string) (time.Time, error) {
	p := parser{f: f, in: s}
	fl := fields{}

	for _, tok := range f.tokens {
		if err := p.token(tok, &fl); err != nil {
			return time.Time{}, err
		}
	}

	if p.pos != len(s) {
		return time.Time{}, p.fail("unparsed trailing text")
	}

	return p.resolve(&fl)
}

// ParseMillis parses s into milliseconds since Unix epoch.
func (f *Formatter) ParseMillis(s string) (int64, error) {
	t, err := f.Parse(s)
	if err != nil {
		return 0, err
	}

	return t.UnixMilli(), nil
}

func (p *parser) token(tok token, fl *fields) error {
	if tok.letter == 0 {
		if !strings.HasPrefix(p.in[p.pos:], tok.text) {
			return p.fail("expected " + strconv.Quote(tok.text))
		}

		p.pos += len(tok.text)

		return nil
	}

	switch tok.letter {
	case 'G':
		i, ok := p.text(p.f.sym.eras[:])
		if !ok {
			return p.fail("expected era")
		}

		fl.era = i
		fl.set |= hasEra

		return nil
	case 'M', 'L':
		if tok.count >= 3 {
			i, ok := p.text(p.f.sym.months[:], p.f.sym.shortMonths[:])
			if !ok {
				return p.fail("expected month name")
			}

			fl.month = i + 1
			fl.set |= hasMonth

			return nil
		}
	case 'E':
		i, ok := p.text(p.f.sym.weekdays[:], p.f.sym.shortWeekdays[:])
		if !ok {
			return p.fail("expected weekday name")
		}

		fl.weekday = time.Weekday(i)
		fl.set |= hasWeekday

		return nil
	case 'a':
		i, ok := p.text(p.f.sym.ampm[:])
		if !ok {
			return p.fail("expected am/pm marker")
		}

		fl.pm = i == 1

		return nil
	case 'z':
		return p.zoneName(fl)
	case 'Z', 'X':
		if tok.letter == 'X' && p.pos < len(p.in) && (p.in[p.pos] == 'Z' || p.in[p.pos] == 'z') {
			p.pos++
			fl.zone = time.UTC

			return nil
		}

		offset, ok := p.offset()
		if !ok {
			return p.fail("expected zone offset")
		}

		fl.zone = time.FixedZone("", offset)

		return nil
	}

	return p.numericField(tok, fl)
}

func (p *parser) numericField(tok token, fl *fields) error {
	start := p.pos

	v, n, err := p.number(tok)
	if err != nil {
		return err
	}

	check := func(lo, hi int) error {
		if v < lo || v > hi {
			p.pos = start

			return p.fail("value " + strconv.Itoa(v) + " out of range for '" + string(tok.letter) + "'")
		}

		return nil
	}

	switch tok.letter {
	case 'y', 'Y':
		if tok.count == 2 && n == 2 {
			v = p.f.expandTwoDigitYear(v)
		}

		if tok.letter == 'y' {
			fl.year = v
			fl.set |= hasYear
		} else {
			fl.weekYear = v
			fl.set |= hasWeekYear
		}
	case 'M', 'L':
		fl.month = v
		fl.set |= hasMonth

		return check(1, 12)
	case 'w':
		fl.week = v
		fl.set |= hasWeek

		return check(1, 53)
	case 'W':
		return check(0, 6)
	case 'F':
		return check(1, 5)
	case 'D':
		fl.dayOfYear = v
		fl.set |= hasDayOfYear

		return check(1, 366)
	case 'd':
		fl.day = v
		fl.set |= hasDay

		return check(1, 31)
	case 'u':
		fl.weekday = time.Weekday(v % 7)
		fl.set |= hasWeekday

		return check(1, 7)
	case 'H':
		fl.hour = v
		fl.set |= hasHour24

		return check(0, 23)
	case 'k':
		fl.hour = v % 24
		fl.set |= hasHour24

		return check(1, 24)
	case 'K':
		fl.hour12 = v
		fl.set |= hasHour12

		return check(0, 11)
	case 'h':
		fl.hour12 = v % 12
		fl.set |= hasHour12

		return check(1, 12)
	case 'm':
		fl.minute = v

		return check(0, 59)
	case 's':
		fl.second = v

		return check(0, 59)
	case 'S':
		fl.milli = v

		return check(0, 999)
	}

	return nil
}

// number reads digits of a numeric field and returns value and digits count.
func (p *parser) number(tok token) (int, int, error) {
	limit := 9
	if tok.fixed {
		limit = tok.count
	}

	v, n := 0, 0

	for p.pos < len(p.in) && n < limit && isDigit(p.in[p.pos]) {
		v = v*10 + int(p.in[p.pos]-'0')
		p.pos++
		n++
	}

	if n == 0 || (tok.fixed && n < tok.count) {
		p.pos -= n

		return 0, 0, p.fail("expected number for '" + string(tok.letter) + "'")
	}

	return v, n, nil
}

// text matches the longest case-insensitive candidate and returns its index in its list.
func (p *parser) text(lists ...[]string) (int, bool) {
	rest := p.in[p.pos:]
	best, bestLen := -1, 0

	for _, list := range lists {
		for i, c := range list {
			if c == "" || len(c) <= bestLen || len(c) > len(rest) {
				continue
			}

			if strings.EqualFold(rest[:len(c)], c) {
				best, bestLen = i, len(c)
			}
		}
	}

	if best < 0 {
		return 0, false
	}

	p.pos += bestLen

	return best, true
}

// offset reads ±hh, ±hhmm or ±hh:mm and returns seconds east of UTC.
func (p *parser) offset() (int, bool) {
	if p.pos >= len(p.in) {
		return 0, false
	}

	sign := 1

	switch p.in[p.pos] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}

	pos := p.pos + 1

	hh, ok := twoDigits(p.in, pos)
	if !ok {
		return 0, false
	}

	pos += 2
	mm := 0

	if pos < len(p.in) && p.in[pos] == ':' {
		if mm, ok = twoDigits(p.in, pos+1); !ok {
			return 0, false
		}

		pos += 3
	} else if m, ok := twoDigits(p.in, pos); ok {
		mm = m
		pos += 2
	}

	if hh > 23 || mm > 59 {
		return 0, false
	}

	p.pos = pos

	return sign * (hh*3600 + mm*60), true
}

func (p *parser) zoneName(fl *fields) error {
	rest := p.in[p.pos:]

	if name := p.f.zone.String(); name != "Local" && name != "" && strings.HasPrefix(rest, name) {
		p.pos += len(name)
		fl.zone = p.f.zone

		return nil
	}

	if strings.HasPrefix(rest, "GMT") || strings.HasPrefix(rest, "UTC") {
		p.pos += 3
		fl.zone = time.UTC

		if offset, ok := p.offset(); ok {
			fl.zone = time.FixedZone("", offset)
		}

		return nil
	}

	if offset, ok := p.offset(); ok {
		fl.zone = time.FixedZone("", offset)

		return nil
	}

	n := 0
	for n < len(rest) && isASCIILetter(rest[n]) {
		n++
	}

	if n == 0 {
		return p.fail("expected time zone")
	}

	fl.zoneAbbr = rest[:n]
	p.pos += n

	return nil
}

func (p *parser) resolve(fl *fields) (time.Time, error) {
	f := p.f

	zone := f.zone
	if fl.zone != nil {
		zone = fl.zone
	}

	year := 1970

	switch {
	case fl.set&hasYear != 0:
		year = fl.year
		if fl.set&hasEra != 0 && fl.era == 0 {
			year = 1 - year
		}
	case fl.set&hasWeekYear != 0:
		year = fl.weekYear
	}

	hour := 0

	switch {
	case fl.set&hasHour24 != 0:
		hour = fl.hour
	case fl.set&hasHour12 != 0:
		hour = fl.hour12
		if fl.pm {
			hour += 12
		}
	}

	var date time.Time

	switch {
	case fl.set&(hasMonth|hasDay) != 0:
		month, day := 1, 1
		if fl.set&hasMonth != 0 {
			month = fl.month
		}

		if fl.set&hasDay != 0 {
			day = fl.day
		}

		if day > daysIn(year, time.Month(month)) {
			return time.Time{}, p.fail("day " + strconv.Itoa(day) + " out of range for month " + strconv.Itoa(month))
		}

		date = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	case fl.set&hasDayOfYear != 0:
		jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		if fl.dayOfYear > daysBetween(jan1, jan1.AddDate(1, 0, 0)) {
			return time.Time{}, p.fail("day of year " + strconv.Itoa(fl.dayOfYear) + " out of range")
		}

		date = jan1.AddDate(0, 0, fl.dayOfYear-1)
	case fl.set&hasWeek != 0:
		weekday := f.week.FirstDay
		if fl.set&hasWeekday != 0 {
			weekday = fl.weekday
		}

		date = f.week.weekDate(year, fl.week, weekday)
	default:
		date = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	t := time.Date(date.Year(), date.Month(), date.Day(), hour, fl.minute, fl.second,
		fl.milli*int(time.Millisecond), zone)

	if fl.zoneAbbr == "" {
		return t, nil
	}

	z, ok := zoneByAbbr(fl.zoneAbbr, t)
	if !ok {
		return time.Time{}, p.fail("unknown time zone " + strconv.Quote(fl.zoneAbbr))
	}

	if z == zone {
		return t, nil
	}

	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), z), nil
}

// zoneByAbbr matches abbreviation against zone of t in effect at t, in January or in July.
func zoneByAbbr(abbr string, t time.Time) (*time.Location, bool) {
	if name, _ := t.Zone(); name == abbr {
		return t.Location(), true
	}

	for _, m := range []time.Month{time.January, time.July} {
		probe := time.Date(t.Year(), m, 1, 12, 0, 0, 0, t.Location())
		if name, offset := probe.Zone(); name == abbr {
			return time.FixedZone(abbr, offset), true
		}
	}

	return nil, false
}

// expandTwoDigitYear places yy within 80 years before and 20 years after now.
func (f *Formatter) expandTwoDigitYear(yy int) int {
	start := f.now().Year() - 80
	year := start/100*100 + yy

	if year < start {
		year += 100
	}

	return year
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func twoDigits(s string, pos int) (int, bool) {
	if pos+2 > len(s) || !isDigit(s[pos]) || !isDigit(s[pos+1]) {
		return 0, false
	}

	return int(s[pos]-'0')*10 + int(s[pos+1]-'0'), true
}
