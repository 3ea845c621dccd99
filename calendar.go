package datefmt

import (
	"time"
)

// WeekRule defines week numbering: the first day of a week and
// the minimal number of days the first week of a year (or month) must have.
type WeekRule struct {
	FirstDay time.Weekday
	MinDays  int
}

var (
	// ISOWeek is ISO 8601 numbering, weeks start on Monday, week 1 has at least 4 days.
	ISOWeek = WeekRule{FirstDay: time.Monday, MinDays: 4}

	// MondayFullWeek starts weeks on Monday, week 1 is the first full week of the year.
	MondayFullWeek = WeekRule{FirstDay: time.Monday, MinDays: 7}
)

func (r WeekRule) minDays() int {
	if r.MinDays < 1 {
		return 1
	}

	if r.MinDays > 7 {
		return 7
	}

	return r.MinDays
}

// offset returns position of weekday within the week, 0 for FirstDay.
func (r WeekRule) offset(d time.Weekday) int {
	return (int(d) - int(r.FirstDay) + 7) % 7
}

// firstWeekStart returns first day of week 1 for a period starting at first.
func (r WeekRule) firstWeekStart(first time.Time) time.Time {
	rel := r.offset(first.Weekday())
	start := first.AddDate(0, 0, -rel)

	if 7-rel < r.minDays() {
		start = start.AddDate(0, 0, 7)
	}

	return start
}

func (r WeekRule) weekOne(year int) time.Time {
	return r.firstWeekStart(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
}

// civilDate drops clock and zone of t keeping its wall date.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}

// Week returns week-based year and week number of the wall date of t.
//
// Days before week 1 belong to the last week of the previous year,
// days from week 1 of the next year belong to the next year.
func (r WeekRule) Week(t time.Time) (year, week int) {
	d := civilDate(t)
	year = d.Year()
	start := r.weekOne(year)

	if d.Before(start) {
		year--
		start = r.weekOne(year)
	} else if next := r.weekOne(year + 1); !d.Before(next) {
		year++
		start = next
	}

	return year, daysBetween(start, d)/7 + 1
}

// WeekOfMonth returns week number within month of t, 0 for days before week 1.
func (r WeekRule) WeekOfMonth(t time.Time) int {
	d := civilDate(t)
	start := r.firstWeekStart(time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC))

	if d.Before(start) {
		return 0
	}

	return daysBetween(start, d)/7 + 1
}

// weekDate returns wall date of weekday in week of weekYear.
func (r WeekRule) weekDate(weekYear, week int, weekday time.Weekday) time.Time {
	return r.weekOne(weekYear).AddDate(0, 0, (week-1)*7+r.offset(weekday))
}

// WeekOfYear returns week number of t with weeks starting on Monday and
// week 1 being the first full week of the year.
func WeekOfYear(t time.Time) int {
	_, w := MondayFullWeek.Week(t)

	return w
}

// AddDays shifts t by n calendar days keeping wall clock in t location.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// AddHours shifts t by n hours of elapsed time.
func AddHours(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Hour)
}

// PreviousDay returns same wall clock time one calendar day before t.
func PreviousDay(t time.Time) time.Time {
	return AddDays(t, -1)
}

// PreviousHour returns t minus one hour.
func PreviousHour(t time.Time) time.Time {
	return AddHours(t, -1)
}

// TruncateToSeconds drops sub-second precision of t by formatting and parsing it
// with DefaultPattern in system default locale and time zone.
//
// Parse failure is returned as is, t is never passed through untruncated.
func TruncateToSeconds(t time.Time) (time.Time, error) {
	d := SystemDefaults{}

	f, err := NewFormatter(DefaultPattern, d.Locale(), d.TimeZone())
	if err != nil {
		return time.Time{}, err
	}

	return f.Parse(f.Format(t))
}
