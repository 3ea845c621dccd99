package datefmt

import (
	"time"

	"golang.org/x/text/language"
)

// symbols holds locale text used by text fields.
// Weekdays are indexed by time.Weekday, eras are BC then AD.
type symbols struct {
	months        [12]string
	shortMonths   [12]string
	weekdays      [7]string
	shortWeekdays [7]string
	ampm          [2]string
	eras          [2]string
}

var symbolTags = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Portuguese,
	language.Russian,
	language.Chinese,
	language.Japanese,
	language.Korean,
}

var symbolTables = []*symbols{
	{ // en
		months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		shortMonths:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		weekdays:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		shortWeekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		ampm:          [2]string{"AM", "PM"},
		eras:          [2]string{"BC", "AD"},
	},
	{ // de
		months: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		shortMonths:   [12]string{"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
		weekdays:      [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		shortWeekdays: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		ampm:          [2]string{"AM", "PM"},
		eras:          [2]string{"v. Chr.", "n. Chr."},
	},
	{ // fr
		months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		shortMonths: [12]string{
			"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc.",
		},
		weekdays:      [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		shortWeekdays: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		ampm:          [2]string{"AM", "PM"},
		eras:          [2]string{"av. J.-C.", "ap. J.-C."},
	},
	{ // es
		months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		shortMonths:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
		weekdays:      [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		shortWeekdays: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		ampm:          [2]string{"a. m.", "p. m."},
		eras:          [2]string{"a. C.", "d. C."},
	},
	{ // it
		months: [12]string{
			"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
			"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
		},
		shortMonths:   [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
		weekdays:      [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
		shortWeekdays: [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
		ampm:          [2]string{"AM", "PM"},
		eras:          [2]string{"a.C.", "d.C."},
	},
	{ // pt
		months: [12]string{
			"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
		},
		shortMonths:   [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
		weekdays:      [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
		shortWeekdays: [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"},
		ampm:          [2]string{"AM", "PM"},
		eras:          [2]string{"a.C.", "d.C."},
	},
	{ // ru
		months: [12]string{
			"января", "февраля", "марта", "апреля", "мая", "июня",
			"июля", "августа", "сентября", "октября", "ноября", "декабря",
		},
		shortMonths: [12]string{
			"янв.", "февр.", "мар.", "апр.", "мая", "июн.",
			"июл.", "авг.", "сент.", "окт.", "нояб.", "дек.",
		},
		weekdays:      [7]string{"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
		shortWeekdays: [7]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"},
		ampm:          [2]string{"AM", "PM"},
		eras:          [2]string{"до н. э.", "н. э."},
	},
	{ // zh
		months: [12]string{
			"一月", "二月", "三月", "四月", "五月", "六月",
			"七月", "八月", "九月", "十月", "十一月", "十二月",
		},
		shortMonths:   [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		weekdays:      [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
		shortWeekdays: [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
		ampm:          [2]string{"上午", "下午"},
		eras:          [2]string{"公元前", "公元"},
	},
	{ // ja
		months: [12]string{
			"1月", "2月", "3月", "4月", "5月", "6月",
			"7月", "8月", "9月", "10月", "11月", "12月",
		},
		shortMonths:   [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		weekdays:      [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
		shortWeekdays: [7]string{"日", "月", "火", "水", "木", "金", "土"},
		ampm:          [2]string{"午前", "午後"},
		eras:          [2]string{"紀元前", "西暦"},
	},
	{ // ko
		months: [12]string{
			"1월", "2월", "3월", "4월", "5월", "6월",
			"7월", "8월", "9월", "10월", "11월", "12월",
		},
		shortMonths:   [12]string{"1월", "2월", "3월", "4월", "5월", "6월", "7월", "8월", "9월", "10월", "11월", "12월"},
		weekdays:      [7]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"},
		shortWeekdays: [7]string{"일", "월", "화", "수", "목", "금", "토"},
		ampm:          [2]string{"오전", "오후"},
		eras:          [2]string{"BC", "AD"},
	},
}

var symbolMatcher = language.NewMatcher(symbolTags)

// symbolsFor picks the closest supported symbol table, English is the fallback.
func symbolsFor(tag language.Tag) *symbols {
	_, i, confidence := symbolMatcher.Match(tag)
	if confidence == language.No || i < 0 || i >= len(symbolTables) {
		return symbolTables[0]
	}

	return symbolTables[i]
}

// sundayFirst lists regions starting the week on Sunday with a one day first week.
var sundayFirst = map[string]bool{
	"US": true, "CA": true, "MX": true, "BR": true, "JP": true, "KR": true, "CN": true,
	"TW": true, "HK": true, "IL": true, "IN": true, "PH": true, "ZA": true,
}

// weekRuleFor derives week numbering from locale region, inferred when the tag has none.
func weekRuleFor(tag language.Tag) WeekRule {
	region, confidence := tag.Region()
	if confidence != language.No && sundayFirst[region.String()] {
		return WeekRule{FirstDay: time.Sunday, MinDays: 1}
	}

	return ISOWeek
}
