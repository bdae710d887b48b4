package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// HijriFormatter converts Gregorian dates into Hijri display strings using
// the tabular (civil) Islamic calendar. The tabular calendar is an
// arithmetic approximation of the observational calendar; converted dates
// can differ from official announcements by a day. That is acceptable for
// report display, which is the only consumer.
//
// Unsupported language tags silently fall back to Gregorian formatting so
// the numeric pipeline never depends on locale support.
type HijriFormatter struct {
	defaultLang string
}

// NewHijriFormatter creates a formatter with the given default language tag
func NewHijriFormatter(defaultLang string) *HijriFormatter {
	if defaultLang == "" {
		defaultLang = "en"
	}
	return &HijriFormatter{defaultLang: defaultLang}
}

var hijriMonthsEnglish = [12]string{
	"Muharram", "Safar", "Rabi' al-Awwal", "Rabi' al-Thani",
	"Jumada al-Ula", "Jumada al-Akhirah", "Rajab", "Sha'ban",
	"Ramadan", "Shawwal", "Dhu al-Qi'dah", "Dhu al-Hijjah",
}

var hijriMonthsArabic = [12]string{
	"محرم", "صفر", "ربيع الأول", "ربيع الثاني",
	"جمادى الأولى", "جمادى الآخرة", "رجب", "شعبان",
	"رمضان", "شوال", "ذو القعدة", "ذو الحجة",
}

// FormatHijri renders the Hijri date for t in the requested language.
// Falls back to Gregorian formatting for languages without Hijri month
// name support.
func (f *HijriFormatter) FormatHijri(t time.Time, lang string) string {
	if lang == "" {
		lang = f.defaultLang
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return t.Format("02 Jan 2006")
	}

	year, month, day := toHijri(t)

	base, _ := tag.Base()
	switch base.String() {
	case "ar":
		return fmt.Sprintf("%d %s %d هـ", day, hijriMonthsArabic[month-1], year)
	case "en":
		return fmt.Sprintf("%d %s %d AH", day, hijriMonthsEnglish[month-1], year)
	default:
		return t.Format("02 Jan 2006")
	}
}

// toHijri converts a Gregorian date to tabular Islamic year, month, day
func toHijri(t time.Time) (int, int, int) {
	jdn := julianDayNumber(t)

	l := jdn - 1948440 + 10632
	n := (l - 1) / 10631
	l = l - 10631*n + 354
	j := ((10985-l)/5316)*((50*l)/17719) + (l/5670)*((43*l)/15238)
	l = l - ((30-j)/15)*((17719*j)/50) - (j/16)*((15238*j)/43) + 29

	month := (24 * l) / 709
	day := l - (709*month)/24
	year := 30*n + j - 30

	return year, month, day
}

// julianDayNumber computes the Julian day number for a Gregorian date
func julianDayNumber(t time.Time) int {
	y, m, d := t.Date()

	a := (14 - int(m)) / 12
	yy := y + 4800 - a
	mm := int(m) + 12*a - 3

	return d + (153*mm+2)/5 + 365*yy + yy/4 - yy/100 + yy/400 - 32045
}
