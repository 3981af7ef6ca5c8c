// Package hijri converts Gregorian dates to the tabular (civil) Islamic
// calendar. The tabular calendar alternates 30/29-day months with eleven
// leap years per 30-year cycle; it can differ from sighting-based dates by
// a day, which is acceptable for display alongside a local mosque calendar.
package hijri

import (
	"fmt"
	"time"
)

// epoch is the Julian day number of 1 Muharram 1 AH (civil epoch).
const epoch = 1948440

// cycleDays is the length of the 30-year leap cycle.
const cycleDays = 10631

// leapYears are the leap years within each 30-year cycle (type II intercalation).
var leapYears = map[int]bool{
	2: true, 5: true, 7: true, 10: true, 13: true,
	16: true, 18: true, 21: true, 24: true, 26: true, 29: true,
}

// monthNamesUrdu indexes Islamic month names, 1-based.
var monthNamesUrdu = [13]string{
	"",
	"محرم",
	"صفر",
	"ربیع الاول",
	"ربیع الثانی",
	"جمادی الاول",
	"جمادی الثانی",
	"رجب",
	"شعبان",
	"رمضان",
	"شوال",
	"ذوالقعدہ",
	"ذوالحجہ",
}

// Date is a date in the Islamic calendar.
type Date struct {
	Year  int
	Month int // 1..12
	Day   int // 1..30
}

// IsLeapYear reports whether the Hijri year has 355 days.
func IsLeapYear(year int) bool {
	y := year % 30
	if y == 0 {
		y = 30
	}
	return leapYears[y]
}

// MonthDays returns the number of days in the given Hijri month.
func MonthDays(year, month int) int {
	if month%2 == 1 {
		return 30
	}
	if month == 12 && IsLeapYear(year) {
		return 30
	}
	return 29
}

// julianDay computes the Julian day number for a Gregorian calendar date
// (Fliegel–Van Flandern).
func julianDay(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// FromTime converts a Gregorian time to its tabular Hijri date.
func FromTime(t time.Time) Date {
	jd := julianDay(t.Year(), int(t.Month()), t.Day())
	days := jd - epoch

	cycles := days / cycleDays
	rem := days % cycleDays
	if rem < 0 {
		cycles--
		rem += cycleDays
	}

	year := cycles*30 + 1
	for y := 1; y <= 30; y++ {
		length := 354
		if leapYears[y] {
			length = 355
		}
		if rem < length {
			break
		}
		rem -= length
		year++
	}

	doy := rem + 1 // 1-based day of year
	month := 1
	for doy > MonthDays(year, month) {
		doy -= MonthDays(year, month)
		month++
	}
	return Date{Year: year, Month: month, Day: doy}
}

// MonthName returns the Urdu name of the Hijri month (empty if out of range).
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNamesUrdu[month]
}

// Format renders the date the way the application displays it,
// e.g. “18 جمادی الثانی, 1446 ہجری”.
func (d Date) Format() string {
	return fmt.Sprintf("%d %s, %d ہجری", d.Day, MonthName(d.Month), d.Year)
}
