// Package prayer holds the clock arithmetic behind the prayer-times
// endpoints: parsing the stored 12-hour clock strings, deriving the zawal
// time and checking that a day's rows are chronologically ordered.
package prayer

import (
	"time"

	"github.com/markaz-app/markaz/internal/model"
)

// clockLayout is the stored format for all prayer rows, e.g. “05:15 AM”.
const clockLayout = "03:04 PM"

// fallbackZawal is shown when the stored dhuhr value cannot be parsed.
const fallbackZawal = "11:45 AM"

// zawalOffset is how long before dhuhr the zawal window is reported.
const zawalOffset = 5 * time.Minute

// Labels of the six daily rows, in order, as the application displays them.
var labels = []string{"فجر", "طلوع آفتاب", "ظہر", "عصر", "مغرب", "عشاء"}

// ParseClock parses a “03:04 PM” clock string.
func ParseClock(s string) (time.Time, error) {
	return time.Parse(clockLayout, s)
}

// Zawal returns the zawal time derived from the dhuhr row (a few minutes
// before dhuhr, during which prayer is disliked). Falls back to a fixed
// time when dhuhr does not parse.
func Zawal(dhuhr string) string {
	t, err := ParseClock(dhuhr)
	if err != nil {
		return fallbackZawal
	}
	return t.Add(-zawalOffset).Format(clockLayout)
}

// Rows expands a stored PrayerTimes record into the labelled, ordered list
// the clients render.
func Rows(pt model.PrayerTimes) []model.Prayer {
	values := []string{pt.Fajr, pt.Sunrise, pt.Dhuhr, pt.Asr, pt.Maghrib, pt.Isha}
	rows := make([]model.Prayer, len(labels))
	for i := range labels {
		rows[i] = model.Prayer{Name: labels[i], Time: values[i]}
	}
	return rows
}

// Ordered reports whether the six rows parse and strictly increase over the
// day. Admin writes and timetable imports refuse rows that fail this.
func Ordered(pt model.PrayerTimes) bool {
	values := []string{pt.Fajr, pt.Sunrise, pt.Dhuhr, pt.Asr, pt.Maghrib, pt.Isha}
	var prev time.Time
	for i, v := range values {
		t, err := ParseClock(v)
		if err != nil {
			return false
		}
		if i > 0 && !t.After(prev) {
			return false
		}
		prev = t
	}
	return true
}

// Next returns the label and time of the first prayer after now (clock-only
// comparison); wraps to fajr after isha. Used by the board page.
func Next(pt model.PrayerTimes, now time.Time) model.Prayer {
	rows := Rows(pt)
	clock := time.Date(0, 1, 1, now.Hour(), now.Minute(), 0, 0, time.UTC)
	for _, r := range rows {
		t, err := ParseClock(r.Time)
		if err != nil {
			continue
		}
		if t.After(clock) {
			return r
		}
	}
	return rows[0]
}
