package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/markaz-app/markaz/internal/model"
)

func karachi() model.PrayerTimes {
	return model.PrayerTimes{
		Fajr:    "05:15 AM",
		Sunrise: "06:45 AM",
		Dhuhr:   "12:30 PM",
		Asr:     "04:00 PM",
		Maghrib: "06:45 PM",
		Isha:    "08:15 PM",
	}
}

func TestZawal(t *testing.T) {
	assert.Equal(t, "12:25 PM", Zawal("12:30 PM"))
	assert.Equal(t, "11:58 AM", Zawal("12:03 PM"))
	// crossing noon backwards
	assert.Equal(t, "11:55 AM", Zawal("12:00 PM"))
	// unparsable input falls back
	assert.Equal(t, "11:45 AM", Zawal("ظہر"))
	assert.Equal(t, "11:45 AM", Zawal(""))
}

func TestRowsKeepLabelOrder(t *testing.T) {
	rows := Rows(karachi())
	assert.Len(t, rows, 6)
	assert.Equal(t, model.Prayer{Name: "فجر", Time: "05:15 AM"}, rows[0])
	assert.Equal(t, model.Prayer{Name: "طلوع آفتاب", Time: "06:45 AM"}, rows[1])
	assert.Equal(t, model.Prayer{Name: "عشاء", Time: "08:15 PM"}, rows[5])
}

func TestOrdered(t *testing.T) {
	assert.True(t, Ordered(karachi()))

	swapped := karachi()
	swapped.Asr, swapped.Maghrib = swapped.Maghrib, swapped.Asr
	assert.False(t, Ordered(swapped))

	equal := karachi()
	equal.Sunrise = equal.Fajr
	assert.False(t, Ordered(equal), "equal adjacent rows are not ordered")

	bad := karachi()
	bad.Isha = "late"
	assert.False(t, Ordered(bad))
}

func TestNext(t *testing.T) {
	pt := karachi()

	at := func(h, m int) time.Time {
		return time.Date(2026, 8, 25, h, m, 0, 0, time.UTC)
	}

	assert.Equal(t, "فجر", Next(pt, at(3, 0)).Name)
	assert.Equal(t, "ظہر", Next(pt, at(7, 0)).Name)
	assert.Equal(t, "عشاء", Next(pt, at(19, 0)).Name)
	// after isha, wraps to fajr
	assert.Equal(t, "فجر", Next(pt, at(23, 0)).Name)
}

const sampleTimetable = `
<html><body>
<table class="timetable">
  <tr><th>City</th><th>Fajr</th><th>Sunrise</th><th>Dhuhr</th><th>Asr</th><th>Maghrib</th><th>Isha</th></tr>
  <tr><td>Karachi</td><td>05:15 AM</td><td>06:45 AM</td><td>12:30 PM</td><td>04:00 PM</td><td>06:45 PM</td><td>08:15 PM</td></tr>
  <tr><td>Lahore</td><td>04:45 AM</td><td>06:15 AM</td><td>12:15 PM</td><td>03:45 PM</td><td>06:30 PM</td><td>08:00 PM</td></tr>
</table>
</body></html>`

func TestParseTimetable(t *testing.T) {
	tt, err := ParseTimetable(sampleTimetable)
	assert.NoError(t, err)
	assert.Len(t, tt, 2)
	assert.Equal(t, "12:30 PM", tt["Karachi"].Dhuhr)
	assert.Equal(t, "04:45 AM", tt["Lahore"].Fajr)
}

func TestParseTimetableRejectsUnordered(t *testing.T) {
	html := `<table class="timetable">
	<tr><td>Quetta</td><td>06:30 AM</td><td>05:00 AM</td><td>12:40 PM</td><td>04:10 PM</td><td>07:00 PM</td><td>08:30 PM</td></tr>
	</table>`
	_, err := ParseTimetable(html)
	assert.Error(t, err)
}

func TestParseTimetableMissingTable(t *testing.T) {
	_, err := ParseTimetable("<html><body><p>nothing here</p></body></html>")
	assert.Error(t, err)
}

func TestParseTimetableWrongColumns(t *testing.T) {
	html := `<table class="timetable"><tr><td>Karachi</td><td>05:15 AM</td></tr></table>`
	_, err := ParseTimetable(html)
	assert.Error(t, err)
}
