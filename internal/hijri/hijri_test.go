package hijri

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromTimeKnownDates(t *testing.T) {
	// 1 January 2000 is 24 Ramadan 1420 in the civil tabular calendar.
	d := FromTime(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Date{Year: 1420, Month: 9, Day: 24}, d)

	// The civil epoch itself: 19 July 622 (proleptic Gregorian) = 1 Muharram 1.
	d = FromTime(time.Date(622, 7, 19, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, Date{Year: 1, Month: 1, Day: 1}, d)
}

func TestConsecutiveDaysAdvance(t *testing.T) {
	// Walking a Gregorian year a day at a time must advance the Hijri date
	// by exactly one day each step, wrapping at month and year boundaries.
	cur := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := FromTime(cur)
	for i := 0; i < 400; i++ {
		cur = cur.AddDate(0, 0, 1)
		next := FromTime(cur)

		if next.Day == prev.Day+1 && next.Month == prev.Month && next.Year == prev.Year {
			prev = next
			continue
		}
		// month or year rollover
		assert.Equal(t, 1, next.Day, "rollover must land on day 1 (from %+v to %+v)", prev, next)
		assert.Equal(t, MonthDays(prev.Year, prev.Month), prev.Day, "rollover only after a full month")
		if next.Month == 1 {
			assert.Equal(t, prev.Year+1, next.Year)
			assert.Equal(t, 12, prev.Month)
		} else {
			assert.Equal(t, prev.Month+1, next.Month)
			assert.Equal(t, prev.Year, next.Year)
		}
		prev = next
	}
}

func TestMonthDays(t *testing.T) {
	assert.Equal(t, 30, MonthDays(1446, 1))
	assert.Equal(t, 29, MonthDays(1446, 2))
	// Dhul-Hijjah stretches to 30 in leap years only.
	assert.Equal(t, 29, MonthDays(1446, 12)) // 1446 % 30 = 6, not a leap year
	assert.Equal(t, 30, MonthDays(1447, 12)) // 1447 % 30 = 7, leap year
}

func TestFormat(t *testing.T) {
	d := Date{Year: 1446, Month: 6, Day: 18}
	assert.Equal(t, "18 جمادی الثانی, 1446 ہجری", d.Format())
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "محرم", MonthName(1))
	assert.Equal(t, "رمضان", MonthName(9))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}
