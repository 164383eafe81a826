package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, CalendarDate{Year: 2025, Month: time.March, Day: 1}, d)
	assert.Equal(t, "2025-03-01", d.ISO())

	_, err = ParseDate("01/03/2025")
	require.Error(t, err)
}

func TestCalendarDateAddDays(t *testing.T) {
	d := CalendarDate{Year: 2025, Month: time.March, Day: 30}

	// Increments produce new values; the original is untouched.
	next := d.AddDays(2)
	assert.Equal(t, "2025-04-01", next.ISO())
	assert.Equal(t, "2025-03-30", d.ISO())

	// Leap-year February.
	feb := CalendarDate{Year: 2024, Month: time.February, Day: 28}
	assert.Equal(t, "2024-02-29", feb.AddDays(1).ISO())
}

func TestCalendarDateAt(t *testing.T) {
	d := CalendarDate{Year: 2025, Month: time.April, Day: 10}
	at := d.At(ClockTimeFromMinutes(600))
	assert.Equal(t, "2025-04-10T10:00:00Z", at.Format(time.RFC3339))
}

func TestMonthWindow(t *testing.T) {
	w := MonthWindow(2025, time.March)
	assert.Equal(t, "2025-03-01", w.Start.ISO())
	assert.Equal(t, "2025-03-31", w.End.ISO())

	assert.True(t, w.Contains(CalendarDate{Year: 2025, Month: time.March, Day: 1}))
	assert.True(t, w.Contains(CalendarDate{Year: 2025, Month: time.March, Day: 31}))
	assert.False(t, w.Contains(CalendarDate{Year: 2025, Month: time.April, Day: 1}))
	assert.False(t, w.Contains(CalendarDate{Year: 2025, Month: time.February, Day: 28}))
}
