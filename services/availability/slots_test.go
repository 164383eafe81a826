package availability

import (
	"testing"

	"trimly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, label string) models.ClockTime {
	t.Helper()
	ct, err := models.ParseClockTime(label)
	require.NoError(t, err)
	return ct
}

func shift(t *testing.T, start, end string) models.WorkInterval {
	t.Helper()
	return models.WorkInterval{Kind: models.IntervalShift, Start: mustTime(t, start), End: mustTime(t, end)}
}

func TestGenerateSlotsStepsThroughShift(t *testing.T) {
	intervals := []models.WorkInterval{shift(t, "09:00", "12:00")}

	slots := GenerateSlots(intervals, 30, "emp-1")

	// floor((720-540)/30) = 6 slots, each 30 minutes after the previous.
	require.Len(t, slots, 6)
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.Time.String()
		assert.Equal(t, []string{"emp-1"}, s.EmployeeIDs)
	}
	assert.Equal(t, []string{"09:00 AM", "09:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM"}, labels)

	// No slot's end may exceed the shift end.
	last := slots[len(slots)-1]
	assert.LessOrEqual(t, last.Time.Minutes()+30, mustTime(t, "12:00").Minutes())
}

func TestGenerateSlotsPartialTrailingWindow(t *testing.T) {
	// 09:00-10:45 with 30-minute duration: the 10:30 start would overrun.
	slots := GenerateSlots([]models.WorkInterval{shift(t, "09:00", "10:45")}, 30, "emp-1")
	require.Len(t, slots, 3)
	assert.Equal(t, "10:00 AM", slots[2].Time.String())
}

func TestGenerateSlotsShiftShorterThanDuration(t *testing.T) {
	slots := GenerateSlots([]models.WorkInterval{shift(t, "09:00", "09:20")}, 30, "emp-1")
	assert.Empty(t, slots)
}

func TestGenerateSlotsIgnoresTimeOff(t *testing.T) {
	// Time-off intervals are display-only; they are not subtracted from
	// shift-derived slots. Conflict enforcement is the appointment store's job.
	intervals := []models.WorkInterval{
		shift(t, "09:00", "11:00"),
		{Kind: models.IntervalTimeOff, Start: mustTime(t, "09:00"), End: mustTime(t, "10:00")},
	}

	slots := GenerateSlots(intervals, 60, "emp-1")

	require.Len(t, slots, 2)
	assert.Equal(t, "09:00 AM", slots[0].Time.String())
	assert.Equal(t, "10:00 AM", slots[1].Time.String())
}

func TestGenerateSlotsConcatenatesIntervals(t *testing.T) {
	intervals := []models.WorkInterval{
		shift(t, "14:00", "15:00"),
		shift(t, "09:00", "10:00"),
	}

	slots := GenerateSlots(intervals, 30, "emp-1")

	// Interval order is preserved; no re-sorting and no de-duplication here.
	require.Len(t, slots, 4)
	assert.Equal(t, "02:00 PM", slots[0].Time.String())
	assert.Equal(t, "02:30 PM", slots[1].Time.String())
	assert.Equal(t, "09:00 AM", slots[2].Time.String())
	assert.Equal(t, "09:30 AM", slots[3].Time.String())
}

func TestGenerateSlotsZeroDuration(t *testing.T) {
	assert.Nil(t, GenerateSlots([]models.WorkInterval{shift(t, "09:00", "10:00")}, 0, "emp-1"))
}
