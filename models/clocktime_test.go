package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		label   string
		minutes int
	}{
		{"09:30 AM", 570},
		{"9:30 am", 570},
		{"12:00 AM", 0},
		{"12:00 PM", 720},
		{"11:59 PM", 1439},
		{"01:05 PM", 785},
		{"00:00", 0},
		{"09:30", 570},
		{"13:45", 825},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClockTime(tc.label)
		require.NoError(t, err, "label %q", tc.label)
		assert.Equal(t, tc.minutes, got.Minutes(), "label %q", tc.label)
	}
}

func TestParseClockTimeInvalid(t *testing.T) {
	for _, label := range []string{"", "930", "25:00", "09:60", "13:00 PM", "0:00 AM", "nine thirty", "09-30", "9:5", "09:5", "009:030", "9:+5"} {
		_, err := ParseClockTime(label)
		require.Error(t, err, "label %q", label)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, "label %q", label)
	}
}

func TestClockTimeString(t *testing.T) {
	cases := []struct {
		minutes int
		label   string
	}{
		{0, "12:00 AM"},
		{5, "12:05 AM"},
		{570, "09:30 AM"},
		{719, "11:59 AM"},
		{720, "12:00 PM"},
		{785, "01:05 PM"},
		{1439, "11:59 PM"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.label, ClockTimeFromMinutes(tc.minutes).String())
	}
}

func TestClockTimeRoundTrip(t *testing.T) {
	// Label round-trips through parse for every representable minute; the
	// boundary minutes are the interesting AM/PM edges.
	for _, m := range []int{0, 1, 59, 60, 719, 720, 721, 1438, 1439} {
		ct := ClockTimeFromMinutes(m)
		parsed, err := ParseClockTime(ct.String())
		require.NoError(t, err)
		assert.Equal(t, ct, parsed, "minute %d", m)
	}
	for m := 0; m < MinutesPerDay; m++ {
		ct := ClockTimeFromMinutes(m)
		parsed, err := ParseClockTime(ct.String())
		require.NoError(t, err)
		require.Equal(t, ct, parsed)
	}
}

func TestClockTimeJSON(t *testing.T) {
	ct := ClockTimeFromMinutes(570)
	data, err := ct.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"09:30 AM"`, string(data))

	var decoded ClockTime
	require.NoError(t, decoded.UnmarshalJSON(data))
	assert.Equal(t, ct, decoded)
}
