package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned for clock-time labels that are neither
// 24-hour "HH:MM" nor 12-hour "hh:mm AM/PM".
var ErrInvalidTimeFormat = errors.New("invalid time format")

// ClockTime is a time of day stored as minutes from midnight, in [0, 1440).
// Its canonical label (12-hour, zero-padded, uppercase AM/PM) is used as an
// equality key throughout slot handling, so String must stay stable.
type ClockTime int

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 1440

// ClockTimeFromMinutes builds a ClockTime from minutes since midnight,
// normalized into [0, 1440).
func ClockTimeFromMinutes(m int) ClockTime {
	m %= MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return ClockTime(m)
}

// ParseClockTime parses a 12-hour label with an AM/PM suffix (e.g. "09:30 AM")
// or a 24-hour "HH:MM" label.
func ParseClockTime(label string) (ClockTime, error) {
	s := strings.TrimSpace(label)
	upper := strings.ToUpper(s)

	var suffix string
	if strings.HasSuffix(upper, "AM") {
		suffix = "AM"
	} else if strings.HasSuffix(upper, "PM") {
		suffix = "PM"
	}

	if suffix != "" {
		s = strings.TrimSpace(upper[:len(upper)-2])
	}

	hourStr, minStr, found := strings.Cut(s, ":")
	if !found || !allDigits(hourStr) || len(hourStr) > 2 || !allDigits(minStr) || len(minStr) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, label)
	}
	hour, _ := strconv.Atoi(hourStr)
	minute, _ := strconv.Atoi(minStr)
	if minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, label)
	}

	if suffix == "" {
		if hour > 23 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, label)
		}
		return ClockTime(hour*60 + minute), nil
	}

	if hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, label)
	}
	if hour == 12 {
		hour = 0
	}
	if suffix == "PM" {
		hour += 12
	}
	return ClockTime(hour*60 + minute), nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Minutes returns the minute-of-day value.
func (t ClockTime) Minutes() int {
	return int(t)
}

// Add returns the clock time the given number of minutes later, wrapping at
// midnight.
func (t ClockTime) Add(minutes int) ClockTime {
	return ClockTimeFromMinutes(int(t) + minutes)
}

// String renders the canonical 12-hour label: zero-padded hour and minute with
// an uppercase AM/PM suffix. Minute 0 maps to "12:00 AM" and 720 to "12:00 PM".
func (t ClockTime) String() string {
	m := int(t)
	hour := m / 60
	minute := m % 60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, minute, suffix)
}

// MarshalJSON encodes the clock time as its canonical label.
func (t ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// UnmarshalJSON decodes either label form.
func (t *ClockTime) UnmarshalJSON(data []byte) error {
	label, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimeFormat, data)
	}
	parsed, err := ParseClockTime(label)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
